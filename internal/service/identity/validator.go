// Package identity constructs validated email identities.
//
// Two entry points exist: Parse performs the syntax check only, and
// ParseChecked additionally consults the anti-spam gate so a blocked
// address never produces a valid identity. The gate is an optional
// collaborator — callers without anti-spam requirements use Parse and are
// never forced to provide one.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/ignite/spamguard/internal/domain"
)

// ErrBlocked is the sentinel for addresses denied by the anti-spam check.
// Distinct from domain.ErrInvalidFormat so callers can give a different
// user-facing message ("contact support" vs. "fix your input").
var ErrBlocked = errors.New("email address is blocked")

// BlockedError reports a denial by the anti-spam gate. Email holds the
// normalized address that was checked.
type BlockedError struct {
	Email string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("email address is blocked: %s", e.Email)
}

func (e *BlockedError) Unwrap() error { return ErrBlocked }

// Gate is the block-decision capability the validator needs. It is total:
// implementations never fail, they absorb store errors internally.
type Gate interface {
	IsBlocked(ctx context.Context, email string) bool
}

// Validator constructs email identities, optionally gated by an anti-spam
// check. The zero value (nil gate) behaves exactly like Parse for both
// entry points.
type Validator struct {
	gate Gate
}

// NewValidator creates a validator. gate may be nil.
func NewValidator(gate Gate) *Validator {
	return &Validator{gate: gate}
}

// Parse constructs an identity from raw using the syntax check only.
func (v *Validator) Parse(raw string) (domain.EmailAddress, error) {
	return domain.ParseEmailAddress(raw)
}

// ParseChecked constructs an identity from raw, rejecting addresses the
// anti-spam gate reports as blocked. The gate sees the normalized address.
// Returns *domain.InvalidFormatError on syntax failure and *BlockedError
// when the address is banned.
func (v *Validator) ParseChecked(ctx context.Context, raw string) (domain.EmailAddress, error) {
	addr, err := domain.ParseEmailAddress(raw)
	if err != nil {
		return domain.EmailAddress{}, err
	}
	if v.gate != nil && v.gate.IsBlocked(ctx, addr.String()) {
		return domain.EmailAddress{}, &BlockedError{Email: addr.String()}
	}
	return addr, nil
}
