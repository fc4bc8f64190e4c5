package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxEmailLength is the longest address we accept, per RFC 5321.
const MaxEmailLength = 254

// ErrInvalidFormat is the sentinel for syntactically invalid addresses.
// Use errors.Is to test for it; the concrete *InvalidFormatError carries
// the original input.
var ErrInvalidFormat = errors.New("invalid email format")

// InvalidFormatError reports a failed syntax check. Input preserves the
// original, untrimmed string for diagnostics.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid email format: %q", e.Input)
}

func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail canonicalizes an address for comparison and storage:
// surrounding whitespace is trimmed and the address is lower-cased.
// Every repository applies this before touching the store, so the banned
// set only ever holds normalized members.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailAddress is a validated, normalized email address. The zero value is
// invalid; construct one via ParseEmailAddress. Two addresses are equal when
// their normalized strings are equal.
type EmailAddress struct {
	address string
}

// ParseEmailAddress validates raw and returns the normalized identity.
// The syntax rules: exactly one '@' separating a non-empty local part from
// a non-empty domain, the domain contains a '.', no two consecutive dots
// anywhere, and the trimmed length is between 1 and MaxEmailLength.
// On failure it returns an *InvalidFormatError wrapping ErrInvalidFormat.
func ParseEmailAddress(raw string) (EmailAddress, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 0 || len(trimmed) > MaxEmailLength {
		return EmailAddress{}, &InvalidFormatError{Input: raw}
	}
	// The character classes in emailRegex admit consecutive dots in the
	// local part, so that rule needs its own check.
	if strings.Contains(trimmed, "..") {
		return EmailAddress{}, &InvalidFormatError{Input: raw}
	}
	if !emailRegex.MatchString(trimmed) {
		return EmailAddress{}, &InvalidFormatError{Input: raw}
	}
	return EmailAddress{address: strings.ToLower(trimmed)}, nil
}

// String returns the normalized address.
func (e EmailAddress) String() string { return e.address }

// UserPart returns the local part, the substring before the '@'.
func (e EmailAddress) UserPart() string {
	return e.address[:strings.IndexByte(e.address, '@')]
}

// Domain returns the substring after the '@'.
func (e EmailAddress) Domain() string {
	return e.address[strings.IndexByte(e.address, '@')+1:]
}

// IsZero reports whether e is the zero (unconstructed) value.
func (e EmailAddress) IsZero() bool { return e.address == "" }
