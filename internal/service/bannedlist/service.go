package bannedlist

import (
	"context"

	"github.com/ignite/spamguard/internal/domain"
	"github.com/ignite/spamguard/internal/metrics"
)

// Service implements banned-list business logic. It is safe for concurrent
// use. All methods are pure: they take typed inputs and return typed outputs.
type Service struct {
	repo    Repository
	metrics metrics.Recorder
}

// NewService creates a banned-list service backed by the given repository.
// rec may be nil, in which case metrics are discarded.
func NewService(repo Repository, rec metrics.Recorder) *Service {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{repo: repo, metrics: rec}
}

// IsBanned checks whether an email address is on the banned list.
func (s *Service) IsBanned(ctx context.Context, email string) (bool, error) {
	if domain.NormalizeEmail(email) == "" {
		return false, ErrEmptyEmail
	}
	return s.repo.IsBanned(ctx, email)
}

// Ban adds an email to the banned list. Idempotent — if the address is
// already banned the call is a no-op.
func (s *Service) Ban(ctx context.Context, email string) error {
	if domain.NormalizeEmail(email) == "" {
		return ErrEmptyEmail
	}
	if err := s.repo.Ban(ctx, email); err != nil {
		return err
	}
	s.metrics.RecordBan()
	return nil
}

// Unban removes an email from the banned list. Unbanning an address that
// was never banned succeeds silently.
func (s *Service) Unban(ctx context.Context, email string) error {
	if domain.NormalizeEmail(email) == "" {
		return ErrEmptyEmail
	}
	if err := s.repo.Unban(ctx, email); err != nil {
		return err
	}
	s.metrics.RecordUnban()
	return nil
}

// AllBanned returns every banned address. Used by the admin API and the
// banctl list command.
func (s *Service) AllBanned(ctx context.Context) ([]string, error) {
	return s.repo.AllBanned(ctx)
}

// Clear empties the banned list entirely.
func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// Count returns the number of banned addresses.
func (s *Service) Count(ctx context.Context) (int, error) {
	all, err := s.repo.AllBanned(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
