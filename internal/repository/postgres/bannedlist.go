// Package postgres implements the banned-list repository against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignite/spamguard/internal/domain"
	"github.com/ignite/spamguard/internal/service/bannedlist"
)

// BannedListRepo implements bannedlist.Repository against PostgreSQL.
// The banned set lives in the banned_emails table with a unique index on
// email; ON CONFLICT DO NOTHING gives Ban its idempotence.
type BannedListRepo struct{ db *sql.DB }

// NewBannedListRepo creates a Postgres-backed banned-list repository.
func NewBannedListRepo(db *sql.DB) *BannedListRepo { return &BannedListRepo{db: db} }

func (r *BannedListRepo) IsBanned(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM banned_emails WHERE email = $1)`,
		domain.NormalizeEmail(email),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: is banned: %v", bannedlist.ErrStoreUnavailable, err)
	}
	return exists, nil
}

func (r *BannedListRepo) Ban(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO banned_emails (id, email, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO NOTHING
	`, uuid.New().String(), domain.NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("%w: ban: %v", bannedlist.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *BannedListRepo) Unban(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM banned_emails WHERE email = $1`,
		domain.NormalizeEmail(email),
	)
	if err != nil {
		return fmt.Errorf("%w: unban: %v", bannedlist.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *BannedListRepo) AllBanned(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT email FROM banned_emails ORDER BY email`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: all banned: %v", bannedlist.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("%w: scan banned email: %v", bannedlist.ErrStoreUnavailable, err)
		}
		out = append(out, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: all banned: %v", bannedlist.ErrStoreUnavailable, err)
	}
	return out, nil
}

func (r *BannedListRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM banned_emails`); err != nil {
		return fmt.Errorf("%w: clear: %v", bannedlist.ErrStoreUnavailable, err)
	}
	return nil
}
