package bannedlist

import "context"

// DefaultKey is the logical identifier the banned set lives under when no
// key is configured.
const DefaultKey = "banned:emails"

// Repository defines the data access contract for the banned list.
//
// Implementations normalize the email argument (trim, lower-case) before
// every store operation, so the persisted set only ever contains normalized
// members and duplicates cannot exist. Implementations apply no resilience
// policy of their own: any store-connectivity failure surfaces as an error
// wrapping ErrStoreUnavailable.
type Repository interface {
	// IsBanned returns true if the email is on the banned list. It has no
	// side effects and returns false for any address never added.
	IsBanned(ctx context.Context, email string) (bool, error)

	// Ban adds an email to the banned list. Idempotent — banning an
	// already-banned address is a no-op.
	Ban(ctx context.Context, email string) error

	// Unban removes an email from the banned list. Idempotent — unbanning
	// an address that was never banned succeeds silently.
	Unban(ctx context.Context, email string) error

	// AllBanned returns every banned address, normalized, no duplicates.
	AllBanned(ctx context.Context) ([]string, error)

	// Clear empties the banned list entirely.
	Clear(ctx context.Context) error
}
