// Package redis implements the banned-list repository against a Redis set.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ignite/spamguard/internal/domain"
	"github.com/ignite/spamguard/internal/service/bannedlist"
)

// BannedListRepo implements bannedlist.Repository against a single Redis
// set. The client is safe for concurrent use and Redis serializes set
// mutations, so the repository adds no locking of its own. Under
// concurrent conflicting Ban/Unban of the same address the last writer
// wins.
type BannedListRepo struct {
	client *goredis.Client
	key    string
}

// NewBannedListRepo creates a Redis-backed banned-list repository. If key
// is empty, bannedlist.DefaultKey is used.
func NewBannedListRepo(client *goredis.Client, key string) *BannedListRepo {
	if key == "" {
		key = bannedlist.DefaultKey
	}
	return &BannedListRepo{client: client, key: key}
}

// IsBanned checks set membership for the normalized address.
func (r *BannedListRepo) IsBanned(ctx context.Context, email string) (bool, error) {
	banned, err := r.client.SIsMember(ctx, r.key, domain.NormalizeEmail(email)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: SISMEMBER %s: %v", bannedlist.ErrStoreUnavailable, r.key, err)
	}
	return banned, nil
}

// Ban adds the normalized address to the set. SADD is a no-op for an
// existing member, which gives us idempotence for free.
func (r *BannedListRepo) Ban(ctx context.Context, email string) error {
	if err := r.client.SAdd(ctx, r.key, domain.NormalizeEmail(email)).Err(); err != nil {
		return fmt.Errorf("%w: SADD %s: %v", bannedlist.ErrStoreUnavailable, r.key, err)
	}
	return nil
}

// Unban removes the normalized address. SREM on a non-member succeeds
// silently.
func (r *BannedListRepo) Unban(ctx context.Context, email string) error {
	if err := r.client.SRem(ctx, r.key, domain.NormalizeEmail(email)).Err(); err != nil {
		return fmt.Errorf("%w: SREM %s: %v", bannedlist.ErrStoreUnavailable, r.key, err)
	}
	return nil
}

// AllBanned enumerates the set. Members are already normalized because
// every write path normalizes first.
func (r *BannedListRepo) AllBanned(ctx context.Context) ([]string, error) {
	members, err := r.client.SMembers(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: SMEMBERS %s: %v", bannedlist.ErrStoreUnavailable, r.key, err)
	}
	return members, nil
}

// Clear deletes the set key.
func (r *BannedListRepo) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%w: DEL %s: %v", bannedlist.ErrStoreUnavailable, r.key, err)
	}
	return nil
}
