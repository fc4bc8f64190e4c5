// Package antispam implements the block/allow decision for email addresses.
//
// The gate is the only component that applies a resilience policy to the
// banned-list store: a store failure is reported and the check fails open.
// Letting a banned sender through during an outage is judged less harmful
// than rejecting all legitimate traffic while the store is unreachable.
// The direction of that default is a policy choice, not an accident.
package antispam

import (
	"context"
	"log"

	"github.com/ignite/spamguard/internal/metrics"
	"github.com/ignite/spamguard/internal/service/bannedlist"
)

// Gate answers "is this email blocked?". It holds a reference to the
// banned-list repository but does not own it. IsBlocked is total: it never
// returns an error.
type Gate struct {
	repo    bannedlist.Repository
	metrics metrics.Recorder
}

// NewGate creates a gate over the given repository. rec may be nil, in
// which case metrics are discarded.
func NewGate(repo bannedlist.Repository, rec metrics.Recorder) *Gate {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Gate{repo: repo, metrics: rec}
}

// IsBlocked reports whether email is on the banned list. On any repository
// error the failure is logged, counted, and the check fails open: the
// address is treated as not blocked. No retries — a single store failure
// is defaulted immediately; retry policy belongs to the store client.
func (g *Gate) IsBlocked(ctx context.Context, email string) bool {
	banned, err := g.repo.IsBanned(ctx, email)
	if err != nil {
		log.Printf("[AntiSpam] banned-list check failed for %q, failing open: %v", email, err)
		g.metrics.RecordStoreFailure()
		g.metrics.RecordCheck(false)
		return false
	}
	g.metrics.RecordCheck(banned)
	return banned
}
