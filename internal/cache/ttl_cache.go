package cache

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
)

const defaultTTL = 2 * time.Minute

type entry struct {
	listing   domain.Listing
	expiresAt time.Time
}

// TTLCache maps listing numbers to materialized listings with
// expire-after-write semantics: every Put resets the entry's deadline
// to now+TTL, reads never refresh it. Expired entries are dropped
// lazily on the next Get; there is no background sweeper and no
// capacity bound.
type TTLCache struct {
	entries *xsync.MapOf[string, entry]
	ttl     time.Duration
	clock   domain.Clock
}

func NewTTLCache(ttl time.Duration, clock domain.Clock) *TTLCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &TTLCache{
		entries: xsync.NewMapOf[string, entry](),
		ttl:     ttl,
		clock:   clock,
	}
}

func (c *TTLCache) Get(_ context.Context, listingNumber string) (domain.Listing, bool) {
	e, ok := c.entries.Load(listingNumber)
	if !ok {
		return domain.Listing{}, false
	}
	if !c.clock.Now().Before(e.expiresAt) {
		// Re-check under the entry lock so a concurrent Put that just
		// refreshed the deadline is not thrown away.
		c.entries.Compute(listingNumber, func(cur entry, loaded bool) (entry, bool) {
			if loaded && !c.clock.Now().Before(cur.expiresAt) {
				return entry{}, true
			}
			return cur, !loaded
		})
		return domain.Listing{}, false
	}
	return e.listing, true
}

func (c *TTLCache) Put(_ context.Context, listingNumber string, listing domain.Listing) {
	c.entries.Store(listingNumber, entry{
		listing:   listing,
		expiresAt: c.clock.Now().Add(c.ttl),
	})
}

// Invalidate removes the entry if present; removing an absent entry is
// a no-op.
func (c *TTLCache) Invalidate(_ context.Context, listingNumber string) {
	c.entries.Delete(listingNumber)
}
