package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/cache"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
)

func testListing(number string) domain.Listing {
	return domain.Listing{
		ListingNumber: number,
		Address:       "123 Main Street, Springfield, Illinois, 62701",
		SquareFootage: 1600,
		Price:         250000,
		BedroomCount:  3,
		BathroomCount: 2.0,
		LotSize:       2.0,
		Status:        "For Sale",
	}
}

func TestTTLCache_PutGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewTTLCache(time.Minute, nil)

	listing := testListing("123")
	c.Put(ctx, "123", listing)

	got, ok := c.Get(ctx, "123")
	assert.True(t, ok)
	assert.Equal(t, listing, got)

	_, ok = c.Get(ctx, "nonexistent")
	assert.False(t, ok)
}

func TestTTLCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := cache.NewTTLCache(time.Minute, nil)

	c.Put(ctx, "123", testListing("123"))
	c.Invalidate(ctx, "123")

	_, ok := c.Get(ctx, "123")
	assert.False(t, ok)

	// Invalidating an absent entry is a no-op.
	c.Invalidate(ctx, "123")
	c.Invalidate(ctx, "never-existed")
}

func TestTTLCache_ExpiresAfterWrite(t *testing.T) {
	ctx := context.Background()
	clock := domain.NewMockClock(time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC))
	c := cache.NewTTLCache(2*time.Minute, clock)

	c.Put(ctx, "123", testListing("123"))

	clock.Advance(119 * time.Second)
	_, ok := c.Get(ctx, "123")
	assert.True(t, ok, "entry should survive until the deadline")

	clock.Advance(1 * time.Second)
	_, ok = c.Get(ctx, "123")
	assert.False(t, ok, "entry should be gone at now+TTL")

	// Once expired it stays gone.
	_, ok = c.Get(ctx, "123")
	assert.False(t, ok)
}

func TestTTLCache_GetDoesNotRefreshDeadline(t *testing.T) {
	ctx := context.Background()
	clock := domain.NewMockClock(time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC))
	c := cache.NewTTLCache(2*time.Minute, clock)

	c.Put(ctx, "123", testListing("123"))

	// Read repeatedly just before expiry; reads must not extend the TTL.
	clock.Advance(110 * time.Second)
	for i := 0; i < 5; i++ {
		_, ok := c.Get(ctx, "123")
		assert.True(t, ok)
	}

	clock.Advance(10 * time.Second)
	_, ok := c.Get(ctx, "123")
	assert.False(t, ok)
}

func TestTTLCache_PutRefreshesDeadline(t *testing.T) {
	ctx := context.Background()
	clock := domain.NewMockClock(time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC))
	c := cache.NewTTLCache(2*time.Minute, clock)

	c.Put(ctx, "123", testListing("123"))
	clock.Advance(110 * time.Second)

	// Overwrite resets the clock to now+TTL.
	updated := testListing("123").WithPrice(199000)
	c.Put(ctx, "123", updated)

	clock.Advance(110 * time.Second)
	got, ok := c.Get(ctx, "123")
	assert.True(t, ok)
	assert.Equal(t, 199000, got.Price)
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := cache.NewTTLCache(time.Minute, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		key := fmt.Sprintf("listing-%d", i%4)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Put(ctx, key, testListing(key))
				c.Get(ctx, key)
				c.Invalidate(ctx, key)
			}
		}()
	}
	wg.Wait()
}
