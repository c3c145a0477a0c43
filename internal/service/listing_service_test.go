package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/cache"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/repository"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/search"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/service"
)

var errStoreDown = errors.New("store unavailable")

// failingRepo makes the backing store unreachable on demand, to prove
// which reads are served from cache.
type failingRepo struct {
	repository.ListingRepository
	mu   sync.Mutex
	down bool
}

func (r *failingRepo) setDown(down bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.down = down
}

func (r *failingRepo) Get(ctx context.Context, listingNumber string) (repository.Record, error) {
	r.mu.Lock()
	down := r.down
	r.mu.Unlock()
	if down {
		return repository.Record{}, errStoreDown
	}
	return r.ListingRepository.Get(ctx, listingNumber)
}

func listing(number string, sqft, price, beds int, baths, lot float64, status string) domain.Listing {
	return domain.Listing{
		ListingNumber: number,
		Address:       "123 Main Street, Springfield, Illinois, 62701",
		SquareFootage: sqft,
		Price:         price,
		BedroomCount:  beds,
		BathroomCount: baths,
		LotSize:       lot,
		Status:        status,
	}
}

func newService(t *testing.T) (*service.ListingService, *repository.MemoryListingRepository, *domain.MockClock) {
	t.Helper()
	repo := repository.NewMemoryListingRepository()
	clock := domain.NewMockClock(time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := service.NewListingService(repo, cache.NewTTLCache(2*time.Minute, clock), zap.NewNop())
	return svc, repo, clock
}

func TestGet_SecondReadServedFromCache(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryListingRepository()
	failing := &failingRepo{ListingRepository: repo}
	svc := service.NewListingService(failing, cache.NewTTLCache(2*time.Minute, nil), zap.NewNop())

	created, err := svc.Create(ctx, listing("a", 1600, 250000, 3, 2.0, 2.0, "For Sale"))
	require.NoError(t, err)

	// First read populates the cache from the store.
	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Second read must succeed even with the store unreachable.
	failing.setDown(true)
	got, err = svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGet_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService(t)

	_, err := svc.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The listing shows up as soon as the store has it, proving the
	// earlier absence was not cached.
	require.NoError(t, repo.Save(ctx, repository.FromListing(listing("a", 1600, 250000, 3, 2.0, 2.0, "For Sale"))))
	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ListingNumber)
}

func TestGet_CacheEntryExpires(t *testing.T) {
	ctx := context.Background()
	svc, repo, clock := newService(t)

	_, err := svc.Create(ctx, listing("a", 1600, 250000, 3, 2.0, 2.0, "For Sale"))
	require.NoError(t, err)
	_, err = svc.Get(ctx, "a")
	require.NoError(t, err)

	// A direct store write the service never saw: visible only once the
	// cache entry has expired.
	stale := repository.FromListing(listing("a", 1600, 250000, 3, 2.0, 2.0, "Withdrawn"))
	require.NoError(t, repo.Save(ctx, stale))

	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "For Sale", got.Status, "within TTL the cache is trusted")

	clock.Advance(3 * time.Minute)
	got, err = svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Withdrawn", got.Status)
}

func TestUpdatePrice_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Create(ctx, listing("a", 1600, 250000, 3, 2.0, 2.0, "For Sale"))
	require.NoError(t, err)
	_, err = svc.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePrice(ctx, "a", 199000))

	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 199000, got.Price, "stale cache read after price update")
}

func TestUpdateStatus_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Create(ctx, listing("a", 1600, 250000, 3, 2.0, 2.0, "For Sale"))
	require.NoError(t, err)
	_, err = svc.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, "a", "Under Contract"))

	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Under Contract", got.Status)

	// Other fields survive the overwrite.
	assert.Equal(t, 1600, got.SquareFootage)
	assert.Equal(t, 250000, got.Price)
}

func TestUpdate_MissingListingIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	require.NoError(t, svc.UpdatePrice(ctx, "ghost", 100000))
	require.NoError(t, svc.UpdateStatus(ctx, "ghost", "Sold"))

	listings, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestDelete_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Create(ctx, listing("a", 1600, 250000, 3, 2.0, 2.0, "For Sale"))
	require.NoError(t, err)
	_, err = svc.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "a"))
	require.NoError(t, svc.Delete(ctx, "a"))
	require.NoError(t, svc.Delete(ctx, "never-existed"))

	// The cache entry went with the row.
	_, err = svc.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearch_SingleFilterExactSubset(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Create(ctx, listing("small", 1200, 999000, 1, 1.0, 0.1, "For Sale"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, listing("mid", 1700, 1, 9, 9.0, 9.0, "For Sale"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, listing("big", 2400, 450000, 5, 3.5, 2.0, "For Sale"))
	require.NoError(t, err)

	// Only the square-footage bound applies; the other attributes must
	// not influence membership.
	got, err := svc.Search(ctx, search.Filters{SquareFootage: search.Int(1700)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "mid", got[0].ListingNumber)
	assert.Equal(t, "big", got[1].ListingNumber)
}

func TestSearch_OnlyOpenListingsReturned(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	// A is open; B clears the numeric bound but is already sold.
	_, err := svc.Create(ctx, listing("A", 1600, 250000, 3, 2.0, 2.0, "For Sale"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, listing("B", 1850, 325000, 4, 3.0, 3.0, "Sold"))
	require.NoError(t, err)

	got, err := svc.Search(ctx, search.Filters{SquareFootage: search.Int(1700)})
	require.NoError(t, err)
	assert.Empty(t, got, "B matches the bound but is not for sale")

	open, err := svc.GetAllOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "A", open[0].ListingNumber)
}

func TestSearch_StatusGateIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Create(ctx, listing("a", 1600, 250000, 3, 2.0, 2.0, "FOR SALE"))
	require.NoError(t, err)

	got, err := svc.Search(ctx, search.Filters{BedroomCount: search.Int(3)})
	require.NoError(t, err)
	require.Len(t, got, 1)

	open, err := svc.GetAllOpen(ctx)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestSearch_NoFilters(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Search(ctx, search.Filters{})
	assert.ErrorIs(t, err, domain.ErrNoSearchFilters)
}

func TestCreate_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Create(ctx, listing("a", 1600, 0, 3, 2.0, 2.0, "For Sale"))
	assert.ErrorIs(t, err, domain.ErrInvalidListing)

	_, err = svc.Create(ctx, listing("b", 1600, 250000, 3, 2.0, 2.0, "Not A Status"))
	assert.ErrorIs(t, err, domain.ErrInvalidListing)

	_, err = svc.Create(ctx, listing("", 1600, 250000, 3, 2.0, 2.0, "For Sale"))
	assert.ErrorIs(t, err, domain.ErrInvalidListing)

	// Nothing was persisted.
	listings, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestCreate_KeepsCallerStatusSpelling(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	created, err := svc.Create(ctx, listing("a", 1600, 250000, 3, 2.0, 2.0, "for sale"))
	require.NoError(t, err)
	assert.Equal(t, "for sale", created.Status)

	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "for sale", got.Status)
}

// The exists/read/write sequence in price and status updates is not
// transactional: two concurrent updates to the same listing race, and
// one overwrite can swallow the other. That lost-update window is a
// known, accepted limitation; this test only pins down that the result
// is one of the written values and nothing corrupts.
func TestUpdatePrice_ConcurrentLastWriteWins(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Create(ctx, listing("a", 1600, 250000, 3, 2.0, 2.0, "For Sale"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, price := range []int{111000, 222000} {
		price := price
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.UpdatePrice(ctx, "a", price))
		}()
	}
	wg.Wait()

	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Contains(t, []int{111000, 222000}, got.Price)
}

func TestHandleImportMessage(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	payload, err := json.Marshal(repository.FromListing(listing("imported", 1850, 325000, 4, 3.0, 3.0, "For Sale")))
	require.NoError(t, err)
	require.NoError(t, svc.HandleImportMessage(ctx, "imported", payload))

	got, err := svc.Get(ctx, "imported")
	require.NoError(t, err)
	assert.Equal(t, 1850, got.SquareFootage)
}

func TestHandleImportMessage_KeyFillsMissingNumber(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	rec := repository.FromListing(listing("", 1850, 325000, 4, 3.0, 3.0, "For Sale"))
	payload, err := json.Marshal(rec)
	require.NoError(t, err)
	require.NoError(t, svc.HandleImportMessage(ctx, "from-key", payload))

	got, err := svc.Get(ctx, "from-key")
	require.NoError(t, err)
	assert.Equal(t, "from-key", got.ListingNumber)
}

func TestHandleImportMessage_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	err := svc.HandleImportMessage(ctx, "a", []byte("{not json"))
	assert.Error(t, err)

	payload, merr := json.Marshal(repository.FromListing(listing("a", 1850, 0, 4, 3.0, 3.0, "For Sale")))
	require.NoError(t, merr)
	err = svc.HandleImportMessage(ctx, "a", payload)
	assert.ErrorIs(t, err, domain.ErrInvalidListing)

	listings, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}
