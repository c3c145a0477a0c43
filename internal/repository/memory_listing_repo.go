package repository

import (
	"context"
	"sync"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/search"
)

// MemoryListingRepository is a thread-safe in-memory implementation of
// ListingRepository, used in tests and for running the service without
// a database. Scans preserve insertion order, matching the Postgres
// implementation's created_at ordering.
type MemoryListingRepository struct {
	mu      sync.RWMutex
	records map[string]Record
	order   []string
}

func NewMemoryListingRepository() *MemoryListingRepository {
	return &MemoryListingRepository{
		records: make(map[string]Record),
	}
}

func (r *MemoryListingRepository) Save(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[rec.ListingNumber]; !exists {
		r.order = append(r.order, rec.ListingNumber)
	}
	r.records[rec.ListingNumber] = rec
	return nil
}

func (r *MemoryListingRepository) Get(_ context.Context, listingNumber string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.records[listingNumber]
	if !exists {
		return Record{}, domain.ErrNotFound
	}
	return rec, nil
}

func (r *MemoryListingRepository) Exists(_ context.Context, listingNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.records[listingNumber]
	return exists, nil
}

func (r *MemoryListingRepository) Delete(_ context.Context, listingNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[listingNumber]; !exists {
		return nil
	}
	delete(r.records, listingNumber)
	for i, number := range r.order {
		if number == listingNumber {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryListingRepository) List(_ context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]Record, 0, len(r.order))
	for _, number := range r.order {
		recs = append(recs, r.records[number])
	}
	return recs, nil
}

func (r *MemoryListingRepository) Search(_ context.Context, f search.Filters) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]Record, 0)
	for _, number := range r.order {
		rec := r.records[number]
		if matches(rec, f) {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

// matches mirrors the SQL predicate family: lower bounds are inclusive,
// the price bound is strictly less-than.
func matches(rec Record, f search.Filters) bool {
	if f.SquareFootage != nil && rec.SquareFootage < *f.SquareFootage {
		return false
	}
	if f.MaxPrice != nil && rec.Price >= *f.MaxPrice {
		return false
	}
	if f.BedroomCount != nil && rec.BedroomCount < *f.BedroomCount {
		return false
	}
	if f.BathroomCount != nil && rec.BathroomCount < *f.BathroomCount {
		return false
	}
	if f.LotSize != nil && rec.LotSize < *f.LotSize {
		return false
	}
	return true
}
