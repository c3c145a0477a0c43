package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/cache"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/repository"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/search"
)

// ListingService is the façade the transport layers call into. It owns
// the cache-consistency policy: point reads go through the cache,
// mutations invalidate it, scans and searches bypass it.
type ListingService struct {
	repo  repository.ListingRepository
	cache cache.Cache
	log   *zap.Logger
}

func NewListingService(repo repository.ListingRepository, cache cache.Cache, log *zap.Logger) *ListingService {
	return &ListingService{repo: repo, cache: cache, log: log}
}

// GetAll returns every listing regardless of status. No cache involvement.
func (s *ListingService) GetAll(ctx context.Context) ([]domain.Listing, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	listings := make([]domain.Listing, 0, len(recs))
	for _, rec := range recs {
		listings = append(listings, rec.Listing())
	}
	return listings, nil
}

// GetAllOpen returns the listings still for sale, matched case-insensitively.
func (s *ListingService) GetAllOpen(ctx context.Context) ([]domain.Listing, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	open := make([]domain.Listing, 0, len(recs))
	for _, rec := range recs {
		if domain.IsOpen(rec.Status) {
			open = append(open, rec.Listing())
		}
	}
	return open, nil
}

// Get is the read-through point lookup: a fresh cache entry is trusted
// as-is; on a miss the store is read and the result written through.
// Absence is never cached.
func (s *ListingService) Get(ctx context.Context, listingNumber string) (domain.Listing, error) {
	if listing, ok := s.cache.Get(ctx, listingNumber); ok {
		return listing, nil
	}
	rec, err := s.repo.Get(ctx, listingNumber)
	if err != nil {
		return domain.Listing{}, err
	}
	listing := rec.Listing()
	s.cache.Put(ctx, listingNumber, listing)
	return listing, nil
}

// Search resolves the filter combination to exactly one store
// predicate, then gates the result to open listings. A search with no
// filters set is rejected rather than treated as a full scan. The
// cache is not consulted.
func (s *ListingService) Search(ctx context.Context, f search.Filters) ([]domain.Listing, error) {
	if f.Mask() == 0 {
		return nil, domain.ErrNoSearchFilters
	}
	recs, err := s.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	open := make([]domain.Listing, 0, len(recs))
	for _, rec := range recs {
		if domain.IsOpen(rec.Status) {
			open = append(open, rec.Listing())
		}
	}
	return open, nil
}

// Create validates and persists a new listing. The listing number is
// minted by the caller. The cache is populated lazily on first read,
// not here.
func (s *ListingService) Create(ctx context.Context, listing domain.Listing) (domain.Listing, error) {
	if err := validate(listing); err != nil {
		return domain.Listing{}, err
	}
	if err := s.repo.Save(ctx, repository.FromListing(listing)); err != nil {
		s.log.Error("failed to save listing", zap.String("listing_number", listing.ListingNumber), zap.Error(err))
		return domain.Listing{}, err
	}
	s.log.Debug("listing created", zap.String("listing_number", listing.ListingNumber))
	return listing, nil
}

func validate(listing domain.Listing) error {
	if listing.ListingNumber == "" {
		return fmt.Errorf("%w: listing number is required", domain.ErrInvalidListing)
	}
	if listing.Price < 1 {
		return fmt.Errorf("%w: price must be at least 1", domain.ErrInvalidListing)
	}
	if _, ok := domain.ParseStatus(listing.Status); !ok {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidListing, listing.Status)
	}
	return nil
}

// UpdatePrice overwrites the listing's price and drops the cache
// entry. A missing listing is a silent no-op. The exists/read/write
// sequence is not transactional; concurrent writers to the same
// listing can lose updates, which is accepted.
func (s *ListingService) UpdatePrice(ctx context.Context, listingNumber string, price int) error {
	return s.overwrite(ctx, listingNumber, func(l domain.Listing) domain.Listing {
		return l.WithPrice(price)
	})
}

// UpdateStatus overwrites the listing's status label and drops the
// cache entry. The label is not validated here; that is the caller's
// responsibility. A missing listing is a silent no-op.
func (s *ListingService) UpdateStatus(ctx context.Context, listingNumber string, status string) error {
	return s.overwrite(ctx, listingNumber, func(l domain.Listing) domain.Listing {
		return l.WithStatus(status)
	})
}

func (s *ListingService) overwrite(ctx context.Context, listingNumber string, apply func(domain.Listing) domain.Listing) error {
	exists, err := s.repo.Exists(ctx, listingNumber)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	listing, err := s.Get(ctx, listingNumber)
	if errors.Is(err, domain.ErrNotFound) {
		// Deleted between the exists check and the read; still a no-op.
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.repo.Save(ctx, repository.FromListing(apply(listing))); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, listingNumber)
	return nil
}

// Delete removes the listing from the store and the cache. Deleting a
// listing that never existed is a no-op, so the operation is idempotent.
func (s *ListingService) Delete(ctx context.Context, listingNumber string) error {
	if err := s.repo.Delete(ctx, listingNumber); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, listingNumber)
	return nil
}

// HandleImportMessage ingests one listing from the import feed. The
// message value is a persisted-shape JSON document; an empty id falls
// back to the message key, then to a minted one. Invalid listings are
// rejected the same way as HTTP creates.
func (s *ListingService) HandleImportMessage(ctx context.Context, key string, payload []byte) error {
	var rec repository.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		s.log.Error("failed to unmarshal import message", zap.Error(err))
		return err
	}
	if rec.ListingNumber == "" && key != "" {
		rec.ListingNumber = key
	}
	if rec.ListingNumber == "" {
		rec.ListingNumber = uuid.NewString()
	}

	if _, err := s.Create(ctx, rec.Listing()); err != nil {
		s.log.Error("failed to import listing",
			zap.String("listing_number", rec.ListingNumber), zap.Error(err))
		return fmt.Errorf("import listing: %w", err)
	}
	return nil
}
