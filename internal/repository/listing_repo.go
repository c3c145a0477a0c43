package repository

import (
	"context"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/search"
)

// Record is the persisted shape of a listing. The JSON field names are
// the on-disk schema of the payload column and must not change.
type Record struct {
	ListingNumber string  `json:"id"`
	Address       string  `json:"address"`
	SquareFootage int     `json:"squareFootage"`
	Price         int     `json:"price"`
	BedroomCount  int     `json:"bedroomCount"`
	BathroomCount float64 `json:"bathroomCount"`
	LotSize       float64 `json:"lotSize"`
	Status        string  `json:"status"`
}

// Listing maps the persisted record to the domain value object.
func (r Record) Listing() domain.Listing {
	return domain.Listing{
		ListingNumber: r.ListingNumber,
		Address:       r.Address,
		SquareFootage: r.SquareFootage,
		Price:         r.Price,
		BedroomCount:  r.BedroomCount,
		BathroomCount: r.BathroomCount,
		LotSize:       r.LotSize,
		Status:        r.Status,
	}
}

// FromListing maps a domain listing to its persisted record.
func FromListing(l domain.Listing) Record {
	return Record{
		ListingNumber: l.ListingNumber,
		Address:       l.Address,
		SquareFootage: l.SquareFootage,
		Price:         l.Price,
		BedroomCount:  l.BedroomCount,
		BathroomCount: l.BathroomCount,
		LotSize:       l.LotSize,
		Status:        l.Status,
	}
}

// ListingRepository is the key-value store contract the service
// consumes. Get returns domain.ErrNotFound for a missing listing;
// Delete of a missing listing is a no-op. Search runs exactly one of
// the enumerated range predicates, selected by the filter mask, and
// returns records in insertion order.
type ListingRepository interface {
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, listingNumber string) (Record, error)
	Exists(ctx context.Context, listingNumber string) (bool, error)
	Delete(ctx context.Context, listingNumber string) error
	List(ctx context.Context) ([]Record, error)
	Search(ctx context.Context, f search.Filters) ([]Record, error)
}
