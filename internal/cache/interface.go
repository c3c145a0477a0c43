package cache

import (
	"context"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
)

// Cache is a read-through accelerator for point lookups by listing
// number. It never reaches the store on its own; the service decides
// when to populate it.
type Cache interface {
	Get(ctx context.Context, listingNumber string) (domain.Listing, bool)
	Put(ctx context.Context, listingNumber string, listing domain.Listing)
	Invalidate(ctx context.Context, listingNumber string)
}
