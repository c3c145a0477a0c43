package domain

import "strings"

// ListingStatus is the closed set of sale states a listing can be in.
// Labels are matched case-insensitively wherever they cross the API boundary.
type ListingStatus string

const (
	StatusForSale       ListingStatus = "For Sale"
	StatusSold          ListingStatus = "Sold"
	StatusUnderContract ListingStatus = "Under Contract"
	StatusWithdrawn     ListingStatus = "Withdrawn"
)

var allStatuses = []ListingStatus{StatusForSale, StatusSold, StatusUnderContract, StatusWithdrawn}

// ParseStatus matches a raw label against the closed status set,
// ignoring case. The second return is false for unknown labels.
func ParseStatus(label string) (ListingStatus, bool) {
	for _, s := range allStatuses {
		if strings.EqualFold(label, string(s)) {
			return s, true
		}
	}
	return "", false
}

// IsOpen reports whether the raw label means the listing is still for sale.
func IsOpen(label string) bool {
	return strings.EqualFold(label, string(StatusForSale))
}

// StatusLabels returns the canonical spellings of the four statuses.
func StatusLabels() []string {
	labels := make([]string, 0, len(allStatuses))
	for _, s := range allStatuses {
		labels = append(labels, string(s))
	}
	return labels
}

// Listing is the domain value object for a single property listing.
// It is treated as immutable: updates build a new value with the same
// listing number. The status is kept as the raw label the caller supplied,
// so a listing created as "for sale" round-trips unchanged.
type Listing struct {
	ListingNumber string
	Address       string
	SquareFootage int
	Price         int
	BedroomCount  int
	BathroomCount float64
	LotSize       float64
	Status        string
}

// WithPrice returns a copy of the listing with only the price replaced.
func (l Listing) WithPrice(price int) Listing {
	l.Price = price
	return l
}

// WithStatus returns a copy of the listing with only the status replaced.
func (l Listing) WithStatus(status string) Listing {
	l.Status = status
	return l
}
