package domain

import "errors"

var (
	// ErrNotFound indicates the listing does not exist in the store.
	ErrNotFound = errors.New("listing not found")

	// ErrInvalidListing indicates a create was rejected by validation
	// (price below 1 or a status outside the closed label set).
	ErrInvalidListing = errors.New("invalid listing")

	// ErrNoSearchFilters indicates a parameterized search with no filters set.
	ErrNoSearchFilters = errors.New("no search filters set")
)
