// Package search defines the parameterized-search filter set and the
// bitmask that selects which one of the enumerated store predicates a
// search maps onto.
package search

import "math/bits"

// Mask identifies a combination of set filters. One bit per filter,
// in canonical field order.
type Mask uint8

const (
	BySquareFootage Mask = 1 << iota
	ByMaxPrice
	ByBedroomCount
	ByBathroomCount
	ByLotSize
)

// AllMasks is every non-empty filter combination, 1 through 31.
func AllMasks() []Mask {
	masks := make([]Mask, 0, 31)
	for m := Mask(1); m <= 31; m++ {
		masks = append(masks, m)
	}
	return masks
}

// Has reports whether the combination includes the given filter bit.
func (m Mask) Has(field Mask) bool {
	return m&field != 0
}

// Count returns the number of filters in the combination.
func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// Filters carries the optional search bounds. A nil field means "not
// provided"; a non-nil field is a bound, including an explicit zero.
// This replaces the zero-as-sentinel convention of earlier revisions,
// which made a legitimate zero value (e.g. zero lot size) unsearchable.
// The HTTP layer still maps an absent or zero query parameter to nil,
// so the external contract is unchanged.
//
// Once set: SquareFootage, BedroomCount, BathroomCount and LotSize are
// inclusive lower bounds; MaxPrice is a strict upper bound.
type Filters struct {
	SquareFootage *int
	MaxPrice      *int
	BedroomCount  *int
	BathroomCount *float64
	LotSize       *float64
}

// Mask returns the bit combination of the set filters. Zero means no
// filter is set, which no store predicate serves.
func (f Filters) Mask() Mask {
	var m Mask
	if f.SquareFootage != nil {
		m |= BySquareFootage
	}
	if f.MaxPrice != nil {
		m |= ByMaxPrice
	}
	if f.BedroomCount != nil {
		m |= ByBedroomCount
	}
	if f.BathroomCount != nil {
		m |= ByBathroomCount
	}
	if f.LotSize != nil {
		m |= ByLotSize
	}
	return m
}

// Args returns the bound values of the set filters in canonical field
// order: squareFootage, price, bedroomCount, bathroomCount, lotSize.
// The store predicate selected by Mask binds its placeholders in the
// same order.
func (f Filters) Args() []any {
	args := make([]any, 0, 5)
	if f.SquareFootage != nil {
		args = append(args, *f.SquareFootage)
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
	}
	if f.BedroomCount != nil {
		args = append(args, *f.BedroomCount)
	}
	if f.BathroomCount != nil {
		args = append(args, *f.BathroomCount)
	}
	if f.LotSize != nil {
		args = append(args, *f.LotSize)
	}
	return args
}

// Int returns a pointer to v, for building Filters literals.
func Int(v int) *int {
	return &v
}

// Float returns a pointer to v, for building Filters literals.
func Float(v float64) *float64 {
	return &v
}
