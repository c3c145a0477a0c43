package http

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
)

type createListingRequest struct {
	Address       string  `json:"address"`
	SquareFootage int     `json:"squareFootage"`
	Price         int     `json:"price"`
	BedroomCount  int     `json:"bedroomCount"`
	BathroomCount float64 `json:"bathroomCount"`
	LotSize       float64 `json:"lotSize"`
	Status        string  `json:"status"`
}

func (r createListingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.SquareFootage, validation.Min(0)),
		validation.Field(&r.Price, validation.Required, validation.Min(1)),
		validation.Field(&r.BedroomCount, validation.Min(0)),
		validation.Field(&r.BathroomCount, validation.Min(0.0)),
		validation.Field(&r.LotSize, validation.Min(0.0)),
		validation.Field(&r.Status, validation.Required, validation.By(statusLabel)),
	)
}

type updateListingPriceRequest struct {
	Price int `json:"price"`
}

func (r updateListingPriceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Price, validation.Required, validation.Min(1)),
	)
}

type updateListingStatusRequest struct {
	Status string `json:"status"`
}

func (r updateListingStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.By(statusLabel)),
	)
}

func statusLabel(value interface{}) error {
	label, _ := value.(string)
	if _, ok := domain.ParseStatus(label); !ok {
		return errors.New("must be one of: " + strings.Join(domain.StatusLabels(), ", "))
	}
	return nil
}

type listingResponse struct {
	ListingNumber string  `json:"listingNumber"`
	Address       string  `json:"address"`
	SquareFootage int     `json:"squareFootage"`
	Price         int     `json:"price"`
	BedroomCount  int     `json:"bedroomCount"`
	BathroomCount float64 `json:"bathroomCount"`
	LotSize       float64 `json:"lotSize"`
	Status        string  `json:"status"`
}

func toListingResponse(l domain.Listing) listingResponse {
	return listingResponse{
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

func toListingResponses(listings []domain.Listing) []listingResponse {
	responses := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		responses = append(responses, toListingResponse(l))
	}
	return responses
}
