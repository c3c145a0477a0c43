package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Kel2793/Homely-Real-Estate-App/docs"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/repository"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/search"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/service"
	kafkaTransport "github.com/Kel2793/Homely-Real-Estate-App/internal/transport/kafka"
)

type Handler struct {
	service  *service.ListingService
	producer *kafkaTransport.Producer
	log      *zap.Logger
}

func NewHandler(svc *service.ListingService, prod *kafkaTransport.Producer, log *zap.Logger) *Handler {
	return &Handler{service: svc, producer: prod, log: log}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	listings := r.Group("/listings")
	listings.GET("", h.getAllListings)
	listings.GET("/open", h.getAllOpenListings)
	listings.GET("/search", h.searchListings)
	listings.GET("/:listing_number", h.getListing)
	listings.POST("", h.createListing)
	listings.POST("/import", h.importListing)
	listings.PUT("/:listing_number/price", h.updatePrice)
	listings.PUT("/:listing_number/status", h.updateStatus)
	listings.DELETE("/:listing_number", h.deleteListing)
}

// @Summary      All listings
// @Description  Get every listing regardless of status
// @Tags         listings
// @Produce      json
// @Success      200  {array}   listingResponse
// @Success      204  "no listings"
// @Failure      500  {object}  map[string]interface{}
// @Router       /listings [get]
func (h *Handler) getAllListings(c *gin.Context) {
	listings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if len(listings) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toListingResponses(listings))
}

// @Summary      Open listings
// @Description  Get the listings that are still for sale
// @Tags         listings
// @Produce      json
// @Success      200  {array}   listingResponse
// @Success      204  "no open listings"
// @Failure      500  {object}  map[string]interface{}
// @Router       /listings/open [get]
func (h *Handler) getAllOpenListings(c *gin.Context) {
	listings, err := h.service.GetAllOpen(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list open listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if len(listings) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toListingResponses(listings))
}

// @Summary      Get listing
// @Description  Get a single listing by its number
// @Tags         listings
// @Produce      json
// @Param        listing_number  path  string  true  "Listing number"
// @Success      200  {object}  listingResponse
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /listings/{listing_number} [get]
func (h *Handler) getListing(c *gin.Context) {
	listingNumber := c.Param("listing_number")
	listing, err := h.service.Get(c.Request.Context(), listingNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		h.log.Error("failed to get listing", zap.String("listing_number", listingNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toListingResponse(listing))
}

// @Summary      Search listings
// @Description  Parameterized search over open listings. A filter is applied when its parameter is present and non-zero. squareFootage, bedroomCount, bathroomCount and lotSize are lower bounds; price is a strict upper bound.
// @Tags         listings
// @Produce      json
// @Param        squareFootage  query  int     false  "Minimum square footage"
// @Param        price          query  int     false  "Maximum price (exclusive)"
// @Param        bedroomCount   query  int     false  "Minimum bedrooms"
// @Param        bathroomCount  query  number  false  "Minimum bathrooms"
// @Param        lotSize        query  number  false  "Minimum lot size in acres"
// @Success      200  {array}   listingResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /listings/search [get]
func (h *Handler) searchListings(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	listings, err := h.service.Search(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, domain.ErrNoSearchFilters) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one search filter is required"})
			return
		}
		h.log.Error("failed to search listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toListingResponses(listings))
}

// On the wire an absent or zero parameter still means "not provided";
// only search.Filters itself accepts explicit zero bounds.
func parseFilters(c *gin.Context) (search.Filters, error) {
	var f search.Filters
	var err error
	if f.SquareFootage, err = optionalInt(c, "squareFootage"); err != nil {
		return search.Filters{}, err
	}
	if f.MaxPrice, err = optionalInt(c, "price"); err != nil {
		return search.Filters{}, err
	}
	if f.BedroomCount, err = optionalInt(c, "bedroomCount"); err != nil {
		return search.Filters{}, err
	}
	if f.BathroomCount, err = optionalFloat(c, "bathroomCount"); err != nil {
		return search.Filters{}, err
	}
	if f.LotSize, err = optionalFloat(c, "lotSize"); err != nil {
		return search.Filters{}, err
	}
	return f, nil
}

func optionalInt(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	if v == 0 {
		return nil, nil
	}
	return &v, nil
}

func optionalFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	if v == 0 {
		return nil, nil
	}
	return &v, nil
}

// @Summary      Create listing
// @Description  Create a new listing; the listing number is assigned by the server
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        listing  body  createListingRequest  true  "Listing"
// @Success      200  {object}  listingResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /listings [post]
func (h *Handler) createListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing := domain.Listing{
		ListingNumber: uuid.NewString(),
		Address:       req.Address,
		SquareFootage: req.SquareFootage,
		Price:         req.Price,
		BedroomCount:  req.BedroomCount,
		BathroomCount: req.BathroomCount,
		LotSize:       req.LotSize,
		Status:        req.Status,
	}
	created, err := h.service.Create(c.Request.Context(), listing)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidListing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("failed to create listing", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toListingResponse(created))
}

// @Summary      Import listing
// @Description  Publish a listing to the import feed for asynchronous ingestion
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        listing  body  createListingRequest  true  "Listing"
// @Success      202  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /listings/import [post]
func (h *Handler) importListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.producer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "import feed not available"})
		return
	}

	rec := repository.Record{
		ListingNumber: uuid.NewString(),
		Address:       req.Address,
		SquareFootage: req.SquareFootage,
		Price:         req.Price,
		BedroomCount:  req.BedroomCount,
		BathroomCount: req.BathroomCount,
		LotSize:       req.LotSize,
		Status:        req.Status,
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		h.log.Error("failed to marshal listing", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if err := h.producer.Publish(c.Request.Context(), rec.ListingNumber, payload); err != nil {
		h.log.Error("failed to publish listing", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to publish"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued", "listingNumber": rec.ListingNumber})
}

// @Summary      Update price
// @Description  Overwrite the listing's price. Unknown listing numbers are a no-op.
// @Tags         listings
// @Accept       json
// @Param        listing_number  path  string                     true  "Listing number"
// @Param        update          body  updateListingPriceRequest  true  "New price"
// @Success      200  "updated"
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /listings/{listing_number}/price [put]
func (h *Handler) updatePrice(c *gin.Context) {
	var req updateListingPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listingNumber := c.Param("listing_number")
	if err := h.service.UpdatePrice(c.Request.Context(), listingNumber, req.Price); err != nil {
		h.log.Error("failed to update price", zap.String("listing_number", listingNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary      Update status
// @Description  Overwrite the listing's status. Unknown listing numbers are a no-op.
// @Tags         listings
// @Accept       json
// @Param        listing_number  path  string                      true  "Listing number"
// @Param        update          body  updateListingStatusRequest  true  "New status"
// @Success      200  "updated"
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /listings/{listing_number}/status [put]
func (h *Handler) updateStatus(c *gin.Context) {
	var req updateListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listingNumber := c.Param("listing_number")
	if err := h.service.UpdateStatus(c.Request.Context(), listingNumber, req.Status); err != nil {
		h.log.Error("failed to update status", zap.String("listing_number", listingNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary      Delete listing
// @Description  Delete a listing. Deleting an unknown listing is a no-op.
// @Tags         listings
// @Param        listing_number  path  string  true  "Listing number"
// @Success      204  "deleted"
// @Failure      500  {object}  map[string]interface{}
// @Router       /listings/{listing_number} [delete]
func (h *Handler) deleteListing(c *gin.Context) {
	listingNumber := c.Param("listing_number")
	if err := h.service.Delete(c.Request.Context(), listingNumber); err != nil {
		h.log.Error("failed to delete listing", zap.String("listing_number", listingNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
