package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/propden/backend-go/internal/database/models"
	"github.com/propden/backend-go/internal/database/repository"
	"github.com/propden/backend-go/internal/database/service"
)

// ListingHandler handles HTTP requests for listings
type ListingHandler struct {
	service service.ListingService
	logger  *slog.Logger
}

// NewListingHandler creates a new listing handler
func NewListingHandler(service service.ListingService, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		logger:  logger,
	}
}

type CreateListingRequest struct {
	PropertyID   uint    `json:"propertyId" binding:"required"`
	SellerID     uint    `json:"sellerId"`
	Price        float64 `json:"price" binding:"required"`
	Availability string  `json:"availability"`
}

type UpdateListingRequest struct {
	Price        *float64 `json:"price"`
	Availability *string  `json:"availability"`
}

// Create handles listing creation. When the body omits sellerId the
// authenticated user is taken as the seller.
func (h *ListingHandler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [Handler] Invalid listing request", "error", err)
		respondError(c, http.StatusBadRequest, "propertyId and price are required")
		return
	}

	sellerID := req.SellerID
	if sellerID == 0 {
		sellerID = c.GetUint("userID")
	}

	listing, err := h.service.Create(c.Request.Context(), service.ListingInput{
		PropertyID:   req.PropertyID,
		SellerID:     sellerID,
		Price:        req.Price,
		Availability: models.Availability(req.Availability),
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, listing, "Listing created successfully")
}

// GetAll handles fetching the full listings collection
func (h *ListingHandler) GetAll(c *gin.Context) {
	listings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, listings, "All listings fetched successfully")
}

// GetBySeller handles fetching all listings of one seller
func (h *ListingHandler) GetBySeller(c *gin.Context) {
	sellerID, err := strconv.ParseUint(c.Param("sellerId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Invalid seller id")
		return
	}

	listings, err := h.service.GetBySeller(c.Request.Context(), uint(sellerID))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, listings, "Seller listings fetched successfully")
}

// GetByID handles a single listing lookup
func (h *ListingHandler) GetByID(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}

	listing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, listing, "Listing fetched successfully")
}

// Update handles a partial listing update
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := service.ListingUpdate{Price: req.Price}
	if req.Availability != nil {
		availability := models.Availability(*req.Availability)
		update.Availability = &availability
	}

	actorID := c.GetUint("userID")
	listing, err := h.service.Update(c.Request.Context(), actorID, id, update)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, listing, "Listing updated successfully")
}

// Delete handles a listing deletion
func (h *ListingHandler) Delete(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}

	actorID := c.GetUint("userID")
	if err := h.service.Delete(c.Request.Context(), actorID, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Listing deleted successfully")
}

func (h *ListingHandler) listingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Invalid listing id")
		return 0, false
	}
	return uint(id), true
}

// handleServiceError maps service errors to HTTP responses
func (h *ListingHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, "You do not own this listing")
	case errors.Is(err, repository.ErrListingNotFound):
		respondError(c, http.StatusNotFound, "Listing not found")
	default:
		h.logger.Error("❌ [Handler] Internal server error", "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
