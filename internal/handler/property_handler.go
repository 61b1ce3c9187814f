package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/propden/backend-go/internal/database/models"
	"github.com/propden/backend-go/internal/database/repository"
	"github.com/propden/backend-go/internal/database/service"
)

// PropertyHandler handles HTTP requests for properties
type PropertyHandler struct {
	service service.PropertyService
	logger  *slog.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(service service.PropertyService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		logger:  logger,
	}
}

// LocationRequest is the user-facing coordinate shape. It is converted to the
// internal longitude-first convention here and nowhere else.
type LocationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type CreatePropertyRequest struct {
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	Pincode     string           `json:"pincode"`
	City        string           `json:"city"`
	State       string           `json:"state"`
	Location    *LocationRequest `json:"location"`
	ListingType string           `json:"listingType"`
	Price       float64          `json:"price"`
}

type UpdatePropertyRequest struct {
	Name        *string          `json:"name"`
	Address     *string          `json:"address"`
	Pincode     *string          `json:"pincode"`
	City        *string          `json:"city"`
	State       *string          `json:"state"`
	Location    *LocationRequest `json:"location"`
	ListingType *string          `json:"listingType"`
	Price       *float64         `json:"price"`
}

// Create handles property creation; the body may be a single object or an array
func (h *PropertyHandler) Create(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var reqs []CreatePropertyRequest
	if err := json.Unmarshal(raw, &reqs); err != nil {
		var single CreatePropertyRequest
		if err := json.Unmarshal(raw, &single); err != nil {
			h.logger.Warn("⚠️ [Handler] Invalid property payload", "error", err)
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		reqs = []CreatePropertyRequest{single}
	}

	inputs := make([]service.PropertyInput, 0, len(reqs))
	for _, req := range reqs {
		if req.Location == nil || req.Location.Lat == nil || req.Location.Lng == nil {
			respondError(c, http.StatusBadRequest, "Location must have 'lat' and 'lng'")
			return
		}
		inputs = append(inputs, service.PropertyInput{
			Name:        req.Name,
			Address:     req.Address,
			Pincode:     req.Pincode,
			City:        req.City,
			State:       req.State,
			Longitude:   *req.Location.Lng,
			Latitude:    *req.Location.Lat,
			ListingType: models.ListingType(req.ListingType),
			Price:       req.Price,
		})
	}

	sellerID := c.GetUint("userID")
	properties, err := h.service.Create(c.Request.Context(), sellerID, inputs)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, properties, "Properties created successfully")
}

// Nearby handles the geo query for properties around a point
func (h *PropertyHandler) Nearby(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		respondError(c, http.StatusBadRequest, "Latitude & Longitude are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Latitude must be a number")
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Longitude must be a number")
		return
	}

	radius := service.DefaultNearbyRadiusMeters
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Radius must be a number")
			return
		}
	}

	result, err := h.service.Nearby(c.Request.Context(), lat, lon, radius)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, result, "Nearby properties fetched successfully")
}

// GetByID handles a single property lookup
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := h.propertyID(c)
	if !ok {
		return
	}

	property, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, property, "Property fetched successfully")
}

// Update handles a partial property update
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := h.propertyID(c)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := service.PropertyUpdate{
		Name:    req.Name,
		Address: req.Address,
		Pincode: req.Pincode,
		City:    req.City,
		State:   req.State,
		Price:   req.Price,
	}
	if req.Location != nil {
		if req.Location.Lat == nil || req.Location.Lng == nil {
			respondError(c, http.StatusBadRequest, "Location must have 'lat' and 'lng'")
			return
		}
		update.Longitude = req.Location.Lng
		update.Latitude = req.Location.Lat
	}
	if req.ListingType != nil {
		lt := models.ListingType(*req.ListingType)
		update.ListingType = &lt
	}

	actorID := c.GetUint("userID")
	property, err := h.service.Update(c.Request.Context(), actorID, id, update)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, property, "Property updated successfully")
}

// Delete handles a property deletion
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := h.propertyID(c)
	if !ok {
		return
	}

	actorID := c.GetUint("userID")
	if err := h.service.Delete(c.Request.Context(), actorID, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Property deleted successfully")
}

func (h *PropertyHandler) propertyID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Invalid property id")
		return 0, false
	}
	return uint(id), true
}

// handleServiceError maps service errors to HTTP responses
func (h *PropertyHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, "You do not own this property")
	case errors.Is(err, repository.ErrPropertyNotFound):
		respondError(c, http.StatusNotFound, "Property not found")
	default:
		h.logger.Error("❌ [Handler] Internal server error", "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
