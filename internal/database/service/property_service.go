package service

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/propden/backend-go/internal/config"
	"github.com/propden/backend-go/internal/database"
	"github.com/propden/backend-go/internal/database/models"
	"github.com/propden/backend-go/internal/database/repository"
)

// DefaultNearbyRadiusMeters is used when a nearby query omits the radius
const DefaultNearbyRadiusMeters = 5000.0

var pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)

// PropertyInput carries the validated fields for creating a property.
// Coordinates follow the longitude-first convention of the data model.
type PropertyInput struct {
	Name        string
	Address     string
	Pincode     string
	City        string
	State       string
	Longitude   float64
	Latitude    float64
	ListingType models.ListingType
	Price       float64
}

// PropertyUpdate carries optional fields for a partial property update
type PropertyUpdate struct {
	Name        *string
	Address     *string
	Pincode     *string
	City        *string
	State       *string
	Longitude   *float64
	Latitude    *float64
	ListingType *models.ListingType
	Price       *float64
}

// NearbyResult is the payload of a geo query: properties ordered nearest
// first, capped at the page limit, plus the total match count before the cap.
type NearbyResult struct {
	Properties []models.NearbyProperty `json:"properties"`
	Total      int64                   `json:"total"`
}

// PropertyService defines the interface for property business logic
type PropertyService interface {
	Create(ctx context.Context, sellerID uint, inputs []PropertyInput) ([]models.Property, error)
	GetByID(ctx context.Context, id uint) (*models.Property, error)
	Nearby(ctx context.Context, lat, lon, radiusMeters float64) (*NearbyResult, error)
	Update(ctx context.Context, actorID, id uint, update PropertyUpdate) (*models.Property, error)
	Delete(ctx context.Context, actorID, id uint) error
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
	cache        *database.CacheClient
	cfg          *config.Config
	logger       *slog.Logger
}

// NewPropertyService creates a new property service instance
func NewPropertyService(
	propertyRepo repository.PropertyRepository,
	cache *database.CacheClient,
	cfg *config.Config,
	logger *slog.Logger,
) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		cache:        cache,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *propertyService) Create(ctx context.Context, sellerID uint, inputs []PropertyInput) ([]models.Property, error) {
	if len(inputs) == 0 {
		return nil, validationError("at least one property is required")
	}

	properties := make([]*models.Property, 0, len(inputs))
	for _, in := range inputs {
		if err := validatePropertyInput(in); err != nil {
			return nil, err
		}
		properties = append(properties, &models.Property{
			Name:        in.Name,
			Address:     in.Address,
			Pincode:     in.Pincode,
			City:        in.City,
			State:       in.State,
			Longitude:   in.Longitude,
			Latitude:    in.Latitude,
			ListingType: in.ListingType,
			Price:       in.Price,
			SellerID:    sellerID,
		})
	}

	if err := s.propertyRepo.Create(properties); err != nil {
		s.logger.Error("❌ [PropertyService] Failed to create properties", "error", err)
		return nil, err
	}

	created := make([]models.Property, 0, len(properties))
	keys := make([]string, 0, len(properties))
	for _, p := range properties {
		created = append(created, *p)
		keys = append(keys, database.PropertyKey(p.ID))
	}
	s.invalidateProperties(ctx, keys...)

	s.logger.Info("✅ [PropertyService] Properties created", "count", len(created), "seller_id", sellerID)
	return created, nil
}

func (s *propertyService) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	key := database.PropertyKey(id)

	var cached models.Property
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, property, s.cfg.CachePropertyTTL)
	return property, nil
}

func (s *propertyService) Nearby(ctx context.Context, lat, lon, radiusMeters float64) (*NearbyResult, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, validationError("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}
	if radiusMeters < 0 {
		return nil, validationError("radius must not be negative")
	}

	key := database.NearbyKey(lat, lon, radiusMeters)

	var cached NearbyResult
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	properties, total, err := s.propertyRepo.FindNearby(lat, lon, radiusMeters)
	if err != nil {
		s.logger.Error("❌ [PropertyService] Nearby query failed", "error", err)
		return nil, err
	}

	result := &NearbyResult{Properties: properties, Total: total}
	s.cache.SetJSON(ctx, key, result, s.cfg.CacheListTTL)
	return result, nil
}

func (s *propertyService) Update(ctx context.Context, actorID, id uint, update PropertyUpdate) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if property.SellerID != actorID {
		s.logger.Warn("⚠️ [PropertyService] Update denied", "property_id", id, "actor_id", actorID)
		return nil, ErrForbidden
	}

	applyPropertyUpdate(property, update)
	if err := validatePropertyInput(PropertyInput{
		Name:        property.Name,
		Address:     property.Address,
		Pincode:     property.Pincode,
		City:        property.City,
		State:       property.State,
		Longitude:   property.Longitude,
		Latitude:    property.Latitude,
		ListingType: property.ListingType,
		Price:       property.Price,
	}); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Update(property); err != nil {
		s.logger.Error("❌ [PropertyService] Failed to update property", "property_id", id, "error", err)
		return nil, err
	}

	s.invalidateProperties(ctx, database.PropertyKey(id))

	s.logger.Info("✅ [PropertyService] Property updated", "property_id", id)
	return property, nil
}

func (s *propertyService) Delete(ctx context.Context, actorID, id uint) error {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		return err
	}

	if property.SellerID != actorID {
		s.logger.Warn("⚠️ [PropertyService] Delete denied", "property_id", id, "actor_id", actorID)
		return ErrForbidden
	}

	if err := s.propertyRepo.Delete(id); err != nil {
		s.logger.Error("❌ [PropertyService] Failed to delete property", "property_id", id, "error", err)
		return err
	}

	s.invalidateProperties(ctx, database.PropertyKey(id))

	s.logger.Info("✅ [PropertyService] Property deleted", "property_id", id)
	return nil
}

// invalidateProperties drops the per-id keys and then flushes the whole cache
// namespace. Geo-query keys are parameterized by arbitrary coordinates and
// cannot be enumerated, so property writes trade efficiency for correctness.
func (s *propertyService) invalidateProperties(ctx context.Context, keys ...string) {
	s.cache.Delete(ctx, keys...)
	s.cache.FlushAll(ctx)
}

func validatePropertyInput(in PropertyInput) error {
	if in.Name == "" || in.Address == "" || in.Pincode == "" || in.City == "" || in.State == "" {
		return validationError("all fields are required for each property")
	}
	if !pincodeRegex.MatchString(in.Pincode) {
		return validationError("pincode must be a 6-digit number")
	}
	if !in.ListingType.Valid() {
		return validationError("listing type must be either 'rent' or 'sale'")
	}
	if in.Price <= 0 {
		return validationError("price must be a positive number")
	}
	if in.Latitude < -90 || in.Latitude > 90 || in.Longitude < -180 || in.Longitude > 180 {
		return validationError("location must have a valid 'lat' and 'lng'")
	}
	return nil
}

func applyPropertyUpdate(property *models.Property, update PropertyUpdate) {
	if update.Name != nil {
		property.Name = *update.Name
	}
	if update.Address != nil {
		property.Address = *update.Address
	}
	if update.Pincode != nil {
		property.Pincode = *update.Pincode
	}
	if update.City != nil {
		property.City = *update.City
	}
	if update.State != nil {
		property.State = *update.State
	}
	if update.Longitude != nil {
		property.Longitude = *update.Longitude
	}
	if update.Latitude != nil {
		property.Latitude = *update.Latitude
	}
	if update.ListingType != nil {
		property.ListingType = *update.ListingType
	}
	if update.Price != nil {
		property.Price = *update.Price
	}
}
