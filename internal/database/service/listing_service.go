package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/propden/backend-go/internal/config"
	"github.com/propden/backend-go/internal/database"
	"github.com/propden/backend-go/internal/database/models"
	"github.com/propden/backend-go/internal/database/repository"
)

// ListingInput carries the fields for creating a listing
type ListingInput struct {
	PropertyID   uint
	SellerID     uint
	Price        float64
	Availability models.Availability
}

// ListingUpdate carries optional fields for a partial listing update
type ListingUpdate struct {
	Price        *float64
	Availability *models.Availability
}

// ListingService defines the interface for listing business logic
type ListingService interface {
	Create(ctx context.Context, input ListingInput) (*models.Listing, error)
	GetAll(ctx context.Context) ([]models.Listing, error)
	GetBySeller(ctx context.Context, sellerID uint) ([]models.Listing, error)
	GetByID(ctx context.Context, id uint) (*models.Listing, error)
	Update(ctx context.Context, actorID, id uint, update ListingUpdate) (*models.Listing, error)
	Delete(ctx context.Context, actorID, id uint) error
}

type listingService struct {
	listingRepo  repository.ListingRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	cache        *database.CacheClient
	cfg          *config.Config
	logger       *slog.Logger
}

// NewListingService creates a new listing service instance
func NewListingService(
	listingRepo repository.ListingRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	cache *database.CacheClient,
	cfg *config.Config,
	logger *slog.Logger,
) ListingService {
	return &listingService{
		listingRepo:  listingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		cache:        cache,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *listingService) Create(ctx context.Context, input ListingInput) (*models.Listing, error) {
	if input.PropertyID == 0 || input.SellerID == 0 {
		return nil, validationError("propertyId and sellerId are required")
	}
	if input.Price <= 0 {
		return nil, validationError("price must be a positive number")
	}

	availability := input.Availability
	if availability == "" {
		availability = models.AvailabilityAvailable
	}
	if !availability.Valid() {
		return nil, validationError("availability must be 'available', 'pending' or 'sold'")
	}

	// Referenced rows must exist before a listing can point at them
	if _, err := s.propertyRepo.FindByID(input.PropertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, validationError("referenced property does not exist")
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(input.SellerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, validationError("referenced seller does not exist")
		}
		return nil, err
	}

	listing := &models.Listing{
		PropertyID:   input.PropertyID,
		SellerID:     input.SellerID,
		Price:        input.Price,
		Availability: availability,
	}

	if err := s.listingRepo.Create(listing); err != nil {
		s.logger.Error("❌ [ListingService] Failed to create listing", "error", err)
		return nil, err
	}

	s.cache.Delete(ctx, database.KeyAllListings, database.SellerListingsKey(listing.SellerID))

	s.logger.Info("✅ [ListingService] Listing created", "listing_id", listing.ID, "seller_id", listing.SellerID)
	return listing, nil
}

func (s *listingService) GetAll(ctx context.Context) ([]models.Listing, error) {
	var cached []models.Listing
	if s.cache.GetJSON(ctx, database.KeyAllListings, &cached) {
		return cached, nil
	}

	listings, err := s.listingRepo.FindAll()
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, database.KeyAllListings, listings, s.cfg.CacheListTTL)
	return listings, nil
}

func (s *listingService) GetBySeller(ctx context.Context, sellerID uint) ([]models.Listing, error) {
	key := database.SellerListingsKey(sellerID)

	var cached []models.Listing
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	listings, err := s.listingRepo.FindBySeller(sellerID)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, listings, s.cfg.CacheListTTL)
	return listings, nil
}

func (s *listingService) GetByID(ctx context.Context, id uint) (*models.Listing, error) {
	key := database.ListingKey(id)

	var cached models.Listing
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, listing, s.cfg.CacheListTTL)
	return listing, nil
}

func (s *listingService) Update(ctx context.Context, actorID, id uint, update ListingUpdate) (*models.Listing, error) {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if listing.SellerID != actorID {
		s.logger.Warn("⚠️ [ListingService] Update denied", "listing_id", id, "actor_id", actorID)
		return nil, ErrForbidden
	}

	if update.Price != nil {
		if *update.Price <= 0 {
			return nil, validationError("price must be a positive number")
		}
		listing.Price = *update.Price
	}
	if update.Availability != nil {
		if !update.Availability.Valid() {
			return nil, validationError("availability must be 'available', 'pending' or 'sold'")
		}
		listing.Availability = *update.Availability
	}

	if err := s.listingRepo.Update(listing); err != nil {
		s.logger.Error("❌ [ListingService] Failed to update listing", "listing_id", id, "error", err)
		return nil, err
	}

	s.cache.Delete(ctx,
		database.ListingKey(id),
		database.KeyAllListings,
		database.SellerListingsKey(listing.SellerID),
	)

	s.logger.Info("✅ [ListingService] Listing updated", "listing_id", id)
	return listing, nil
}

func (s *listingService) Delete(ctx context.Context, actorID, id uint) error {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		return err
	}

	if listing.SellerID != actorID {
		s.logger.Warn("⚠️ [ListingService] Delete denied", "listing_id", id, "actor_id", actorID)
		return ErrForbidden
	}

	if err := s.listingRepo.Delete(id); err != nil {
		s.logger.Error("❌ [ListingService] Failed to delete listing", "listing_id", id, "error", err)
		return err
	}

	s.cache.Delete(ctx,
		database.ListingKey(id),
		database.SellerListingsKey(listing.SellerID),
		database.KeyAllListings,
	)

	s.logger.Info("✅ [ListingService] Listing deleted", "listing_id", id)
	return nil
}
