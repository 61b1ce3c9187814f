package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/propden/backend-go/internal/database/models"
)

// ListingRepository defines the interface for listing data operations
type ListingRepository interface {
	Create(listing *models.Listing) error
	FindAll() ([]models.Listing, error)
	FindBySeller(sellerID uint) ([]models.Listing, error)
	FindByID(id uint) (*models.Listing, error)
	Update(listing *models.Listing) error
	Delete(id uint) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository instance
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

func (r *listingRepository) FindAll() ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Preload("Property").Find(&listings).Error
	return listings, err
}

func (r *listingRepository) FindBySeller(sellerID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Preload("Property").Where("seller_id = ?", sellerID).Find(&listings).Error
	return listings, err
}

func (r *listingRepository) FindByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.Preload("Property").First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) Update(listing *models.Listing) error {
	return r.db.Save(listing).Error
}

func (r *listingRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Listing{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// Repository errors
var (
	ErrListingNotFound = errors.New("listing not found")
)
