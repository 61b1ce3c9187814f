package repository

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/propden/backend-go/internal/database/models"
)

// NearbyResultLimit caps the number of properties returned by a geo query
const NearbyResultLimit = 50

// PropertyRepository defines the interface for property data operations
type PropertyRepository interface {
	Create(properties []*models.Property) error
	FindByID(id uint) (*models.Property, error)
	Update(property *models.Property) error
	Delete(id uint) error
	FindNearby(lat, lon, radiusMeters float64) ([]models.NearbyProperty, int64, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(properties []*models.Property) error {
	return r.db.Create(properties).Error
}

func (r *propertyRepository) FindByID(id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}

func (r *propertyRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// FindNearby returns the properties within radiusMeters of the given point,
// nearest first, capped at NearbyResultLimit, together with the total number
// of matches before the cap.
//
// Candidates are prefiltered with an indexed bounding-box query; the exact
// great-circle distance then decides membership and ordering. This keeps the
// SQL portable across PostgreSQL and the SQLite used in tests.
func (r *propertyRepository) FindNearby(lat, lon, radiusMeters float64) ([]models.NearbyProperty, int64, error) {
	minLat, maxLat, minLon, maxLon := boundingBox(lat, lon, radiusMeters)

	var candidates []models.Property
	err := r.db.
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLon, maxLon).
		Find(&candidates).Error
	if err != nil {
		return nil, 0, err
	}

	results := make([]models.NearbyProperty, 0, len(candidates))
	for _, p := range candidates {
		dist := haversineMeters(lat, lon, p.Latitude, p.Longitude)
		if dist <= radiusMeters {
			results = append(results, models.NearbyProperty{Property: p, DistanceMeters: dist})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	total := int64(len(results))
	if len(results) > NearbyResultLimit {
		results = results[:NearbyResultLimit]
	}

	return results, total, nil
}

// Repository errors
var (
	ErrPropertyNotFound = errors.New("property not found")
)
