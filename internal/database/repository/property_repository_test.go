package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/propden/backend-go/internal/database/models"
)

// setupTestDB creates a new in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Property{}, &models.Listing{})
	require.NoError(t, err)

	return db
}

func createTestSeller(t *testing.T, db *gorm.DB, email string) *models.User {
	user := &models.User{
		Name:     "Test Seller",
		Email:    email,
		Phone:    "9876543210",
		Password: "hashedpassword",
		Role:     models.RoleSeller,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func testProperty(sellerID uint, name string, lat, lon float64) *models.Property {
	return &models.Property{
		Name:        name,
		Address:     "12 MG Road",
		Pincode:     "560001",
		City:        "Bengaluru",
		State:       "Karnataka",
		Longitude:   lon,
		Latitude:    lat,
		ListingType: models.ListingTypeSale,
		Price:       4500000,
		SellerID:    sellerID,
	}
}

func TestPropertyRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)
	seller := createTestSeller(t, db, "seller@example.com")

	props := []*models.Property{
		testProperty(seller.ID, "Lakeview Villa", 12.9, 77.6),
		testProperty(seller.ID, "Hilltop House", 12.95, 77.65),
	}

	err := repo.Create(props)
	assert.NoError(t, err)
	assert.NotZero(t, props[0].ID)
	assert.NotZero(t, props[1].ID)
}

func TestPropertyRepository_CoordinateOrderConvention(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)
	seller := createTestSeller(t, db, "seller@example.com")

	// lat 12.9, lon 77.6 — the two must never be swapped between write and read
	created := testProperty(seller.ID, "Lakeview Villa", 12.9, 77.6)
	require.NoError(t, repo.Create([]*models.Property{created}))

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.9, stored.Latitude)
	assert.Equal(t, 77.6, stored.Longitude)

	// A query centered on the stored point must find it
	results, total, err := repo.FindNearby(12.9, 77.6, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, created.ID, results[0].ID)

	// A query centered on the swapped coordinates must not
	swapped, _, err := repo.FindNearby(77.6, 12.9, 1000)
	require.NoError(t, err)
	assert.Empty(t, swapped)
}

func TestPropertyRepository_FindNearby_OrdersByDistance(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)
	seller := createTestSeller(t, db, "seller@example.com")

	// ~0 m, ~1.1 km and ~2.2 km north of the query point
	near := testProperty(seller.ID, "At Center", 12.9, 77.6)
	mid := testProperty(seller.ID, "One Km North", 12.91, 77.6)
	far := testProperty(seller.ID, "Two Km North", 12.92, 77.6)
	require.NoError(t, repo.Create([]*models.Property{far, near, mid}))

	results, total, err := repo.FindNearby(12.9, 77.6, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, results, 3)

	assert.Equal(t, "At Center", results[0].Name)
	assert.Equal(t, "One Km North", results[1].Name)
	assert.Equal(t, "Two Km North", results[2].Name)
	assert.LessOrEqual(t, results[0].DistanceMeters, results[1].DistanceMeters)
	assert.LessOrEqual(t, results[1].DistanceMeters, results[2].DistanceMeters)
}

func TestPropertyRepository_FindNearby_RadiusExcludes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)
	seller := createTestSeller(t, db, "seller@example.com")

	prop := testProperty(seller.ID, "Lakeview Villa", 12.9, 77.6)
	require.NoError(t, repo.Create([]*models.Property{prop}))

	// Included within 1 km of itself
	results, _, err := repo.FindNearby(12.9, 77.6, 1000)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// Excluded from a query half a world away
	results, total, err := repo.FindNearby(0, 0, 1000)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, total)
}

func TestPropertyRepository_FindNearby_ZeroRadius(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)
	seller := createTestSeller(t, db, "seller@example.com")

	exact := testProperty(seller.ID, "Exact", 12.9, 77.6)
	offset := testProperty(seller.ID, "Offset", 12.90001, 77.6)
	require.NoError(t, repo.Create([]*models.Property{exact, offset}))

	// radius 0 returns only exact-coincident points
	results, total, err := repo.FindNearby(12.9, 77.6, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "Exact", results[0].Name)
	assert.Zero(t, results[0].DistanceMeters)
}

func TestPropertyRepository_FindNearby_CapsResults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)
	seller := createTestSeller(t, db, "seller@example.com")

	props := make([]*models.Property, 0, NearbyResultLimit+5)
	for i := 0; i < NearbyResultLimit+5; i++ {
		props = append(props, testProperty(seller.ID, "Cluster", 12.9+float64(i)*0.00001, 77.6))
	}
	require.NoError(t, repo.Create(props))

	results, total, err := repo.FindNearby(12.9, 77.6, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(NearbyResultLimit+5), total)
	assert.Len(t, results, NearbyResultLimit)
}

func TestPropertyRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)

	property, err := repo.FindByID(12345)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.Nil(t, property)
}

func TestPropertyRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)
	seller := createTestSeller(t, db, "seller@example.com")

	prop := testProperty(seller.ID, "Lakeview Villa", 12.9, 77.6)
	require.NoError(t, repo.Create([]*models.Property{prop}))

	assert.NoError(t, repo.Delete(prop.ID))

	_, err := repo.FindByID(prop.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	// Deleting again reports not found
	assert.ErrorIs(t, repo.Delete(prop.ID), ErrPropertyNotFound)
}

func TestHaversineMeters(t *testing.T) {
	// Same point
	assert.Zero(t, haversineMeters(12.9, 77.6, 12.9, 77.6))

	// One degree of latitude is roughly 111 km
	d := haversineMeters(12.0, 77.6, 13.0, 77.6)
	assert.InDelta(t, 111195, d, 500)
}
