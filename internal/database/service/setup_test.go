package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/propden/backend-go/internal/config"
	"github.com/propden/backend-go/internal/database"
	"github.com/propden/backend-go/internal/database/models"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:                 "test",
		JWTSecret:              "test_secret",
		AccessTokenExpiration:  900,
		RefreshTokenExpiration: 604800,
		CacheListTTL:           600,
		CachePropertyTTL:       1800,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

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

// setupCache runs a miniredis instance behind a CacheClient
func setupCache(t *testing.T) (*miniredis.Miniredis, *database.CacheClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := database.NewCacheClientForTesting(client, testLogger())

	t.Cleanup(func() {
		cache.Close()
		mr.Close()
	})

	return mr, cache
}

func seedSeller(t *testing.T, db *gorm.DB, email string) *models.User {
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

func seedProperty(t *testing.T, db *gorm.DB, sellerID uint, lat, lon float64) *models.Property {
	prop := &models.Property{
		Name:        "Lakeview Villa",
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
	require.NoError(t, db.Create(prop).Error)
	return prop
}

func validPropertyInput(lat, lon float64) PropertyInput {
	return PropertyInput{
		Name:        "Lakeview Villa",
		Address:     "12 MG Road",
		Pincode:     "560001",
		City:        "Bengaluru",
		State:       "Karnataka",
		Longitude:   lon,
		Latitude:    lat,
		ListingType: models.ListingTypeSale,
		Price:       4500000,
	}
}
