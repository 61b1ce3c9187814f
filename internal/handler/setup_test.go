package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/propden/backend-go/internal/api"
	"github.com/propden/backend-go/internal/config"
	"github.com/propden/backend-go/internal/database"
	"github.com/propden/backend-go/internal/database/models"
	"github.com/propden/backend-go/internal/database/repository"
	"github.com/propden/backend-go/internal/database/service"
	"github.com/propden/backend-go/internal/handler"
	"github.com/propden/backend-go/internal/middleware"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	mr     *miniredis.Miniredis
	auth   service.AuthService
}

func setupEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{}, &models.Listing{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)

	appLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		AppEnv:                 "test",
		CORSOrigin:             "*",
		JWTSecret:              "test_secret",
		AccessTokenExpiration:  900,
		RefreshTokenExpiration: 604800,
		CacheListTTL:           600,
		CachePropertyTTL:       1800,
	}

	cache := database.NewCacheClientForTesting(
		redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		appLogger,
	)
	t.Cleanup(func() {
		cache.Close()
		mr.Close()
	})

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	listingRepo := repository.NewListingRepository(db)

	authService := service.NewAuthService(userRepo, cfg, appLogger)
	propertyService := service.NewPropertyService(propertyRepo, cache, cfg, appLogger)
	listingService := service.NewListingService(listingRepo, propertyRepo, userRepo, cache, cfg, appLogger)

	authHandler := handler.NewAuthHandler(authService, cfg, appLogger)
	propertyHandler := handler.NewPropertyHandler(propertyService, appLogger)
	listingHandler := handler.NewListingHandler(listingService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	router := api.SetupRouter(cfg, authHandler, propertyHandler, listingHandler, authMiddleware)

	return &testEnv{router: router, db: db, mr: mr, auth: authService}
}

// registerSeller creates an account directly through the service and returns
// the user with a valid access token
func (e *testEnv) registerSeller(t *testing.T, email string) (*models.User, string) {
	user, err := e.auth.Register("Asha", email, "9876543210", "secret123", models.RoleSeller)
	require.NoError(t, err)

	_, tokens, err := e.auth.Login(email, "secret123")
	require.NoError(t, err)

	return user, tokens.AccessToken
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func performRequest(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Errors     []string        `json:"errors"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
