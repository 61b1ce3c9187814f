package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv                 string
	LogLevel               slog.Level
	ApiServicePort         string
	CORSOrigin             string
	PostgreSQLHost         string
	PostgreSQLPort         int64
	PostgreSQLUser         string
	PostgreSQLPassword     string
	PostgreSQLDatabase     string
	JWTSecret              string
	AccessTokenExpiration  int64
	RefreshTokenExpiration int64
	RedisHost              string
	RedisPort              int64
	RedisPassword          string
	RedisDatabase          int64
	CacheListTTL           int64 // TTL in seconds for listing/collection cache entries
	CachePropertyTTL       int64 // TTL in seconds for single-property cache entries
}

func LoadConfig() *Config {
	// Best-effort: a missing .env just means plain environment variables
	_ = godotenv.Load()

	return &Config{
		AppEnv:                 getEnv("APP_ENV", "development"),                  // Default development
		LogLevel:               getLogLevel(),                                     // Default INFO
		ApiServicePort:         getEnv("API_SERVICE_PORT", "8080"),                // Default 8080
		CORSOrigin:             getEnv("CORS_ORIGIN", "*"),                        // Default allow all
		PostgreSQLHost:         getEnv("POSTGRESQL_HOST", "db"),                   // Default db
		PostgreSQLPort:         getEnvAsInt64("POSTGRESQL_PORT", 5432),            // Default 5432
		PostgreSQLUser:         getEnv("POSTGRESQL_USER", "propden_user"),         // Default user
		PostgreSQLPassword:     getEnv("POSTGRESQL_PASSWORD", "propden_password"), // Default password
		PostgreSQLDatabase:     getEnv("POSTGRESQL_DATABASE", "propden_db"),       // Default database name
		JWTSecret:              getEnv("JWT_SECRET", "propden_secret"),            // Default secret key
		AccessTokenExpiration:  getEnvAsInt64("ACCESS_TOKEN_EXPIRATION", 900),     // Default 15 minutes
		RefreshTokenExpiration: getEnvAsInt64("REFRESH_TOKEN_EXPIRATION", 604800), // Default 7 days
		RedisHost:              getEnv("REDIS_HOST", "redis"),                     // Default redis
		RedisPort:              getEnvAsInt64("REDIS_PORT", 6379),                 // Default 6379
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),                      // Default empty
		RedisDatabase:          getEnvAsInt64("REDIS_DATABASE", 0),                // Default 0
		CacheListTTL:           getEnvAsInt64("CACHE_LIST_TTL", 600),              // Default 10 minutes
		CachePropertyTTL:       getEnvAsInt64("CACHE_PROPERTY_TTL", 1800),         // Default 30 minutes
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
