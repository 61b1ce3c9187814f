package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/propden/backend-go/internal/config"
	"github.com/propden/backend-go/internal/database/models"
	"github.com/propden/backend-go/internal/database/repository"
	"github.com/propden/backend-go/internal/database/service"
)

// AuthHandler handles HTTP requests for registration and sessions
type AuthHandler struct {
	service service.AuthService
	cfg     *config.Config
	logger  *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// Request DTOs
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [Handler] Invalid registration request", "error", err)
		respondError(c, http.StatusBadRequest, "Name, email, phone, password (min 6 chars) and role are required")
		return
	}

	user, err := h.service.Register(req.Name, req.Email, req.Phone, req.Password, models.UserRole(req.Role))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, user, "User registered successfully")
}

// Login handles user login and sets the auth cookies
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [Handler] Invalid login request", "error", err)
		respondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, tokens, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	secure := strings.ToLower(h.cfg.AppEnv) == "production"
	c.SetCookie("accessToken", tokens.AccessToken, int(h.cfg.AccessTokenExpiration), "/", "", secure, true)
	c.SetCookie("refreshToken", tokens.RefreshToken, int(h.cfg.RefreshTokenExpiration), "/", "", secure, true)

	respond(c, http.StatusOK, user, "User logged in successfully")
}

// Logout clears the stored refresh token and the auth cookies
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := h.service.Logout(userID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	secure := strings.ToLower(h.cfg.AppEnv) == "production"
	c.SetCookie("accessToken", "", -1, "/", "", secure, true)
	c.SetCookie("refreshToken", "", -1, "/", "", secure, true)

	respond(c, http.StatusOK, nil, "User logged out successfully")
}

// handleServiceError maps service errors to HTTP responses
func (h *AuthHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailAlreadyExists):
		respondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, repository.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
	default:
		h.logger.Error("❌ [Handler] Internal server error", "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
