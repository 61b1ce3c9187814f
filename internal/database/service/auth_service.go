package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/propden/backend-go/internal/config"
	"github.com/propden/backend-go/internal/database/models"
	"github.com/propden/backend-go/internal/database/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(name, email, phone, password string, role models.UserRole) (*models.User, error)
	Login(email, password string) (*models.User, *TokenPair, error)
	Logout(userID uint) error
	ValidateAccessToken(tokenString string) (uint, models.UserRole, error)
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	cfg       *config.Config
	logger    *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: cfg.JWTSecret,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *authService) Register(name, email, phone, password string, role models.UserRole) (*models.User, error) {
	s.logger.Info("📝 [AuthService] Registration attempt", "email", email)

	if name == "" || email == "" || phone == "" || password == "" {
		return nil, validationError("all fields are required")
	}
	if !role.Valid() {
		return nil, validationError("role must be either 'buyer' or 'seller'")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, validationError("email is invalid")
	}
	if !phoneRegex.MatchString(phone) {
		return nil, validationError("phone must be a 10-digit number")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, err
	}

	if existingUser != nil {
		s.logger.Warn("⚠️ [AuthService] Email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [AuthService] User registered successfully", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(email, password string) (*models.User, *TokenPair, error) {
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	if email == "" || password == "" {
		return nil, nil, validationError("email and password are required")
	}

	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return nil, nil, ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, nil, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokenPair(user)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate tokens", "error", err)
		return nil, nil, err
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return user, tokens, nil
}

func (s *authService) Logout(userID uint) error {
	s.logger.Info("👋 [AuthService] Logout attempt", "user_id", userID)

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	user.RefreshToken = ""
	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [AuthService] Failed to clear refresh token", "error", err)
		return err
	}

	s.logger.Info("✅ [AuthService] User logged out successfully", "user_id", userID)
	return nil
}

func (s *authService) ValidateAccessToken(tokenString string) (uint, models.UserRole, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	return uint(userID), models.UserRole(role), nil
}

// generateTokenPair issues an access token and rotates the stored refresh token
func (s *authService) generateTokenPair(user *models.User) (*TokenPair, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.rotateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.cfg.AccessTokenExpiration,
	}, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"type":    "access",
		"exp":     time.Now().Add(time.Duration(s.cfg.AccessTokenExpiration) * time.Second).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// rotateRefreshToken generates a fresh random token and stores it on the user row
func (s *authService) rotateRefreshToken(user *models.User) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	tokenString := base64.URLEncoding.EncodeToString(tokenBytes)

	user.RefreshToken = tokenString
	if err := s.userRepo.Update(user); err != nil {
		return "", err
	}

	return tokenString, nil
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
