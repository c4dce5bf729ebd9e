package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brain-backend/internal/database/models"
	apperrors "brain-backend/internal/errors"
	"brain-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// maxPasswordBytes is the longest input bcrypt accepts
const maxPasswordBytes = 72

var errMissingCredentials = &apperrors.ValidationError{Message: "Username and password are required"}

// UserRepository defines the user operations needed by the auth service
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
}

// AuthService provides authentication functionality
type AuthService struct {
	config    *AuthConfig
	userRepo  UserRepository
	validator *validator.Validate
}

// AuthClaims represents JWT token claims. Subject carries the user id.
type AuthClaims struct {
	Username             string `json:"username" example:"alice"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserID returns the user id stored in the subject claim
func (c *AuthClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// CredentialsRequest is the body of signup and signin
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=64" example:"alice"`
	Password string `json:"password" validate:"required" example:"P@ssw0rd1"`
}

// SignupResponse represents the response for the signup endpoint
type SignupResponse struct {
	Message string    `json:"message" example:"User signed up successfully"`
	UserID  uuid.UUID `json:"userId"`
}

// SigninResponse represents the response for the signin endpoint
type SigninResponse struct {
	Token string `json:"token"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo UserRepository, v *validator.Validate) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if v == nil {
		v = validator.New()
	}

	return &AuthService{
		config:    config,
		userRepo:  userRepo,
		validator: v,
	}, nil
}

func (s *AuthService) validateCredentials(req *CredentialsRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return errMissingCredentials
	}
	if err := s.validator.Struct(req); err != nil {
		return apperrors.FromValidator(err)
	}
	if len(req.Password) > maxPasswordBytes {
		return apperrors.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

// Signup registers a new user and returns it
func (s *AuthService) Signup(ctx context.Context, req *CredentialsRequest) (*models.User, error) {
	if err := s.validateCredentials(req); err != nil {
		return nil, err
	}
	log := logger.WithContext(ctx).WithField("username", req.Username)

	existing, err := s.userRepo.GetByUsername(req.Username)
	if err == nil && existing != nil {
		log.Info("Signup rejected: username taken")
		return nil, apperrors.ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User signed up")
	return user, nil
}

// Signin verifies credentials and returns a signed token
func (s *AuthService) Signin(ctx context.Context, req *CredentialsRequest) (string, error) {
	if err := s.validateCredentials(req); err != nil {
		return "", err
	}
	log := logger.WithContext(ctx).WithField("username", req.Username)

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Info("Signin rejected: unknown user")
			return "", apperrors.ErrSigninUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.ComparePassword(user.PasswordHash, req.Password) {
		log.Info("Signin rejected: incorrect password")
		return "", apperrors.ErrIncorrectPassword
	}

	token, err := s.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	log.Debug("User signed in")
	return token, nil
}

// HashPassword hashes a plaintext password with the configured bcrypt cost
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether password matches the stored bcrypt hash
func (s *AuthService) ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token.
// Every failure wraps apperrors.ErrInvalidToken.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: malformed subject", apperrors.ErrInvalidToken)
	}

	return claims, nil
}
