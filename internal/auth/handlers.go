package auth

import (
	"errors"
	"net/http"

	apperrors "brain-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /api/v1/signup
// @Summary Create an account
// @Description Register a username and password. Usernames are unique and case-sensitive.
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 201 {object} SignupResponse "User created"
// @Failure 400 {object} map[string]interface{} "Missing username or password"
// @Failure 409 {object} map[string]interface{} "Username already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errMissingCredentials.Message, "error": err.Error()})
		return
	}

	user, err := h.service.Signup(c, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		case errors.Is(err, apperrors.ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{
		Message: "User signed up successfully",
		UserID:  user.ID,
	})
}

// Signin handles POST /api/v1/signin
// @Summary Sign in
// @Description Exchange a username and password for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 200 {object} SigninResponse "Signed bearer token"
// @Failure 400 {object} map[string]interface{} "Missing username or password"
// @Failure 403 {object} map[string]interface{} "User not found or incorrect password"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errMissingCredentials.Message, "error": err.Error()})
		return
	}

	token, err := h.service.Signin(c, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error signing in", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, SigninResponse{Token: token})
}

// ValidateToken returns the claims of the presented bearer token
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate" example("Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...")
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	// already verified by RequireAuth
	if claims, ok := GetAuthClaims(c); ok {
		c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
		return
	}

	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrMissingToken.Error()})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrInvalidToken.Error(), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

func validationMessage(err error) string {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) && verr.Field == "" {
		return verr.Message
	}
	return err.Error()
}
