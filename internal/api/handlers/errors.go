package handlers

import (
	"errors"
	"net/http"

	apperrors "brain-backend/internal/errors"
	"brain-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Message string `json:"message" example:"Content not found"`
	Error   string `json:"error,omitempty" example:"content not found"`
}

// respondError maps the typed errors from the service layer onto HTTP statuses.
// Anything untyped is a store failure and is reported as 500 with fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: validationMessage(err)})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Message: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: notFoundMessage(err)})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: fallback, Error: err.Error()})
	}
}

func validationMessage(err error) string {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		if verr.Field == "" {
			return verr.Message
		}
		return verr.Field + " " + verr.Message
	}
	return err.Error()
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrContentNotFound):
		return "Content not found"
	case errors.Is(err, apperrors.ErrShareLinkNotFound), errors.Is(err, apperrors.ErrUserNotFound):
		return "Share link not found or has expired"
	}
	return err.Error()
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Message: apperrors.ErrMissingToken.Error()})
}
