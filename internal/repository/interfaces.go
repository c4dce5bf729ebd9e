package repository

import (
	"brain-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Lookups return gorm.ErrRecordNotFound when nothing matches and
// gorm.ErrDuplicatedKey when a unique index is violated, for every implementation.

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// ContentRepositoryInterface defines the interface for content repository operations.
// Every read and write takes the owner id; there is deliberately no lookup by id alone.
type ContentRepositoryInterface interface {
	Create(content *models.Content) error
	GetByOwner(userID uuid.UUID) ([]models.Content, error)
	GetByOwnerAndID(userID, id uuid.UUID) (*models.Content, error)
	UpdateByOwner(content *models.Content) error
	DeleteByOwner(userID, id uuid.UUID) error
}

// ShareLinkRepositoryInterface defines the interface for share link repository operations
type ShareLinkRepositoryInterface interface {
	Create(link *models.ShareLink) error
	GetByUserID(userID uuid.UUID) (*models.ShareLink, error)
	GetByHash(hash string) (*models.ShareLink, error)
	DeleteByUserID(userID uuid.UUID) ([]models.ShareLink, error)
}
