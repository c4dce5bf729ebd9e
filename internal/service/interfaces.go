package service

import (
	"context"

	"brain-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ContentServiceInterface defines the interface for content service
type ContentServiceInterface interface {
	CreateContent(ctx context.Context, userID uuid.UUID, req *ContentRequest) (*models.Content, error)
	ListContent(ctx context.Context, userID uuid.UUID, filter ContentFilter) ([]models.Content, error)
	UpdateContent(ctx context.Context, userID, contentID uuid.UUID, req *ContentRequest) (*models.Content, error)
	DeleteContent(ctx context.Context, userID, contentID uuid.UUID) error
	ListTags(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// ShareServiceInterface defines the interface for share service
type ShareServiceInterface interface {
	Enable(ctx context.Context, userID uuid.UUID) (*models.ShareLink, error)
	Disable(ctx context.Context, userID uuid.UUID) (bool, error)
	Status(ctx context.Context, userID uuid.UUID) (*ShareStatusResponse, error)
	Resolve(ctx context.Context, hash string, filter ContentFilter) (*SharedBrainResponse, error)
}
