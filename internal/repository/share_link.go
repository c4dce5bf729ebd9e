package repository

import (
	"brain-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShareLinkRepository handles database operations for share links
type ShareLinkRepository struct {
	db *gorm.DB
}

// Ensure ShareLinkRepository implements ShareLinkRepositoryInterface
var _ ShareLinkRepositoryInterface = (*ShareLinkRepository)(nil)

// NewShareLinkRepository creates a new share link repository
func NewShareLinkRepository(db *gorm.DB) *ShareLinkRepository {
	return &ShareLinkRepository{db: db}
}

// Create inserts a new share link. A second link for the same user or a
// reused hash fails with gorm.ErrDuplicatedKey.
func (r *ShareLinkRepository) Create(link *models.ShareLink) error {
	return r.db.Create(link).Error
}

// GetByUserID retrieves the share link owned by userID
func (r *ShareLinkRepository) GetByUserID(userID uuid.UUID) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.db.First(&link, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByHash retrieves the share link for a public token
func (r *ShareLinkRepository) GetByHash(hash string) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.db.First(&link, "hash = ?", hash).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteByUserID removes any share link owned by userID and returns the removed rows
func (r *ShareLinkRepository) DeleteByUserID(userID uuid.UUID) ([]models.ShareLink, error) {
	var removed []models.ShareLink
	err := r.db.Clauses(clause.Returning{}).Where("user_id = ?", userID).Delete(&removed).Error
	if err != nil {
		return nil, err
	}
	return removed, nil
}
