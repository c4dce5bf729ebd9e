package repository

import (
	"time"

	"brain-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository handles database operations for content items
type ContentRepository struct {
	db *gorm.DB
}

// Ensure ContentRepository implements ContentRepositoryInterface
var _ ContentRepositoryInterface = (*ContentRepository)(nil)

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create inserts a new content item
func (r *ContentRepository) Create(content *models.Content) error {
	return r.db.Create(content).Error
}

// GetByOwner retrieves all content owned by userID, oldest first
func (r *ContentRepository) GetByOwner(userID uuid.UUID) ([]models.Content, error) {
	var contents []models.Content
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// GetByOwnerAndID retrieves one content item if, and only if, userID owns it
func (r *ContentRepository) GetByOwnerAndID(userID, id uuid.UUID) (*models.Content, error) {
	var content models.Content
	err := r.db.First(&content, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// UpdateByOwner overwrites every editable column of the row matching
// content.ID and content.UserID. Empty values are written, not skipped.
func (r *ContentRepository) UpdateByOwner(content *models.Content) error {
	now := time.Now()
	res := r.db.Model(&models.Content{}).
		Where("id = ? AND user_id = ?", content.ID, content.UserID).
		Updates(map[string]interface{}{
			"type":       content.Type,
			"title":      content.Title,
			"link":       content.Link,
			"body":       content.Body,
			"tags":       content.Tags,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	content.UpdatedAt = now
	return nil
}

// DeleteByOwner removes the content item matching id and userID
func (r *ContentRepository) DeleteByOwner(userID, id uuid.UUID) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Content{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
