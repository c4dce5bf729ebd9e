package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"brain-backend/internal/database/models"
	apperrors "brain-backend/internal/errors"
	"brain-backend/internal/logger"
	"brain-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ContentService provides content-related business logic
type ContentService struct {
	contentRepo repository.ContentRepositoryInterface
	validator   *validator.Validate
}

// Ensure ContentService implements ContentServiceInterface
var _ ContentServiceInterface = (*ContentService)(nil)

// NewContentService creates a new ContentService
func NewContentService(contentRepo repository.ContentRepositoryInterface, validator *validator.Validate) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		validator:   validator,
	}
}

// ContentRequest is the payload for creating or replacing a content item
type ContentRequest struct {
	Type    models.ContentType `json:"type" validate:"required,oneof=document tweet youtube link" example:"link"`
	Title   string             `json:"title" validate:"required,max=200" example:"Interesting thread"`
	Link    string             `json:"link" validate:"max=2000" example:"https://x.com/someone/status/1"`
	Content string             `json:"content" example:"# Notes"`
	Tags    []string           `json:"tags" example:"go,reading"`
}

// ContentFilter narrows a content listing. Zero value matches everything.
type ContentFilter struct {
	// Search is a case-insensitive substring of the title
	Search string
	// Tags matches items carrying at least one of these tags
	Tags []string
	Type models.ContentType
}

// IsEmpty reports whether the filter matches everything
func (f ContentFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" && len(NormalizeTags(f.Tags)) == 0 && f.Type == ""
}

// Match reports whether c passes the filter
func (f ContentFilter) Match(c *models.Content) bool {
	if f.Type != "" && c.Type != f.Type {
		return false
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		if !strings.Contains(strings.ToLower(c.Title), strings.ToLower(search)) {
			return false
		}
	}
	if wanted := NormalizeTags(f.Tags); len(wanted) > 0 {
		found := false
		for _, tag := range c.Tags {
			for _, w := range wanted {
				if tag == w {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// NormalizeTags trims every tag and drops the empty ones. Order and duplicates are kept.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// FilterContent applies f to items, never returning nil
func FilterContent(items []models.Content, f ContentFilter) []models.Content {
	out := make([]models.Content, 0, len(items))
	matchAll := f.IsEmpty()
	for i := range items {
		if matchAll || f.Match(&items[i]) {
			out = append(out, withTags(items[i]))
		}
	}
	return out
}

// withTags detaches the tag slice from the stored item and never leaves it nil
func withTags(c models.Content) models.Content {
	c.Tags = pq.StringArray(c.TagList())
	return c
}

// normalize validates req and returns the trimmed fields as a Content
func (s *ContentService) normalize(req *ContentRequest) (*models.Content, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Link = strings.TrimSpace(req.Link)
	req.Type = models.ContentType(strings.TrimSpace(string(req.Type)))

	if req.Title == "" || req.Type == "" {
		return nil, apperrors.NewValidationError("", "Title and type are required fields")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	content := &models.Content{
		Type:  req.Type,
		Title: req.Title,
		Link:  req.Link,
		Body:  req.Content,
		Tags:  pq.StringArray(NormalizeTags(req.Tags)),
	}

	if req.Type.RequiresBody() && strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError("content", "is required for document content")
	}
	if !req.Type.RequiresLink() {
		content.Link = ""
	} else if content.Link == "" {
		return nil, apperrors.NewValidationError("link", fmt.Sprintf("is required for %s content", req.Type))
	}

	return content, nil
}

// CreateContent validates req and stores a new item owned by userID
func (s *ContentService) CreateContent(ctx context.Context, userID uuid.UUID, req *ContentRequest) (*models.Content, error) {
	content, err := s.normalize(req)
	if err != nil {
		return nil, err
	}
	content.UserID = userID

	if err := s.contentRepo.Create(content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"content_id": content.ID,
		"type":       content.Type,
	}).Info("Content created")

	created := withTags(*content)
	return &created, nil
}

// ListContent returns the items owned by userID that pass filter, oldest first
func (s *ContentService) ListContent(ctx context.Context, userID uuid.UUID, filter ContentFilter) ([]models.Content, error) {
	items, err := s.contentRepo.GetByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	result := FilterContent(items, filter)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"total":    len(items),
		"returned": len(result),
	}).Debug("Content listed")
	return result, nil
}

// UpdateContent replaces every editable field of an item owned by userID.
// Items that do not exist and items owned by someone else both yield ErrContentNotFound.
func (s *ContentService) UpdateContent(ctx context.Context, userID, contentID uuid.UUID, req *ContentRequest) (*models.Content, error) {
	content, err := s.normalize(req)
	if err != nil {
		return nil, err
	}
	content.ID = contentID
	content.UserID = userID

	if err := s.contentRepo.UpdateByOwner(content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to update content: %w", err)
	}

	updated, err := s.contentRepo.GetByOwnerAndID(userID, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// deleted between the update and the read
			return nil, apperrors.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to reload content: %w", err)
	}

	logger.WithContext(ctx).WithField("content_id", contentID).Info("Content updated")

	result := withTags(*updated)
	return &result, nil
}

// DeleteContent removes an item owned by userID
func (s *ContentService) DeleteContent(ctx context.Context, userID, contentID uuid.UUID) error {
	if err := s.contentRepo.DeleteByOwner(userID, contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContentNotFound
		}
		return fmt.Errorf("failed to delete content: %w", err)
	}

	logger.WithContext(ctx).WithField("content_id", contentID).Info("Content deleted")
	return nil
}

// ListTags returns the distinct tags used across userID's items, sorted
func (s *ContentService) ListTags(ctx context.Context, userID uuid.UUID) ([]string, error) {
	items, err := s.contentRepo.GetByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, item := range items {
		for _, tag := range item.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}
