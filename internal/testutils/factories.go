package testutils

import (
	"fmt"
	"strings"
	"time"

	"brain-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserFactory provides methods to create test User data
type UserFactory struct {
	seq int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique username
func (f *UserFactory) Create() *models.User {
	f.seq++
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: fmt.Sprintf("user-%d", f.seq),
		PasswordHash: "not-a-bcrypt-hash",
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	u := f.Create()
	u.Username = username
	return u
}

// ContentFactory provides methods to create test Content data
type ContentFactory struct{}

// NewContentFactory creates a new ContentFactory
func NewContentFactory() *ContentFactory {
	return &ContentFactory{}
}

// Create creates a link-type Content owned by userID
func (f *ContentFactory) Create(userID uuid.UUID) *models.Content {
	return &models.Content{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Type:      models.ContentTypeLink,
		Title:     "Test Content",
		Link:      "https://example.com",
		Tags:      pq.StringArray{},
	}
}

// WithTitle sets a custom title
func (f *ContentFactory) WithTitle(userID uuid.UUID, title string) *models.Content {
	c := f.Create(userID)
	c.Title = title
	return c
}

// WithTags sets custom tags
func (f *ContentFactory) WithTags(userID uuid.UUID, tags ...string) *models.Content {
	c := f.Create(userID)
	c.Tags = pq.StringArray(tags)
	return c
}

// Document creates a document-type Content with the given markdown body
func (f *ContentFactory) Document(userID uuid.UUID, body string) *models.Content {
	c := f.Create(userID)
	c.Type = models.ContentTypeDocument
	c.Link = ""
	c.Body = body
	return c
}

// ShareLinkFactory provides methods to create test ShareLink data
type ShareLinkFactory struct{}

// NewShareLinkFactory creates a new ShareLinkFactory
func NewShareLinkFactory() *ShareLinkFactory {
	return &ShareLinkFactory{}
}

// Create creates a ShareLink for userID with a random ten character hash
func (f *ShareLinkFactory) Create(userID uuid.UUID) *models.ShareLink {
	return &models.ShareLink{
		ID:     uuid.New(),
		Hash:   strings.ReplaceAll(uuid.NewString(), "-", "")[:10],
		UserID: userID,
	}
}

// FactorySet groups all factories for convenience
type FactorySet struct {
	User      *UserFactory
	Content   *ContentFactory
	ShareLink *ShareLinkFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:      NewUserFactory(),
		Content:   NewContentFactory(),
		ShareLink: NewShareLinkFactory(),
	}
}
