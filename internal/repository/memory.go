package repository

import (
	"sort"
	"sync"
	"time"

	"brain-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemoryStore keeps users, content and share links in process memory.
// It enforces the same uniqueness rules as the Postgres schema and returns
// the same gorm sentinel errors, so services cannot tell the two apart.
type MemoryStore struct {
	mu       sync.RWMutex
	seq      uint64
	users    map[uuid.UUID]models.User
	contents map[uuid.UUID]memoryContent
	links    map[uuid.UUID]models.ShareLink
}

type memoryContent struct {
	seq     uint64
	content models.Content
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uuid.UUID]models.User),
		contents: make(map[uuid.UUID]memoryContent),
		links:    make(map[uuid.UUID]models.ShareLink),
	}
}

// Users returns a user repository backed by the store
func (s *MemoryStore) Users() *MemoryUserRepository {
	return &MemoryUserRepository{store: s}
}

// Contents returns a content repository backed by the store
func (s *MemoryStore) Contents() *MemoryContentRepository {
	return &MemoryContentRepository{store: s}
}

// ShareLinks returns a share link repository backed by the store
func (s *MemoryStore) ShareLinks() *MemoryShareLinkRepository {
	return &MemoryShareLinkRepository{store: s}
}

func copyContent(c models.Content) models.Content {
	if c.Tags != nil {
		tags := make([]string, len(c.Tags))
		copy(tags, c.Tags)
		c.Tags = tags
	}
	return c
}

// MemoryUserRepository is the in-memory UserRepositoryInterface
type MemoryUserRepository struct {
	store *MemoryStore
}

var _ UserRepositoryInterface = (*MemoryUserRepository)(nil)

func (r *MemoryUserRepository) Create(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// MemoryContentRepository is the in-memory ContentRepositoryInterface
type MemoryContentRepository struct {
	store *MemoryStore
}

var _ ContentRepositoryInterface = (*MemoryContentRepository)(nil)

func (r *MemoryContentRepository) Create(content *models.Content) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}
	if _, exists := s.contents[content.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	now := time.Now()
	content.CreatedAt = now
	content.UpdatedAt = now
	s.seq++
	s.contents[content.ID] = memoryContent{seq: s.seq, content: copyContent(*content)}
	return nil
}

func (r *MemoryContentRepository) GetByOwner(userID uuid.UUID) ([]models.Content, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]memoryContent, 0)
	for _, mc := range s.contents {
		if mc.content.UserID == userID {
			owned = append(owned, mc)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].seq < owned[j].seq })

	out := make([]models.Content, 0, len(owned))
	for _, mc := range owned {
		out = append(out, copyContent(mc.content))
	}
	return out, nil
}

func (r *MemoryContentRepository) GetByOwnerAndID(userID, id uuid.UUID) (*models.Content, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	mc, ok := s.contents[id]
	if !ok || mc.content.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	c := copyContent(mc.content)
	return &c, nil
}

func (r *MemoryContentRepository) UpdateByOwner(content *models.Content) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	mc, ok := s.contents[content.ID]
	if !ok || mc.content.UserID != content.UserID {
		return gorm.ErrRecordNotFound
	}
	updated := mc.content
	updated.Type = content.Type
	updated.Title = content.Title
	updated.Link = content.Link
	updated.Body = content.Body
	updated.Tags = content.Tags
	updated.UpdatedAt = time.Now()
	mc.content = copyContent(updated)
	s.contents[content.ID] = mc

	content.UpdatedAt = updated.UpdatedAt
	return nil
}

func (r *MemoryContentRepository) DeleteByOwner(userID, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	mc, ok := s.contents[id]
	if !ok || mc.content.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(s.contents, id)
	return nil
}

// MemoryShareLinkRepository is the in-memory ShareLinkRepositoryInterface
type MemoryShareLinkRepository struct {
	store *MemoryStore
}

var _ ShareLinkRepositoryInterface = (*MemoryShareLinkRepository)(nil)

func (r *MemoryShareLinkRepository) Create(link *models.ShareLink) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.links {
		if l.UserID == link.UserID || l.Hash == link.Hash {
			return gorm.ErrDuplicatedKey
		}
	}
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	link.CreatedAt = time.Now()
	s.links[link.ID] = *link
	return nil
}

func (r *MemoryShareLinkRepository) GetByUserID(userID uuid.UUID) (*models.ShareLink, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.links {
		if l.UserID == userID {
			found := l
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryShareLinkRepository) GetByHash(hash string) (*models.ShareLink, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.links {
		if l.Hash == hash {
			found := l
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryShareLinkRepository) DeleteByUserID(userID uuid.UUID) ([]models.ShareLink, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []models.ShareLink
	for id, l := range s.links {
		if l.UserID == userID {
			removed = append(removed, l)
			delete(s.links, id)
		}
	}
	return removed, nil
}
