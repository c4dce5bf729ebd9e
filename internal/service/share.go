package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"brain-backend/internal/cache"
	"brain-backend/internal/database/models"
	apperrors "brain-backend/internal/errors"
	"brain-backend/internal/logger"
	"brain-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// DefaultShareTokenLength is used when the service is built with a shorter length
	DefaultShareTokenLength = 10

	maxTokenAttempts = 5
)

// ShareService publishes read-only views of a user's content
type ShareService struct {
	shareRepo   repository.ShareLinkRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	contentRepo repository.ContentRepositoryInterface
	cache       cache.ShareCache
	tokenLength int
	newToken    func(n int) (string, error)
}

// Ensure ShareService implements ShareServiceInterface
var _ ShareServiceInterface = (*ShareService)(nil)

// NewShareService creates a new ShareService. A nil cache disables caching.
func NewShareService(
	shareRepo repository.ShareLinkRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	contentRepo repository.ContentRepositoryInterface,
	shareCache cache.ShareCache,
	tokenLength int,
) *ShareService {
	if shareCache == nil {
		shareCache = cache.NoopShareCache{}
	}
	if tokenLength < DefaultShareTokenLength {
		tokenLength = DefaultShareTokenLength
	}
	return &ShareService{
		shareRepo:   shareRepo,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		cache:       shareCache,
		tokenLength: tokenLength,
		newToken:    GenerateShareToken,
	}
}

// ShareRequest is the body of POST /brain/share. A missing share field disables sharing.
type ShareRequest struct {
	Share bool `json:"share" example:"true"`
}

// ShareLinkResponse is returned when sharing is enabled
type ShareLinkResponse struct {
	Hash string `json:"hash" example:"aB3dE5gH7j"`
}

// ShareStatusResponse reports whether the caller currently shares their brain
type ShareStatusResponse struct {
	Shared bool   `json:"shared" example:"true"`
	Hash   string `json:"hash,omitempty" example:"aB3dE5gH7j"`
}

// SharedBrainResponse is the public view behind a share token
type SharedBrainResponse struct {
	Username string           `json:"username" example:"alice"`
	Content  []models.Content `json:"content"`
}

// GenerateShareToken returns n characters drawn uniformly from [A-Za-z0-9] using crypto/rand
func GenerateShareToken(n int) (string, error) {
	const maxByte = 256 - (256 % len(tokenAlphabet))

	out := make([]byte, 0, n)
	buf := make([]byte, n+n/2)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			// skip bytes past the last full multiple of len(tokenAlphabet)
			if int(b) >= maxByte {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// Enable returns the caller's share link, creating one if needed.
// Calling it again returns the same token.
func (s *ShareService) Enable(ctx context.Context, userID uuid.UUID) (*models.ShareLink, error) {
	log := logger.WithContext(ctx).WithField("user_id", userID)

	existing, err := s.shareRepo.GetByUserID(userID)
	if err == nil {
		log.Debug("Share link already enabled")
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up share link: %w", err)
	}

	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		hash, err := s.newToken(s.tokenLength)
		if err != nil {
			return nil, err
		}

		link := &models.ShareLink{Hash: hash, UserID: userID}
		err = s.shareRepo.Create(link)
		if err == nil {
			log.WithField("attempt", attempt).Info("Share link enabled")
			return link, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create share link: %w", err)
		}

		// Either a concurrent Enable for this user won, or the hash collided
		winner, lookupErr := s.shareRepo.GetByUserID(userID)
		if lookupErr == nil {
			log.Debug("Concurrent enable won, returning its share link")
			return winner, nil
		}
		if !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up share link: %w", lookupErr)
		}
		log.WithField("attempt", attempt).Warn("Share token collision, retrying")
	}

	return nil, apperrors.ErrTokenGenerationExhausted
}

// Disable removes the caller's share link. It reports whether a link existed
// and succeeds either way.
func (s *ShareService) Disable(ctx context.Context, userID uuid.UUID) (bool, error) {
	log := logger.WithContext(ctx).WithField("user_id", userID)

	// Evict before deleting so a failed eviction leaves sharing untouched
	current, err := s.shareRepo.GetByUserID(userID)
	switch {
	case err == nil:
		if err := s.cache.Delete(ctx, current.Hash); err != nil {
			return false, fmt.Errorf("failed to evict share link from cache: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return false, fmt.Errorf("failed to look up share link: %w", err)
	}

	removed, err := s.shareRepo.DeleteByUserID(userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete share link: %w", err)
	}

	// A Resolve racing with the delete may have cached the token again
	for _, link := range removed {
		if err := s.cache.Delete(ctx, link.Hash); err != nil {
			log.WithError(err).Warn("Failed to evict removed share link from cache")
		}
	}

	log.WithField("removed", len(removed)).Info("Share link disabled")
	return len(removed) > 0, nil
}

// Status reports the caller's sharing state without changing it
func (s *ShareService) Status(ctx context.Context, userID uuid.UUID) (*ShareStatusResponse, error) {
	link, err := s.shareRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ShareStatusResponse{Shared: false}, nil
		}
		return nil, fmt.Errorf("failed to look up share link: %w", err)
	}
	return &ShareStatusResponse{Shared: true, Hash: link.Hash}, nil
}

// lookupOwner resolves hash to a user id, consulting the cache first
func (s *ShareService) lookupOwner(ctx context.Context, hash string) (uuid.UUID, error) {
	log := logger.WithContext(ctx)

	userID, ok, err := s.cache.Get(ctx, hash)
	if err != nil {
		log.WithError(err).Warn("Share cache read failed, falling back to store")
	} else if ok {
		return userID, nil
	}

	link, err := s.shareRepo.GetByHash(hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrShareLinkNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to look up share link: %w", err)
	}

	if err := s.cache.Set(ctx, hash, link.UserID); err != nil {
		log.WithError(err).Warn("Share cache write failed")
		return link.UserID, nil
	}

	// A Disable that finished between the read and the write left the entry behind
	if err := s.confirmCached(ctx, hash, link.UserID); err != nil {
		return uuid.Nil, err
	}
	return link.UserID, nil
}

// confirmCached re-reads the store after a cache write and evicts the entry
// when the link no longer maps hash to userID.
func (s *ShareService) confirmCached(ctx context.Context, hash string, userID uuid.UUID) error {
	current, err := s.shareRepo.GetByHash(hash)
	if err == nil && current.UserID == userID {
		return nil
	}

	if evictErr := s.cache.Delete(ctx, hash); evictErr != nil {
		logger.WithContext(ctx).WithError(evictErr).Error("Failed to evict stale share link from cache")
	}

	switch {
	case err == nil, errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrShareLinkNotFound
	default:
		return fmt.Errorf("failed to look up share link: %w", err)
	}
}

// Resolve returns the owner's username and current content for a share token.
// Unknown and disabled tokens both yield ErrShareLinkNotFound.
func (s *ShareService) Resolve(ctx context.Context, hash string, filter ContentFilter) (*SharedBrainResponse, error) {
	if hash == "" {
		return nil, apperrors.ErrShareLinkNotFound
	}

	userID, err := s.lookupOwner(ctx, hash)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	items, err := s.contentRepo.GetByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	result := FilterContent(items, filter)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"owner":    user.Username,
		"returned": len(result),
	}).Debug("Shared brain resolved")

	return &SharedBrainResponse{
		Username: user.Username,
		Content:  result,
	}, nil
}
