package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"brain-backend/internal/auth"
	"brain-backend/internal/config"
	"brain-backend/internal/database"
	"brain-backend/internal/database/models"
	apperrors "brain-backend/internal/errors"
	"brain-backend/internal/repository"
	"brain-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that mirror the API payloads
type UserData struct {
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Share    bool          `yaml:"share"`
	Content  []ContentData `yaml:"content,omitempty"`
}

type ContentData struct {
	Type  string   `yaml:"type"`
	Title string   `yaml:"title"`
	Link  string   `yaml:"link,omitempty"`
	Body  string   `yaml:"content,omitempty"`
	Tags  []string `yaml:"tags,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type seeder struct {
	users    repository.UserRepositoryInterface
	auth     *auth.AuthService
	contents *service.ContentService
	shares   *service.ShareService
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s, err := newSeeder(cfg, db)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Load data from YAML files
	if err := s.loadDataFromYAMLFiles(context.Background(), "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func newSeeder(cfg *config.Config, db *gorm.DB) (*seeder, error) {
	v := validator.New()
	users := repository.NewUserRepository(db)
	contents := repository.NewContentRepository(db)
	shareLinks := repository.NewShareLinkRepository(db)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), users, v)
	if err != nil {
		return nil, err
	}

	return &seeder{
		users:    users,
		auth:     authService,
		contents: service.NewContentService(contents, v),
		shares:   service.NewShareService(shareLinks, users, contents, nil, cfg.ShareTokenLength),
	}, nil
}

func (s *seeder) loadDataFromYAMLFiles(ctx context.Context, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	usersCreated, contentCreated, shared := 0, 0, 0
	for _, userData := range users {
		user, created, err := s.createUser(ctx, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		if created {
			usersCreated++
		}

		n, err := s.createContent(ctx, user, userData.Content)
		if err != nil {
			return fmt.Errorf("failed to create content for %s: %w", userData.Username, err)
		}
		contentCreated += n

		if userData.Share {
			link, err := s.shares.Enable(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to share brain of %s: %w", userData.Username, err)
			}
			log.Printf("🔗 %s shared at /api/v1/brain/%s", user.Username, link.Hash)
			shared++
		}
	}

	log.Printf("👤 Users: %d created, %d total", usersCreated, len(users))
	log.Printf("📝 Content: %d created", contentCreated)
	log.Printf("🔗 Share links: %d active", shared)
	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

// createUser signs the user up, or returns the existing account on re-runs
func (s *seeder) createUser(ctx context.Context, userData UserData) (*models.User, bool, error) {
	user, err := s.auth.Signup(ctx, &auth.CredentialsRequest{
		Username: userData.Username,
		Password: userData.Password,
	})
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, apperrors.ErrUserExists) {
		return nil, false, err
	}

	existing, err := s.users.GetByUsername(strings.TrimSpace(userData.Username))
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// createContent adds the items whose (type, title) the user does not have yet
func (s *seeder) createContent(ctx context.Context, user *models.User, items []ContentData) (int, error) {
	existing, err := s.contents.ListContent(ctx, user.ID, service.ContentFilter{})
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		seen[string(c.Type)+"/"+c.Title] = struct{}{}
	}

	created := 0
	for _, item := range items {
		key := item.Type + "/" + strings.TrimSpace(item.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		_, err := s.contents.CreateContent(ctx, user.ID, &service.ContentRequest{
			Type:    models.ContentType(item.Type),
			Title:   item.Title,
			Link:    item.Link,
			Content: item.Body,
			Tags:    item.Tags,
		})
		if err != nil {
			return created, fmt.Errorf("%q: %w", item.Title, err)
		}
		seen[key] = struct{}{}
		created++
	}
	return created, nil
}
