package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShareLink publishes a read-only view of one user's content under Hash.
// The unique index on UserID keeps at most one link per user.
type ShareLink struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Hash      string    `json:"hash" gorm:"uniqueIndex;not null;size:64"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the table name for ShareLink
func (ShareLink) TableName() string {
	return "share_links"
}

// BeforeCreate sets the UUID if not already set
func (l *ShareLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
