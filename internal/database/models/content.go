package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Content is one saved note or bookmark. UserID never changes after creation.
type Content struct {
	BaseModel
	UserID uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	Type   ContentType    `json:"type" gorm:"type:varchar(20);not null"`
	Title  string         `json:"title" gorm:"not null;size:200"`
	Link   string         `json:"link" gorm:"size:2000"`
	Body   string         `json:"content" gorm:"column:body;type:text"`
	Tags   pq.StringArray `json:"tags" gorm:"type:text[]"`
}

// TableName returns the table name for Content
func (Content) TableName() string {
	return "contents"
}

// TagList returns the tags as a plain slice, never nil
func (c *Content) TagList() []string {
	if len(c.Tags) == 0 {
		return []string{}
	}
	out := make([]string, len(c.Tags))
	copy(out, c.Tags)
	return out
}
