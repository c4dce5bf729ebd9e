package models

// User is an account that owns content and at most one share link
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:64" validate:"required,max=64"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
