package entities

import (
	"time"

	"gorm.io/gorm"
)

// User is an account on the board. The store assigns ID and the timestamps;
// PasswordHash is opaque to everything except the credential hasher and is
// never serialized.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"uniqueIndex;size:100" json:"username"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
