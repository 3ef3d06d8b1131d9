package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reading-status lifecycle of a library entry.
const (
	StatusWantToRead = "want_to_read"
	StatusReading    = "reading"
	StatusFinished   = "finished"
	StatusAbandoned  = "abandoned"
)

// ValidStatus reports whether s is one of the four lifecycle statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusFinished, StatusAbandoned:
		return true
	}
	return false
}

// LibraryEntry tracks one book a user owns. One row per (user, book); the
// unique index is what turns a duplicate add into a conflict.
type LibraryEntry struct {
	ID      string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_library_user_book" json:"user_id"`
	BookID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_library_user_book" json:"book_id"`
	Status  string    `gorm:"not null;default:'want_to_read'" json:"status"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (e *LibraryEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

func (LibraryEntry) TableName() string {
	return "library_entries"
}
