package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistEntry is a desired-but-untracked book. Independent of LibraryEntry:
// a book may sit in both at once.
type WishlistEntry struct {
	ID       string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_book" json:"user_id"`
	BookID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_book" json:"book_id"`
	Priority int       `gorm:"default:0" json:"priority"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"added_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (e *WishlistEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

func (WishlistEntry) TableName() string {
	return "wishlist_entries"
}
