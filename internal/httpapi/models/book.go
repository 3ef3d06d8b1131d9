package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book is a catalog row. Catalog rows are created by admin ingestion and are
// immutable from a reader's perspective.
type Book struct {
	ID              string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Author          string    `gorm:"not null" json:"author"`
	CoverURL        *string   `json:"cover_url,omitempty"`
	Synopsis        *string   `gorm:"type:text" json:"synopsis,omitempty"`
	PageCount       *int      `json:"page_count,omitempty"`
	PublicationYear *int      `json:"publication_year,omitempty"`
	ISBN            *string   `json:"isbn,omitempty"`
	PublisherID     *string   `gorm:"type:uuid;index" json:"publisher_id,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Publisher *Publisher `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
	Genres    []Genre    `gorm:"many2many:book_genres;constraint:OnDelete:CASCADE;" json:"genres,omitempty"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
