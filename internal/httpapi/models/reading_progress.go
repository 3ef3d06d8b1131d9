package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReadingProgress is the per-user, per-book reading position. Percentage is
// always derived from CurrentPage and the book's page count on the server;
// it is never accepted from the client.
type ReadingProgress struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string     `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_book" json:"user_id"`
	BookID      string     `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_book" json:"book_id"`
	CurrentPage int        `gorm:"default:0" json:"current_page"`
	Percentage  float64    `gorm:"type:decimal(5,2);default:0" json:"percentage"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *ReadingProgress) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// TableName overrides the table name used by ReadingProgress to `reading_progress`
func (ReadingProgress) TableName() string {
	return "reading_progress"
}
