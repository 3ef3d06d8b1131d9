package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ReadingPreferences holds a user's favorite-genre selection plus the author
// and topic arrays the schema carries alongside it. FavoriteGenres stores
// genre ids; saves replace the array wholesale.
type ReadingPreferences struct {
	ID               string         `gorm:"primaryKey;type:uuid" json:"id"`
	UserID           string         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FavoriteGenres   pq.StringArray `gorm:"type:text[]" json:"favorite_genres"`
	FavoriteAuthors  pq.StringArray `gorm:"type:text[]" json:"favorite_authors"`
	TopicsOfInterest pq.StringArray `gorm:"type:text[]" json:"topics_of_interest"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *ReadingPreferences) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (ReadingPreferences) TableName() string {
	return "reading_preferences"
}
