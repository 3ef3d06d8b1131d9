package models

// explicit join model for the book/genre many-to-many
type BookGenre struct {
	BookID  string `gorm:"type:uuid;primaryKey" json:"book_id"`
	GenreID string `gorm:"type:uuid;primaryKey" json:"genre_id"`
}

func (BookGenre) TableName() string {
	return "book_genres"
}
