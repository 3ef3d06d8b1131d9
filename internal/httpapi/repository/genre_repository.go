package repository

import (
	"context"
	"fmt"

	"myshelf/internal/httpapi/models"

	"gorm.io/gorm"
)

type GenreRepo struct {
	db *gorm.DB
}

func NewGenreRepo(db *gorm.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// GetAll returns the full genre catalog ordered by name, the shape the
// preferences page presents as a selectable list.
func (r *GenreRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *GenreRepo) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

// GetBooksByGenre returns books associated with the given genre id.
func (r *GenreRepo) GetBooksByGenre(ctx context.Context, genreID string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Joins("JOIN book_genres bg ON bg.book_id = books.id").
		Where("bg.genre_id = ?", genreID).
		Preload("Genres").
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get books by genre: %w", err)
	}
	return list, nil
}
