package repository

import (
	"context"
	"fmt"

	"myshelf/internal/httpapi/models"

	"gorm.io/gorm"
)

// Search results are capped; there is no pagination beyond this.
const searchLimit = 20

type BookRepository interface {
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Search(ctx context.Context, term string) ([]models.Book, error)
	ReplaceGenres(ctx context.Context, bookID string, genreIDs []string) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).
		Preload("Publisher").
		Preload("Genres").
		First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

// Search performs a case-insensitive substring match on title OR author,
// capped at searchLimit rows. Match existence is the only ranking.
func (r *bookRepository) Search(ctx context.Context, term string) ([]models.Book, error) {
	var list []models.Book
	p := "%" + term + "%"
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR author ILIKE ?", p, p).
		Limit(searchLimit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return list, nil
}

// ReplaceGenres swaps the book's genre associations for the given set.
func (r *bookRepository) ReplaceGenres(ctx context.Context, bookID string, genreIDs []string) error {
	tx := r.db.WithContext(ctx).Begin()
	var b models.Book
	if err := tx.First(&b, "id = ?", bookID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("book not found: %w", err)
	}
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, models.Genre{ID: id})
	}
	if err := tx.Model(&b).Association("Genres").Replace(&genres); err != nil {
		tx.Rollback()
		return fmt.Errorf("replace genres: %w", err)
	}
	return tx.Commit().Error
}
