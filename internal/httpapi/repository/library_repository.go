package repository

import (
	"context"
	"fmt"

	"myshelf/internal/httpapi/models"

	"gorm.io/gorm"
)

type LibraryRepository interface {
	Add(ctx context.Context, entry *models.LibraryEntry) error
	Remove(ctx context.Context, userID, bookID string) error
	List(ctx context.Context, userID, status string) ([]models.LibraryEntry, error)
	GetByUserAndBook(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error)
	UpdateStatus(ctx context.Context, userID, bookID, status string) error
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

// Add inserts the entry. The unique (user_id, book_id) index rejects
// duplicates; callers translate that into a conflict.
func (r *libraryRepository) Add(ctx context.Context, entry *models.LibraryEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("add to library: %w", err)
	}
	return nil
}

func (r *libraryRepository) Remove(ctx context.Context, userID, bookID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.LibraryEntry{})

	if result.Error != nil {
		return fmt.Errorf("remove from library: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns the user's entries newest-first, optionally filtered by
// status ("" or "all" returns everything).
func (r *libraryRepository) List(ctx context.Context, userID, status string) ([]models.LibraryEntry, error) {
	q := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("added_at DESC")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	var library []models.LibraryEntry
	if err := q.Find(&library).Error; err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}
	return library, nil
}

func (r *libraryRepository) GetByUserAndBook(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error) {
	var entry models.LibraryEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateStatus changes the status in place; no history is retained.
func (r *libraryRepository) UpdateStatus(ctx context.Context, userID, bookID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.LibraryEntry{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("update library status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
