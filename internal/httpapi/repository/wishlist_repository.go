package repository

import (
	"context"
	"fmt"

	"myshelf/internal/httpapi/models"

	"gorm.io/gorm"
)

type WishlistRepository interface {
	Add(ctx context.Context, entry *models.WishlistEntry) error
	List(ctx context.Context, userID string) ([]models.WishlistEntry, error)
	GetByUserAndBook(ctx context.Context, userID, bookID string) (*models.WishlistEntry, error)
	RemoveByID(ctx context.Context, userID, entryID string) error
	RemoveByUserAndBook(ctx context.Context, userID, bookID string) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Add(ctx context.Context, entry *models.WishlistEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

// List returns the user's wishlist ordered by priority, newest first within
// the same priority.
func (r *wishlistRepository) List(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
	var list []models.WishlistEntry
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("priority DESC").
		Order("added_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return list, nil
}

func (r *wishlistRepository) GetByUserAndBook(ctx context.Context, userID, bookID string) (*models.WishlistEntry, error) {
	var entry models.WishlistEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveByID deletes an entry by its id, scoped to the owning user so one
// user cannot delete another's rows.
func (r *wishlistRepository) RemoveByID(ctx context.Context, userID, entryID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WishlistEntry{})

	if result.Error != nil {
		return fmt.Errorf("remove from wishlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *wishlistRepository) RemoveByUserAndBook(ctx context.Context, userID, bookID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.WishlistEntry{})

	if result.Error != nil {
		return fmt.Errorf("remove from wishlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
