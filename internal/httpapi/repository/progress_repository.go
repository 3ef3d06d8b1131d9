package repository

import (
	"context"
	"errors"
	"time"

	"myshelf/internal/httpapi/models"

	"gorm.io/gorm"
)

type progressRepository struct {
	db *gorm.DB
}

type ProgressRepository interface {
	GetAllProgress(ctx context.Context, userID string) ([]models.ReadingProgress, error)
	GetProgressByBookID(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error)
	UpsertProgress(ctx context.Context, progress *models.ReadingProgress) error
	DeleteProgress(ctx context.Context, userID, bookID string) error
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetAllProgress(ctx context.Context, userID string) ([]models.ReadingProgress, error) {
	var list []models.ReadingProgress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *progressRepository) GetProgressByBookID(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error) {
	var progress models.ReadingProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpsertProgress inserts or updates the row keyed by the (user, book) unique
// pair. Page, percentage and the start/completion timestamps come in already
// computed by the service; the row id and StartedAt of an existing row are
// preserved.
func (r *progressRepository) UpsertProgress(ctx context.Context, progress *models.ReadingProgress) error {
	var existing models.ReadingProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", progress.UserID, progress.BookID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(progress).Error
	} else if err != nil {
		return err
	}

	updates := map[string]any{
		"current_page": progress.CurrentPage,
		"percentage":   progress.Percentage,
		"completed_at": progress.CompletedAt,
		"updated_at":   time.Now(),
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return err
	}

	// Reflect the stored row back to the caller.
	progress.ID = existing.ID
	progress.StartedAt = existing.StartedAt
	return nil
}

func (r *progressRepository) DeleteProgress(ctx context.Context, userID, bookID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.ReadingProgress{}).Error
}
