package repository

import (
	"context"
	"errors"
	"time"

	"myshelf/internal/httpapi/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PreferencesRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.ReadingPreferences, error)
	UpsertFavoriteGenres(ctx context.Context, userID string, genreIDs []string) error
}

type preferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) GetByUser(ctx context.Context, userID string) (*models.ReadingPreferences, error) {
	var prefs models.ReadingPreferences
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpsertFavoriteGenres replaces the favorite-genre array wholesale, creating
// the preferences row on first save. The other preference arrays are left
// untouched.
func (r *preferencesRepository) UpsertFavoriteGenres(ctx context.Context, userID string, genreIDs []string) error {
	var existing models.ReadingPreferences
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs := &models.ReadingPreferences{
			UserID:         userID,
			FavoriteGenres: pq.StringArray(genreIDs),
		}
		return r.db.WithContext(ctx).Create(prefs).Error
	} else if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
		"favorite_genres": pq.StringArray(genreIDs),
		"updated_at":      time.Now(),
	}).Error
}
