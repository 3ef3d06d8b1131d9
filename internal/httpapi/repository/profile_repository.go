package repository

import (
	"context"
	"fmt"

	"myshelf/internal/httpapi/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	UpdateNameAndAvatar(ctx context.Context, userID, name string, avatarURL *string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateNameAndAvatar writes only the two mutable columns. Email never
// appears in the update payload.
func (r *profileRepository) UpdateNameAndAvatar(ctx context.Context, userID, name string, avatarURL *string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"name":       name,
			"avatar_url": avatarURL,
		})

	if result.Error != nil {
		return fmt.Errorf("update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
