package service

import (
	"context"
	"errors"

	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID, name string, avatarURL *string) (*models.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

// Get fetches the profile row. A missing profile is an error: registration
// provisions one, so its absence means something upstream broke.
func (s *profileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Update writes name and avatar only; the email column is write-once.
func (s *profileService) Update(ctx context.Context, userID, name string, avatarURL *string) (*models.Profile, error) {
	if err := s.repo.UpdateNameAndAvatar(ctx, userID, name, avatarURL); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}
