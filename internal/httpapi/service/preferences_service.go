package service

import (
	"context"

	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/repository"
)

type PreferencesService interface {
	GetGenres(ctx context.Context) ([]models.Genre, error)
	CreateGenre(ctx context.Context, genre *models.Genre) error
	GetBooksByGenre(ctx context.Context, genreID string) ([]models.Book, error)
	GetFavoriteGenres(ctx context.Context, userID string) ([]string, error)
	SaveFavoriteGenres(ctx context.Context, userID string, genreIDs []string) error
}

type preferencesService struct {
	repo      repository.PreferencesRepository
	genreRepo *repository.GenreRepo
}

func NewPreferencesService(repo repository.PreferencesRepository, genreRepo *repository.GenreRepo) PreferencesService {
	return &preferencesService{repo: repo, genreRepo: genreRepo}
}

func (s *preferencesService) GetGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepo.GetAll(ctx)
}

func (s *preferencesService) CreateGenre(ctx context.Context, genre *models.Genre) error {
	return s.genreRepo.Create(ctx, genre)
}

// GetBooksByGenre lists the catalog entries tagged with the genre, the
// drill-down behind each entry of the genre list.
func (s *preferencesService) GetBooksByGenre(ctx context.Context, genreID string) ([]models.Book, error) {
	return s.genreRepo.GetBooksByGenre(ctx, genreID)
}

// GetFavoriteGenres returns the saved selection, or an empty list when the
// user has never saved preferences. Absence is not an error.
func (s *preferencesService) GetFavoriteGenres(ctx context.Context, userID string) ([]string, error) {
	prefs, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return []string{}, nil
		}
		return nil, err
	}
	if prefs.FavoriteGenres == nil {
		return []string{}, nil
	}
	return []string(prefs.FavoriteGenres), nil
}

// SaveFavoriteGenres replaces the selection wholesale: the stored array
// becomes exactly the given set, not an incremental merge.
func (s *preferencesService) SaveFavoriteGenres(ctx context.Context, userID string, genreIDs []string) error {
	if genreIDs == nil {
		genreIDs = []string{}
	}
	return s.repo.UpsertFavoriteGenres(ctx, userID, genreIDs)
}
