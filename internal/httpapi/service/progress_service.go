package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"myshelf/internal/httpapi/cache"
	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/repository"
)

var (
	ErrInvalidPage      = errors.New("current page is out of range")
	ErrProgressNotFound = errors.New("no reading progress recorded")
)

type ProgressService interface {
	Update(ctx context.Context, userID, bookID string, currentPage int) (*models.ReadingProgress, error)
	Get(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error)
	GetByUser(ctx context.Context, userID string) ([]models.ReadingProgress, error)
	Reset(ctx context.Context, userID, bookID string) error
}

type progressService struct {
	repo     repository.ProgressRepository
	bookRepo repository.BookRepository
	cache    *cache.ProgressCache
	log      *slog.Logger
}

func NewProgressService(
	repo repository.ProgressRepository,
	bookRepo repository.BookRepository,
	progressCache *cache.ProgressCache,
	log *slog.Logger,
) ProgressService {
	return &progressService{
		repo:     repo,
		bookRepo: bookRepo,
		cache:    progressCache,
		log:      log,
	}
}

// Update recomputes the percentage from the current page and the book's page
// count and upserts the (user, book) row. The percentage is never taken from
// the client. A book without a known page count reads as 0%.
func (s *progressService) Update(ctx context.Context, userID, bookID string, currentPage int) (*models.ReadingProgress, error) {
	if currentPage < 0 {
		return nil, ErrInvalidPage
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	percentage := 0.0
	if book.PageCount != nil && *book.PageCount > 0 {
		// A position past the last page would push the stored percentage
		// beyond the column's range.
		if currentPage > *book.PageCount {
			return nil, ErrInvalidPage
		}
		percentage = float64(currentPage) / float64(*book.PageCount) * 100
	}

	now := time.Now()
	progress := &models.ReadingProgress{
		UserID:      userID,
		BookID:      bookID,
		CurrentPage: currentPage,
		Percentage:  percentage,
		StartedAt:   &now,
		UpdatedAt:   now,
	}
	if percentage >= 100 {
		progress.CompletedAt = &now
	}

	if err := s.repo.UpsertProgress(ctx, progress); err != nil {
		return nil, err
	}

	if err := s.cache.Save(ctx, progress); err != nil {
		// The database write succeeded; a stale cache entry self-heals on TTL.
		s.log.Warn("progress cache write failed", "error", err)
	}

	return progress, nil
}

// Get serves from the cache when possible and falls back to the database.
func (s *progressService) Get(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error) {
	if cached, err := s.cache.Get(ctx, userID, bookID); err != nil {
		s.log.Warn("progress cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	progress, err := s.repo.GetProgressByBookID(ctx, userID, bookID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}

	if err := s.cache.Save(ctx, progress); err != nil {
		s.log.Warn("progress cache write failed", "error", err)
	}
	return progress, nil
}

func (s *progressService) GetByUser(ctx context.Context, userID string) ([]models.ReadingProgress, error) {
	return s.repo.GetAllProgress(ctx, userID)
}

// Reset removes the stored reading position and the cached copy. Resetting a
// book that has no recorded progress succeeds and does nothing.
func (s *progressService) Reset(ctx context.Context, userID, bookID string) error {
	if err := s.repo.DeleteProgress(ctx, userID, bookID); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, userID, bookID); err != nil {
		s.log.Warn("progress cache invalidation failed", "error", err)
	}
	return nil
}
