package service

import (
	"context"
	"errors"

	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/repository"
)

var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidVisibility = errors.New("visibility must be private or public")
)

// ReviewInput carries the writable review fields. Body is required; title is
// optional.
type ReviewInput struct {
	Title      *string
	Body       string
	Rating     int
	Visibility string
}

type ReviewService interface {
	Save(ctx context.Context, userID, bookID string, input ReviewInput) (*models.Review, error)
	Get(ctx context.Context, userID, bookID string) (*models.Review, error)
	Delete(ctx context.Context, userID, reviewID string) error
}

type reviewService struct {
	repo     repository.ReviewRepository
	bookRepo repository.BookRepository
}

func NewReviewService(repo repository.ReviewRepository, bookRepo repository.BookRepository) ReviewService {
	return &reviewService{repo: repo, bookRepo: bookRepo}
}

// Save upserts the user's single review for the book: when a row already
// exists it is updated in place, so the (user, book) row count stays at one
// across any sequence of saves.
func (s *reviewService) Save(ctx context.Context, userID, bookID string, input ReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if input.Visibility != models.VisibilityPrivate && input.Visibility != models.VisibilityPublic {
		return nil, ErrInvalidVisibility
	}

	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	existing, err := s.repo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil && !repository.IsNotFound(err) {
		return nil, err
	}

	if existing != nil {
		existing.Title = input.Title
		existing.Body = input.Body
		existing.Rating = input.Rating
		existing.Visibility = input.Visibility
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	review := &models.Review{
		UserID:     userID,
		BookID:     bookID,
		Title:      input.Title,
		Body:       input.Body,
		Rating:     input.Rating,
		Visibility: input.Visibility,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		// A concurrent save won the insert race; apply ours as an update.
		if repository.IsUniqueViolation(err) {
			return s.Save(ctx, userID, bookID, input)
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Get(ctx context.Context, userID, bookID string) (*models.Review, error) {
	review, err := s.repo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

// Delete removes the review entirely; there is no soft delete.
func (s *reviewService) Delete(ctx context.Context, userID, reviewID string) error {
	if err := s.repo.DeleteByID(ctx, userID, reviewID); err != nil {
		if repository.IsNotFound(err) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
