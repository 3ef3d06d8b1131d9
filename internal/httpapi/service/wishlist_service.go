package service

import (
	"context"
	"errors"

	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/repository"
)

var (
	ErrAlreadyInWishlist = errors.New("book already in wishlist")
	ErrNotInWishlist     = errors.New("book not in wishlist")
)

type WishlistService interface {
	Add(ctx context.Context, userID, bookID string, priority int) (*models.WishlistEntry, error)
	List(ctx context.Context, userID string) ([]models.WishlistEntry, error)
	Remove(ctx context.Context, userID, entryID string) error
	Toggle(ctx context.Context, userID, bookID string) (inWishlist bool, err error)
}

type wishlistService struct {
	repo     repository.WishlistRepository
	bookRepo repository.BookRepository
}

func NewWishlistService(repo repository.WishlistRepository, bookRepo repository.BookRepository) WishlistService {
	return &wishlistService{repo: repo, bookRepo: bookRepo}
}

// Add inserts a wishlist entry. A duplicate (user, book) pair is rejected as
// a conflict, same as the library table.
func (s *wishlistService) Add(ctx context.Context, userID, bookID string, priority int) (*models.WishlistEntry, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	entry := &models.WishlistEntry{
		UserID:   userID,
		BookID:   bookID,
		Priority: priority,
	}
	if err := s.repo.Add(ctx, entry); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyInWishlist
		}
		return nil, err
	}
	return entry, nil
}

func (s *wishlistService) List(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
	return s.repo.List(ctx, userID)
}

// Remove deletes by entry id. The caller updates its view only after this
// returns, so a failed delete never leaves a phantom removal.
func (s *wishlistService) Remove(ctx context.Context, userID, entryID string) error {
	if err := s.repo.RemoveByID(ctx, userID, entryID); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotInWishlist
		}
		return err
	}
	return nil
}

// Toggle inserts when the pair is absent and deletes when present, returning
// the resulting membership. A concurrent toggle losing the insert race is
// absorbed: the unique violation means the other toggle already added it.
func (s *wishlistService) Toggle(ctx context.Context, userID, bookID string) (bool, error) {
	_, err := s.repo.GetByUserAndBook(ctx, userID, bookID)
	switch {
	case err == nil:
		if err := s.repo.RemoveByUserAndBook(ctx, userID, bookID); err != nil && !repository.IsNotFound(err) {
			return true, err
		}
		return false, nil
	case repository.IsNotFound(err):
		if _, err := s.Add(ctx, userID, bookID, 0); err != nil {
			if errors.Is(err, ErrAlreadyInWishlist) {
				return true, nil
			}
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}
