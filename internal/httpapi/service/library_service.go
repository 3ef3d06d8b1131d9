package service

import (
	"context"
	"errors"

	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/repository"
)

var (
	ErrAlreadyInLibrary = errors.New("book already in library")
	ErrNotInLibrary     = errors.New("book not in library")
	ErrInvalidStatus    = errors.New("invalid reading status")
)

// LibraryItem is a library entry joined with the user's reading position for
// the same book, the shape the shelf page renders.
type LibraryItem struct {
	Entry    models.LibraryEntry
	Progress *models.ReadingProgress
}

type LibraryService interface {
	Add(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error)
	Remove(ctx context.Context, userID, bookID string) error
	List(ctx context.Context, userID, status string) ([]LibraryItem, error)
	UpdateStatus(ctx context.Context, userID, bookID, status string) error
}

type libraryService struct {
	repo         repository.LibraryRepository
	bookRepo     repository.BookRepository
	progressRepo repository.ProgressRepository
}

func NewLibraryService(
	repo repository.LibraryRepository,
	bookRepo repository.BookRepository,
	progressRepo repository.ProgressRepository,
) LibraryService {
	return &libraryService{
		repo:         repo,
		bookRepo:     bookRepo,
		progressRepo: progressRepo,
	}
}

// Add inserts a new entry with the default want_to_read status. The unique
// (user, book) index is the arbiter of duplicates: the insert is attempted
// unconditionally and a unique violation maps to ErrAlreadyInLibrary, so
// two concurrent adds cannot both succeed.
func (s *libraryService) Add(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	entry := &models.LibraryEntry{
		UserID: userID,
		BookID: bookID,
		Status: models.StatusWantToRead,
	}
	if err := s.repo.Add(ctx, entry); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyInLibrary
		}
		return nil, err
	}
	return entry, nil
}

func (s *libraryService) Remove(ctx context.Context, userID, bookID string) error {
	if err := s.repo.Remove(ctx, userID, bookID); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotInLibrary
		}
		return err
	}
	return nil
}

// List joins the user's entries with their reading progress, newest first.
// Progress rows are fetched once for the user and merged in memory.
func (s *libraryService) List(ctx context.Context, userID, status string) ([]LibraryItem, error) {
	if status != "" && status != "all" && !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	entries, err := s.repo.List(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	progressList, err := s.progressRepo.GetAllProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	progressByBook := make(map[string]*models.ReadingProgress, len(progressList))
	for i := range progressList {
		progressByBook[progressList[i].BookID] = &progressList[i]
	}

	items := make([]LibraryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, LibraryItem{
			Entry:    entry,
			Progress: progressByBook[entry.BookID],
		})
	}
	return items, nil
}

// UpdateStatus changes the lifecycle status in place; no history is kept.
func (s *libraryService) UpdateStatus(ctx context.Context, userID, bookID, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, userID, bookID, status); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotInLibrary
		}
		return err
	}
	return nil
}
