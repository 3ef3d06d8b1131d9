package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/repository"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrPublisherNotFound = errors.New("publisher not found")
)

// BookDetail is the composite the detail page renders: the catalog row plus
// the user's four independent membership lookups. Absence of any per-user
// row is the "not yet added/tracked" state, not an error.
type BookDetail struct {
	Book            *models.Book
	InLibrary       bool
	LibraryStatus   string
	InWishlist      bool
	WishlistEntryID string
	Progress        *models.ReadingProgress
	Review          *models.Review
}

type BookService interface {
	Detail(ctx context.Context, userID, bookID string) (*BookDetail, error)
	Search(ctx context.Context, term string) ([]models.Book, error)
	Create(ctx context.Context, book *models.Book, genreIDs []string) error
	CreatePublisher(ctx context.Context, publisher *models.Publisher) error
	ListPublishers(ctx context.Context) ([]models.Publisher, error)
}

type bookService struct {
	bookRepo      repository.BookRepository
	publisherRepo *repository.PublisherRepo
	libraryRepo   repository.LibraryRepository
	wishlistRepo  repository.WishlistRepository
	progressRepo  repository.ProgressRepository
	reviewRepo    repository.ReviewRepository
}

func NewBookService(
	bookRepo repository.BookRepository,
	publisherRepo *repository.PublisherRepo,
	libraryRepo repository.LibraryRepository,
	wishlistRepo repository.WishlistRepository,
	progressRepo repository.ProgressRepository,
	reviewRepo repository.ReviewRepository,
) BookService {
	return &bookService{
		bookRepo:      bookRepo,
		publisherRepo: publisherRepo,
		libraryRepo:   libraryRepo,
		wishlistRepo:  wishlistRepo,
		progressRepo:  progressRepo,
		reviewRepo:    reviewRepo,
	}
}

// Detail fetches the book and then fans out the four per-user lookups
// concurrently; they touch disjoint rows and have no ordering dependency.
// Each lookup treats a missing row as its empty default and only a real
// failure aborts the composite.
func (s *bookService) Detail(ctx context.Context, userID, bookID string) (*BookDetail, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	detail := &BookDetail{Book: book}

	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		entry, err := s.libraryRepo.GetByUserAndBook(ctx, userID, bookID)
		if err != nil {
			if !repository.IsNotFound(err) {
				errs[0] = err
			}
			return
		}
		detail.InLibrary = true
		detail.LibraryStatus = entry.Status
	}()
	go func() {
		defer wg.Done()
		entry, err := s.wishlistRepo.GetByUserAndBook(ctx, userID, bookID)
		if err != nil {
			if !repository.IsNotFound(err) {
				errs[1] = err
			}
			return
		}
		detail.InWishlist = true
		detail.WishlistEntryID = entry.ID
	}()
	go func() {
		defer wg.Done()
		progress, err := s.progressRepo.GetProgressByBookID(ctx, userID, bookID)
		if err != nil {
			if !repository.IsNotFound(err) {
				errs[2] = err
			}
			return
		}
		detail.Progress = progress
	}()
	go func() {
		defer wg.Done()
		review, err := s.reviewRepo.GetByUserAndBook(ctx, userID, bookID)
		if err != nil {
			if !repository.IsNotFound(err) {
				errs[3] = err
			}
			return
		}
		detail.Review = review
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return detail, nil
}

// Search trims the term first; an empty or whitespace-only term is a no-op
// that never reaches the database.
func (s *bookService) Search(ctx context.Context, term string) ([]models.Book, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Book{}, nil
	}
	return s.bookRepo.Search(ctx, term)
}

// Create ingests a catalog row, optionally attaching genres and validating
// the publisher reference.
func (s *bookService) Create(ctx context.Context, book *models.Book, genreIDs []string) error {
	if book.PublisherID != nil {
		if _, err := s.publisherRepo.GetByID(ctx, *book.PublisherID); err != nil {
			if repository.IsNotFound(err) {
				return ErrPublisherNotFound
			}
			return err
		}
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return err
	}
	if len(genreIDs) > 0 {
		return s.bookRepo.ReplaceGenres(ctx, book.ID, genreIDs)
	}
	return nil
}

func (s *bookService) CreatePublisher(ctx context.Context, publisher *models.Publisher) error {
	return s.publisherRepo.Create(ctx, publisher)
}

func (s *bookService) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	return s.publisherRepo.GetAll(ctx)
}
