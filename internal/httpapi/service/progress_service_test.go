package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"myshelf/internal/httpapi/cache"
	"myshelf/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newProgressServiceForTest(repo *MockProgressRepository, bookRepo *MockBookRepository) ProgressService {
	disabledCache, _ := cache.NewProgressCache("", "", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProgressService(repo, bookRepo, disabledCache, logger)
}

func intPtr(v int) *int { return &v }

func TestProgressUpdate_ComputesPercentage(t *testing.T) {
	mockRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressServiceForTest(mockRepo, mockBookRepo)

	mockBookRepo.On("GetByID", mock.Anything, "book-1").
		Return(&models.Book{ID: "book-1", PageCount: intPtr(200)}, nil)
	mockRepo.On("UpsertProgress", mock.Anything, mock.AnythingOfType("*models.ReadingProgress")).Return(nil)

	progress, err := svc.Update(context.Background(), "user-1", "book-1", 50)

	assert.NoError(t, err)
	assert.Equal(t, 50, progress.CurrentPage)
	assert.Equal(t, 25.0, progress.Percentage)
	assert.Nil(t, progress.CompletedAt)
	mockRepo.AssertExpectations(t)
}

func TestProgressUpdate_UnknownPageCountReadsZero(t *testing.T) {
	mockRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressServiceForTest(mockRepo, mockBookRepo)

	mockBookRepo.On("GetByID", mock.Anything, "book-1").
		Return(&models.Book{ID: "book-1"}, nil)
	mockRepo.On("UpsertProgress", mock.Anything, mock.AnythingOfType("*models.ReadingProgress")).Return(nil)

	progress, err := svc.Update(context.Background(), "user-1", "book-1", 120)

	assert.NoError(t, err)
	assert.Equal(t, 120, progress.CurrentPage)
	assert.Equal(t, 0.0, progress.Percentage)
}

func TestProgressUpdate_CompletionStampsCompletedAt(t *testing.T) {
	mockRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressServiceForTest(mockRepo, mockBookRepo)

	mockBookRepo.On("GetByID", mock.Anything, "book-1").
		Return(&models.Book{ID: "book-1", PageCount: intPtr(200)}, nil)
	mockRepo.On("UpsertProgress", mock.Anything, mock.AnythingOfType("*models.ReadingProgress")).Return(nil)

	progress, err := svc.Update(context.Background(), "user-1", "book-1", 200)

	assert.NoError(t, err)
	assert.Equal(t, 100.0, progress.Percentage)
	assert.NotNil(t, progress.CompletedAt)
}

func TestProgressUpdate_NegativePageRejected(t *testing.T) {
	mockRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressServiceForTest(mockRepo, mockBookRepo)

	progress, err := svc.Update(context.Background(), "user-1", "book-1", -1)

	assert.Equal(t, ErrInvalidPage, err)
	assert.Nil(t, progress)
	mockBookRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "UpsertProgress", mock.Anything, mock.Anything)
}

func TestProgressUpdate_PageBeyondCountRejected(t *testing.T) {
	mockRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressServiceForTest(mockRepo, mockBookRepo)

	// percentage is stored as decimal(5,2); a page past the end would
	// compute a value the column cannot hold.
	mockBookRepo.On("GetByID", mock.Anything, "book-1").
		Return(&models.Book{ID: "book-1", PageCount: intPtr(200)}, nil)

	progress, err := svc.Update(context.Background(), "user-1", "book-1", 2001)

	assert.Equal(t, ErrInvalidPage, err)
	assert.Nil(t, progress)
	mockRepo.AssertNotCalled(t, "UpsertProgress", mock.Anything, mock.Anything)
}

func TestProgressUpdate_BookNotFound(t *testing.T) {
	mockRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressServiceForTest(mockRepo, mockBookRepo)

	mockBookRepo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	progress, err := svc.Update(context.Background(), "user-1", "missing", 10)

	assert.Equal(t, ErrBookNotFound, err)
	assert.Nil(t, progress)
}

func TestProgressReset_DeletesStoredRow(t *testing.T) {
	mockRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressServiceForTest(mockRepo, mockBookRepo)

	mockRepo.On("DeleteProgress", mock.Anything, "user-1", "book-1").Return(nil)

	err := svc.Reset(context.Background(), "user-1", "book-1")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProgressGet_FallsBackToDatabase(t *testing.T) {
	mockRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressServiceForTest(mockRepo, mockBookRepo)

	stored := &models.ReadingProgress{UserID: "user-1", BookID: "book-1", CurrentPage: 30, Percentage: 15}
	mockRepo.On("GetProgressByBookID", mock.Anything, "user-1", "book-1").Return(stored, nil)

	progress, err := svc.Get(context.Background(), "user-1", "book-1")

	assert.NoError(t, err)
	assert.Equal(t, 30, progress.CurrentPage)
	mockRepo.AssertExpectations(t)
}

func TestProgressGet_AbsentRowIsNotFound(t *testing.T) {
	mockRepo := new(MockProgressRepository)
	mockBookRepo := new(MockBookRepository)
	svc := newProgressServiceForTest(mockRepo, mockBookRepo)

	mockRepo.On("GetProgressByBookID", mock.Anything, "user-1", "book-1").
		Return(nil, gorm.ErrRecordNotFound)

	progress, err := svc.Get(context.Background(), "user-1", "book-1")

	assert.Equal(t, ErrProgressNotFound, err)
	assert.Nil(t, progress)
}
