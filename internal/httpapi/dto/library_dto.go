package dto

import (
	"time"

	"myshelf/internal/httpapi/models"
)

// AddToLibraryRequest: payload to add a book to the user's library
type AddToLibraryRequest struct {
	BookID string `json:"book_id" binding:"required,uuid"`
}

type UpdateLibraryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=want_to_read reading finished abandoned"`
}

// LibraryItemResponse: one shelf row, book summary plus reading position
type LibraryItemResponse struct {
	ID          string              `json:"id"`
	BookID      string              `json:"book_id"`
	Status      string              `json:"status"`
	AddedAt     time.Time           `json:"added_at"`
	Book        BookSummaryResponse `json:"book,omitempty"`
	CurrentPage int                 `json:"current_page"`
	Percentage  float64             `json:"percentage"`
}

type LibraryListResponse struct {
	Items []LibraryItemResponse `json:"items"`
	Total int                   `json:"total"`
}

func LibraryItemFromModel(entry models.LibraryEntry, progress *models.ReadingProgress) LibraryItemResponse {
	resp := LibraryItemResponse{
		ID:      entry.ID,
		BookID:  entry.BookID,
		Status:  entry.Status,
		AddedAt: entry.AddedAt,
	}
	if entry.Book != nil {
		resp.Book = BookSummaryFromModel(*entry.Book)
	}
	if progress != nil {
		resp.CurrentPage = progress.CurrentPage
		resp.Percentage = progress.Percentage
	}
	return resp
}
