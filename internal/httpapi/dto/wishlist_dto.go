package dto

import (
	"time"

	"myshelf/internal/httpapi/models"
)

type AddToWishlistRequest struct {
	BookID   string `json:"book_id" binding:"required,uuid"`
	Priority int    `json:"priority" binding:"omitempty,min=0"`
}

type WishlistItemResponse struct {
	ID       string              `json:"id"`
	BookID   string              `json:"book_id"`
	Priority int                 `json:"priority"`
	AddedAt  time.Time           `json:"added_at"`
	Book     BookSummaryResponse `json:"book,omitempty"`
}

type WishlistListResponse struct {
	Items []WishlistItemResponse `json:"items"`
	Total int                    `json:"total"`
}

type WishlistToggleResponse struct {
	InWishlist bool `json:"in_wishlist"`
}

func WishlistItemFromModel(entry models.WishlistEntry) WishlistItemResponse {
	resp := WishlistItemResponse{
		ID:       entry.ID,
		BookID:   entry.BookID,
		Priority: entry.Priority,
		AddedAt:  entry.AddedAt,
	}
	if entry.Book != nil {
		resp.Book = BookSummaryFromModel(*entry.Book)
	}
	return resp
}
