package dto

import (
	"time"

	"myshelf/internal/httpapi/models"
)

// UpdateProgressRequest carries only the page; the percentage is computed
// server-side and never accepted from the client.
type UpdateProgressRequest struct {
	CurrentPage int `json:"current_page" binding:"min=0"`
}

type ProgressResponse struct {
	BookID      string     `json:"book_id"`
	CurrentPage int        `json:"current_page"`
	Percentage  float64    `json:"percentage"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ProgressFromModel(p models.ReadingProgress) ProgressResponse {
	return ProgressResponse{
		BookID:      p.BookID,
		CurrentPage: p.CurrentPage,
		Percentage:  p.Percentage,
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
