package dto

import (
	"time"

	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/service"
)

type SaveReviewRequest struct {
	Title      *string `json:"title,omitempty"`
	Body       string  `json:"body" binding:"required"`
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
	Visibility string  `json:"visibility" binding:"required,oneof=private public"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	Title      *string   `json:"title,omitempty"`
	Body       string    `json:"body"`
	Rating     int       `json:"rating"`
	Visibility string    `json:"visibility"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (d SaveReviewRequest) ToInput() service.ReviewInput {
	return service.ReviewInput{
		Title:      d.Title,
		Body:       d.Body,
		Rating:     d.Rating,
		Visibility: d.Visibility,
	}
}

func ReviewFromModel(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		BookID:     r.BookID,
		Title:      r.Title,
		Body:       r.Body,
		Rating:     r.Rating,
		Visibility: r.Visibility,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
