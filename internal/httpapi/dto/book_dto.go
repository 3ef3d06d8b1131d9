package dto

import (
	"time"

	"myshelf/internal/httpapi/models"
)

// CreateBookDTO used for POST /api/books (catalog ingestion)
type CreateBookDTO struct {
	Title           string   `json:"title" binding:"required"`
	Author          string   `json:"author" binding:"required"`
	CoverURL        *string  `json:"cover_url,omitempty"`
	Synopsis        *string  `json:"synopsis,omitempty"`
	PageCount       *int     `json:"page_count,omitempty" binding:"omitempty,gt=0"`
	PublicationYear *int     `json:"publication_year,omitempty"`
	ISBN            *string  `json:"isbn,omitempty"`
	PublisherID     *string  `json:"publisher_id,omitempty" binding:"omitempty,uuid"`
	GenreIDs        []string `json:"genre_ids,omitempty" binding:"omitempty,dive,uuid"`
}

type CreatePublisherDTO struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// BookResponse DTO for catalog rows
type BookResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Author          string             `json:"author"`
	CoverURL        *string            `json:"cover_url,omitempty"`
	Synopsis        *string            `json:"synopsis,omitempty"`
	PageCount       *int               `json:"page_count,omitempty"`
	PublicationYear *int               `json:"publication_year,omitempty"`
	ISBN            *string            `json:"isbn,omitempty"`
	Publisher       *PublisherResponse `json:"publisher,omitempty"`
	Genres          []GenreResponse    `json:"genres,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// BookSummaryResponse is the trimmed shape embedded in library/wishlist rows.
type BookSummaryResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	CoverURL  *string `json:"cover_url,omitempty"`
	PageCount *int    `json:"page_count,omitempty"`
}

type PublisherResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// BookDetailResponse is the composite the detail page consumes.
type BookDetailResponse struct {
	Book            BookResponse      `json:"book"`
	InLibrary       bool              `json:"in_library"`
	LibraryStatus   string            `json:"library_status,omitempty"`
	InWishlist      bool              `json:"in_wishlist"`
	WishlistEntryID string            `json:"wishlist_entry_id,omitempty"`
	Progress        *ProgressResponse `json:"progress,omitempty"`
	Review          *ReviewResponse   `json:"review,omitempty"`
}

// Converters

func (d CreateBookDTO) ToModel() models.Book {
	return models.Book{
		Title:           d.Title,
		Author:          d.Author,
		CoverURL:        d.CoverURL,
		Synopsis:        d.Synopsis,
		PageCount:       d.PageCount,
		PublicationYear: d.PublicationYear,
		ISBN:            d.ISBN,
		PublisherID:     d.PublisherID,
	}
}

func (d CreatePublisherDTO) ToModel() models.Publisher {
	return models.Publisher{
		Name:    d.Name,
		Address: d.Address,
		Phone:   d.Phone,
	}
}

func BookFromModel(b models.Book) BookResponse {
	resp := BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		CoverURL:        b.CoverURL,
		Synopsis:        b.Synopsis,
		PageCount:       b.PageCount,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
		CreatedAt:       b.CreatedAt,
	}
	if b.Publisher != nil {
		p := PublisherFromModel(*b.Publisher)
		resp.Publisher = &p
	}
	for _, g := range b.Genres {
		resp.Genres = append(resp.Genres, GenreFromModel(g))
	}
	return resp
}

func BookSummaryFromModel(b models.Book) BookSummaryResponse {
	return BookSummaryResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		CoverURL:  b.CoverURL,
		PageCount: b.PageCount,
	}
}

func PublisherFromModel(p models.Publisher) PublisherResponse {
	return PublisherResponse{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
	}
}
