package dto

import "myshelf/internal/httpapi/models"

type CreateGenreDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

type GenreResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// SavePreferencesRequest replaces the favorite-genre selection wholesale.
type SavePreferencesRequest struct {
	GenreIDs []string `json:"genre_ids" binding:"omitempty,dive,uuid"`
}

type PreferencesResponse struct {
	FavoriteGenres []string `json:"favorite_genres"`
}

func GenreFromModel(g models.Genre) GenreResponse {
	return GenreResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
	}
}
