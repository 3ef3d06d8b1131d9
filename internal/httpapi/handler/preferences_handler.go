package handler

import (
	"context"
	"net/http"
	"time"

	"myshelf/internal/httpapi/dto"
	"myshelf/internal/httpapi/middleware"
	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	svc service.PreferencesService
}

func NewPreferencesHandler(svc service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{svc: svc}
}

func (h *PreferencesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.PUT("", h.Save)
}

func (h *PreferencesHandler) RegisterGenreRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListGenres)
	rg.POST("", middleware.RequireRole(models.RoleAdmin), h.CreateGenre)
	rg.GET("/:genre_id/books", h.ListGenreBooks)
}

func (h *PreferencesHandler) ListGenres(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	genres, err := h.svc.GetGenres(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load genres"})
		return
	}

	resp := make([]dto.GenreResponse, 0, len(genres))
	for _, g := range genres {
		resp = append(resp, dto.GenreFromModel(g))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PreferencesHandler) CreateGenre(c *gin.Context) {
	var req dto.CreateGenreDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	genre := models.Genre{Name: req.Name, Description: req.Description}
	if err := h.svc.CreateGenre(ctx, &genre); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create genre"})
		return
	}

	c.JSON(http.StatusCreated, dto.GenreFromModel(genre))
}

func (h *PreferencesHandler) ListGenreBooks(c *gin.Context) {
	genreID := c.Param("genre_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	books, err := h.svc.GetBooksByGenre(ctx, genreID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load books"})
		return
	}

	resp := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, dto.BookFromModel(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Get returns the caller's favorite genres; a user who never saved any gets
// an empty list.
func (h *PreferencesHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	genres, err := h.svc.GetFavoriteGenres(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, dto.PreferencesResponse{FavoriteGenres: genres})
}

// Save replaces the selection wholesale; an empty list clears it.
func (h *PreferencesHandler) Save(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.SaveFavoriteGenres(ctx, userID, req.GenreIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preferences"})
		return
	}

	genres, err := h.svc.GetFavoriteGenres(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, dto.PreferencesResponse{FavoriteGenres: genres})
}
