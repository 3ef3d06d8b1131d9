package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myshelf/internal/httpapi/dto"
	"myshelf/internal/httpapi/middleware"
	"myshelf/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Add)
	rg.PATCH("/:book_id/status", h.UpdateStatus)
	rg.DELETE("/:book_id", h.Remove)
}

// List the user's library, optionally filtered by status.
func (h *LibraryHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.svc.List(ctx, userID, c.Query("status"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load library"})
		return
	}

	resp := make([]dto.LibraryItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.LibraryItemFromModel(item.Entry, item.Progress))
	}

	c.JSON(http.StatusOK, dto.LibraryListResponse{
		Items: resp,
		Total: len(resp),
	})
}

// Add a book to the user's library with the default status.
func (h *LibraryHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddToLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry, err := h.svc.Add(ctx, userID, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyInLibrary):
			c.JSON(http.StatusConflict, gin.H{"error": "book already in library"})
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add book to library"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       entry.ID,
		"book_id":  entry.BookID,
		"status":   entry.Status,
		"added_at": entry.AddedAt,
	})
}

// UpdateStatus moves the entry through its lifecycle in place.
func (h *LibraryHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateLibraryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.UpdateStatus(ctx, userID, c.Param("book_id"), req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrNotInLibrary):
			c.JSON(http.StatusNotFound, gin.H{"error": "book not in library"})
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reading status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// Remove a book from the library.
func (h *LibraryHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Remove(ctx, userID, c.Param("book_id")); err != nil {
		if errors.Is(err, service.ErrNotInLibrary) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not in library"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove book from library"})
		return
	}

	c.Status(http.StatusNoContent)
}
