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

type WishlistHandler struct {
	svc service.WishlistService
}

func NewWishlistHandler(svc service.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

func (h *WishlistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Add)
	rg.DELETE("/:entry_id", h.Remove)
}

// List the wishlist ordered by priority, newest first within a priority.
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.svc.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wishlist"})
		return
	}

	items := make([]dto.WishlistItemResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.WishlistItemFromModel(entry))
	}

	c.JSON(http.StatusOK, dto.WishlistListResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *WishlistHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry, err := h.svc.Add(ctx, userID, req.BookID, req.Priority)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyInWishlist):
			c.JSON(http.StatusConflict, gin.H{"error": "book already in wishlist"})
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add book to wishlist"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.WishlistItemFromModel(*entry))
}

// Remove deletes the entry by id. The response reflects the true outcome;
// nothing is removed optimistically.
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Remove(ctx, userID, c.Param("entry_id")); err != nil {
		if errors.Is(err, service.ErrNotInWishlist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "wishlist entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove wishlist entry"})
		return
	}

	c.Status(http.StatusNoContent)
}
