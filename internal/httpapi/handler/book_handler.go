package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myshelf/internal/httpapi/dto"
	"myshelf/internal/httpapi/middleware"
	"myshelf/internal/httpapi/models"
	"myshelf/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookSvc     service.BookService
	wishlistSvc service.WishlistService
	progressSvc service.ProgressService
	reviewSvc   service.ReviewService
}

func NewBookHandler(
	bookSvc service.BookService,
	wishlistSvc service.WishlistService,
	progressSvc service.ProgressService,
	reviewSvc service.ReviewService,
) *BookHandler {
	return &BookHandler{
		bookSvc:     bookSvc,
		wishlistSvc: wishlistSvc,
		progressSvc: progressSvc,
		reviewSvc:   reviewSvc,
	}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:book_id", h.Detail)
	rg.POST("", middleware.RequireRole(models.RoleAdmin), h.Create)
	rg.POST("/:book_id/wishlist-toggle", h.ToggleWishlist)
	rg.GET("/:book_id/progress", h.GetProgress)
	rg.PUT("/:book_id/progress", h.UpdateProgress)
	rg.DELETE("/:book_id/progress", h.ResetProgress)
	rg.PUT("/:book_id/review", h.SaveReview)
}

func (h *BookHandler) RegisterProgressRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListProgress)
}

func (h *BookHandler) RegisterSearchRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Search)
}

func (h *BookHandler) RegisterReviewRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/:review_id", h.DeleteReview)
}

func (h *BookHandler) RegisterPublisherRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListPublishers)
	rg.POST("", middleware.RequireRole(models.RoleAdmin), h.CreatePublisher)
}

// Detail returns the catalog row together with the caller's library,
// wishlist, progress and review state for the book. Missing per-user rows
// come back as empty state, not errors.
func (h *BookHandler) Detail(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	detail, err := h.bookSvc.Detail(ctx, userID, c.Param("book_id"))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load book"})
		return
	}

	resp := dto.BookDetailResponse{
		Book:            dto.BookFromModel(*detail.Book),
		InLibrary:       detail.InLibrary,
		LibraryStatus:   detail.LibraryStatus,
		InWishlist:      detail.InWishlist,
		WishlistEntryID: detail.WishlistEntryID,
	}
	if detail.Progress != nil {
		p := dto.ProgressFromModel(*detail.Progress)
		resp.Progress = &p
	}
	if detail.Review != nil {
		r := dto.ReviewFromModel(*detail.Review)
		resp.Review = &r
	}

	c.JSON(http.StatusOK, resp)
}

// Search matches title or author, case-insensitively. A blank term returns
// an empty result set without touching the database.
func (h *BookHandler) Search(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	books, err := h.bookSvc.Search(ctx, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	results := make([]dto.BookResponse, 0, len(books))
	for _, book := range books {
		results = append(results, dto.BookFromModel(book))
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"total":   len(results),
	})
}

func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book := req.ToModel()
	if err := h.bookSvc.Create(ctx, &book, req.GenreIDs); err != nil {
		if errors.Is(err, service.ErrPublisherNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "publisher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create book"})
		return
	}

	c.JSON(http.StatusCreated, dto.BookFromModel(book))
}

func (h *BookHandler) ToggleWishlist(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	inWishlist, err := h.wishlistSvc.Toggle(ctx, userID, c.Param("book_id"))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle wishlist"})
		return
	}

	c.JSON(http.StatusOK, dto.WishlistToggleResponse{InWishlist: inWishlist})
}

func (h *BookHandler) UpdateProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	progress, err := h.progressSvc.Update(ctx, userID, c.Param("book_id"), req.CurrentPage)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update progress"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ProgressFromModel(*progress))
}

// GetProgress returns the caller's reading position for the book, served
// from the cache when it is warm.
func (h *BookHandler) GetProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	progress, err := h.progressSvc.Get(ctx, userID, c.Param("book_id"))
	if err != nil {
		if errors.Is(err, service.ErrProgressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load progress"})
		return
	}

	c.JSON(http.StatusOK, dto.ProgressFromModel(*progress))
}

// ListProgress returns every book the caller has a recorded position for,
// the feed behind the continue-reading shelf.
func (h *BookHandler) ListProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.progressSvc.GetByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load progress"})
		return
	}

	resp := make([]dto.ProgressResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, dto.ProgressFromModel(p))
	}

	c.JSON(http.StatusOK, resp)
}

// ResetProgress clears the caller's reading position for the book.
func (h *BookHandler) ResetProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.progressSvc.Reset(ctx, userID, c.Param("book_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset progress"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) SaveReview(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.SaveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	review, err := h.reviewSvc.Save(ctx, userID, c.Param("book_id"), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating), errors.Is(err, service.ErrInvalidVisibility):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save review"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ReviewFromModel(*review))
}

func (h *BookHandler) DeleteReview(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.reviewSvc.Delete(ctx, userID, c.Param("review_id")); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) ListPublishers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	publishers, err := h.bookSvc.ListPublishers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load publishers"})
		return
	}

	resp := make([]dto.PublisherResponse, 0, len(publishers))
	for _, p := range publishers {
		resp = append(resp, dto.PublisherFromModel(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookHandler) CreatePublisher(c *gin.Context) {
	var req dto.CreatePublisherDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	publisher := req.ToModel()
	if err := h.bookSvc.CreatePublisher(ctx, &publisher); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create publisher"})
		return
	}

	c.JSON(http.StatusCreated, dto.PublisherFromModel(publisher))
}
