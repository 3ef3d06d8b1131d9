package repository

import (
	"context"
	"fmt"

	"myshelf/internal/httpapi/models"

	"gorm.io/gorm"
)

type PublisherRepo struct {
	db *gorm.DB
}

func NewPublisherRepo(db *gorm.DB) *PublisherRepo {
	return &PublisherRepo{db: db}
}

func (r *PublisherRepo) GetAll(ctx context.Context) ([]models.Publisher, error) {
	var list []models.Publisher
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get publishers: %w", err)
	}
	return list, nil
}

func (r *PublisherRepo) GetByID(ctx context.Context, id string) (*models.Publisher, error) {
	var p models.Publisher
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PublisherRepo) Create(ctx context.Context, p *models.Publisher) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return nil
}
