package repository

import (
	"context"

	"pricing-service/models"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a GORM-backed CatalogRepository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) ListPacks(ctx context.Context) ([]models.Pack, error) {
	var packs []models.Pack
	if err := r.db.WithContext(ctx).Find(&packs).Error; err != nil {
		return nil, err
	}
	return packs, nil
}
