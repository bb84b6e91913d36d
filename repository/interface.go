package repository

import (
	"context"

	"pricing-service/models"
)

// CatalogRepository provides read-only access to the product catalog and the
// pack composition table. Both reads are full, unfiltered dumps executed once
// per validation request; the engine treats the result as an immutable
// snapshot.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListPacks(ctx context.Context) ([]models.Pack, error)
}
