package controllers

import (
	"context"
	"time"

	"pricing-service/models"
)

const (
	// DefaultContextTimeout bounds a single request's work, catalog reads
	// included.
	DefaultContextTimeout = 15 * time.Second

	// DefaultCacheTTL is how long the cached catalog dump stays fresh.
	DefaultCacheTTL = 5 * time.Minute
)

// PricingServiceAPI is the service surface the controllers depend on.
type PricingServiceAPI interface {
	ValidatePriceChanges(ctx context.Context, rows []models.PriceChangeRow) (*models.PriceBatchResult, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}
