package services

import (
	"context"

	"pricing-service/models"
	"pricing-service/repository"

	"go.uber.org/zap"
)

// PricingService validates batches of proposed price changes against the
// catalog snapshot read through the repository.
type PricingService struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

func NewPricingService(repo repository.CatalogRepository, logger *zap.Logger) *PricingService {
	return &PricingService{
		repo:   repo,
		logger: logger,
	}
}

// ValidatePriceChanges loads the full catalog and pack table once, runs the
// batch through the validation engine and returns the per-row results.
// Validation findings are always reported in-band; the only error return is a
// failed catalog read.
func (s *PricingService) ValidatePriceChanges(ctx context.Context, rows []models.PriceChangeRow) (*models.PriceBatchResult, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	packs, err := s.repo.ListPacks(ctx)
	if err != nil {
		return nil, err
	}

	changes, validationErrs := ValidateBatch(products, packs, rows)

	s.logger.Info("Price batch validated",
		zap.Int("rows", len(rows)),
		zap.Int("errors", len(validationErrs)),
	)

	return &models.PriceBatchResult{
		ProductChanges: changes,
		ErrorList:      validationErrs,
	}, nil
}

// ListProducts returns the full catalog, unfiltered.
func (s *PricingService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListProducts(ctx)
}
