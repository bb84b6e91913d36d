package controllers

import (
	"fmt"

	"pricing-service/models"

	"github.com/go-playground/validator/v10"
)

// MaxBatchRows caps a single submission. The engine processes the whole batch
// in memory, so unbounded batches are rejected at the transport boundary.
const MaxBatchRows = 10000

// RequestValidator handles envelope-level input validation. Row contents stay
// untouched here; their shape is the engine's concern.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// ValidateBatchRequest checks the request envelope against its struct tags.
func (rv *RequestValidator) ValidateBatchRequest(req *models.PriceBatchRequest) error {
	if err := rv.validate.Struct(req); err != nil {
		return fmt.Errorf("batch exceeds the maximum of %d rows", MaxBatchRows)
	}
	return nil
}
