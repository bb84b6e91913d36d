package controllers

import (
	"context"
	"net/http"
	"time"

	"pricing-service/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingController exposes the batch price validation endpoint. The engine
// reports violations in-band, so a batch that reaches it always answers 200.
type PricingController struct {
	pricingService PricingServiceAPI
	validator      *RequestValidator
	timeout        time.Duration
}

func NewPricingController(ps PricingServiceAPI, validator *RequestValidator) *PricingController {
	return &PricingController{
		pricingService: ps,
		validator:      validator,
		timeout:        DefaultContextTimeout,
	}
}

// ValidatePrices handles POST /products/prices/validate.
func (pc *PricingController) ValidatePrices(c *gin.Context) {
	var req models.PriceBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := pc.validator.ValidateBatchRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pc.timeout)
	defer cancel()

	result, err := pc.pricingService.ValidatePriceChanges(ctx, req.CSVData)
	if err != nil {
		zap.L().Error("Price batch validation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}

	c.JSON(http.StatusOK, result)
}
