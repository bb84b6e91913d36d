package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductController serves the full catalog dump.
type ProductController struct {
	pricingService PricingServiceAPI
	cache          *CacheManager
	timeout        time.Duration
}

func NewProductController(ps PricingServiceAPI, cache *CacheManager) *ProductController {
	return &ProductController{
		pricingService: ps,
		cache:          cache,
		timeout:        DefaultContextTimeout,
	}
}

// GetProducts handles GET /products. The full table is returned unpaginated;
// that mirrors the catalog store's contract.
func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pc.timeout)
	defer cancel()

	if products, ok := pc.cache.GetProductList(ctx); ok {
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := pc.pricingService.ListProducts(ctx)
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}

	pc.cache.SetProductListAsync(products)
	c.JSON(http.StatusOK, products)
}
