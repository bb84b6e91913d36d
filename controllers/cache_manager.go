package controllers

import (
	"context"
	"encoding/json"
	"time"

	"pricing-service/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const productListCacheKey = "catalog:products"

// CacheManager is a read-through Redis cache for the catalog dump. The
// catalog is owned by an external store, so entries expire on a TTL instead
// of being invalidated. A nil client or an unreachable Redis degrades
// silently to the repository.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{
		redis: redis,
		ttl:   DefaultCacheTTL,
	}
}

// GetProductList retrieves the cached catalog dump.
func (cm *CacheManager) GetProductList(ctx context.Context) ([]models.Product, bool) {
	if cm.redis == nil {
		return nil, false
	}

	cachedData, err := cm.redis.Get(ctx, productListCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(cachedData), &products); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}

	return products, true
}

// SetProductListAsync caches the catalog dump without blocking the request.
func (cm *CacheManager) SetProductListAsync(products []models.Product) {
	if cm.redis == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		jsonBytes, err := json.Marshal(products)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, productListCacheKey, jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}
