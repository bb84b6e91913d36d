package routes

import (
	"pricing-service/controllers"
	"pricing-service/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, pricingController *controllers.PricingController, productController *controllers.ProductController) {
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("", productController.GetProducts)
		productRoutes.POST("/prices/validate", middleware.RateLimitMiddleware(), pricingController.ValidatePrices)
	}
}
