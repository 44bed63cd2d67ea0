package handlers

import (
	"github.com/SscSPs/hardware_shop_erp/cmd/docs"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// writeMiddleware (rate limiting in production) wraps every POST route.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	writeMiddleware ...gin.HandlerFunc,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	writes := r.Group("", writeMiddleware...)

	registerSystemRoutes(r, services.Health)
	registerItemRoutes(r, writes, services.Item)
	registerPartyRoutes(r, writes, services.Party)
	registerPurchaseRoutes(r, writes, services.Purchase)
	registerSaleRoutes(r, writes, services.Sale)
	registerPaymentRoutes(r, writes, services.Payment)
	registerStockRoutes(r, services.Stock)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg == nil || cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
