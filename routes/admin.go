package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/menuly/restaurant-admin/controllers/export"
	"github.com/menuly/restaurant-admin/controllers/qr"
	"github.com/menuly/restaurant-admin/middleware"
)

// SetupAdminRoutes wires the API-key-protected admin surface: table
// QR management and the catalog export.
func SetupAdminRoutes(r *gin.Engine, cfg Config) {
	admin := r.Group("/admin", middleware.ValidateAPIKey)
	{
		admin.GET("/qr", qrcontroller.ListCodes(cfg.Store))
		admin.POST("/qr/generate", qrcontroller.GenerateCodes(cfg.Store, cfg.MenuBaseURL, cfg.RestaurantID))
		admin.GET("/qr/:table/image", qrcontroller.CodeImage(cfg.Store))
		admin.GET("/export/products.xlsx", exportcontroller.ExportProducts(cfg.Poller))
	}
}
