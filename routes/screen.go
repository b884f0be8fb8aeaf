package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/menuly/restaurant-admin/controllers/screen"
)

// SetupScreenRoutes wires the public, unauthenticated display-screen
// surface.
func SetupScreenRoutes(r *gin.Engine, cfg Config) {
	screen := r.Group("/screen")
	{
		screen.GET("", screencontroller.GetScreen(cfg.Poller))
		screen.GET("/health", screencontroller.Health(cfg.Poller))
		screen.PUT("/language", screencontroller.SetLanguage(cfg.Poller, cfg.Store, cfg.Catalog))
	}
}
