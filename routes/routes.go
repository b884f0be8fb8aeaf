package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/menuly/restaurant-admin/client"
	"github.com/menuly/restaurant-admin/display"
	"github.com/menuly/restaurant-admin/store"
)

// Config carries the wiring the route groups need.
type Config struct {
	Poller       *display.Poller
	Catalog      *client.Catalog
	Store        *store.Store
	MenuBaseURL  string
	RestaurantID string
}

// SetupRoutes is the single entry-point that wires up the public
// screen routes and the API-key-protected admin routes.
func SetupRoutes(r *gin.Engine, cfg Config) {
	// 1. Public display-screen routes (no middleware)
	SetupScreenRoutes(r, cfg)

	// 2. Admin routes (API-key-protected)
	SetupAdminRoutes(r, cfg)
}
