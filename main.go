package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/menuly/restaurant-admin/client"
	"github.com/menuly/restaurant-admin/display"
	"github.com/menuly/restaurant-admin/routes"
	"github.com/menuly/restaurant-admin/store"
)

func main() {
	log.Println("✅ Starting display-screen server...")

	// Load environment variables
	_ = godotenv.Load()

	apiBaseURL := envOr("API_BASE_URL", "http://localhost:4000")
	menuBaseURL := envOr("MENU_BASE_URL", "http://localhost:8080")
	restaurantID := os.Getenv("RESTAURANT_ID")
	if restaurantID == "" {
		log.Fatal("❌ RESTAURANT_ID is required")
	}

	// Device-local settings (token, language, QR batch)
	st, err := store.Open(envOr("SETTINGS_DB", "menuly-settings.db"))
	if err != nil {
		log.Fatalf("❌ Failed to open settings store: %v", err)
	}

	// Upstream API client, collection cache, display poller
	api := client.New(apiBaseURL, st)
	catalog := client.NewCatalog(api, client.NewCache(), st.Language())
	poller := display.NewPoller(catalog, display.SystemClock, restaurantID, st.Language())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Config{
		Poller:       poller,
		Catalog:      catalog,
		Store:        st,
		MenuBaseURL:  menuBaseURL,
		RestaurantID: restaurantID,
	})

	// Start server
	port := envOr("PORT", "8080")
	log.Printf("🚀 Display server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
