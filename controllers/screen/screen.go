package screencontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menuly/restaurant-admin/display"
	"github.com/menuly/restaurant-admin/models"
)

// LanguageSink receives display-language changes: the settings store
// persists them, the catalog re-keys its cache.
type LanguageSink interface {
	SetLanguage(lang string)
}

// CategorySection is one rendered menu section: a category and its
// available products.
type CategorySection struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
}

// ScreenView is the combined snapshot the display screen renders.
type ScreenView struct {
	Restaurant models.RestaurantInfo `json:"restaurant"`
	Sections   []CategorySection     `json:"sections"`
	Offers     []models.Offer        `json:"offers"`
	Discounts  []models.Discount     `json:"discounts"`
	Language   string                `json:"language"`
	UpdatedAt  string                `json:"updatedAt"`
}

// GetScreen renders the latest snapshot: available products grouped
// under their active categories, available offers and active public
// discounts. Unavailable items never reach the screen.
func GetScreen(p *display.Poller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, BuildView(p.Snapshot()))
	}
}

// BuildView assembles the rendered view from a raw snapshot.
func BuildView(snap display.Snapshot) ScreenView {
	view := ScreenView{
		Restaurant: snap.Restaurant,
		Sections:   []CategorySection{},
		Offers:     []models.Offer{},
		Discounts:  []models.Discount{},
		Language:   snap.Language,
	}
	if !snap.UpdatedAt.IsZero() {
		view.UpdatedAt = snap.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	byCategory := map[string][]models.Product{}
	for _, p := range snap.Products {
		if p.IsAvailable {
			byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
		}
	}
	for _, cat := range snap.Categories {
		if !cat.IsActive {
			continue
		}
		products := byCategory[cat.ID]
		if len(products) == 0 {
			continue
		}
		view.Sections = append(view.Sections, CategorySection{Category: cat, Products: products})
	}
	for _, o := range snap.Offers {
		if o.IsAvailable {
			view.Offers = append(view.Offers, o)
		}
	}
	for _, d := range snap.Discounts {
		if d.IsActive && d.IsPublic {
			view.Discounts = append(view.Discounts, d)
		}
	}
	return view
}

// SetLanguage switches the display language and triggers a refetch so
// localized fields re-resolve in the new language.
func SetLanguage(p *display.Poller, sinks ...LanguageSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Language string `json:"language" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "language is required"})
			return
		}
		for _, sink := range sinks {
			sink.SetLanguage(body.Language)
		}
		p.SetLanguage(body.Language)
		c.JSON(http.StatusOK, gin.H{"language": body.Language})
	}
}

// Health reports when the snapshot was last refreshed.
func Health(p *display.Poller) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := p.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"updatedAt": snap.UpdatedAt,
		})
	}
}
