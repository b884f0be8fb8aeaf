package client

import (
	"context"
	"sync"

	"github.com/menuly/restaurant-admin/models"
)

// Collection tags used as cache invalidation targets.
const (
	CollectionProducts   = "products"
	CollectionCategories = "categories"
	CollectionOffers     = "offers"
	CollectionDiscounts  = "discounts"
)

// Catalog is the cached data layer over the raw Client. Lists are
// read-through cached per (collection, restaurant, language); every
// mutation invalidates its collection so the next read refetches.
// Reads already in flight when a mutation commits may still return
// pre-mutation data; freshness is restored by the next read or poll
// cycle. The public reads always refetch (the display poller owns
// their schedule) but share in-flight calls and keep stale data on
// failure.
type Catalog struct {
	api   *Client
	cache *Cache

	mu       sync.RWMutex
	language string
}

// NewCatalog wires a Client to a Cache. language keys the cached
// entries; it follows the display language.
func NewCatalog(api *Client, cache *Cache, language string) *Catalog {
	if cache == nil {
		cache = NewCache()
	}
	return &Catalog{api: api, cache: cache, language: language}
}

// SetLanguage switches the cache key space to another language.
func (c *Catalog) SetLanguage(lang string) {
	c.mu.Lock()
	c.language = lang
	c.mu.Unlock()
}

func (c *Catalog) key(collection, restaurantID string) Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Key{Collection: collection, RestaurantID: restaurantID, Language: c.language}
}

// Cached, authenticated lists for the management screens.

func (c *Catalog) ListProducts(ctx context.Context, restaurantID string) ([]models.Product, error) {
	v, err := c.cache.Fetch(ctx, c.key(CollectionProducts, restaurantID), func(ctx context.Context) (any, error) {
		return c.api.ListProducts(ctx, restaurantID)
	})
	return castList[models.Product](v), err
}

func (c *Catalog) ListCategories(ctx context.Context, restaurantID string) ([]models.Category, error) {
	v, err := c.cache.Fetch(ctx, c.key(CollectionCategories, restaurantID), func(ctx context.Context) (any, error) {
		return c.api.ListCategories(ctx, restaurantID)
	})
	return castList[models.Category](v), err
}

func (c *Catalog) ListOffers(ctx context.Context, restaurantID string) ([]models.Offer, error) {
	v, err := c.cache.Fetch(ctx, c.key(CollectionOffers, restaurantID), func(ctx context.Context) (any, error) {
		return c.api.ListOffers(ctx, restaurantID)
	})
	return castList[models.Offer](v), err
}

func (c *Catalog) ListDiscounts(ctx context.Context, restaurantID string) ([]models.Discount, error) {
	v, err := c.cache.Fetch(ctx, c.key(CollectionDiscounts, restaurantID), func(ctx context.Context) (any, error) {
		return c.api.ListDiscounts(ctx, restaurantID)
	})
	return castList[models.Discount](v), err
}

// Mutations: delegate to the API, then invalidate the collection so
// the next read reflects the change.

func (c *Catalog) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	p, err := c.api.CreateProduct(ctx, in)
	if err == nil {
		c.cache.Invalidate(CollectionProducts)
	}
	return p, err
}

func (c *Catalog) UpdateProduct(ctx context.Context, id string, in ProductInput) (models.Product, error) {
	p, err := c.api.UpdateProduct(ctx, id, in)
	if err == nil {
		c.cache.Invalidate(CollectionProducts)
	}
	return p, err
}

func (c *Catalog) UpdateProductAvailability(ctx context.Context, id string, in AvailabilityInput) (models.Product, error) {
	p, err := c.api.UpdateProductAvailability(ctx, id, in)
	if err == nil {
		c.cache.Invalidate(CollectionProducts)
	}
	return p, err
}

func (c *Catalog) DeleteProduct(ctx context.Context, id string) error {
	err := c.api.DeleteProduct(ctx, id)
	if err == nil {
		c.cache.Invalidate(CollectionProducts)
	}
	return err
}

func (c *Catalog) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	cat, err := c.api.CreateCategory(ctx, in)
	if err == nil {
		c.cache.Invalidate(CollectionCategories)
	}
	return cat, err
}

func (c *Catalog) UpdateCategory(ctx context.Context, id string, in CategoryInput) (models.Category, error) {
	cat, err := c.api.UpdateCategory(ctx, id, in)
	if err == nil {
		c.cache.Invalidate(CollectionCategories)
	}
	return cat, err
}

func (c *Catalog) DeleteCategory(ctx context.Context, id string) error {
	err := c.api.DeleteCategory(ctx, id)
	if err == nil {
		c.cache.Invalidate(CollectionCategories)
	}
	return err
}

func (c *Catalog) CreateOffer(ctx context.Context, in OfferInput) (models.Offer, error) {
	o, err := c.api.CreateOffer(ctx, in)
	if err == nil {
		c.cache.Invalidate(CollectionOffers)
	}
	return o, err
}

func (c *Catalog) UpdateOffer(ctx context.Context, id string, in OfferInput) (models.Offer, error) {
	o, err := c.api.UpdateOffer(ctx, id, in)
	if err == nil {
		c.cache.Invalidate(CollectionOffers)
	}
	return o, err
}

func (c *Catalog) ToggleOffer(ctx context.Context, id string, isAvailable bool) (models.Offer, error) {
	o, err := c.api.ToggleOffer(ctx, id, isAvailable)
	if err == nil {
		c.cache.Invalidate(CollectionOffers)
	}
	return o, err
}

func (c *Catalog) DeleteOffer(ctx context.Context, id string) error {
	err := c.api.DeleteOffer(ctx, id)
	if err == nil {
		c.cache.Invalidate(CollectionOffers)
	}
	return err
}

func (c *Catalog) CreateDiscount(ctx context.Context, in DiscountInput) (models.Discount, error) {
	d, err := c.api.CreateDiscount(ctx, in)
	if err == nil {
		c.cache.Invalidate(CollectionDiscounts)
	}
	return d, err
}

func (c *Catalog) UpdateDiscount(ctx context.Context, id string, in DiscountInput) (models.Discount, error) {
	d, err := c.api.UpdateDiscount(ctx, id, in)
	if err == nil {
		c.cache.Invalidate(CollectionDiscounts)
	}
	return d, err
}

func (c *Catalog) DeleteDiscount(ctx context.Context, id string) error {
	err := c.api.DeleteDiscount(ctx, id)
	if err == nil {
		c.cache.Invalidate(CollectionDiscounts)
	}
	return err
}

// Public reads for the display poller. Always refetched on the
// poller's schedule; redundant concurrent triggers coalesce and a
// failure keeps the last good snapshot flowing.

func (c *Catalog) PublicProducts(ctx context.Context, restaurantID string) ([]models.Product, error) {
	v, err := c.cache.Refresh(ctx, c.key("public."+CollectionProducts, restaurantID), func(ctx context.Context) (any, error) {
		return c.api.PublicProducts(ctx, restaurantID)
	})
	return castList[models.Product](v), err
}

func (c *Catalog) PublicCategories(ctx context.Context, restaurantID string) ([]models.Category, error) {
	v, err := c.cache.Refresh(ctx, c.key("public."+CollectionCategories, restaurantID), func(ctx context.Context) (any, error) {
		return c.api.PublicCategories(ctx, restaurantID)
	})
	return castList[models.Category](v), err
}

func (c *Catalog) PublicOffers(ctx context.Context, restaurantID string) ([]models.Offer, error) {
	v, err := c.cache.Refresh(ctx, c.key("public."+CollectionOffers, restaurantID), func(ctx context.Context) (any, error) {
		return c.api.PublicOffers(ctx, restaurantID)
	})
	return castList[models.Offer](v), err
}

func (c *Catalog) PublicDiscounts(ctx context.Context, restaurantID string) ([]models.Discount, error) {
	v, err := c.cache.Refresh(ctx, c.key("public."+CollectionDiscounts, restaurantID), func(ctx context.Context) (any, error) {
		return c.api.PublicDiscounts(ctx, restaurantID)
	})
	return castList[models.Discount](v), err
}

// PublicRestaurant is uncached: it runs once per restaurant change
// under the poller's abortable context.
func (c *Catalog) PublicRestaurant(ctx context.Context, restaurantID string) (models.RestaurantInfo, error) {
	return c.api.PublicRestaurant(ctx, restaurantID)
}

func castList[T any](v any) []T {
	items, _ := v.([]T)
	return items
}
