package client

import (
	"context"
	"net/http"

	"github.com/menuly/restaurant-admin/models"
)

// Public reads back the unauthenticated display-screen endpoints. No
// bearer token is attached; the restaurant id is part of the path.

func (c *Client) PublicProducts(ctx context.Context, restaurantID string) ([]models.Product, error) {
	v, err := c.do(ctx, http.MethodGet, "/api/public/products/"+restaurantID, nil, nil, false)
	if err != nil {
		return nil, err
	}
	raws := unwrapList(v, "products")
	out := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		out = append(out, models.NormalizeProduct(raw, models.ListingDefault))
	}
	return out, nil
}

func (c *Client) PublicCategories(ctx context.Context, restaurantID string) ([]models.Category, error) {
	v, err := c.do(ctx, http.MethodGet, "/api/public/categories/"+restaurantID, nil, nil, false)
	if err != nil {
		return nil, err
	}
	raws := unwrapList(v, "categories")
	out := make([]models.Category, 0, len(raws))
	for _, raw := range raws {
		out = append(out, models.NormalizeCategory(raw))
	}
	return out, nil
}

func (c *Client) PublicDiscounts(ctx context.Context, restaurantID string) ([]models.Discount, error) {
	v, err := c.do(ctx, http.MethodGet, "/api/public/discounts/"+restaurantID, nil, nil, false)
	if err != nil {
		return nil, err
	}
	raws := unwrapList(v, "discounts")
	out := make([]models.Discount, 0, len(raws))
	for _, raw := range raws {
		out = append(out, models.NormalizeDiscount(raw))
	}
	return out, nil
}

func (c *Client) PublicOffers(ctx context.Context, restaurantID string) ([]models.Offer, error) {
	v, err := c.do(ctx, http.MethodGet, "/api/public/offers/"+restaurantID, nil, nil, false)
	if err != nil {
		return nil, err
	}
	raws := unwrapList(v, "offers")
	out := make([]models.Offer, 0, len(raws))
	for _, raw := range raws {
		out = append(out, models.NormalizeOffer(raw))
	}
	return out, nil
}

// PublicRestaurant fetches display details (name, phone, cuisine) for
// the screen header. Callers tie ctx to the screen's lifetime so a
// torn-down screen aborts the request.
func (c *Client) PublicRestaurant(ctx context.Context, restaurantID string) (models.RestaurantInfo, error) {
	v, err := c.do(ctx, http.MethodGet, "/api/public/restaurants/"+restaurantID, nil, nil, false)
	if err != nil {
		return models.RestaurantInfo{}, err
	}
	return models.NormalizeRestaurantInfo(unwrapRecord(v)), nil
}
