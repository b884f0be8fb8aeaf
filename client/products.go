package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/menuly/restaurant-admin/models"
	"github.com/shopspring/decimal"
)

// ProductInput is the payload for product create/update calls.
type ProductInput struct {
	RestaurantID string          `json:"restaurantId,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"categoryId"`
	Price        decimal.Decimal `json:"price"`
	Ingredients  string          `json:"ingredients,omitempty"`
	Image        string          `json:"image,omitempty"`
	IsAvailable  *bool           `json:"isAvailable,omitempty"`
	IsNew        *bool           `json:"isNewItem,omitempty"`
}

// AvailabilityInput updates only a product's availability, leaving the
// rest of the record untouched (separate endpoint upstream).
type AvailabilityInput struct {
	IsAvailable       bool `json:"isAvailable"`
	StockQuantity     *int `json:"stockQuantity,omitempty"`
	LowStockThreshold *int `json:"lowStockThreshold,omitempty"`
}

// ListProducts returns the management listing, which resolves a record
// with no availability information as available.
func (c *Client) ListProducts(ctx context.Context, restaurantID string) ([]models.Product, error) {
	q := url.Values{"restaurantId": {restaurantID}}
	v, err := c.do(ctx, http.MethodGet, "/api/products", q, nil, true)
	if err != nil {
		return nil, err
	}
	raws := unwrapList(v, "products")
	out := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		out = append(out, models.NormalizeProduct(raw, models.ListingManagement))
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (models.Product, error) {
	v, err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, nil, true)
	if err != nil {
		return models.Product{}, err
	}
	return models.NormalizeProduct(unwrapRecord(v), models.ListingDefault), nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	v, err := c.do(ctx, http.MethodPost, "/api/products", nil, in, true)
	if err != nil {
		return models.Product{}, err
	}
	return models.NormalizeProduct(unwrapRecord(v), models.ListingDefault), nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (models.Product, error) {
	v, err := c.do(ctx, http.MethodPut, "/api/products/"+id, nil, in, true)
	if err != nil {
		return models.Product{}, err
	}
	return models.NormalizeProduct(unwrapRecord(v), models.ListingDefault), nil
}

func (c *Client) UpdateProductAvailability(ctx context.Context, id string, in AvailabilityInput) (models.Product, error) {
	v, err := c.do(ctx, http.MethodPut, "/api/products/"+id+"/availability", nil, in, true)
	if err != nil {
		return models.Product{}, err
	}
	return models.NormalizeProduct(unwrapRecord(v), models.ListingDefault), nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil, true)
	return err
}
