package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/menuly/restaurant-admin/models"
)

// CategoryInput is the payload for category create/update calls.
type CategoryInput struct {
	RestaurantID string `json:"restaurantId,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsActive     *bool  `json:"isActive,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context, restaurantID string) ([]models.Category, error) {
	q := url.Values{"restaurantId": {restaurantID}}
	v, err := c.do(ctx, http.MethodGet, "/api/categories", q, nil, true)
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

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	v, err := c.do(ctx, http.MethodPost, "/api/categories", nil, in, true)
	if err != nil {
		return models.Category{}, err
	}
	return models.NormalizeCategory(unwrapRecord(v)), nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) (models.Category, error) {
	v, err := c.do(ctx, http.MethodPut, "/api/categories/"+id, nil, in, true)
	if err != nil {
		return models.Category{}, err
	}
	return models.NormalizeCategory(unwrapRecord(v)), nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil, true)
	return err
}
