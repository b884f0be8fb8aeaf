package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/menuly/restaurant-admin/models"
)

// Localized is a per-language value the discount endpoints expect for
// name and description fields.
type Localized struct {
	EN string `json:"en"`
	AR string `json:"ar,omitempty"`
	DE string `json:"de,omitempty"`
}

// DiscountInput is the payload for discount create/update calls.
type DiscountInput struct {
	RestaurantID string     `json:"restaurantId,omitempty"`
	Name         Localized  `json:"name"`
	Description  *Localized `json:"description,omitempty"`
	Rule         struct {
		Type  string  `json:"type"`
		Value float64 `json:"value"`
	} `json:"rule"`
	Target struct {
		Type       string   `json:"type"`
		ProductIDs []string `json:"productIds"`
	} `json:"target"`
	Schedule struct {
		StartDate time.Time `json:"startDate"`
		EndDate   time.Time `json:"endDate"`
	} `json:"schedule"`
	IsActive *bool `json:"isActive,omitempty"`
	IsPublic *bool `json:"isPublic,omitempty"`
}

func (c *Client) ListDiscounts(ctx context.Context, restaurantID string) ([]models.Discount, error) {
	q := url.Values{"restaurantId": {restaurantID}}
	v, err := c.do(ctx, http.MethodGet, "/api/discounts", q, nil, true)
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

func (c *Client) CreateDiscount(ctx context.Context, in DiscountInput) (models.Discount, error) {
	v, err := c.do(ctx, http.MethodPost, "/api/discounts", nil, in, true)
	if err != nil {
		return models.Discount{}, err
	}
	return models.NormalizeDiscount(unwrapRecord(v)), nil
}

func (c *Client) UpdateDiscount(ctx context.Context, id string, in DiscountInput) (models.Discount, error) {
	v, err := c.do(ctx, http.MethodPut, "/api/discounts/"+id, nil, in, true)
	if err != nil {
		return models.Discount{}, err
	}
	return models.NormalizeDiscount(unwrapRecord(v)), nil
}

func (c *Client) DeleteDiscount(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/discounts/"+id, nil, nil, true)
	return err
}
