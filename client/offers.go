package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/menuly/restaurant-admin/models"
	"github.com/shopspring/decimal"
)

// OfferInput is the payload for offer create/update calls.
type OfferInput struct {
	RestaurantID string                `json:"restaurantId,omitempty"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	Image        string                `json:"image,omitempty"`
	Price        decimal.Decimal       `json:"price"`
	Products     []models.OfferProduct `json:"products"`
	IsAvailable  *bool                 `json:"isAvailable,omitempty"`
}

func (c *Client) ListOffers(ctx context.Context, restaurantID string) ([]models.Offer, error) {
	q := url.Values{"restaurantId": {restaurantID}}
	v, err := c.do(ctx, http.MethodGet, "/api/offers", q, nil, true)
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

func (c *Client) CreateOffer(ctx context.Context, in OfferInput) (models.Offer, error) {
	v, err := c.do(ctx, http.MethodPost, "/api/offers", nil, in, true)
	if err != nil {
		return models.Offer{}, err
	}
	return models.NormalizeOffer(unwrapRecord(v)), nil
}

func (c *Client) UpdateOffer(ctx context.Context, id string, in OfferInput) (models.Offer, error) {
	v, err := c.do(ctx, http.MethodPut, "/api/offers/"+id, nil, in, true)
	if err != nil {
		return models.Offer{}, err
	}
	return models.NormalizeOffer(unwrapRecord(v)), nil
}

// ToggleOffer flips an offer's availability without touching the rest
// of the record.
func (c *Client) ToggleOffer(ctx context.Context, id string, isAvailable bool) (models.Offer, error) {
	body := map[string]any{"isAvailable": isAvailable}
	v, err := c.do(ctx, http.MethodPut, "/api/offers/"+id+"/toggle", nil, body, true)
	if err != nil {
		return models.Offer{}, err
	}
	return models.NormalizeOffer(unwrapRecord(v)), nil
}

func (c *Client) DeleteOffer(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/offers/"+id, nil, nil, true)
	return err
}
