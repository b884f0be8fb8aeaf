package models

import "github.com/shopspring/decimal"

// Unit of measure for a product inside an offer bundle.
const (
	UnitNumber = "Number"
	UnitKG     = "KG"
	UnitNone   = "None"
)

// OfferProduct is one line of an offer bundle.
type OfferProduct struct {
	ProductID string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

// Offer is the canonical client-side view of a promotional offer.
type Offer struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Products    []OfferProduct  `json:"products"`
	IsAvailable bool            `json:"isAvailable"`
}
