package models

import "github.com/shopspring/decimal"

// Product is the canonical client-side view of a menu product.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	Price       decimal.Decimal `json:"price"`
	Ingredients string          `json:"ingredients"` // comma-joined display string
	Image       string          `json:"image,omitempty"`
	IsAvailable bool            `json:"isAvailable"`
	IsNew       bool            `json:"isNew"`
}
