package models

import "time"

// Discount rule kinds.
const (
	RulePercentage = "percentage"
	RuleFixed      = "fixed"
)

// DiscountRule describes how a discount is applied.
type DiscountRule struct {
	Type  string  `json:"type"` // percentage | fixed
	Value float64 `json:"value"`
}

// Schedule bounds a discount in time.
type Schedule struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Discount is the canonical client-side view of a discount.
type Discount struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Rule       DiscountRule `json:"rule"`
	ProductIDs []string     `json:"productIds"`
	Schedule   Schedule     `json:"schedule"`
	IsActive   bool         `json:"isActive"`
	IsPublic   bool         `json:"isPublic"`
	UsageCount int          `json:"usageCount"`
}
