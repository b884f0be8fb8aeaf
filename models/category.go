package models

// Category is the canonical client-side view of a menu category,
// independent of whichever wire shape the backend returned it in.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	IsActive    bool   `json:"isActive"`
}
