package models

import "time"

// Reward is a loyalty reward. Rewards live only in process memory —
// there is no backend persistence for them.
type Reward struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Points   int       `json:"points"` // positive threshold
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`
	Active   bool      `json:"active"`
	Claimed  bool      `json:"claimed"`
}
