package models

// RestaurantInfo is the display header data for the public screen. A
// copy is cached on the device so the screen can render a name before
// the first successful fetch.
type RestaurantInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Cuisine string `json:"cuisine,omitempty"`
}

// NormalizeRestaurantInfo applies the usual tolerant field rules to a
// raw restaurant record.
func NormalizeRestaurantInfo(raw map[string]any) RestaurantInfo {
	info := RestaurantInfo{
		ID:      recordID(raw),
		Name:    localized(raw["name"]),
		Cuisine: localized(raw["cuisine"]),
	}
	if s, ok := raw["phone"].(string); ok {
		info.Phone = s
	}
	return info
}
