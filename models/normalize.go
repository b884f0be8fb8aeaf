package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ListingContext selects the availability policy for records whose
// payload carries no availability information at all. The management
// listing historically treated such products as available; every other
// read context treats them as unavailable. Both behaviors are kept.
type ListingContext int

const (
	ListingDefault ListingContext = iota
	ListingManagement
)

// NormalizeCategory converts a raw backend record of any historical
// shape into a Category. It never panics; missing or malformed fields
// degrade to zero values.
func NormalizeCategory(raw map[string]any) Category {
	return Category{
		ID:          recordID(raw),
		Name:        localized(raw["name"]),
		Description: localized(raw["description"]),
		Image:       imageOf(raw),
		IsActive:    truthy(raw["isActive"]),
	}
}

// NormalizeProduct converts a raw backend record into a Product.
//
// The backend has shipped several shapes for the same fields over time:
// name/description as plain strings or as {en,ar,de} objects,
// availability as a flat isAvailable or nested under availability,
// ingredients as an allergens array, an ingredients array, or a
// pre-joined string, and categoryId as an id string or a populated
// object. All of them are accepted here.
func NormalizeProduct(raw map[string]any, lc ListingContext) Product {
	return Product{
		ID:          recordID(raw),
		Name:        localized(raw["name"]),
		Description: localized(raw["description"]),
		CategoryID:  referenceID(raw["categoryId"]),
		Price:       money(raw["price"]),
		Ingredients: ingredientsOf(raw),
		Image:       imageOf(raw),
		IsAvailable: availabilityOf(raw, lc),
		IsNew:       truthy(first(raw["isNewItem"], raw["isNew"])),
	}
}

// NormalizeOffer converts a raw backend record into an Offer. Nested
// product references are resolved with the same rules as products.
func NormalizeOffer(raw map[string]any) Offer {
	o := Offer{
		ID:          recordID(raw),
		Title:       localized(first(raw["title"], raw["name"])),
		Description: localized(raw["description"]),
		Image:       imageOf(raw),
		Price:       money(raw["price"]),
		Products:    []OfferProduct{},
		IsAvailable: availabilityOf(raw, ListingDefault),
	}
	items, _ := raw["products"].([]any)
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		qty := number(m["quantity"])
		if qty <= 0 {
			qty = 1
		}
		o.Products = append(o.Products, OfferProduct{
			ProductID: referenceID(first(m["productId"], m["product"])),
			Quantity:  qty,
			Unit:      unitOf(m["unit"]),
		})
	}
	return o
}

// NormalizeDiscount converts a raw backend record into a Discount.
func NormalizeDiscount(raw map[string]any) Discount {
	d := Discount{
		ID:         recordID(raw),
		Name:       localized(raw["name"]),
		ProductIDs: []string{},
		IsActive:   truthy(raw["isActive"]),
		IsPublic:   truthy(raw["isPublic"]),
		UsageCount: int(number(raw["usageCount"])),
	}
	if rule, ok := raw["rule"].(map[string]any); ok {
		d.Rule.Type = ruleType(rule["type"])
		d.Rule.Value = number(rule["value"])
	} else {
		d.Rule.Type = RulePercentage
	}
	if target, ok := raw["target"].(map[string]any); ok {
		if ids, ok := target["productIds"].([]any); ok {
			for _, id := range ids {
				if s := referenceID(id); s != "" {
					d.ProductIDs = append(d.ProductIDs, s)
				}
			}
		}
	}
	if sched, ok := raw["schedule"].(map[string]any); ok {
		d.Schedule.StartDate = timestamp(sched["startDate"])
		d.Schedule.EndDate = timestamp(sched["endDate"])
	}
	return d
}

// localized resolves a field that may be a plain string or an object
// keyed by language code. Precedence for objects: en, then ar, then de.
func localized(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		for _, lang := range []string{"en", "ar", "de"} {
			if s, ok := t[lang].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// availabilityOf implements the OR-rule: a product is available when
// either availability.isAvailable or the flat isAvailable is true.
// Under ListingManagement a record with neither field present defaults
// to available instead of unavailable.
func availabilityOf(raw map[string]any, lc ListingContext) bool {
	nested, hasNested := raw["availability"].(map[string]any)
	var nestedVal any
	if hasNested {
		nestedVal, hasNested = nested["isAvailable"]
	}
	flatVal, hasFlat := raw["isAvailable"]

	if hasNested && nestedVal == true {
		return true
	}
	if hasFlat && flatVal == true {
		return true
	}
	if !hasNested && !hasFlat && lc == ListingManagement {
		return true
	}
	return false
}

func ingredientsOf(raw map[string]any) string {
	if arr, ok := raw["allergens"].([]any); ok {
		return joinStrings(arr)
	}
	if arr, ok := raw["ingredients"].([]any); ok {
		return joinStrings(arr)
	}
	if s, ok := raw["ingredients"].(string); ok {
		return s
	}
	if s, ok := raw["allergens"].(string); ok {
		return s
	}
	return ""
}

func imageOf(raw map[string]any) string {
	if arr, ok := raw["images"].([]any); ok && len(arr) > 0 {
		if s, ok := arr[0].(string); ok {
			return s
		}
	}
	if s, ok := raw["image"].(string); ok {
		return s
	}
	return ""
}

// recordID pulls the record's own id, tolerating both Mongo-style _id
// and a plain id field.
func recordID(raw map[string]any) string {
	if s, ok := raw["_id"].(string); ok {
		return s
	}
	if s, ok := raw["id"].(string); ok {
		return s
	}
	return ""
}

// referenceID resolves a foreign-key field that may be an id string or
// a populated object with its own _id.
func referenceID(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		return recordID(t)
	}
	return ""
}

func money(v any) decimal.Decimal {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case string:
		if d, err := decimal.NewFromString(t); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func number(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if d, err := decimal.NewFromString(t); err == nil {
			f, _ := d.Float64()
			return f
		}
	}
	return 0
}

// truthy mirrors loose boolean coercion: non-empty strings, non-zero
// numbers and true are truthy, everything else is not.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return false
}

// first returns the first non-nil argument.
func first(vals ...any) any {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func joinStrings(arr []any) string {
	parts := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func unitOf(v any) string {
	switch v {
	case UnitNumber, UnitKG, UnitNone:
		return v.(string)
	}
	return UnitNone
}

func ruleType(v any) string {
	switch v {
	case RulePercentage, RuleFixed:
		return v.(string)
	}
	return RulePercentage
}

func timestamp(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
