package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestNormalizeProductEmptyInput(t *testing.T) {
	p := NormalizeProduct(map[string]any{}, ListingDefault)
	assert.Equal(t, "", p.ID)
	assert.Equal(t, "", p.Name)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, "", p.CategoryID)
	assert.Equal(t, "", p.Ingredients)
	assert.True(t, p.Price.IsZero())
	assert.False(t, p.IsAvailable)
	assert.False(t, p.IsNew)
}

func TestNormalizeNilInputDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		NormalizeProduct(nil, ListingDefault)
		NormalizeCategory(nil)
		NormalizeOffer(nil)
		NormalizeDiscount(nil)
	})
}

func TestLocalizedNamePrecedence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"en wins", `{"name":{"en":"A","ar":"B"}}`, "A"},
		{"ar fallback", `{"name":{"ar":"B"}}`, "B"},
		{"de fallback", `{"name":{"de":"C"}}`, "C"},
		{"plain string", `{"name":"C"}`, "C"},
		{"missing", `{}`, ""},
		{"wrong type", `{"name":42}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizeProduct(decode(t, tt.raw), ListingDefault)
			assert.Equal(t, tt.want, p.Name)
		})
	}
}

func TestAvailabilityResolution(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		lc   ListingContext
		want bool
	}{
		{"nested true", `{"availability":{"isAvailable":true}}`, ListingDefault, true},
		{"flat true", `{"isAvailable":true}`, ListingDefault, true},
		// The OR-rule: a true flat field wins even when the nested one
		// says false. Preserved as observed backend behavior.
		{"nested false flat true", `{"availability":{"isAvailable":false},"isAvailable":true}`, ListingDefault, true},
		{"nested true flat false", `{"availability":{"isAvailable":true},"isAvailable":false}`, ListingDefault, true},
		{"both false", `{"availability":{"isAvailable":false},"isAvailable":false}`, ListingDefault, false},
		{"absent default context", `{}`, ListingDefault, false},
		{"absent management context", `{}`, ListingManagement, true},
		{"explicit false management context", `{"isAvailable":false}`, ListingManagement, false},
		{"non-bool value", `{"isAvailable":"yes"}`, ListingDefault, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizeProduct(decode(t, tt.raw), tt.lc)
			assert.Equal(t, tt.want, p.IsAvailable)
		})
	}
}

func TestIngredientsResolution(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"allergens array wins", `{"allergens":["nuts","milk"],"ingredients":["x"]}`, "nuts, milk"},
		{"ingredients array", `{"ingredients":["salt","pepper"]}`, "salt, pepper"},
		{"ingredients string passthrough", `{"ingredients":"salt, pepper"}`, "salt, pepper"},
		{"allergens string passthrough", `{"allergens":"nuts"}`, "nuts"},
		{"missing", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizeProduct(decode(t, tt.raw), ListingDefault)
			assert.Equal(t, tt.want, p.Ingredients)
		})
	}
}

func TestImageAndIsNewAndCategoryRef(t *testing.T) {
	raw := decode(t, `{
		"images": ["first.png", "second.png"],
		"image": "legacy.png",
		"isNewItem": true,
		"categoryId": {"_id": "cat-1", "name": "Starters"}
	}`)
	p := NormalizeProduct(raw, ListingDefault)
	assert.Equal(t, "first.png", p.Image)
	assert.True(t, p.IsNew)
	assert.Equal(t, "cat-1", p.CategoryID)

	p = NormalizeProduct(decode(t, `{"image":"legacy.png","isNew":true,"categoryId":"cat-2"}`), ListingDefault)
	assert.Equal(t, "legacy.png", p.Image)
	assert.True(t, p.IsNew)
	assert.Equal(t, "cat-2", p.CategoryID)
}

func TestNormalizeProductPrice(t *testing.T) {
	p := NormalizeProduct(decode(t, `{"price": 12.5}`), ListingDefault)
	assert.Equal(t, "12.5", p.Price.String())

	p = NormalizeProduct(decode(t, `{"price": "9.99"}`), ListingDefault)
	assert.Equal(t, "9.99", p.Price.String())

	p = NormalizeProduct(decode(t, `{"price": "not a number"}`), ListingDefault)
	assert.True(t, p.Price.IsZero())
}

func TestNormalizeOffer(t *testing.T) {
	raw := decode(t, `{
		"_id": "offer-1",
		"title": {"en": "Family Deal"},
		"price": 30,
		"isAvailable": true,
		"products": [
			{"productId": "p1", "quantity": 2, "unit": "Number"},
			{"productId": {"_id": "p2"}, "quantity": 0.5, "unit": "KG"},
			{"productId": "p3", "quantity": -1, "unit": "boxes"},
			"garbage"
		]
	}`)
	o := NormalizeOffer(raw)
	assert.Equal(t, "offer-1", o.ID)
	assert.Equal(t, "Family Deal", o.Title)
	assert.True(t, o.IsAvailable)
	require.Len(t, o.Products, 3)
	assert.Equal(t, OfferProduct{ProductID: "p1", Quantity: 2, Unit: UnitNumber}, o.Products[0])
	assert.Equal(t, OfferProduct{ProductID: "p2", Quantity: 0.5, Unit: UnitKG}, o.Products[1])
	// invalid quantity clamps to 1, unknown unit falls back to None
	assert.Equal(t, OfferProduct{ProductID: "p3", Quantity: 1, Unit: UnitNone}, o.Products[2])
}

func TestNormalizeDiscount(t *testing.T) {
	raw := decode(t, `{
		"id": "d1",
		"name": {"en": "Happy Hour", "ar": "x"},
		"rule": {"type": "fixed", "value": 5},
		"target": {"type": "products", "productIds": ["p1", {"_id": "p2"}]},
		"schedule": {"startDate": "2026-01-01T00:00:00Z", "endDate": "2026-02-01T00:00:00Z"},
		"isActive": true,
		"isPublic": true,
		"usageCount": 7
	}`)
	d := NormalizeDiscount(raw)
	assert.Equal(t, "d1", d.ID)
	assert.Equal(t, "Happy Hour", d.Name)
	assert.Equal(t, DiscountRule{Type: RuleFixed, Value: 5}, d.Rule)
	assert.Equal(t, []string{"p1", "p2"}, d.ProductIDs)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), d.Schedule.StartDate)
	assert.True(t, d.IsActive)
	assert.True(t, d.IsPublic)
	assert.Equal(t, 7, d.UsageCount)

	empty := NormalizeDiscount(map[string]any{})
	assert.Equal(t, RulePercentage, empty.Rule.Type)
	assert.Empty(t, empty.ProductIDs)
	assert.True(t, empty.Schedule.StartDate.IsZero())
}

func TestNormalizeCategory(t *testing.T) {
	c := NormalizeCategory(decode(t, `{"_id":"c1","name":{"ar":"سلطات"},"isActive":true}`))
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "سلطات", c.Name)
	assert.True(t, c.IsActive)
}
