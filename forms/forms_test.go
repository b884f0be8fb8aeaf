package forms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/menuly/restaurant-admin/client"
	"github.com/menuly/restaurant-admin/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductForm() ProductForm {
	return ProductForm{
		Name:        "Burger",
		CategoryID:  "c1",
		Price:       decimal.NewFromInt(10),
		Ingredients: "beef, bun",
	}
}

func TestProductFormValidation(t *testing.T) {
	assert.NoError(t, validProductForm().Validate().Err())

	f := validProductForm()
	f.Name = ""
	res := f.Validate()
	assert.ErrorIs(t, res.Err(), ErrValidation)
	assert.Contains(t, res.FieldErrors, "Name")

	f = validProductForm()
	f.Price = decimal.NewFromInt(-1)
	res = f.Validate()
	assert.ErrorIs(t, res.Err(), ErrValidation)
	assert.Contains(t, res.FieldErrors, "Price")
}

func TestDiscountDateInvariant(t *testing.T) {
	base := DiscountForm{
		Name:      "Happy Hour",
		RuleType:  models.RulePercentage,
		RuleValue: 10,
		Schedule: models.Schedule{
			StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	assert.NoError(t, base.Validate().Err())

	equal := base
	equal.Schedule.EndDate = equal.Schedule.StartDate
	res := equal.Validate()
	assert.ErrorIs(t, res.Err(), ErrValidation)
	assert.Contains(t, res.FieldErrors, "EndDate")

	inverted := base
	inverted.Schedule.EndDate = inverted.Schedule.StartDate.Add(-time.Hour)
	assert.ErrorIs(t, inverted.Validate().Err(), ErrValidation)

	badRule := base
	badRule.RuleType = "bogus"
	res = badRule.Validate()
	assert.Contains(t, res.FieldErrors, "RuleType")
}

func TestOfferSelectableProductsFilter(t *testing.T) {
	all := []models.Product{
		{ID: "p1", IsAvailable: true},
		{ID: "p2", IsAvailable: false},
		{ID: "p3", IsAvailable: true},
	}
	selectable := SelectableProducts(all)
	require.Len(t, selectable, 2)
	for _, p := range selectable {
		assert.True(t, p.IsAvailable)
	}
}

func TestOfferFormValidation(t *testing.T) {
	selectable := []models.Product{{ID: "p1", IsAvailable: true}}
	form := OfferForm{
		Title:      "Deal",
		Price:      decimal.NewFromInt(20),
		Products:   []models.OfferProduct{{ProductID: "p1", Quantity: 2, Unit: models.UnitNumber}},
		Selectable: selectable,
	}
	assert.NoError(t, form.Validate().Err())

	form.Products[0].Quantity = 0
	assert.ErrorIs(t, form.Validate().Err(), ErrValidation)

	form.Products[0].Quantity = 1
	form.Products[0].ProductID = "p2" // not in the selectable set
	res := form.Validate()
	assert.ErrorIs(t, res.Err(), ErrValidation)
	assert.Contains(t, res.FieldErrors["Products"], "available")
}

func TestDrawerCreateLifecycle(t *testing.T) {
	d := NewDrawer(nil)
	assert.Equal(t, DrawerClosed, d.State())

	d.OpenForCreate()
	assert.Equal(t, DrawerOpenForCreate, d.State())

	d.SetBuffer(validProductForm())
	err := d.Submit(context.Background(), func(ctx context.Context, f ProductForm) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, DrawerClosed, d.State())
	assert.Empty(t, d.Buffer().Name, "buffer clears on success")
}

func TestDrawerSubmitFailureKeepsBufferAndError(t *testing.T) {
	d := NewDrawer(nil)
	d.OpenForCreate()
	d.SetBuffer(validProductForm())

	apiErr := &client.APIError{Kind: client.KindHTTP, Status: 422,
		Body: map[string]any{"errors": []any{map[string]any{"field": "name", "message": "Taken"}}}}
	err := d.Submit(context.Background(), func(ctx context.Context, f ProductForm) error {
		return apiErr
	})
	require.Error(t, err)
	assert.Equal(t, DrawerOpenForCreate, d.State(), "failure returns to the prior open state")
	assert.Equal(t, "Burger", d.Buffer().Name, "buffer survives a failed submit")
	require.NotNil(t, d.Error())
	assert.Equal(t, "Please check the highlighted fields.", d.Error().Message)
	assert.Equal(t, "Taken", d.Error().FieldErrors["name"])
}

func TestDrawerLocalValidationBlocksNetwork(t *testing.T) {
	d := NewDrawer(nil)
	d.OpenForCreate()
	d.SetBuffer(ProductForm{}) // nothing filled in

	called := false
	err := d.Submit(context.Background(), func(ctx context.Context, f ProductForm) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, called, "invalid form must not reach the network")
	assert.Equal(t, DrawerOpenForCreate, d.State())
}

func TestDrawerEditRefetch(t *testing.T) {
	known := models.Product{ID: "p1", Name: "Stale Name", CategoryID: "c1"}
	fresh := models.Product{ID: "p1", Name: "Fresh Name", CategoryID: "c1"}

	d := NewDrawer(func(ctx context.Context, id string) (models.Product, error) {
		return fresh, nil
	})
	d.RefetchOnEdit = true
	d.OpenForEdit(context.Background(), known)
	assert.Equal(t, DrawerOpenForEdit, d.State())
	assert.Equal(t, "Fresh Name", d.Buffer().Name)

	// fetch failure falls back to the known listing row
	d2 := NewDrawer(func(ctx context.Context, id string) (models.Product, error) {
		return models.Product{}, errors.New("boom")
	})
	d2.RefetchOnEdit = true
	d2.OpenForEdit(context.Background(), known)
	assert.Equal(t, "Stale Name", d2.Buffer().Name)

	// flag off: no fetch at all
	d3 := NewDrawer(func(ctx context.Context, id string) (models.Product, error) {
		t.Fatal("fetch must not run when the flag is off")
		return models.Product{}, nil
	})
	d3.OpenForEdit(context.Background(), known)
	assert.Equal(t, "Stale Name", d3.Buffer().Name)
}

func TestHighlightAutoExpiry(t *testing.T) {
	h := NewHighlights(30 * time.Millisecond)
	defer h.Stop()

	h.Observe([]string{"p1"}, []string{"p1", "p2"})
	assert.False(t, h.Has("p1"), "pre-existing ids are not highlighted")
	assert.True(t, h.Has("p2"), "newly appeared id is highlighted immediately")

	// removal happens on its own, with no further Observe calls
	assert.Eventually(t, func() bool { return !h.Has("p2") },
		time.Second, 5*time.Millisecond)
}
