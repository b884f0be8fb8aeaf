package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/menuly/restaurant-admin/models"
	"github.com/shopspring/decimal"
)

// ErrValidation marks a local pre-submission failure. Validation
// failures never reach the network layer.
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

// ValidationResult carries per-field messages for inline display.
type ValidationResult struct {
	FieldErrors map[string]string
}

func (r ValidationResult) ok() bool { return len(r.FieldErrors) == 0 }

// Err returns ErrValidation when any field failed, nil otherwise.
func (r ValidationResult) Err() error {
	if r.ok() {
		return nil
	}
	return ErrValidation
}

// ProductForm is the edit buffer behind the product drawer.
type ProductForm struct {
	Name        string `validate:"required"`
	Description string
	CategoryID  string `validate:"required"`
	Price       decimal.Decimal
	Ingredients string `validate:"required"`
	Image       string
	IsAvailable bool
}

// Validate checks the buffer before any network call. Price must be a
// finite, non-negative amount; the server stays authoritative beyond
// that.
func (f ProductForm) Validate() ValidationResult {
	res := structErrors(f)
	if f.Price.IsNegative() {
		res.FieldErrors["Price"] = "Price must be zero or more"
	}
	return res
}

// DiscountForm is the edit buffer behind the discount drawer.
type DiscountForm struct {
	Name       string `validate:"required"`
	RuleType   string `validate:"required,oneof=percentage fixed"`
	RuleValue  float64
	ProductIDs []string
	Schedule   models.Schedule
	IsPublic   bool
}

func (f DiscountForm) Validate() ValidationResult {
	res := structErrors(f)
	if f.RuleValue <= 0 {
		res.FieldErrors["RuleValue"] = "Value must be greater than zero"
	}
	if f.Schedule.StartDate.IsZero() {
		res.FieldErrors["StartDate"] = "Start date is required"
	}
	if f.Schedule.EndDate.IsZero() {
		res.FieldErrors["EndDate"] = "End date is required"
	} else if !f.Schedule.EndDate.After(f.Schedule.StartDate) {
		// strictly after, equal dates are rejected
		res.FieldErrors["EndDate"] = "End date must be after the start date"
	}
	return res
}

// OfferForm is the edit buffer behind the offer drawer. Selectable is
// the product list offered to the user; it must be pre-filtered to
// available products, and every selected line is checked against it.
type OfferForm struct {
	Title      string `validate:"required"`
	Price      decimal.Decimal
	Products   []models.OfferProduct
	Selectable []models.Product
}

// SelectableProducts filters a product list down to what the offer
// form may reference: available products only.
func SelectableProducts(all []models.Product) []models.Product {
	out := make([]models.Product, 0, len(all))
	for _, p := range all {
		if p.IsAvailable {
			out = append(out, p)
		}
	}
	return out
}

func (f OfferForm) Validate() ValidationResult {
	res := structErrors(f)
	if f.Price.IsNegative() {
		res.FieldErrors["Price"] = "Price must be zero or more"
	}
	if len(f.Products) == 0 {
		res.FieldErrors["Products"] = "Select at least one product"
	}
	selectable := map[string]bool{}
	for _, p := range f.Selectable {
		selectable[p.ID] = true
	}
	for _, line := range f.Products {
		if line.Quantity <= 0 {
			res.FieldErrors["Products"] = "Quantity must be greater than zero"
			break
		}
		if !selectable[line.ProductID] {
			res.FieldErrors["Products"] = "Offers may only include available products"
			break
		}
	}
	return res
}

// RewardForm validates the loyalty mock-up entries.
type RewardForm struct {
	Title  string `validate:"required"`
	Points int    `validate:"required,gt=0"`
}

func (f RewardForm) Validate() ValidationResult {
	return structErrors(f)
}

func structErrors(v any) ValidationResult {
	res := ValidationResult{FieldErrors: map[string]string{}}
	err := validate.Struct(v)
	if err == nil {
		return res
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		res.FieldErrors["_"] = err.Error()
		return res
	}
	for _, fe := range err.(validator.ValidationErrors) {
		res.FieldErrors[fe.Field()] = fieldMessage(fe)
	}
	return res
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return fe.Field() + " is invalid"
}
