package forms

import (
	"context"

	"github.com/menuly/restaurant-admin/client"
	"github.com/menuly/restaurant-admin/models"
)

// DrawerState is the product drawer's position in its lifecycle.
type DrawerState int

const (
	DrawerClosed DrawerState = iota
	DrawerOpenForCreate
	DrawerOpenForEdit
	DrawerSubmitting
)

// Drawer is the create/edit overlay for one product. It owns the edit
// buffer while open and discards it on successful submit; a failed
// submit keeps the buffer and the drawer open with the normalized
// error attached.
type Drawer struct {
	state     DrawerState
	prior     DrawerState
	editingID string
	buffer    ProductForm
	err       *client.Normalized

	// RefetchOnEdit re-fetches the authoritative record when an edit
	// opens instead of trusting the listing row.
	RefetchOnEdit bool
	fetch         func(ctx context.Context, id string) (models.Product, error)
}

// NewDrawer creates a closed drawer. fetch may be nil when
// RefetchOnEdit is off.
func NewDrawer(fetch func(ctx context.Context, id string) (models.Product, error)) *Drawer {
	return &Drawer{fetch: fetch}
}

func (d *Drawer) State() DrawerState        { return d.state }
func (d *Drawer) EditingID() string         { return d.editingID }
func (d *Drawer) Buffer() ProductForm       { return d.buffer }
func (d *Drawer) SetBuffer(f ProductForm)   { d.buffer = f }
func (d *Drawer) Error() *client.Normalized { return d.err }

// OpenForCreate opens the drawer with an empty buffer.
func (d *Drawer) OpenForCreate() {
	d.state = DrawerOpenForCreate
	d.editingID = ""
	d.buffer = ProductForm{}
	d.err = nil
}

// OpenForEdit opens the drawer populated from the known listing row.
// With RefetchOnEdit set, a fresh single-item fetch replaces the row
// first; a failed fetch falls back to the row rather than blocking.
func (d *Drawer) OpenForEdit(ctx context.Context, known models.Product) {
	product := known
	if d.RefetchOnEdit && d.fetch != nil {
		if fresh, err := d.fetch(ctx, known.ID); err == nil {
			product = fresh
		}
	}
	d.state = DrawerOpenForEdit
	d.editingID = known.ID
	d.buffer = ProductForm{
		Name:        product.Name,
		Description: product.Description,
		CategoryID:  product.CategoryID,
		Price:       product.Price,
		Ingredients: product.Ingredients,
		Image:       product.Image,
		IsAvailable: product.IsAvailable,
	}
	d.err = nil
}

// Close abandons the drawer and its buffer.
func (d *Drawer) Close() {
	d.state = DrawerClosed
	d.editingID = ""
	d.buffer = ProductForm{}
	d.err = nil
}

// Submit validates the buffer and runs the mutation. Local validation
// failures surface as field errors without any network traffic. On
// mutation success the drawer closes and the buffer clears; on failure
// it returns to the prior open state with buffer intact and the error
// normalized for display.
func (d *Drawer) Submit(ctx context.Context, mutate func(ctx context.Context, form ProductForm) error) error {
	if d.state != DrawerOpenForCreate && d.state != DrawerOpenForEdit {
		return nil
	}

	if res := d.buffer.Validate(); res.Err() != nil {
		d.err = &client.Normalized{
			Message:     "Please check the highlighted fields.",
			FieldErrors: res.FieldErrors,
		}
		return res.Err()
	}

	d.prior = d.state
	d.state = DrawerSubmitting
	d.err = nil

	if err := mutate(ctx, d.buffer); err != nil {
		n := client.NormalizeError(err)
		d.state = d.prior
		d.err = &n
		return err
	}

	d.Close()
	return nil
}
