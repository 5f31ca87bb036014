package order

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a single line of a purchase order: a product name, the unit it is
// measured in, and the ordered quantity. Line items are created once at order
// placement and never mutated afterwards; delivered amounts against them are
// recomputed by reconciliation rather than stored per line.
//
// The product name and unit strings double as the matching key against
// delivery lines. Matching is an exact, case-sensitive comparison of the
// (product name, unit) pair.
type Item struct {
	productName string
	unit        string
	quantity    kernel.Quantity

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// The product name and unit must be non-empty; the ordered quantity must be a
// constructed, non-negative Quantity. A zero ordered quantity is permitted
// and simply contributes nothing to the order's fulfillment total.
func NewItem(productName string, unit string, quantity kernel.Quantity) (Item, error) {
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if unit == "" {
		return Item{}, errs.NewValueIsRequiredError("unit")
	}
	if err := quantity.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		productName: productName,
		unit:        unit,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductName returns the product name of the line.
func (i Item) ProductName() string {
	return i.productName
}

// Unit returns the unit the line is measured in.
func (i Item) Unit() string {
	return i.unit
}

// Quantity returns the ordered quantity of the line.
func (i Item) Quantity() kernel.Quantity {
	return i.quantity
}
