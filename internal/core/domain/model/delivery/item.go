package delivery

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a single line of a delivery: a product name, the unit it is
// measured in, and the quantity delivered. The (product name, unit) pair is
// the matching key against the order's lines; matching is exact and
// case-sensitive, so a delivery line that names no order line is simply
// ignored by reconciliation.
type Item struct {
	productName string
	unit        string
	quantity    kernel.Quantity

	guard guard.ConstructorGuard
}

// NewItem creates a validated delivery line. The product name and unit must
// be non-empty; the delivered quantity must be a constructed, non-negative
// Quantity.
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

// Quantity returns the delivered quantity of the line.
func (i Item) Quantity() kernel.Quantity {
	return i.quantity
}
