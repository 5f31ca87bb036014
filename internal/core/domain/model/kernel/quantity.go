package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrQuantityIsNotConstructed indicates that a Quantity was not properly
// initialized through one of the constructor functions. It is returned when
// validating a zero-value Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"Quantity must be created via NewQuantity, QuantityFromString, or ZeroQuantity")

// Quantity is a value object representing a non-negative decimal amount of
// goods. Procurement quantities are frequently fractional (cubic meters of
// concrete, tonnes of rebar), so the value is carried as an exact decimal
// rather than a float.
//
// The zero value of Quantity is invalid and must be constructed using
// NewQuantity, QuantityFromString, or ZeroQuantity.
type Quantity struct {
	value         decimal.Decimal
	isConstructed bool
}

// NewQuantity creates a Quantity from a decimal value.
// Returns an error if the value is negative.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s is negative", value.String()),
		)
	}
	return Quantity{value: value, isConstructed: true}, nil
}

// QuantityFromString parses a Quantity from its decimal string representation.
// Returns an error if the string is not a valid decimal or is negative.
func QuantityFromString(s string) (Quantity, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	return NewQuantity(value)
}

// ZeroQuantity returns a valid Quantity of zero.
func ZeroQuantity() Quantity {
	return Quantity{value: decimal.Zero, isConstructed: true}
}

// Decimal returns the underlying decimal value.
func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

// String returns the decimal string representation of the quantity.
func (q Quantity) String() string {
	return q.value.String()
}

// Add returns the sum of two quantities.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value), isConstructed: true}
}

// Min returns the smaller of two quantities.
func (q Quantity) Min(other Quantity) Quantity {
	if q.value.LessThan(other.value) {
		return q
	}
	return other
}

// IsZero reports whether the quantity is exactly zero.
func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

// IsPositive reports whether the quantity is strictly greater than zero.
func (q Quantity) IsPositive() bool {
	return q.value.IsPositive()
}

// GreaterThanOrEqual reports whether q >= other.
func (q Quantity) GreaterThanOrEqual(other Quantity) bool {
	return q.value.GreaterThanOrEqual(other.value)
}

// IsEqual reports whether two quantities represent the same amount.
// Comparison is by numeric value, so 1.5 and 1.50 are equal.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

// Validate checks that the Quantity was created through a constructor.
// Returns ErrQuantityIsNotConstructed for the zero value.
func (q Quantity) Validate() error {
	if !q.isConstructed {
		return ErrQuantityIsNotConstructed
	}
	return nil
}
