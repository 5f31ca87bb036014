package guard_test

import (
	"errors"
	"testing"

	"procurement/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates embedding a guard in a value
// object so zero values are rejected before use.
func TestConstructorGuardUsageExample(t *testing.T) {
	type LineItem struct {
		product  string
		quantity int
		guard    guard.ConstructorGuard
	}

	var errLineItemNotConstructed = errors.New("LineItem must be created via NewLineItem")

	newLineItem := func(product string, quantity int) (LineItem, error) {
		if product == "" {
			return LineItem{}, errors.New("product is required")
		}
		if quantity < 0 {
			return LineItem{}, errors.New("quantity cannot be negative")
		}
		return LineItem{
			product:  product,
			quantity: quantity,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validateLineItem := func(li LineItem) error {
		return li.guard.Validate(errLineItemNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		item, err := newLineItem("Cement Bags", 10)

		require.NoError(t, err)
		require.NoError(t, validateLineItem(item))
		assert.Equal(t, "Cement Bags", item.product)
		assert.Equal(t, 10, item.quantity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item LineItem // zero value

		err := validateLineItem(item)

		require.Error(t, err)
		assert.Equal(t, errLineItemNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLineItem("", 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product is required")

		_, err = newLineItem("Cement Bags", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity cannot be negative")
	})
}
