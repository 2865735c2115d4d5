package order_test

import (
	"testing"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/order"
	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func item(t *testing.T, productID int64, quantity int, price string) *order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(kernel.ID(productID), quantity, money(t, price))
	require.NoError(t, err)
	return li
}

func TestNewOrder(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should start pending with computed total", func(t *testing.T) {
		items := []*order.LineItem{item(t, 1, 2, "5.00"), item(t, 2, 1, "3.50")}

		o, err := order.NewOrder(kernel.ID(7), items, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "13.50", o.Total().String())
		assert.Equal(t, kernel.ID(7), o.CustomerID())
		assert.Nil(t, o.CourierID())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Len(t, o.Items(), 2)
		assert.True(t, o.ID().IsZero())
	})

	t.Run("should require line items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.ID(7), nil, createdAt)

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "detalles")
	})

	t.Run("should require a customer", func(t *testing.T) {
		_, err := order.NewOrder(kernel.ID(0), []*order.LineItem{item(t, 1, 1, "1")}, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "id_cliente")
	})

	t.Run("should reject zero-value line items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.ID(7), []*order.LineItem{{}}, createdAt)

		require.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
	})
}

func TestNewLineItem(t *testing.T) {
	li := item(t, 3, 4, "2.25")
	assert.Equal(t, "9.00", li.Subtotal().String())
	assert.Equal(t, kernel.ID(3), li.ProductID())
	assert.Equal(t, 4, li.Quantity())

	_, err := order.NewLineItem(kernel.ID(3), 0, money(t, "1"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "cantidad")

	_, err = order.NewLineItem(kernel.ID(-1), 1, money(t, "1"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "id_producto")
}

func TestRestoreOrder(t *testing.T) {
	courierID := kernel.ID(4)

	o, err := order.RestoreOrder(kernel.ID(10), kernel.ID(7), &courierID, time.Now(),
		order.OutForDelivery, money(t, "20"), nil)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(10), o.ID())
	assert.Equal(t, &courierID, o.CourierID())
	assert.Equal(t, "20.00", o.Total().String())
	assert.Empty(t, o.Items())

	_, err = order.RestoreOrder(kernel.ID(10), kernel.ID(7), nil, time.Now(),
		order.Unknown, money(t, "20"), nil)
	require.Error(t, err)
}

func TestOrder_ChangeStatus(t *testing.T) {
	o, err := order.NewOrder(kernel.ID(1), []*order.LineItem{item(t, 1, 1, "1")}, time.Now())
	require.NoError(t, err)

	t.Run("should allow any valid status from any status", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Pending, order.Cancelled, order.Preparing} {
			require.NoError(t, o.ChangeStatus(s))
			assert.Equal(t, s, o.Status())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		require.Error(t, o.ChangeStatus(order.Unknown))
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	o, err := order.NewOrder(kernel.ID(1), []*order.LineItem{item(t, 1, 1, "1")}, time.Now())
	require.NoError(t, err)

	require.NoError(t, o.AssignCourier(kernel.ID(3)))
	require.NotNil(t, o.CourierID())
	assert.Equal(t, kernel.ID(3), *o.CourierID())

	require.ErrorIs(t, o.AssignCourier(kernel.ID(0)), errs.ErrValueIsInvalid)
	assert.Equal(t, kernel.ID(3), *o.CourierID())
}

func TestOrder_ValidateZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
