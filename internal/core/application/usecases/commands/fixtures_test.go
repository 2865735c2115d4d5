package commands_test

import (
	"testing"
	"time"

	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/order"
	"deliveryhub/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func storedCustomer(t *testing.T, id int64) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(kernel.ID(id), "Ana", "Calle 1", "555")
	require.NoError(t, err)
	return c
}

func storedProduct(t *testing.T, id int64, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(kernel.ID(id), "Producto", "", money(t, price), stock, "General")
	require.NoError(t, err)
	return p
}

func storedCourier(t *testing.T, id int64, status courier.Status) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(kernel.ID(id), "Juan", "555", "Moto", status)
	require.NoError(t, err)
	return c
}

func storedOrder(t *testing.T, id int64, status order.Status, courierID *kernel.ID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.ID(id), kernel.ID(1), courierID, time.Now(), status, money(t, "10"), nil)
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T {
	return &v
}
