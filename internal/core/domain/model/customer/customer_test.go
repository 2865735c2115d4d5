package customer_test

import (
	"testing"

	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer without identity", func(t *testing.T) {
		c, err := customer.NewCustomer("Ana Pérez", "Calle 1 #23", "555-0101")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsZero())
		assert.Equal(t, "Ana Pérez", c.Name())
		assert.Equal(t, "Calle 1 #23", c.Address())
		assert.Equal(t, "555-0101", c.Phone())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		c, err := customer.NewCustomer(" ", "", "")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "nombre_completo")
		assert.Contains(t, err.Error(), "direccion")
		assert.Contains(t, err.Error(), "telefono")
	})
}

func TestRestoreCustomer(t *testing.T) {
	c, err := customer.RestoreCustomer(kernel.ID(9), "Luis", "Av. 2", "555")
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(9), c.ID())

	_, err = customer.RestoreCustomer(kernel.ID(0), "Luis", "Av. 2", "555")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCustomer_Update(t *testing.T) {
	c, err := customer.RestoreCustomer(kernel.ID(1), "Luis", "Av. 2", "555")
	require.NoError(t, err)

	require.NoError(t, c.Update("Luis Gómez", "Av. 3", "556"))
	assert.Equal(t, "Luis Gómez", c.Name())
	assert.Equal(t, "Av. 3", c.Address())

	require.Error(t, c.Update("", "Av. 4", "557"))
	assert.Equal(t, "Av. 3", c.Address(), "failed update must not change state")
}

func TestCustomer_ValidateZeroValue(t *testing.T) {
	var c customer.Customer
	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)

	var nilCustomer *customer.Customer
	require.ErrorIs(t, nilCustomer.Validate(), customer.ErrCustomerIsNotConstructed)
}
