package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"deliveryhub/internal/adapters/out/postgres/pgerr"
	"deliveryhub/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("should map foreign key violations to conflicts", func(t *testing.T) {
		driverErr := fmt.Errorf("exec: %w", &pq.Error{Code: "23503", Message: "violates foreign key constraint"})

		err := pgerr.Translate(driverErr, "customer 1 still has orders")

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "customer 1 still has orders")
	})

	t.Run("should keep other driver errors", func(t *testing.T) {
		driverErr := &pq.Error{Code: "23505", Message: "duplicate key"}

		err := pgerr.Translate(driverErr, "ignored")

		assert.Same(t, driverErr, err)
		assert.False(t, errors.Is(err, errs.ErrConflict))
	})

	t.Run("should pass nil through", func(t *testing.T) {
		assert.NoError(t, pgerr.Translate(nil, "ignored"))
	})
}
