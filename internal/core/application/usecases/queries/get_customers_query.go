// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture:
// handlers run SQL directly against the read side and never mutate state.
package queries

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
)

// GetCustomersQuery lists customers ordered by name, or loads one when ID is set.
type GetCustomersQuery struct {
	id    *kernel.ID
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery accepts a nil id for the full list.
func NewGetCustomersQuery(id *int64) (GetCustomersQuery, error) {
	customerID, err := kernel.NewOptionalID(id)
	if err != nil {
		return GetCustomersQuery{}, err
	}
	return GetCustomersQuery{id: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// ID returns the requested customer or nil for the full list.
func (q GetCustomersQuery) ID() *kernel.ID {
	return q.id
}

type GetCustomersQueryResponse struct {
	ID      int64
	Name    string
	Address string
	Phone   string
}
