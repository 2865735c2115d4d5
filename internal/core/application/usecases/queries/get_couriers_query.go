package queries

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrGetCouriersQueryIsNotConstructed = errors.New(
		"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
	)
)

// GetCouriersQuery retrieves couriers with their availability for dispatching.
//
// Example:
//
//	query, _ := NewGetCouriersQuery(nil)
//	handler := NewGetCouriersQueryHandler(db)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
type GetCouriersQuery struct {
	id    *kernel.ID
	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a query for all couriers (nil id) or a single one.
func NewGetCouriersQuery(id *int64) (GetCouriersQuery, error) {
	courierID, err := kernel.NewOptionalID(id)
	if err != nil {
		return GetCouriersQuery{}, err
	}
	return GetCouriersQuery{id: courierID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

func (q GetCouriersQuery) ID() *kernel.ID {
	return q.id
}

// GetCouriersQueryResponse is the courier read model. Status holds the stored label.
type GetCouriersQueryResponse struct {
	ID      int64
	Name    string
	Phone   string
	Vehicle string
	Status  string
}
