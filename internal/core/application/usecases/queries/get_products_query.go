package queries

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery lists the catalog ordered by name, or loads one product when ID is set.
type GetProductsQuery struct {
	id    *kernel.ID
	guard guard.ConstructorGuard
}

func NewGetProductsQuery(id *int64) (GetProductsQuery, error) {
	productID, err := kernel.NewOptionalID(id)
	if err != nil {
		return GetProductsQuery{}, err
	}
	return GetProductsQuery{id: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

func (q GetProductsQuery) ID() *kernel.ID {
	return q.id
}

type GetProductsQueryResponse struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
}
