package queries

import (
	"errors"
	"time"

	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists every order, newest first, for the dispatch board.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a parameterless query over all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one row of the order list.
// CourierID and CourierName are nil while no courier is assigned.
type GetOrdersQueryResponse struct {
	ID           int64
	CourierID    *int64
	OrderedAt    time.Time
	Status       string
	Total        decimal.Decimal
	CustomerName string
	CourierName  *string
}
