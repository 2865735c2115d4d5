package queries

import (
	"errors"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

// GetOrderDetailsQuery loads one order with its customer, courier and line items.
type GetOrderDetailsQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID int64) (GetOrderDetailsQuery, error) {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetOrderDetailsQueryResponse is the full order projection.
// Courier fields are nil while no courier is assigned.
type GetOrderDetailsQueryResponse struct {
	ID              int64
	CustomerID      int64
	CourierID       *int64
	OrderedAt       time.Time
	Status          string
	Total           decimal.Decimal
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	CourierName     *string
	CourierPhone    *string
	CourierVehicle  *string
	Items           []OrderLineResponse
}

// OrderLineResponse is a line item joined with its product name.
type OrderLineResponse struct {
	ID          int64
	ProductID   int64
	Quantity    int
	UnitPrice   decimal.Decimal
	ProductName string
}
