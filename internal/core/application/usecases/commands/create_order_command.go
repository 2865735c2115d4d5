package commands

import (
	"errors"
	"fmt"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("detalles")
)

// OrderItemInput is one requested entry as received from the console.
// Any price the client sends is dropped before this point.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// OrderItem is a validated entry of CreateOrderCommand.
type OrderItem struct {
	ProductID kernel.ID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(7, []OrderItemInput{{ProductID: 1, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	items      []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the customer identifier and every requested entry.
// Entries are kept in request order, duplicates included.
func NewCreateOrderCommand(customerID int64, items []OrderItemInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Items returns a copy of the requested entries.
func (c CreateOrderCommand) Items() []OrderItem {
	out := make([]OrderItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	id, err := kernel.NewID(customerID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id_cliente", err)
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	var joined []error
	validated := make([]OrderItem, 0, len(items))
	for i, item := range items {
		productID, err := kernel.NewID(item.ProductID)
		if err != nil {
			joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("detalles[%d].id_producto", i), err))
		}
		if item.Quantity <= 0 {
			joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("detalles[%d].cantidad", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity)))
		}
		validated = append(validated, OrderItem{ProductID: productID, Quantity: item.Quantity})
	}
	if err := errors.Join(joined...); err != nil {
		return err
	}

	c.items = validated
	return nil
}
