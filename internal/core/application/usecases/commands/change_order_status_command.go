package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/order"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to a new status.
//
// courierID is required when the target is OutForDelivery. previousCourierID names the
// courier to release when the target is Delivered or Cancelled; it is ignored otherwise.
// A nil or zero identifier means "not provided".
//
// Example:
//
//	courierID := int64(4)
//	cmd, err := NewChangeOrderStatusCommand(12, "En camino", &courierID, nil)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.ID
	status            order.Status
	courierID         *kernel.ID
	previousCourierID *kernel.ID

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID int64,
	status string,
	courierID *int64,
	previousCourierID *int64,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setCouriers(courierID, previousCourierID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	if cmd.status.RequiresCourier() && cmd.courierID == nil {
		return ChangeOrderStatusCommand{}, order.ErrCourierIsRequired
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// CourierID returns the courier to assign, or nil.
func (c ChangeOrderStatusCommand) CourierID() *kernel.ID {
	return c.courierID
}

// PreviousCourierID returns the courier to release, or nil.
func (c ChangeOrderStatusCommand) PreviousCourierID() *kernel.ID {
	return c.previousCourierID
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id_pedido", err)
	}

	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("nuevo_estado")
	}

	status, err := order.ParseStatus(label)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *ChangeOrderStatusCommand) setCouriers(courierID, previousCourierID *int64) error {
	current, err := kernel.NewOptionalID(courierID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id_repartidor", err)
	}

	previous, err := kernel.NewOptionalID(previousCourierID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id_repartidor_anterior", err)
	}

	c.courierID = current
	c.previousCourierID = previous
	return nil
}
