package order

import (
	"errors"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when an order is placed without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("detalles")

	// ErrCourierIsRequired is returned when an order goes out for delivery without a courier.
	ErrCourierIsRequired = errs.NewValueIsInvalidErrorWithCause(
		"id_repartidor", errors.New("courier required for OutForDelivery"))
)

// Order represents a customer's order. It is the aggregate root of the order workflow.
//
// Order follows these invariants:
//   - Must reference a customer
//   - Holds at least one line item when created
//   - Total equals the sum of the line item subtotals
//   - Status is always one of the five order states
//   - Can only be created through NewOrder or RestoreOrder
//
// Orders loaded for a status change are restored without their line items; the stored
// total is kept as is.
type Order struct {
	// id is the identity assigned by the store (zero until saved)
	id kernel.ID

	// customerID references the customer the order is delivered to
	customerID kernel.ID

	// courierID is the assigned courier (nil if unassigned)
	courierID *kernel.ID

	// createdAt is when the order was placed
	createdAt time.Time

	// status represents the current state in the order lifecycle
	status Status

	// total is the sum of the line item subtotals
	total kernel.Money

	// items are the ordered products
	items []*LineItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder places a new order in Pending status and computes its total.
//
// Parameters:
//   - customerID: the customer receiving the order
//   - items: line items with their locked-in unit prices (at least one)
//   - createdAt: the moment the order was placed
//
// Example:
//
//	item, _ := order.NewLineItem(productID, 2, price)
//	o, err := order.NewOrder(customerID, []*order.LineItem{item}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerID kernel.ID, items []*LineItem, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomer(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = computeTotal(o.items)
	return o, nil
}

// RestoreOrder rebuilds a stored order from its header and line items.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	courierID *kernel.ID,
	createdAt time.Time,
	status Status,
	total kernel.Money,
	items []*LineItem,
) (*Order, error) {
	o := &Order{
		id:            id,
		createdAt:     createdAt,
		isConstructed: true,
	}

	var joined []error
	joined = append(joined, id.Validate(), o.setCustomer(customerID), status.Validate(), total.Validate())
	if courierID != nil {
		joined = append(joined, courierID.Validate())
	}
	for _, item := range items {
		joined = append(joined, item.Validate())
	}
	if err := errors.Join(joined...); err != nil {
		return nil, err
	}

	o.courierID = courierID
	o.status = status
	o.total = total
	o.items = items
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identity.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the customer the order belongs to.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// CourierID returns the assigned courier, or nil if none.
func (o *Order) CourierID() *kernel.ID {
	return o.courierID
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Items returns a copy of the line item list.
func (o *Order) Items() []*LineItem {
	out := make([]*LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// ChangeStatus moves the order to the given status. Every valid status is reachable from
// every other; callers going to OutForDelivery must also call AssignCourier.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// AssignCourier records the courier carrying the order.
func (o *Order) AssignCourier(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id_repartidor", err)
	}

	o.courierID = &courierID
	return nil
}

func (o *Order) setCustomer(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id_cliente", err)
	}

	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	var joined []error
	for _, item := range items {
		joined = append(joined, item.Validate())
	}
	if err := errors.Join(joined...); err != nil {
		return err
	}

	o.items = items
	return nil
}

func computeTotal(items []*LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
