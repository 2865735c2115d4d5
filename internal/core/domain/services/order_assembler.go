package services

import (
	"time"

	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/order"
	"deliveryhub/internal/core/domain/model/product"
)

// ErrNoLines is returned when an order is assembled from an empty request.
var ErrNoLines = order.ErrItemsAreRequired

// Line is one requested entry of an order: a loaded product and the quantity wanted.
// Entries that repeat a product must share the same *product.Product so that stock is
// allocated against what the earlier entries left.
type Line struct {
	Product  *product.Product
	Quantity int
}

// OrderAssembler is a domain service that builds a new order from catalog products.
//
// Key responsibilities:
//   - Withdrawing the requested quantity from every product's stock
//   - Locking the current catalog price into each line item
//   - Computing the order total through order.NewOrder
//
// Business rules:
//   - Prices sent by clients are never used
//   - Repeated products are allocated one entry at a time, in request order
//   - The first shortage aborts assembly; products may already be partially withdrawn,
//     so the caller must discard them (roll back) on error
//
// Example usage:
//
//	assembler := services.NewOrderAssembler()
//	o, err := assembler.Assemble(c, []services.Line{{Product: pizza, Quantity: 2}}, time.Now())
//	if errors.Is(err, product.ErrInsufficientStock) {
//	    // Not enough pizzas
//	}
type OrderAssembler struct{}

func NewOrderAssembler() OrderAssembler {
	return OrderAssembler{}
}

// Assemble builds a Pending order for the customer.
//
// Returns:
//   - *order.Order: the new order, not yet stored
//   - error: validation errors, or a ConflictError wrapping product.ErrInsufficientStock
func (a OrderAssembler) Assemble(c *customer.Customer, lines []Line, createdAt time.Time) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	items := make([]*order.LineItem, 0, len(lines))
	for _, line := range lines {
		item, err := a.allocate(line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(c.ID(), items, createdAt)
}

func (a OrderAssembler) allocate(line Line) (*order.LineItem, error) {
	if err := line.Product.Validate(); err != nil {
		return nil, err
	}

	if err := line.Product.Withdraw(line.Quantity); err != nil {
		return nil, err
	}

	return order.NewLineItem(line.Product.ID(), line.Quantity, line.Product.Price())
}
