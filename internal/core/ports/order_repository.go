package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add stores a new order together with its line items and returns the order identity.
	Add(ctx context.Context, aggregate *order.Order) (kernel.ID, error)

	// Update stores the status and courier of an existing order.
	// Line items are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its line items or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
