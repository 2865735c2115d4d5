package ports

import (
	"context"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
)

// OrderCreatedEvent is emitted after an order has been committed.
type OrderCreatedEvent struct {
	OrderID    kernel.ID
	CustomerID kernel.ID
	Total      string
	ItemCount  int
	OccurredAt time.Time
}

// OrderStatusChangedEvent is emitted after a status transition has been committed.
type OrderStatusChangedEvent struct {
	OrderID    kernel.ID
	Status     string
	CourierID  *kernel.ID
	OccurredAt time.Time
}

// OrderEventPublisher notifies other systems about committed order changes.
// Publishing is best effort: the order is already stored when Publish is called.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
