package commands

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/product"
	"deliveryhub/internal/core/domain/services"
	"deliveryhub/internal/core/ports"
)

// CreateOrderCommandHandler places orders.
//
// Everything happens in one transaction: the customer is read, every product is read
// with a row lock, stock is allocated and prices are locked in by services.OrderAssembler,
// the order and its line items are inserted and the decremented stock is written back.
// Any failure rolls the whole transaction back, so no stock is lost.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(7, []OrderItemInput{{ProductID: 1, Quantity: 2}})
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // not enough stock
//	}
type CreateOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	publisher  ports.OrderEventPublisher
	assembler  services.OrderAssembler
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		assembler:  services.NewOrderAssembler(),
		now:        time.Now,
	}
}

// Handle places the order and returns its identity. The order.created event is published
// only after commit; a publishing failure is logged and does not fail the request.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}

	productRepo := uow.ProductRepository()
	products, err := h.lockProducts(ctx, productRepo, cmd.Items())
	if err != nil {
		return 0, err
	}

	lines := make([]services.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		lines = append(lines, services.Line{Product: products[item.ProductID], Quantity: item.Quantity})
	}

	o, err := h.assembler.Assemble(c, lines, h.now())
	if err != nil {
		return 0, err
	}

	orderID, err := uow.OrderRepository().Add(ctx, o)
	if err != nil {
		return 0, err
	}

	for _, id := range sortedKeys(products) {
		if err = productRepo.Update(ctx, products[id]); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.publish(ctx, ports.OrderCreatedEvent{
		OrderID:    orderID,
		CustomerID: o.CustomerID(),
		Total:      o.Total().String(),
		ItemCount:  len(o.Items()),
		OccurredAt: o.CreatedAt(),
	})

	return orderID, nil
}

// lockProducts loads every distinct product once, in ascending id order so that two
// concurrent orders never wait on each other's locks in opposite order.
func (h CreateOrderCommandHandler) lockProducts(
	ctx context.Context,
	repo ports.ProductRepository,
	items []OrderItem,
) (map[kernel.ID]*product.Product, error) {
	products := make(map[kernel.ID]*product.Product, len(items))
	for _, item := range items {
		products[item.ProductID] = nil
	}

	for _, id := range sortedKeys(products) {
		p, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		products[id] = p
	}

	return products, nil
}

func (h CreateOrderCommandHandler) publish(ctx context.Context, event ports.OrderCreatedEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishOrderCreated(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish order created event",
			"order_id", event.OrderID.Int64(),
			"error", err)
	}
}

func sortedKeys[V any](m map[kernel.ID]V) []kernel.ID {
	keys := make([]kernel.ID, 0, len(m))
	for id := range m {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}
