package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/order"
	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies status transitions and keeps courier
// availability in step with them, in one transaction.
//
// Rules:
//   - OutForDelivery assigns the courier to the order and marks an available courier busy
//   - Delivered and Cancelled release the previous courier, when one is named
//   - every other transition only changes the order status
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher)
//	cmd, _ := NewChangeOrderStatusCommand(12, "Entregado", nil, &previousCourierID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

func NewChangeOrderStatusCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle processes the transition. An unknown order or an unknown courier to assign yields
// errs.ObjectNotFoundError and leaves every row untouched; an unknown previous courier is skipped.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if cmd.Status().RequiresCourier() {
		if cmd.CourierID() == nil {
			return order.ErrCourierIsRequired
		}

		c, getErr := courierRepo.Get(ctx, *cmd.CourierID())
		if getErr != nil {
			return getErr
		}

		if err = o.AssignCourier(c.ID()); err != nil {
			return err
		}

		c.MarkBusy()
		if err = courierRepo.Update(ctx, c); err != nil {
			return err
		}
	}

	if cmd.Status().ReleasesCourier() && cmd.PreviousCourierID() != nil {
		if err = h.release(ctx, courierRepo, *cmd.PreviousCourierID()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, ports.OrderStatusChangedEvent{
		OrderID:    o.ID(),
		Status:     o.Status().String(),
		CourierID:  o.CourierID(),
		OccurredAt: h.now(),
	})

	return nil
}

// release makes the previous courier available again. A courier that no longer exists
// has nothing to release, so the transition goes ahead without it.
func (h ChangeOrderStatusCommandHandler) release(ctx context.Context, repo ports.CourierRepository, id kernel.ID) error {
	c, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		slog.WarnContext(ctx, "previous courier not found, nothing to release",
			"courier_id", id.Int64())
		return nil
	}
	if err != nil {
		return err
	}

	c.Release()
	return repo.Update(ctx, c)
}

func (h ChangeOrderStatusCommandHandler) publish(ctx context.Context, event ports.OrderStatusChangedEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish order status changed event",
			"order_id", event.OrderID.Int64(),
			"status", event.Status,
			"error", err)
	}
}
