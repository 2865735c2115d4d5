package commands_test

import (
	"errors"
	"testing"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/order"
	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type changeStatusFixture struct {
	uow       *MockUoW
	orders    *MockOrderRepository
	couriers  *MockCourierRepository
	publisher *MockOrderEventPublisher
	handler   commands.ChangeOrderStatusCommandHandler
}

func newChangeStatusFixture() *changeStatusFixture {
	f := &changeStatusFixture{
		uow:       new(MockUoW),
		orders:    new(MockOrderRepository),
		couriers:  new(MockCourierRepository),
		publisher: new(MockOrderEventPublisher),
	}
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("CourierRepository").Return(f.couriers).Maybe()
	f.handler = commands.NewChangeOrderStatusCommandHandler(dispatchFactory{newMockUoWFactory(f.uow)}, f.publisher)
	return f
}

func TestChangeOrderStatusCommandHandler_OutForDelivery(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, err := commands.NewChangeOrderStatusCommand(10, "En camino", ptr(int64(4)), nil)
	require.NoError(t, err)

	o := storedOrder(t, 10, order.Preparing, nil)
	c := storedCourier(t, 4, courier.Available)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, kernel.ID(10)).Return(o, nil).Once(),
		f.couriers.On("Get", ctx, kernel.ID(4)).Return(c, nil).Once(),
		f.couriers.On("Update", ctx, c).Return(nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.publisher.On("PublishOrderStatusChanged", ctx, mock.MatchedBy(func(e ports.OrderStatusChangedEvent) bool {
		return e.OrderID == 10 && e.Status == "En camino" && e.CourierID != nil && *e.CourierID == 4
	})).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	assert.Equal(t, order.OutForDelivery, o.Status())
	assert.Equal(t, ptr(kernel.ID(4)), o.CourierID())
	assert.Equal(t, courier.Busy, c.Status())
	f.uow.AssertExpectations(t)
	f.couriers.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_OutForDeliveryKeepsInactiveCourier(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, _ := commands.NewChangeOrderStatusCommand(10, "En camino", ptr(int64(4)), nil)

	c := storedCourier(t, 4, courier.Inactive)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, kernel.ID(10)).Return(storedOrder(t, 10, order.Pending, nil), nil).Once()
	f.couriers.On("Get", ctx, kernel.ID(4)).Return(c, nil).Once()
	f.couriers.On("Update", ctx, c).Return(nil).Once()
	f.orders.On("Update", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.publisher.On("PublishOrderStatusChanged", ctx, mock.Anything).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))
	assert.Equal(t, courier.Inactive, c.Status())
}

func TestChangeOrderStatusCommandHandler_DeliveredReleasesPreviousCourier(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, err := commands.NewChangeOrderStatusCommand(10, "Entregado", nil, ptr(int64(4)))
	require.NoError(t, err)

	o := storedOrder(t, 10, order.OutForDelivery, ptr(kernel.ID(4)))
	c := storedCourier(t, 4, courier.Busy)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, kernel.ID(10)).Return(o, nil).Once(),
		f.couriers.On("Get", ctx, kernel.ID(4)).Return(c, nil).Once(),
		f.couriers.On("Update", ctx, c).Return(nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.publisher.On("PublishOrderStatusChanged", ctx, mock.Anything).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, courier.Available, c.Status())
	assert.Equal(t, ptr(kernel.ID(4)), o.CourierID(), "the order keeps its courier reference")
}

func TestChangeOrderStatusCommandHandler_OutForDeliveryKeepsBusyCourier(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, _ := commands.NewChangeOrderStatusCommand(11, "En camino", ptr(int64(4)), nil)

	c := storedCourier(t, 4, courier.Busy)
	o := storedOrder(t, 11, order.Preparing, nil)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, kernel.ID(11)).Return(o, nil).Once()
	f.couriers.On("Get", ctx, kernel.ID(4)).Return(c, nil).Once()
	f.couriers.On("Update", ctx, c).Return(nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.publisher.On("PublishOrderStatusChanged", ctx, mock.Anything).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	assert.Equal(t, courier.Busy, c.Status())
	assert.Equal(t, ptr(kernel.ID(4)), o.CourierID())
}

func TestChangeOrderStatusCommandHandler_CancelledReleasesPreviousCourier(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, err := commands.NewChangeOrderStatusCommand(10, "Cancelado", nil, ptr(int64(4)))
	require.NoError(t, err)

	o := storedOrder(t, 10, order.OutForDelivery, ptr(kernel.ID(4)))
	c := storedCourier(t, 4, courier.Busy)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, kernel.ID(10)).Return(o, nil).Once(),
		f.couriers.On("Get", ctx, kernel.ID(4)).Return(c, nil).Once(),
		f.couriers.On("Update", ctx, c).Return(nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.publisher.On("PublishOrderStatusChanged", ctx, mock.MatchedBy(func(e ports.OrderStatusChangedEvent) bool {
		return e.OrderID == 10 && e.Status == "Cancelado"
	})).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, courier.Available, c.Status())
	f.uow.AssertExpectations(t)
	f.couriers.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_UnknownPreviousCourierIsSkipped(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, _ := commands.NewChangeOrderStatusCommand(10, "Entregado", nil, ptr(int64(99)))

	o := storedOrder(t, 10, order.OutForDelivery, ptr(kernel.ID(4)))
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, kernel.ID(10)).Return(o, nil).Once()
	f.couriers.On("Get", ctx, kernel.ID(99)).
		Return(nil, errs.NewObjectNotFoundError("id_repartidor", kernel.ID(99))).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.publisher.On("PublishOrderStatusChanged", ctx, mock.Anything).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	assert.Equal(t, order.Delivered, o.Status())
	f.couriers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.orders.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_ReleaseLookupFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, _ := commands.NewChangeOrderStatusCommand(10, "Entregado", nil, ptr(int64(4)))

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, kernel.ID(10)).Return(storedOrder(t, 10, order.OutForDelivery, nil), nil).Once()
	f.couriers.On("Get", ctx, kernel.ID(4)).Return(nil, errors.New("connection reset")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err := f.handler.Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_PlainTransitionTouchesNoCourier(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, _ := commands.NewChangeOrderStatusCommand(10, "En preparación", nil, ptr(int64(4)))

	o := storedOrder(t, 10, order.Pending, nil)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, kernel.ID(10)).Return(o, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.publisher.On("PublishOrderStatusChanged", ctx, mock.Anything).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	assert.Equal(t, order.Preparing, o.Status())
	f.couriers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, _ := commands.NewChangeOrderStatusCommand(999, "Cancelado", nil, nil)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, kernel.ID(999)).
		Return(nil, errs.NewObjectNotFoundError("order", kernel.ID(999))).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_CourierNotFound(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	cmd, _ := commands.NewChangeOrderStatusCommand(10, "En camino", ptr(int64(77)), nil)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, kernel.ID(10)).Return(storedOrder(t, 10, order.Pending, nil), nil).Once()
	f.couriers.On("Get", ctx, kernel.ID(77)).
		Return(nil, errs.NewObjectNotFoundError("courier", kernel.ID(77))).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}
