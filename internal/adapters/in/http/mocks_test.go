package http_test

import (
	"context"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLoginHandler struct{ mock.Mock }

func (m *MockLoginHandler) Handle(ctx context.Context, cmd commands.LoginCommand) (commands.LoginResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.LoginResult), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSaveCustomerHandler struct{ mock.Mock }

func (m *MockSaveCustomerHandler) Handle(ctx context.Context, cmd commands.SaveCustomerCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockSaveProductHandler struct{ mock.Mock }

func (m *MockSaveProductHandler) Handle(ctx context.Context, cmd commands.SaveProductCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockSaveCourierHandler struct{ mock.Mock }

func (m *MockSaveCourierHandler) Handle(ctx context.Context, cmd commands.SaveCourierCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockDeleteHandler struct{ mock.Mock }

func (m *MockDeleteHandler) Handle(ctx context.Context, cmd commands.DeleteCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetOrdersQuery,
) ([]queries.GetOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetOrdersQueryResponse), args.Error(1)
}

type MockGetOrderDetailsHandler struct{ mock.Mock }

func (m *MockGetOrderDetailsHandler) Handle(
	ctx context.Context,
	query queries.GetOrderDetailsQuery,
) (queries.GetOrderDetailsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderDetailsQueryResponse), args.Error(1)
}

type MockGetCustomersHandler struct{ mock.Mock }

func (m *MockGetCustomersHandler) Handle(
	ctx context.Context,
	query queries.GetCustomersQuery,
) ([]queries.GetCustomersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetCustomersQueryResponse), args.Error(1)
}

type MockGetProductsHandler struct{ mock.Mock }

func (m *MockGetProductsHandler) Handle(
	ctx context.Context,
	query queries.GetProductsQuery,
) ([]queries.GetProductsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetProductsQueryResponse), args.Error(1)
}

type MockGetCouriersHandler struct{ mock.Mock }

func (m *MockGetCouriersHandler) Handle(
	ctx context.Context,
	query queries.GetCouriersQuery,
) ([]queries.GetCouriersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetCouriersQueryResponse), args.Error(1)
}

type MockOrderMetrics struct{ mock.Mock }

func (m *MockOrderMetrics) RecordOrderCreated(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockOrderMetrics) RecordStatusTransition(ctx context.Context, status string) {
	m.Called(ctx, status)
}

type MockTokenVerifier struct{ mock.Mock }

func (m *MockTokenVerifier) Verify(token string) (ports.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.Claims), args.Error(1)
}
