package commands_test

import (
	"context"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/order"
	"deliveryhub/internal/core/domain/model/product"
	"deliveryhub/internal/core/domain/model/user"
	"deliveryhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) (kernel.ID, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(kernel.ID), args.Error(1)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*customer.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) (kernel.ID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(kernel.ID), args.Error(1)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockProductRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) (kernel.ID, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(kernel.ID), args.Error(1)
}
func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCourierRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCourierRepository) Get(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*courier.Courier), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (kernel.ID, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(kernel.ID), args.Error(1)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if v := args.Get(0); v != nil {
		return v.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockUoW) CourierRepository() ports.CourierRepository {
	return m.Called().Get(0).(ports.CourierRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

// MockUoWFactory hands out the same MockUoW under every factory interface.
type MockUoWFactory struct {
	mock.Mock
	uow *MockUoW
}

func newMockUoWFactory(uow *MockUoW) *MockUoWFactory {
	f := &MockUoWFactory{uow: uow}
	f.On("Create").Return()
	return f
}

func (f *MockUoWFactory) create() *MockUoW {
	f.MethodCalled("Create")
	return f.uow
}

type (
	placeOrderFactory struct{ *MockUoWFactory }
	dispatchFactory   struct{ *MockUoWFactory }
	customerFactory   struct{ *MockUoWFactory }
	productFactory    struct{ *MockUoWFactory }
	courierFactory    struct{ *MockUoWFactory }
	userFactory       struct{ *MockUoWFactory }
)

func (f placeOrderFactory) Create() commands.PlaceOrderUoW { return f.create() }
func (f dispatchFactory) Create() commands.DispatchUoW     { return f.create() }
func (f customerFactory) Create() commands.CustomerUoW     { return f.create() }
func (f productFactory) Create() commands.ProductUoW       { return f.create() }
func (f courierFactory) Create() commands.CourierUoW       { return f.create() }
func (f userFactory) Create() commands.UserUoW             { return f.create() }

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderCreated(ctx context.Context, event ports.OrderCreatedEvent) error {
	return m.Called(ctx, event).Error(0)
}
func (m *MockOrderEventPublisher) PublishOrderStatusChanged(
	ctx context.Context,
	event ports.OrderStatusChangedEvent,
) error {
	return m.Called(ctx, event).Error(0)
}
