// Package http exposes the order management use cases to the admin console as a JSON API.
package http

import (
	"context"
	"log/slog"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/core/domain/model/kernel"
)

type (
	LoginHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCommand) (commands.LoginResult, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error)
	}

	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}

	SaveCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.SaveCustomerCommand) (kernel.ID, error)
	}

	SaveProductHandler interface {
		Handle(ctx context.Context, cmd commands.SaveProductCommand) (kernel.ID, error)
	}

	SaveCourierHandler interface {
		Handle(ctx context.Context, cmd commands.SaveCourierCommand) (kernel.ID, error)
	}

	// DeleteHandler removes one customer, product or courier.
	DeleteHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteCommand) error
	}

	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
	}

	GetOrderDetailsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.GetOrderDetailsQueryResponse, error)
	}

	GetCustomersHandler interface {
		Handle(ctx context.Context, query queries.GetCustomersQuery) ([]queries.GetCustomersQueryResponse, error)
	}

	GetProductsHandler interface {
		Handle(ctx context.Context, query queries.GetProductsQuery) ([]queries.GetProductsQueryResponse, error)
	}

	GetCouriersHandler interface {
		Handle(ctx context.Context, query queries.GetCouriersQuery) ([]queries.GetCouriersQueryResponse, error)
	}

	// OrderMetrics counts committed order workflow operations.
	OrderMetrics interface {
		RecordOrderCreated(ctx context.Context)
		RecordStatusTransition(ctx context.Context, status string)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	Login             LoginHandler
	CreateOrder       CreateOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler
	SaveCustomer      SaveCustomerHandler
	DeleteCustomer    DeleteHandler
	SaveProduct       SaveProductHandler
	DeleteProduct     DeleteHandler
	SaveCourier       SaveCourierHandler
	DeleteCourier     DeleteHandler

	// Query handlers
	GetOrders       GetOrdersHandler
	GetOrderDetails GetOrderDetailsHandler
	GetCustomers    GetCustomersHandler
	GetProducts     GetProductsHandler
	GetCouriers     GetCouriersHandler
}

// Server translates HTTP requests into commands and queries and renders their results.
type Server struct {
	handlers Handlers
	metrics  OrderMetrics
	logger   *slog.Logger
}

// NewServer creates a server. A nil metrics recorder disables counting and a nil logger
// falls back to slog.Default.
func NewServer(handlers Handlers, metrics OrderMetrics, logger *slog.Logger) *Server {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger,
	}
}

type nopMetrics struct{}

func (nopMetrics) RecordOrderCreated(context.Context)             {}
func (nopMetrics) RecordStatusTransition(context.Context, string) {}
