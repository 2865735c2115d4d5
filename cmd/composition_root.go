package cmd

import (
	"errors"

	httpadapter "deliveryhub/internal/adapters/in/http"
	"deliveryhub/internal/adapters/out/jwtauth"
	"deliveryhub/internal/adapters/out/kafka"
	"deliveryhub/internal/adapters/out/postgres"
	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	tokens     *jwtauth.TokenService
	hasher     jwtauth.BcryptHasher

	closers []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	tokens, err := jwtauth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NopPublisher{},
		tokens:     tokens,
		hasher:     jwtauth.NewBcryptHasher(bcrypt.DefaultCost),
	}

	if cfg.KafkaHost != "" {
		publisher := kafka.NewOrderEventPublisher(cfg.KafkaHost, cfg.KafkaOrderChangedTopic)
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	}

	return root, nil
}

// Close releases the resources opened by the root. The database is owned by the caller.
func (c *CompositionRoot) Close() error {
	var joined []error
	for _, closeFn := range c.closers {
		joined = append(joined, closeFn())
	}
	return errors.Join(joined...)
}

// Tokens verifies the bearer tokens issued at login.
func (c *CompositionRoot) Tokens() *jwtauth.TokenService {
	return c.tokens
}

// Handlers wires every use case exposed over HTTP.
func (c *CompositionRoot) Handlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		Login:             c.CreateLoginCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		SaveCustomer:      c.CreateSaveCustomerCommandHandler(),
		DeleteCustomer:    c.CreateDeleteCustomerCommandHandler(),
		SaveProduct:       c.CreateSaveProductCommandHandler(),
		DeleteProduct:     c.CreateDeleteProductCommandHandler(),
		SaveCourier:       c.CreateSaveCourierCommandHandler(),
		DeleteCourier:     c.CreateDeleteCourierCommandHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetOrderDetails:   c.CreateGetOrderDetailsQueryHandler(),
		GetCustomers:      c.CreateGetCustomersQueryHandler(),
		GetProducts:       c.CreateGetProductsQueryHandler(),
		GetCouriers:       c.CreateGetCouriersQueryHandler(),
	}
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSaveCustomerCommandHandler() commands.SaveCustomerCommandHandler {
	return commands.NewSaveCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSaveProductCommandHandler() commands.SaveProductCommandHandler {
	return commands.NewSaveProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSaveCourierCommandHandler() commands.SaveCourierCommandHandler {
	return commands.NewSaveCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	return commands.NewDeleteCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.gormDB)
}

// The adapters below let the single gorm unit of work satisfy the narrow
// per-handler factory interfaces.

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
