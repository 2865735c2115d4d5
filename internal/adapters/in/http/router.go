package http

import (
	"log/slog"
	"net/http"

	"deliveryhub/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds what NewEcho needs beyond the Server itself.
type RouterConfig struct {
	Tokens TokenVerifier
	// Metrics serves /metrics when set.
	Metrics http.Handler
	Logger  *slog.Logger
}

// NewEcho builds the echo instance with middleware and every route of the API.
func NewEcho(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	validate, err := ValidateRequests(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Pre(CORS())
	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger(logger))

	// Public
	e.GET("/health", s.Health)
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Spec())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics))
	}
	e.POST("/login", s.Login)

	auth := Authenticate(cfg.Tokens)

	// Orders
	e.POST("/pedidos_crear", s.CreateOrder, auth, validate)
	e.PUT("/pedidos_acciones", s.ChangeOrderStatus, auth, validate)
	e.GET("/pedidos", s.GetOrders, auth)

	// Customers
	e.GET("/clientes", s.GetCustomers, auth)
	e.POST("/clientes", s.CreateCustomer, auth)
	e.PUT("/clientes", s.UpdateCustomer, auth)
	e.DELETE("/clientes", s.DeleteCustomer, auth)

	// Products
	e.GET("/productos", s.GetProducts, auth)
	e.POST("/productos", s.CreateProduct, auth)
	e.PUT("/productos", s.UpdateProduct, auth)
	e.DELETE("/productos", s.DeleteProduct, auth)

	// Couriers
	e.GET("/repartidores", s.GetCouriers, auth)
	e.POST("/repartidores", s.CreateCourier, auth)
	e.PUT("/repartidores", s.UpdateCourier, auth)
	e.DELETE("/repartidores", s.DeleteCourier, auth)

	return e, nil
}
