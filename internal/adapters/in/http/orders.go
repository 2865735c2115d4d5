package http

import (
	"net/http"
	"time"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const (
	msgCreateOrderFailed = "could not create order"
	msgChangeStatusFail  = "could not update order status"
	msgGetOrdersFailed   = "could not load orders"
)

type createOrderRequest struct {
	CustomerID int64              `json:"id_cliente"`
	Items      []orderLineRequest `json:"detalles"`
}

// orderLineRequest ignores any price sent by the client.
type orderLineRequest struct {
	ProductID int64 `json:"id_producto"`
	Quantity  int   `json:"cantidad"`
}

type createOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"id_pedido"`
}

type changeOrderStatusRequest struct {
	OrderID           int64  `json:"id_pedido"`
	Status            string `json:"nuevo_estado"`
	CourierID         *int64 `json:"id_repartidor"`
	PreviousCourierID *int64 `json:"id_repartidor_anterior"`
}

type orderSummary struct {
	ID           int64     `json:"id_pedido"`
	CourierID    *int64    `json:"id_repartidor"`
	OrderedAt    time.Time `json:"fecha_pedido"`
	Status       string    `json:"estado_pedido"`
	Total        string    `json:"total_pedido"`
	CustomerName string    `json:"cliente_nombre"`
	CourierName  *string   `json:"repartidor_nombre"`
}

type orderLine struct {
	ID          int64  `json:"id_detalle"`
	ProductID   int64  `json:"id_producto"`
	ProductName string `json:"producto_nombre"`
	Quantity    int    `json:"cantidad"`
	UnitPrice   string `json:"precio_unitario"`
}

type orderDetails struct {
	ID              int64       `json:"id_pedido"`
	CustomerID      int64       `json:"id_cliente"`
	CourierID       *int64      `json:"id_repartidor"`
	OrderedAt       time.Time   `json:"fecha_pedido"`
	Status          string      `json:"estado_pedido"`
	Total           string      `json:"total_pedido"`
	CustomerName    string      `json:"cliente_nombre"`
	CustomerAddress string      `json:"cliente_direccion"`
	CustomerPhone   string      `json:"cliente_telefono"`
	CourierName     *string     `json:"repartidor_nombre"`
	CourierPhone    *string     `json:"repartidor_telefono"`
	CourierVehicle  *string     `json:"repartidor_vehiculo"`
	Items           []orderLine `json:"detalles"`
}

// CreateOrder handles POST /pedidos_crear - places an order at current catalog prices.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, items)
	if err != nil {
		return s.fail(c, msgCreateOrderFailed, err)
	}

	ctx := c.Request().Context()
	orderID, err := s.handlers.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return s.fail(c, msgCreateOrderFailed, err)
	}
	s.metrics.RecordOrderCreated(ctx)

	return c.JSON(http.StatusCreated, createOrderResponse{
		Message: "order created",
		OrderID: orderID.Int64(),
	})
}

// ChangeOrderStatus handles PUT /pedidos_acciones - moves an order to a new status,
// assigning or releasing couriers on the way.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	var req changeOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(req.OrderID, req.Status, req.CourierID, req.PreviousCourierID)
	if err != nil {
		return s.fail(c, msgChangeStatusFail, err)
	}

	ctx := c.Request().Context()
	if err = s.handlers.ChangeOrderStatus.Handle(ctx, cmd); err != nil {
		return s.fail(c, msgChangeStatusFail, err)
	}
	s.metrics.RecordStatusTransition(ctx, cmd.Status().String())

	return c.JSON(http.StatusOK, messageResponse{Message: "order status updated"})
}

// GetOrders handles GET /pedidos - the order list, or one order with its lines when ?id is set.
func (s *Server) GetOrders(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id", Error: err.Error()})
	}
	if id != nil {
		return s.getOrderDetails(c, *id)
	}

	orders, err := s.handlers.GetOrders.Handle(c.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return s.fail(c, msgGetOrdersFailed, err)
	}

	response := make([]orderSummary, len(orders))
	for i, o := range orders {
		response[i] = orderSummary{
			ID:           o.ID,
			CourierID:    o.CourierID,
			OrderedAt:    o.OrderedAt,
			Status:       o.Status,
			Total:        o.Total.StringFixed(2),
			CustomerName: o.CustomerName,
			CourierName:  o.CourierName,
		}
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) getOrderDetails(c echo.Context, id int64) error {
	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return s.fail(c, msgGetOrdersFailed, err)
	}

	o, err := s.handlers.GetOrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, msgGetOrdersFailed, err)
	}

	items := make([]orderLine, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderLine{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
		}
	}

	return c.JSON(http.StatusOK, orderDetails{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CourierID:       o.CourierID,
		OrderedAt:       o.OrderedAt,
		Status:          o.Status,
		Total:           o.Total.StringFixed(2),
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		CustomerPhone:   o.CustomerPhone,
		CourierName:     o.CourierName,
		CourierPhone:    o.CourierPhone,
		CourierVehicle:  o.CourierVehicle,
		Items:           items,
	})
}
