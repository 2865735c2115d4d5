package http

import (
	"net/http"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const customerIDParam = "id_cliente"

type customerRequest struct {
	ID      *int64 `json:"id_cliente"`
	Name    string `json:"nombre_completo"`
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
}

type customerResponse struct {
	ID      int64  `json:"id_cliente"`
	Name    string `json:"nombre_completo"`
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
}

type customerCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id_cliente"`
}

// GetCustomers handles GET /clientes - all customers by name, or one when ?id is set.
func (s *Server) GetCustomers(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id", Error: err.Error()})
	}

	query, err := queries.NewGetCustomersQuery(id)
	if err != nil {
		return s.fail(c, "could not load customers", err)
	}

	customers, err := s.handlers.GetCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, "could not load customers", err)
	}

	response := make([]customerResponse, len(customers))
	for i, cu := range customers {
		response[i] = customerResponse{
			ID:      cu.ID,
			Name:    cu.Name,
			Address: cu.Address,
			Phone:   cu.Phone,
		}
	}

	if id != nil && len(response) == 1 {
		return c.JSON(http.StatusOK, response[0])
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /clientes.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSaveCustomerCommand(nil, req.Name, req.Address, req.Phone)
	if err != nil {
		return s.fail(c, "could not create customer", err)
	}

	id, err := s.handlers.SaveCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "could not create customer", err)
	}

	return c.JSON(http.StatusCreated, customerCreatedResponse{Message: "customer created", ID: id.Int64()})
}

// UpdateCustomer handles PUT /clientes.
func (s *Server) UpdateCustomer(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	id, err := requireID(c, customerIDParam, req.ID)
	if err != nil {
		return s.fail(c, "could not update customer", err)
	}

	cmd, err := commands.NewSaveCustomerCommand(&id, req.Name, req.Address, req.Phone)
	if err != nil {
		return s.fail(c, "could not update customer", err)
	}

	if _, err = s.handlers.SaveCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, "could not update customer", err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "customer updated"})
}

// DeleteCustomer handles DELETE /clientes. Customers with orders cannot be deleted.
func (s *Server) DeleteCustomer(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	id, err := requireID(c, customerIDParam, req.ID)
	if err != nil {
		return s.fail(c, "could not delete customer", err)
	}

	return s.remove(c, customerIDParam, id, s.handlers.DeleteCustomer, "could not delete customer", "customer deleted")
}
