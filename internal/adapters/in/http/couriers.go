package http

import (
	"net/http"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const courierIDParam = "id_repartidor"

type courierRequest struct {
	ID      *int64 `json:"id_repartidor"`
	Name    string `json:"nombre_completo"`
	Phone   string `json:"telefono"`
	Vehicle string `json:"vehiculo"`
	Status  string `json:"estado"`
}

type courierResponse struct {
	ID      int64  `json:"id_repartidor"`
	Name    string `json:"nombre_completo"`
	Phone   string `json:"telefono"`
	Vehicle string `json:"vehiculo"`
	Status  string `json:"estado"`
}

type courierCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id_repartidor"`
}

// GetCouriers handles GET /repartidores - all couriers by name, or one when ?id is set.
func (s *Server) GetCouriers(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id", Error: err.Error()})
	}

	query, err := queries.NewGetCouriersQuery(id)
	if err != nil {
		return s.fail(c, "could not load couriers", err)
	}

	couriers, err := s.handlers.GetCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, "could not load couriers", err)
	}

	response := make([]courierResponse, len(couriers))
	for i, co := range couriers {
		response[i] = courierResponse{
			ID:      co.ID,
			Name:    co.Name,
			Phone:   co.Phone,
			Vehicle: co.Vehicle,
			Status:  co.Status,
		}
	}

	if id != nil && len(response) == 1 {
		return c.JSON(http.StatusOK, response[0])
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /repartidores. New couriers are available unless estado says otherwise.
func (s *Server) CreateCourier(c echo.Context) error {
	var req courierRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSaveCourierCommand(nil, req.Name, req.Phone, req.Vehicle, req.Status)
	if err != nil {
		return s.fail(c, "could not create courier", err)
	}

	id, err := s.handlers.SaveCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "could not create courier", err)
	}

	return c.JSON(http.StatusCreated, courierCreatedResponse{Message: "courier created", ID: id.Int64()})
}

// UpdateCourier handles PUT /repartidores.
func (s *Server) UpdateCourier(c echo.Context) error {
	var req courierRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	id, err := requireID(c, courierIDParam, req.ID)
	if err != nil {
		return s.fail(c, "could not update courier", err)
	}

	cmd, err := commands.NewSaveCourierCommand(&id, req.Name, req.Phone, req.Vehicle, req.Status)
	if err != nil {
		return s.fail(c, "could not update courier", err)
	}

	if _, err = s.handlers.SaveCourier.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, "could not update courier", err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "courier updated"})
}

// DeleteCourier handles DELETE /repartidores. Couriers assigned to orders cannot be deleted.
func (s *Server) DeleteCourier(c echo.Context) error {
	var req courierRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	id, err := requireID(c, courierIDParam, req.ID)
	if err != nil {
		return s.fail(c, "could not delete courier", err)
	}

	return s.remove(c, courierIDParam, id, s.handlers.DeleteCourier, "could not delete courier", "courier deleted")
}
