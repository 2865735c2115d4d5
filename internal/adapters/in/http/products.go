package http

import (
	"net/http"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const productIDParam = "id_producto"

// productRequest accepts the identifier as id_producto or, as older consoles send it, id.
type productRequest struct {
	ID          *int64          `json:"id_producto"`
	LegacyID    *int64          `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Category    string          `json:"categoria"`
}

type productResponse struct {
	ID          int64  `json:"id_producto"`
	Name        string `json:"nombre_producto"`
	Description string `json:"descripcion"`
	Price       string `json:"precio"`
	Stock       int    `json:"stock"`
	Category    string `json:"categoria"`
}

type productCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id_producto"`
}

// GetProducts handles GET /productos - the catalog by name, or one product when ?id is set.
func (s *Server) GetProducts(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id", Error: err.Error()})
	}

	query, err := queries.NewGetProductsQuery(id)
	if err != nil {
		return s.fail(c, "could not load products", err)
	}

	products, err := s.handlers.GetProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, "could not load products", err)
	}

	response := make([]productResponse, len(products))
	for i, p := range products {
		response[i] = productResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.StringFixed(2),
			Stock:       p.Stock,
			Category:    p.Category,
		}
	}

	if id != nil && len(response) == 1 {
		return c.JSON(http.StatusOK, response[0])
	}
	return c.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /productos.
func (s *Server) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSaveProductCommand(nil, req.Name, req.Description, req.Price, req.Stock, req.Category)
	if err != nil {
		return s.fail(c, "could not create product", err)
	}

	id, err := s.handlers.SaveProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "could not create product", err)
	}

	return c.JSON(http.StatusCreated, productCreatedResponse{Message: "product created", ID: id.Int64()})
}

// UpdateProduct handles PUT /productos.
func (s *Server) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	id, err := requireID(c, productIDParam, req.ID, req.LegacyID)
	if err != nil {
		return s.fail(c, "could not update product", err)
	}

	cmd, err := commands.NewSaveProductCommand(&id, req.Name, req.Description, req.Price, req.Stock, req.Category)
	if err != nil {
		return s.fail(c, "could not update product", err)
	}

	if _, err = s.handlers.SaveProduct.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, "could not update product", err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "product updated"})
}

// DeleteProduct handles DELETE /productos. The product's order lines are removed with it.
func (s *Server) DeleteProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	id, err := requireID(c, productIDParam, req.ID, req.LegacyID)
	if err != nil {
		return s.fail(c, "could not delete product", err)
	}

	return s.remove(c, productIDParam, id, s.handlers.DeleteProduct,
		"could not delete product", "product and its order lines deleted")
}
