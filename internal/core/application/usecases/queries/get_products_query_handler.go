package queries

import (
	"context"

	"deliveryhub/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	if id := query.ID(); id != nil {
		db = db.Raw(`
			SELECT id_producto, nombre, descripcion, precio, stock, categoria
			FROM productos
			WHERE id_producto = ?
		`, id.Int64())
	} else {
		db = db.Raw(`
			SELECT id_producto, nombre, descripcion, precio, stock, categoria
			FROM productos
			ORDER BY nombre
		`)
	}

	rows, err := db.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetProductsQueryResponse, 0)
	for rows.Next() {
		var p GetProductsQueryResponse
		if err = rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if id := query.ID(); id != nil && len(products) == 0 {
		return nil, errs.NewObjectNotFoundError("id_producto", id.Int64())
	}

	return products, nil
}
