package queries

import (
	"context"

	"deliveryhub/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle returns every customer sorted by name. With an id it returns exactly one
// row or errs.ObjectNotFoundError.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	if id := query.ID(); id != nil {
		db = db.Raw(`
			SELECT id_cliente, nombre_completo, direccion, telefono
			FROM clientes
			WHERE id_cliente = ?
		`, id.Int64())
	} else {
		db = db.Raw(`
			SELECT id_cliente, nombre_completo, direccion, telefono
			FROM clientes
			ORDER BY nombre_completo
		`)
	}

	rows, err := db.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]GetCustomersQueryResponse, 0)
	for rows.Next() {
		var c GetCustomersQueryResponse
		if err = rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if id := query.ID(); id != nil && len(customers) == 0 {
		return nil, errs.NewObjectNotFoundError("id_cliente", id.Int64())
	}

	return customers, nil
}
