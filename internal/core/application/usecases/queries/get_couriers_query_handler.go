package queries

import (
	"context"

	"deliveryhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCouriersQueryHandler retrieves courier information from the database.
type GetCouriersQueryHandler struct {
	db *gorm.DB
}

func NewGetCouriersQueryHandler(db *gorm.DB) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{db: db}
}

// Handle returns couriers sorted by name.
func (h GetCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetCouriersQuery,
) ([]GetCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	if id := query.ID(); id != nil {
		db = db.Raw(`
			SELECT id_repartidor, nombre_completo, telefono, vehiculo, estado
			FROM repartidores
			WHERE id_repartidor = ?
		`, id.Int64())
	} else {
		db = db.Raw(`
			SELECT id_repartidor, nombre_completo, telefono, vehiculo, estado
			FROM repartidores
			ORDER BY nombre_completo
		`)
	}

	rows, err := db.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]GetCouriersQueryResponse, 0)
	for rows.Next() {
		var c GetCouriersQueryResponse
		if err = rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Vehicle, &c.Status); err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if id := query.ID(); id != nil && len(couriers) == 0 {
		return nil, errs.NewObjectNotFoundError("id_repartidor", id.Int64())
	}

	return couriers, nil
}
