package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns all orders ordered by placement time, newest first.
// Ties keep the higher id first so the list is stable.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id_pedido,
			p.id_repartidor,
			p.fecha_pedido,
			p.estado_pedido,
			p.total_pedido,
			COALESCE(c.nombre_completo, ''),
			r.nombre_completo
		FROM pedidos AS p
		LEFT JOIN clientes AS c ON p.id_cliente = c.id_cliente
		LEFT JOIN repartidores AS r ON p.id_repartidor = r.id_repartidor
		ORDER BY p.fecha_pedido DESC, p.id_pedido DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			o           GetOrdersQueryResponse
			courierID   sql.NullInt64
			courierName sql.NullString
		)

		err = rows.Scan(
			&o.ID,
			&courierID,
			&o.OrderedAt,
			&o.Status,
			&o.Total,
			&o.CustomerName,
			&courierName,
		)
		if err != nil {
			return nil, err
		}

		if courierID.Valid {
			o.CourierID = &courierID.Int64
		}
		if courierName.Valid {
			o.CourierName = &courierName.String
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
