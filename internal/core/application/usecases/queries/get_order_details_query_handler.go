package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliveryhub/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle returns the order projection or errs.ObjectNotFoundError.
// Header and lines are read in one read-only transaction so they agree.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	var response GetOrderDetailsQueryResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		header, err := h.header(tx, query)
		if err != nil {
			return err
		}

		items, err := h.items(tx, query)
		if err != nil {
			return err
		}

		header.Items = items
		response = header
		return nil
	}, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderDetailsQueryHandler) header(tx *gorm.DB, query GetOrderDetailsQuery) (GetOrderDetailsQueryResponse, error) {
	row := tx.Raw(`
		SELECT
			p.id_pedido,
			p.id_cliente,
			p.id_repartidor,
			p.fecha_pedido,
			p.estado_pedido,
			p.total_pedido,
			COALESCE(c.nombre_completo, ''),
			COALESCE(c.direccion, ''),
			COALESCE(c.telefono, ''),
			r.nombre_completo,
			r.telefono,
			r.vehiculo
		FROM pedidos AS p
		LEFT JOIN clientes AS c ON p.id_cliente = c.id_cliente
		LEFT JOIN repartidores AS r ON p.id_repartidor = r.id_repartidor
		WHERE p.id_pedido = ?
	`, query.OrderID().Int64()).Row()

	var (
		o         GetOrderDetailsQueryResponse
		courierID sql.NullInt64
		courier   struct{ name, phone, vehicle sql.NullString }
	)

	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&courierID,
		&o.OrderedAt,
		&o.Status,
		&o.Total,
		&o.CustomerName,
		&o.CustomerAddress,
		&o.CustomerPhone,
		&courier.name,
		&courier.phone,
		&courier.vehicle,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return o, errs.NewObjectNotFoundError("id_pedido", query.OrderID().Int64())
		}
		return o, err
	}

	if courierID.Valid {
		o.CourierID = &courierID.Int64
		o.CourierName = &courier.name.String
		o.CourierPhone = &courier.phone.String
		o.CourierVehicle = &courier.vehicle.String
	}

	return o, nil
}

func (h GetOrderDetailsQueryHandler) items(tx *gorm.DB, query GetOrderDetailsQuery) ([]OrderLineResponse, error) {
	rows, err := tx.Raw(`
		SELECT
			pd.id_detalle,
			pd.id_producto,
			pd.cantidad,
			pd.precio_unitario,
			pr.nombre
		FROM pedido_detalles AS pd
		JOIN productos AS pr ON pd.id_producto = pr.id_producto
		WHERE pd.id_pedido = ?
		ORDER BY pd.id_detalle
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderLineResponse, 0)
	for rows.Next() {
		var item OrderLineResponse
		if err = rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.ProductName); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
