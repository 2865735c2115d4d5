// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one pedidos row plus one pedido_detalles row per line item.
package orderrepo

import (
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the pedidos table. Status holds the Spanish label.
type OrderDTO struct {
	ID         int64           `gorm:"column:id_pedido;primaryKey"`
	CustomerID int64           `gorm:"column:id_cliente"`
	CourierID  *int64          `gorm:"column:id_repartidor"`
	OrderedAt  time.Time       `gorm:"column:fecha_pedido"`
	Status     string          `gorm:"column:estado_pedido"`
	Total      decimal.Decimal `gorm:"column:total_pedido;type:numeric(10,2)"`
	Items      []LineItemDTO   `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderDTO) TableName() string {
	return "pedidos"
}

// LineItemDTO represents the pedido_detalles table.
type LineItemDTO struct {
	ID        int64           `gorm:"column:id_detalle;primaryKey"`
	OrderID   int64           `gorm:"column:id_pedido"`
	ProductID int64           `gorm:"column:id_producto"`
	Quantity  int             `gorm:"column:cantidad"`
	UnitPrice decimal.Decimal `gorm:"column:precio_unitario;type:numeric(10,2)"`
}

func (LineItemDTO) TableName() string {
	return "pedido_detalles"
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *int64
	if id := o.CourierID(); id != nil {
		raw := id.Int64()
		courierID = &raw
	}

	items := make([]LineItemDTO, 0, len(o.Items()))
	for _, li := range o.Items() {
		items = append(items, LineItemDTO{
			ID:        li.ID().Int64(),
			OrderID:   o.ID().Int64(),
			ProductID: li.ProductID().Int64(),
			Quantity:  li.Quantity(),
			UnitPrice: li.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:         o.ID().Int64(),
		CustomerID: o.CustomerID().Int64(),
		CourierID:  courierID,
		OrderedAt:  o.CreatedAt(),
		Status:     o.Status().String(),
		Total:      o.Total().Decimal(),
		Items:      items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	courierID, err := kernel.NewOptionalID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		li, itemErr := order.RestoreLineItem(kernel.ID(itemDTO.ID), kernel.ID(itemDTO.ProductID), itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, li)
	}

	return order.RestoreOrder(kernel.ID(dto.ID), kernel.ID(dto.CustomerID), courierID, dto.OrderedAt, status, total, items)
}
