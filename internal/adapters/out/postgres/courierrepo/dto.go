// Package courierrepo persists couriers in the repartidores table.
package courierrepo

import (
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
)

// CourierDTO maps a row of the repartidores table. Status holds the Spanish label.
type CourierDTO struct {
	ID      int64  `gorm:"column:id_repartidor;primaryKey"`
	Name    string `gorm:"column:nombre_completo"`
	Phone   string `gorm:"column:telefono"`
	Vehicle string `gorm:"column:vehiculo"`
	Status  string `gorm:"column:estado"`
}

func (CourierDTO) TableName() string {
	return "repartidores"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:      c.ID().Int64(),
		Name:    c.Name(),
		Phone:   c.Phone(),
		Vehicle: c.Vehicle(),
		Status:  c.Status().String(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	status, err := courier.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return courier.RestoreCourier(kernel.ID(dto.ID), dto.Name, dto.Phone, dto.Vehicle, status)
}
