// Package customerrepo persists customer aggregates in the clientes table.
package customerrepo

import (
	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/kernel"
)

// CustomerDTO maps a row of the clientes table.
type CustomerDTO struct {
	ID      int64  `gorm:"column:id_cliente;primaryKey"`
	Name    string `gorm:"column:nombre_completo"`
	Address string `gorm:"column:direccion"`
	Phone   string `gorm:"column:telefono"`
}

func (CustomerDTO) TableName() string {
	return "clientes"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().Int64(),
		Name:    c.Name(),
		Address: c.Address(),
		Phone:   c.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(kernel.ID(dto.ID), dto.Name, dto.Address, dto.Phone)
}
