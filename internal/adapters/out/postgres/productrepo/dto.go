// Package productrepo persists catalog products in the productos table,
// including the row locks taken while an order withdraws stock.
package productrepo

import (
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO maps a row of the productos table.
type ProductDTO struct {
	ID          int64           `gorm:"column:id_producto;primaryKey"`
	Name        string          `gorm:"column:nombre"`
	Description string          `gorm:"column:descripcion"`
	Price       decimal.Decimal `gorm:"column:precio;type:numeric(10,2)"`
	Stock       int             `gorm:"column:stock"`
	Category    string          `gorm:"column:categoria"`
}

func (ProductDTO) TableName() string {
	return "productos"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Int64(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Decimal(),
		Stock:       p.Stock(),
		Category:    p.Category(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(kernel.ID(dto.ID), dto.Name, dto.Description, price, dto.Stock, dto.Category)
}
