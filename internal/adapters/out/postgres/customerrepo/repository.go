package customerrepo

import (
	"context"
	"errors"
	"fmt"

	"deliveryhub/internal/adapters/out/postgres/pgerr"
	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"gorm.io/gorm"
)

const paramName = "id_cliente"

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{
		db: db,
	}
}

// Add inserts the customer and returns the serial assigned by the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) (kernel.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return kernel.ID(dto.ID), nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id_cliente = ?", dto.ID).Updates(map[string]any{
		"nombre_completo": dto.Name,
		"direccion":       dto.Address,
		"telefono":        dto.Phone,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, dto.ID)
	}

	return nil
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id_cliente = ?", id.Int64()).Delete(&CustomerDTO{})
	if result.Error != nil {
		return pgerr.Translate(result.Error, fmt.Sprintf("customer %d still has orders", id))
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, id.Int64())
	}
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id_cliente = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}
