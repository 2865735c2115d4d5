package courierrepo

import (
	"context"
	"errors"
	"fmt"

	"deliveryhub/internal/adapters/out/postgres/pgerr"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"gorm.io/gorm"
)

const paramName = "id_repartidor"

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{
		db: db,
	}
}

// Add saves a new courier and returns the generated id.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) (kernel.ID, error) {
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

// Update saves contact data and availability of an existing courier.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id_repartidor = ?", dto.ID).Updates(map[string]any{
		"nombre_completo": dto.Name,
		"telefono":        dto.Phone,
		"vehiculo":        dto.Vehicle,
		"estado":          dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, dto.ID)
	}

	return nil
}

// Delete removes a courier that no order references.
func (r *GormCourierRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id_repartidor = ?", id.Int64()).Delete(&CourierDTO{})
	if result.Error != nil {
		return pgerr.Translate(result.Error, fmt.Sprintf("courier %d is assigned to orders", id))
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, id.Int64())
	}
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id_repartidor = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}
