package productrepo

import (
	"context"
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/product"
	"deliveryhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const paramName = "id_producto"

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{
		db: db,
	}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) (kernel.ID, error) {
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

// Update writes every column. A map is used so zero stock and empty descriptions are stored.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id_producto = ?", dto.ID).Updates(map[string]any{
		"nombre":      dto.Name,
		"descripcion": dto.Description,
		"precio":      dto.Price,
		"stock":       dto.Stock,
		"categoria":   dto.Category,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, dto.ID)
	}

	return nil
}

// Delete removes the order lines that reference the product, then the product itself.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM pedido_detalles WHERE id_producto = ?", id.Int64()).Error; err != nil {
		return err
	}

	result := db.Where("id_producto = ?", id.Int64()).Delete(&ProductDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, id.Int64())
	}
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate issues SELECT ... FOR UPDATE. Outside a transaction the lock is released immediately.
func (r *GormProductRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*product.Product, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormProductRepository) get(ctx context.Context, db *gorm.DB, id kernel.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := db.WithContext(ctx).First(&dto, "id_producto = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}
