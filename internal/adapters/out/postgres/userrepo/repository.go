// Package userrepo reads console operators from the usuarios table.
package userrepo

import (
	"context"
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"
	"deliveryhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// UserDTO maps a row of the usuarios table.
type UserDTO struct {
	ID           int64  `gorm:"column:id_usuario;primaryKey"`
	Username     string `gorm:"column:nombre_usuario"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string `gorm:"column:rol"`
}

func (UserDTO) TableName() string {
	return "usuarios"
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "nombre_usuario = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("nombre_usuario", username)
		}
		return nil, err
	}

	return user.RestoreUser(kernel.ID(dto.ID), dto.Username, dto.PasswordHash, dto.Role)
}
