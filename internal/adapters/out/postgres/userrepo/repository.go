package userrepo

import (
	"context"
	"errors"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/user"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/storeerr"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Get(ctx context.Context, login kernel.Login) (*user.User, error) {
	if err := login.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).Where("login = ?", login.String()).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("login", login.String())
	}
	if err != nil {
		return nil, storeerr.Classify("get user", err)
	}

	return toDomain(dto)
}
