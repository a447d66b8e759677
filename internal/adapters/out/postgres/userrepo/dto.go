// Package userrepo reads the users table. Credentials are managed elsewhere
// and never loaded.
package userrepo

import (
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/user"
)

type UserDTO struct {
	Login    string `gorm:"primaryKey;size:50"`
	PhoneNum string `gorm:"size:16"`
	FavItems string `gorm:"size:400"`
	Type     string `gorm:"size:8;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	login, err := kernel.NewLogin(dto.Login)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Type)
	if err != nil {
		return nil, err
	}
	return user.NewUser(login, role, dto.PhoneNum, dto.FavItems)
}
