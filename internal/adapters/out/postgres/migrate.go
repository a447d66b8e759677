package postgres

import (
	"cafe/internal/adapters/out/postgres/menurepo"
	"cafe/internal/adapters/out/postgres/orderrepo"
	"cafe/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns or reads, in creation order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
