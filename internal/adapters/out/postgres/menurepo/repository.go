package menurepo

import (
	"context"
	"errors"
	"strings"

	"cafe/internal/core/domain/model/menu"
	"cafe/internal/pkg/storeerr"

	"gorm.io/gorm"
)

// GormMenuCatalog implements ports.MenuCatalog using GORM.
type GormMenuCatalog struct {
	db *gorm.DB
}

func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// Lookup matches the name exactly after trimming surrounding whitespace.
func (c *GormMenuCatalog) Lookup(ctx context.Context, name string) (*menu.Item, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, nil
	}

	var dto MenuItemDTO
	err := c.db.WithContext(ctx).Where("item_name = ?", name).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storeerr.Classify("lookup menu item", err)
	}

	item, err := toDomain(dto)
	if err != nil {
		return nil, false, err
	}
	return item, true, nil
}
