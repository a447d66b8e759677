// Package menurepo reads the menu table.
package menurepo

import (
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

type MenuItemDTO struct {
	ItemName    string          `gorm:"primaryKey;size:50"`
	Type        string          `gorm:"size:20;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Description string          `gorm:"size:400"`
	ImageURL    string          `gorm:"column:image_url;size:256"`
}

func (MenuItemDTO) TableName() string {
	return "menu"
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return menu.NewItem(dto.ItemName, dto.Type, price, dto.Description, dto.ImageURL)
}
