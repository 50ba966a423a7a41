// Package menurepo provides data transfer objects and mapping functions for
// catalog persistence.
package menurepo

import (
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/menu"
)

// MenuItemDTO represents the database structure for persisting catalog
// items. The item name is the natural primary key and the reference carried
// by cart lines.
type MenuItemDTO struct {
	Name        string  `gorm:"type:varchar(255);primaryKey"`
	Price       float64 `gorm:"type:numeric(10,2);not null"`
	Description string  `gorm:"type:text"`
	Category    string  `gorm:"type:varchar(64);index"`
	Image       string  `gorm:"type:text"`
}

// TableName specifies the database table name for catalog items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a catalog item to its database representation.
func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		Name:        item.Name(),
		Price:       item.Price().Amount(),
		Description: item.Description(),
		Category:    item.Category(),
		Image:       item.Image(),
	}
}

// toDomain converts a database row to a catalog item.
func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.NewItem(dto.Name, price, dto.Description, dto.Category, dto.Image)
}
