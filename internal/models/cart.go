package models

import "time"

// CartItem is a menu item placed in a user's cart, keyed by the user's email.
type CartItem struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	MenuID    string    `json:"menuId" gorm:"type:varchar(36)"`
	Email     string    `json:"email" gorm:"index;type:varchar(255)"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Image     string    `json:"image" gorm:"type:text"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the collection name used by existing data.
func (CartItem) TableName() string {
	return "carts"
}
