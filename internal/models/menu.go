package models

import "time"

// MenuItem represents a dish on the bistro menu.
type MenuItem struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Recipe    string    `json:"recipe" gorm:"type:text"`
	Image     string    `json:"image" gorm:"type:text"`
	Category  string    `json:"category" gorm:"index;type:varchar(64)"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the collection name used by existing data.
func (MenuItem) TableName() string {
	return "menu"
}
