package models

import "time"

// Review is a customer testimonial. Reviews are read-only through the API.
type Review struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Details   string    `json:"details" gorm:"type:text"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
