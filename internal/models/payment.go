package models

import "time"

// Payment records a settled checkout. CartIDs lists the cart items it paid for.
type Payment struct {
	ID            string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Email         string    `json:"email" gorm:"index;type:varchar(255)"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId" gorm:"type:varchar(255)"`
	Date          time.Time `json:"date"`
	CartIDs       []string  `json:"cartIds" gorm:"serializer:json;type:text"`
	MenuItemIDs   []string  `json:"menuItemIds" gorm:"serializer:json;type:text"`
	Status        string    `json:"status" gorm:"type:varchar(32)"` // e.g., "pending", "paid"
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentEvent is published after a payment has been recorded.
type PaymentEvent struct {
	PaymentID string   `json:"paymentId"`
	Email     string   `json:"email"`
	Price     float64  `json:"price"`
	CartIDs   []string `json:"cartIds"`
}

// CartCleanup is the compensation task queued when the cart delete of a payment fails.
type CartCleanup struct {
	PaymentID string   `json:"paymentId"`
	Email     string   `json:"email"`
	CartIDs   []string `json:"cartIds"`
}
