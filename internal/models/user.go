package models

import "time"

// RoleAdmin is the only role the authorization chain recognises.
const RoleAdmin = "admin"

// User represents a registered diner or staff member.
// Email is unique at the application layer only (check-then-insert on registration).
type User struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Email     string    `json:"email" gorm:"index;type:varchar(255)"`
	Photo     string    `json:"photo,omitempty" gorm:"type:text"`
	Role      string    `json:"role,omitempty" gorm:"type:varchar(32)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
