package models

import "time"

// StaffRole defines allowed dashboard roles
type StaffRole string

const (
	RoleStaff StaffRole = "staff"
	RoleAdmin StaffRole = "admin"
)

// StaffUser is a dashboard account scoped to one restaurant. Diners have no
// accounts; their surfaces are keyed by restaurant id and table number.
type StaffUser struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         StaffRole `json:"role" gorm:"not null;default:'staff'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
