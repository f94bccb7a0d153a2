package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a back-office user. Every registered user receives
// low-stock alert notifications.
type User struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username  string         `json:"username" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Email     string         `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Password  string         `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role      string         `json:"role" gorm:"type:varchar(20);default:staff" validate:"omitempty,oneof=admin staff"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
