package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a buyer. Email must be unique among active customers.
type Customer struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string         `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email     string         `json:"email" gorm:"type:varchar(255);index" validate:"required,email"`
	Phone     string         `json:"phone" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	Address   string         `json:"address" validate:"omitempty,max=500"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
