package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products and drives the product code prefix.
// Its name must be unique among active (non-deleted) categories; the
// uniqueness check lives in the service layer because soft-deleted rows may
// legitimately share a name with an active one.
type Category struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string         `json:"name" gorm:"type:varchar(100);index" validate:"required,min=2,max=100"`
	Description string         `json:"description" validate:"omitempty,max=500"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
