package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product. Code is generated at creation time
// from the category name (see pkg/codegen) and is immutable afterwards.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string         `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Description string         `json:"description" validate:"omitempty,max=500"`
	Code        string         `json:"code" gorm:"type:varchar(6);index"`
	CategoryID  string         `json:"category_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Category    *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Price       float64        `json:"price" validate:"required,gt=0"`
	Images      []string       `json:"images" gorm:"serializer:json"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
