package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultLowStockAlert is the threshold assigned to new batches when the
// caller does not provide one.
const DefaultLowStockAlert = 5

// Stock is a discrete stock-receipt batch of a product, with its own
// quantity and low-stock threshold. Quantity is never negative; deductions
// that would make it so are rejected atomically (see the stock repository).
type Stock struct {
	ID            string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID     string         `json:"product_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Product       *Product       `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	BatchNumber   string         `json:"batch_number" gorm:"type:varchar(30)"`
	Quantity      int            `json:"quantity" validate:"gte=0"`
	Size          string         `json:"size" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	Price         float64        `json:"price" validate:"omitempty,gte=0"`
	Supplier      string         `json:"supplier" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	LowStockAlert int            `json:"low_stock_alert" validate:"gte=0"`
	LastRestocked time.Time      `json:"last_restocked"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
