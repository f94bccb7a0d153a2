package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatusPending is the status assigned to freshly placed orders.
const OrderStatusPending = "pending"

// OrderItem is a single line of an order. Price is the product's unit price
// at the time the order was placed.
type OrderItem struct {
	ID       string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID  string  `json:"order_id" gorm:"type:varchar(36);index"`
	StockID  string  `json:"stock_id" gorm:"type:varchar(36)" validate:"required,uuid"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price"`
}

// Order represents a customer order. An order is either fully persisted with
// all of its stock deductions applied, or not persisted at all.
type Order struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CustomerID  string         `json:"customer_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Customer    *Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items       []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount float64        `json:"total_amount"`
	Status      string         `json:"status" gorm:"type:varchar(30);default:pending"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
