package repositories

import "gudang/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetDeleted() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetDeletedByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	SoftDelete(id string) error
	Restore(id string) error
	HardDelete(id string) error
}
