package repositories

import "gudang/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetDeleted() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetDeletedByID(id string) (*models.Product, error)
	GetByCode(code string) (*models.Product, error)
	// MaxCodeSequence returns the highest numeric suffix among active
	// products whose code is exactly prefix followed by three digits, or 0
	// when there are none.
	MaxCodeSequence(prefix string) (int, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	SoftDelete(id string) error
	Restore(id string) error
	HardDelete(id string) error
}
