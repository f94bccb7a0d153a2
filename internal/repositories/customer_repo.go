package repositories

import "gudang/internal/models"

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	GetDeleted() ([]models.Customer, error)
	GetByID(id string) (*models.Customer, error)
	GetDeletedByID(id string) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	SoftDelete(id string) error
	Restore(id string) error
	HardDelete(id string) error
}
