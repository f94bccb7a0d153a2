package repositories

import "gudang/internal/models"

// CategoryRepository defines the interface for category data access.
// GetAll/GetByID/GetByName see only active rows; the Deleted variants see
// only soft-deleted rows.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetDeleted() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	GetDeletedByID(id string) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	SoftDelete(id string) error
	Restore(id string) error
	HardDelete(id string) error
}
