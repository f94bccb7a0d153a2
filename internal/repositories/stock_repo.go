package repositories

import "gudang/internal/models"

// StockRepository defines the interface for stock batch data access.
type StockRepository interface {
	GetAll() ([]models.Stock, error)
	GetDeleted() ([]models.Stock, error)
	// GetByID loads an active batch with its product association. The
	// association is nil when the product has been soft-deleted.
	GetByID(id string) (*models.Stock, error)
	GetDeletedByID(id string) (*models.Stock, error)
	GetByProductID(productID string) ([]models.Stock, error)
	Create(stock *models.Stock) error
	Update(stock *models.Stock) error
	// DeductIfAvailable decrements the batch quantity by qty in a single
	// conditional update. It reports false, without modifying the row, when
	// the remaining quantity is smaller than qty or the batch is gone.
	DeductIfAvailable(id string, qty int) (bool, error)
	// Restock reverses a deduction and bumps the last-restocked timestamp.
	Restock(id string, qty int) error
	SoftDelete(id string) error
	Restore(id string) error
	HardDelete(id string) error
}
