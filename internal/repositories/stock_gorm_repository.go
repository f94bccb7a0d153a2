package repositories

import (
	"fmt"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStockRepository is a GORM implementation of StockRepository.
type GORMStockRepository struct {
	db *gorm.DB
}

// NewGORMStockRepository creates a new instance of GORMStockRepository.
func NewGORMStockRepository(db *gorm.DB) *GORMStockRepository {
	return &GORMStockRepository{
		db: db,
	}
}

// GetAll retrieves all active stock batches with their products.
func (r *GORMStockRepository) GetAll() ([]models.Stock, error) {
	var stocks []models.Stock
	if err := r.db.Preload("Product").Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to get all stock batches: %w", err)
	}
	return stocks, nil
}

// GetDeleted retrieves all soft-deleted stock batches.
func (r *GORMStockRepository) GetDeleted() ([]models.Stock, error) {
	var stocks []models.Stock
	if err := r.db.Unscoped().Where("deleted_at IS NOT NULL").Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to get deleted stock batches: %w", err)
	}
	return stocks, nil
}

// GetByID retrieves a single active stock batch with its product.
func (r *GORMStockRepository) GetByID(id string) (*models.Stock, error) {
	var stock models.Stock
	if err := r.db.Preload("Product").First(&stock, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("stock batch with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get stock batch by ID %s: %w", id, err)
	}
	return &stock, nil
}

// GetDeletedByID retrieves a soft-deleted stock batch by its ID.
func (r *GORMStockRepository) GetDeletedByID(id string) (*models.Stock, error) {
	var stock models.Stock
	if err := r.db.Unscoped().First(&stock, "id = ? AND deleted_at IS NOT NULL", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("deleted stock batch with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deleted stock batch by ID %s: %w", id, err)
	}
	return &stock, nil
}

// GetByProductID retrieves the active batches of one product.
func (r *GORMStockRepository) GetByProductID(productID string) ([]models.Stock, error) {
	var stocks []models.Stock
	if err := r.db.Where("product_id = ?", productID).Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to get stock batches for product %s: %w", productID, err)
	}
	return stocks, nil
}

// Create creates a new stock batch in the database.
func (r *GORMStockRepository) Create(stock *models.Stock) error {
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	if err := r.db.Create(stock).Error; err != nil {
		return fmt.Errorf("failed to create stock batch: %w", err)
	}
	return nil
}

// Update updates an existing active stock batch.
func (r *GORMStockRepository) Update(stock *models.Stock) error {
	res := r.db.Omit("Product").Save(stock)
	if res.Error != nil {
		return fmt.Errorf("failed to update stock batch: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stock batch with ID %s: %w", stock.ID, ErrNotFound)
	}
	return nil
}

// DeductIfAvailable performs the atomic compare-and-deduct: the quantity is
// decremented only when the row still holds at least qty. Zero rows affected
// means the guard failed and nothing was changed.
func (r *GORMStockRepository) DeductIfAvailable(id string, qty int) (bool, error) {
	res := r.db.Model(&models.Stock{}).
		Where("id = ? AND quantity >= ?", id, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, fmt.Errorf("failed to deduct %d from stock batch %s: %w", qty, id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Restock increases the quantity of a batch and records the restock time.
func (r *GORMStockRepository) Restock(id string, qty int) error {
	res := r.db.Model(&models.Stock{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"quantity":       gorm.Expr("quantity + ?", qty),
			"last_restocked": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to restock batch %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stock batch with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// SoftDelete marks a stock batch as deleted.
func (r *GORMStockRepository) SoftDelete(id string) error {
	res := r.db.Delete(&models.Stock{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete stock batch: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stock batch with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Restore clears the delete marker of a soft-deleted stock batch.
func (r *GORMStockRepository) Restore(id string) error {
	res := r.db.Unscoped().Model(&models.Stock{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		UpdateColumn("deleted_at", nil)
	if res.Error != nil {
		return fmt.Errorf("failed to restore stock batch: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("deleted stock batch with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// HardDelete permanently removes a stock batch, bypassing the delete marker.
func (r *GORMStockRepository) HardDelete(id string) error {
	res := r.db.Unscoped().Delete(&models.Stock{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to permanently delete stock batch: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stock batch with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
