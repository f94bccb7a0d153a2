package repositories

import (
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all active orders with their items and customers.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Preload("Customer").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetDeleted retrieves all soft-deleted orders.
func (r *GORMOrderRepository) GetDeleted() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Unscoped().Preload("Items").Where("deleted_at IS NOT NULL").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get deleted orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single active order by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Preload("Customer").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetDeletedByID retrieves a soft-deleted order by its ID.
func (r *GORMOrderRepository) GetDeletedByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Unscoped().Preload("Items").First(&order, "id = ? AND deleted_at IS NOT NULL", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("deleted order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deleted order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create persists an order together with its items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if err := r.db.Omit("Customer").Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus updates the status of an active order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// SoftDelete marks an order as deleted. Its items stay in place so a restore
// brings the order back intact.
func (r *GORMOrderRepository) SoftDelete(id string) error {
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Restore clears the delete marker of a soft-deleted order.
func (r *GORMOrderRepository) Restore(id string) error {
	res := r.db.Unscoped().Model(&models.Order{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		UpdateColumn("deleted_at", nil)
	if res.Error != nil {
		return fmt.Errorf("failed to restore order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("deleted order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// HardDelete permanently removes an order and its items.
func (r *GORMOrderRepository) HardDelete(id string) error {
	if err := r.db.Unscoped().Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		return fmt.Errorf("failed to permanently delete order items: %w", err)
	}
	res := r.db.Unscoped().Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to permanently delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
