package repositories

import (
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// GetAll retrieves all active customers.
func (r *GORMCustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	return customers, nil
}

// GetDeleted retrieves all soft-deleted customers.
func (r *GORMCustomerRepository) GetDeleted() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Unscoped().Where("deleted_at IS NOT NULL").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get deleted customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a single active customer by its ID.
func (r *GORMCustomerRepository) GetByID(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("customer with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer by ID %s: %w", id, err)
	}
	return &customer, nil
}

// GetDeletedByID retrieves a soft-deleted customer by its ID.
func (r *GORMCustomerRepository) GetDeletedByID(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Unscoped().First(&customer, "id = ? AND deleted_at IS NOT NULL", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("deleted customer with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deleted customer by ID %s: %w", id, err)
	}
	return &customer, nil
}

// GetByEmail retrieves an active customer by email.
func (r *GORMCustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("customer with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer by email %s: %w", email, err)
	}
	return &customer, nil
}

// Create creates a new customer in the database.
func (r *GORMCustomerRepository) Create(customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update updates an existing active customer.
func (r *GORMCustomerRepository) Update(customer *models.Customer) error {
	res := r.db.Save(customer)
	if res.Error != nil {
		return fmt.Errorf("failed to update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer with ID %s: %w", customer.ID, ErrNotFound)
	}
	return nil
}

// SoftDelete marks a customer as deleted.
func (r *GORMCustomerRepository) SoftDelete(id string) error {
	res := r.db.Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Restore clears the delete marker of a soft-deleted customer.
func (r *GORMCustomerRepository) Restore(id string) error {
	res := r.db.Unscoped().Model(&models.Customer{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		UpdateColumn("deleted_at", nil)
	if res.Error != nil {
		return fmt.Errorf("failed to restore customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("deleted customer with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// HardDelete permanently removes a customer, bypassing the delete marker.
func (r *GORMCustomerRepository) HardDelete(id string) error {
	res := r.db.Unscoped().Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to permanently delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
