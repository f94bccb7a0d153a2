package repositories

import (
	"fmt"

	"gudang/internal/models"
	"gudang/pkg/codegen"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all active products with their categories.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Category").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetDeleted retrieves all soft-deleted products.
func (r *GORMProductRepository) GetDeleted() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Unscoped().Where("deleted_at IS NOT NULL").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get deleted products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single active product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetDeletedByID retrieves a soft-deleted product by its ID.
func (r *GORMProductRepository) GetDeletedByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Unscoped().First(&product, "id = ? AND deleted_at IS NOT NULL", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("deleted product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deleted product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByCode retrieves an active product by its product code.
func (r *GORMProductRepository) GetByCode(code string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "code = ?", code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with code %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by code %s: %w", code, err)
	}
	return &product, nil
}

// MaxCodeSequence returns the highest sequence number among active products
// whose code matches the prefix exactly. The LIKE filter narrows the scan;
// codegen.ParseSequence enforces the exact shape, so a "FO" prefix does not
// pick up "FOO001".
func (r *GORMProductRepository) MaxCodeSequence(prefix string) (int, error) {
	var codes []string
	if err := r.db.Model(&models.Product{}).
		Where("code LIKE ?", prefix+"%").
		Pluck("code", &codes).Error; err != nil {
		return 0, fmt.Errorf("failed to scan product codes for prefix %s: %w", prefix, err)
	}

	maxSeq := 0
	for _, code := range codes {
		if seq, ok := codegen.ParseSequence(code, prefix); ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing active product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// SoftDelete marks a product as deleted.
func (r *GORMProductRepository) SoftDelete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Restore clears the delete marker of a soft-deleted product.
func (r *GORMProductRepository) Restore(id string) error {
	res := r.db.Unscoped().Model(&models.Product{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		UpdateColumn("deleted_at", nil)
	if res.Error != nil {
		return fmt.Errorf("failed to restore product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("deleted product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// HardDelete permanently removes a product, bypassing the delete marker.
func (r *GORMProductRepository) HardDelete(id string) error {
	res := r.db.Unscoped().Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to permanently delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
