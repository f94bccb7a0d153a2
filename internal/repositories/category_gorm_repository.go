package repositories

import (
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all active categories.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetDeleted retrieves all soft-deleted categories.
func (r *GORMCategoryRepository) GetDeleted() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Unscoped().Where("deleted_at IS NOT NULL").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get deleted categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single active category by its ID.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// GetDeletedByID retrieves a soft-deleted category by its ID.
func (r *GORMCategoryRepository) GetDeletedByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Unscoped().First(&category, "id = ? AND deleted_at IS NOT NULL", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("deleted category with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deleted category by ID %s: %w", id, err)
	}
	return &category, nil
}

// GetByName retrieves an active category by its name.
func (r *GORMCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category with name %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by name %s: %w", name, err)
	}
	return &category, nil
}

// Create creates a new category in the database.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update updates an existing active category.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s: %w", category.ID, ErrNotFound)
	}
	return nil
}

// SoftDelete marks a category as deleted.
func (r *GORMCategoryRepository) SoftDelete(id string) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Restore clears the delete marker of a soft-deleted category. UpdateColumn
// keeps the rest of the row, including UpdatedAt, untouched.
func (r *GORMCategoryRepository) Restore(id string) error {
	res := r.db.Unscoped().Model(&models.Category{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		UpdateColumn("deleted_at", nil)
	if res.Error != nil {
		return fmt.Errorf("failed to restore category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("deleted category with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// HardDelete permanently removes a category, bypassing the delete marker.
func (r *GORMCategoryRepository) HardDelete(id string) error {
	res := r.db.Unscoped().Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to permanently delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
