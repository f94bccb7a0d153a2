package services

import (
	"errors"
	"fmt"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all active categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetDeletedCategories retrieves all soft-deleted categories.
func (s *CategoryService) GetDeletedCategories() ([]models.Category, error) {
	return s.repo.GetDeleted()
}

// GetCategoryByID retrieves a single active category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("category %s not found", id)).WithError(err)
		}
		return nil, err
	}
	return category, nil
}

// CreateCategory creates a new category. The name must be unique among
// active categories.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if existing, err := s.repo.GetByName(category.Name); err == nil && existing != nil {
		return apperrors.ConflictError(fmt.Sprintf("category name '%s' already in use", category.Name))
	}
	return s.repo.Create(category)
}

// UpdateCategory updates an active category. Renaming onto another active
// category's name is rejected.
func (s *CategoryService) UpdateCategory(category *models.Category) error {
	if existing, err := s.repo.GetByName(category.Name); err == nil && existing.ID != category.ID {
		return apperrors.ConflictError(fmt.Sprintf("category name '%s' already in use", category.Name))
	}
	if err := s.repo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("category %s not found", category.ID)).WithError(err)
		}
		return err
	}
	return nil
}

// SoftDeleteCategory marks a category as deleted.
func (s *CategoryService) SoftDeleteCategory(id string) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("category %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}

// RestoreCategory clears the delete marker of a category. It fails with a
// conflict when an active category meanwhile claimed the same name, leaving
// both rows unchanged.
func (s *CategoryService) RestoreCategory(id string) (*models.Category, error) {
	deleted, err := s.repo.GetDeletedByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("deleted category %s not found", id)).WithError(err)
		}
		return nil, err
	}
	if active, err := s.repo.GetByName(deleted.Name); err == nil && active != nil {
		return nil, apperrors.ConflictError(fmt.Sprintf("cannot restore category %s: name '%s' is in use by an active category", id, deleted.Name))
	}
	if err := s.repo.Restore(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// HardDeleteCategory permanently removes a category; irreversible.
func (s *CategoryService) HardDeleteCategory(id string) error {
	if err := s.repo.HardDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("category %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}
