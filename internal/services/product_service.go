package services

import (
	"errors"
	"fmt"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/codegen"
)

// ProductService handles business logic related to products, including
// product code generation.
type ProductService struct {
	tx           repositories.TxManager
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductService creates a new ProductService.
func NewProductService(tx repositories.TxManager, productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductService {
	return &ProductService{
		tx:           tx,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductRequest carries the caller-supplied fields of a new product.
// The product code is always generated, never accepted from the caller.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	CategoryID  string   `json:"category_id" validate:"required,uuid"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// CreateProduct creates a product with a generated code. The sequence scan
// and the insert run in one transaction; the code is re-checked against
// active products inside the transaction before the insert so sequential
// creations in the same category never collide.
func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	var product *models.Product

	err := s.tx.WithinTx(func(r repositories.TxRepos) error {
		category, err := r.Categories().GetByID(req.CategoryID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NotFoundError(fmt.Sprintf("category %s not found", req.CategoryID)).WithError(err)
			}
			return err
		}

		prefix := codegen.Prefix(category.Name)
		if prefix == "" {
			return apperrors.ValidationError(fmt.Sprintf("category name '%s' contains no letters to derive a product code prefix from", category.Name))
		}

		maxSeq, err := r.Products().MaxCodeSequence(prefix)
		if err != nil {
			return err
		}

		// The sequence counts only active products, so gaps left by
		// soft-deletes are skipped and a freed code can be reissued.
		seq := maxSeq + 1
		code := codegen.FormatProductCode(prefix, seq)
		for {
			if _, err := r.Products().GetByCode(code); errors.Is(err, repositories.ErrNotFound) {
				break
			} else if err != nil {
				return err
			}
			seq++
			code = codegen.FormatProductCode(prefix, seq)
		}

		product = &models.Product{
			Name:        req.Name,
			Description: req.Description,
			Code:        code,
			CategoryID:  category.ID,
			Price:       req.Price,
			Images:      req.Images,
		}
		return r.Products().Create(product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetAllProducts retrieves all active products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetDeletedProducts retrieves all soft-deleted products.
func (s *ProductService) GetDeletedProducts() ([]models.Product, error) {
	return s.productRepo.GetDeleted()
}

// GetProductByID retrieves a single active product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("product %s not found", id)).WithError(err)
		}
		return nil, err
	}
	return product, nil
}

// UpdateProductRequest carries the updatable fields of a product; nil
// pointers leave the field as it is. The code and category are immutable.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// UpdateProduct applies a partial update to an active product.
func (s *ProductService) UpdateProduct(id string, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	product.Category = nil
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(id)
}

// SoftDeleteProduct marks a product as deleted. Its code stays on the row
// but no longer counts toward the active sequence.
func (s *ProductService) SoftDeleteProduct(id string) error {
	if err := s.productRepo.SoftDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("product %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}

// RestoreProduct clears the delete marker of a product. When an active
// product meanwhile took the same code (the sequence reissues freed codes),
// restoring would duplicate an active code, so it fails with a conflict and
// changes nothing.
func (s *ProductService) RestoreProduct(id string) (*models.Product, error) {
	deleted, err := s.productRepo.GetDeletedByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("deleted product %s not found", id)).WithError(err)
		}
		return nil, err
	}
	if active, err := s.productRepo.GetByCode(deleted.Code); err == nil && active != nil {
		return nil, apperrors.ConflictError(fmt.Sprintf("cannot restore product %s: code %s is in use by an active product", id, deleted.Code))
	}
	if err := s.productRepo.Restore(id); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(id)
}

// HardDeleteProduct permanently removes a product; irreversible.
func (s *ProductService) HardDeleteProduct(id string) error {
	if err := s.productRepo.HardDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("product %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}
