package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/codegen"
	"gudang/pkg/rabbitmq"
)

// StockService handles business logic related to stock batches: batch
// creation, manual adjustment, and low-stock alerting.
type StockService struct {
	stockRepo   repositories.StockRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	notifier    Notifier
}

// NewStockService creates a new StockService.
func NewStockService(stockRepo repositories.StockRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository, notifier Notifier) *StockService {
	return &StockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// CreateStockRequest carries the caller-supplied fields of a new batch. The
// batch number is always generated from the product code and creation date.
type CreateStockRequest struct {
	ProductID     string  `json:"product_id" validate:"required,uuid"`
	Quantity      int     `json:"quantity" validate:"gte=0"`
	Size          string  `json:"size" validate:"omitempty,max=30"`
	Price         float64 `json:"price" validate:"omitempty,gte=0"`
	Supplier      string  `json:"supplier" validate:"omitempty,max=100"`
	LowStockAlert *int    `json:"low_stock_alert" validate:"omitempty,gte=0"`
}

// CreateBatch creates a stock batch for an active product. Batch numbers
// are not unique; a product may receive several batches on one day.
func (s *StockService) CreateBatch(req *CreateStockRequest) (*models.Stock, error) {
	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("product %s not found", req.ProductID)).WithError(err)
		}
		return nil, err
	}

	now := time.Now()
	threshold := models.DefaultLowStockAlert
	if req.LowStockAlert != nil {
		threshold = *req.LowStockAlert
	}

	stock := &models.Stock{
		ProductID:     product.ID,
		BatchNumber:   codegen.BatchNumber(product.Code, now),
		Quantity:      req.Quantity,
		Size:          req.Size,
		Price:         req.Price,
		Supplier:      req.Supplier,
		LowStockAlert: threshold,
		LastRestocked: now,
	}
	if err := s.stockRepo.Create(stock); err != nil {
		return nil, err
	}
	stock.Product = product
	return stock, nil
}

// GetAllStock retrieves all active stock batches.
func (s *StockService) GetAllStock() ([]models.Stock, error) {
	return s.stockRepo.GetAll()
}

// GetDeletedStock retrieves all soft-deleted stock batches.
func (s *StockService) GetDeletedStock() ([]models.Stock, error) {
	return s.stockRepo.GetDeleted()
}

// GetStockByProduct retrieves the active batches of one product.
func (s *StockService) GetStockByProduct(productID string) ([]models.Stock, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("product %s not found", productID)).WithError(err)
		}
		return nil, err
	}
	return s.stockRepo.GetByProductID(productID)
}

// GetStockByID retrieves a single active stock batch by its ID.
func (s *StockService) GetStockByID(id string) (*models.Stock, error) {
	stock, err := s.stockRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("stock batch %s not found", id)).WithError(err)
		}
		return nil, err
	}
	return stock, nil
}

// AdjustStockRequest carries the adjustable fields of a batch; nil pointers
// leave the field as it is.
type AdjustStockRequest struct {
	Quantity      *int     `json:"quantity" validate:"omitempty,gte=0"`
	Size          *string  `json:"size" validate:"omitempty,max=30"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	Supplier      *string  `json:"supplier" validate:"omitempty,max=100"`
	LowStockAlert *int     `json:"low_stock_alert" validate:"omitempty,gte=0"`
}

// AdjustStock applies a manual adjustment to an active batch and runs the
// low-stock check afterwards. The manual path alerts on quantity <=
// threshold, unlike the order path which alerts on strict <.
func (s *StockService) AdjustStock(id string, req *AdjustStockRequest) (*models.Stock, error) {
	stock, err := s.GetStockByID(id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if *req.Quantity > stock.Quantity {
			stock.LastRestocked = time.Now()
		}
		stock.Quantity = *req.Quantity
	}
	if req.Size != nil {
		stock.Size = *req.Size
	}
	if req.Price != nil {
		stock.Price = *req.Price
	}
	if req.Supplier != nil {
		stock.Supplier = *req.Supplier
	}
	if req.LowStockAlert != nil {
		stock.LowStockAlert = *req.LowStockAlert
	}

	if err := s.stockRepo.Update(stock); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("stock batch %s not found", id)).WithError(err)
		}
		return nil, err
	}

	if stock.Quantity <= stock.LowStockAlert {
		productName := stock.ProductID
		if stock.Product != nil {
			productName = stock.Product.Name
		}
		s.dispatchLowStock(rabbitmq.LowStockAlert{
			ProductName: productName,
			BatchNumber: stock.BatchNumber,
			Quantity:    stock.Quantity,
		})
	}
	return stock, nil
}

// RestockBatch adds qty units to a batch and bumps its last-restocked
// timestamp. Restocking never triggers a low-stock alert.
func (s *StockService) RestockBatch(id string, qty int) (*models.Stock, error) {
	if qty <= 0 {
		return nil, apperrors.ValidationError("restock quantity must be positive")
	}
	if err := s.stockRepo.Restock(id, qty); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("stock batch %s not found", id)).WithError(err)
		}
		return nil, err
	}
	return s.stockRepo.GetByID(id)
}

// SoftDeleteStock marks a stock batch as deleted.
func (s *StockService) SoftDeleteStock(id string) error {
	if err := s.stockRepo.SoftDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("stock batch %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}

// RestoreStock clears the delete marker of a stock batch. Batch numbers are
// not unique, so there is no conflict check.
func (s *StockService) RestoreStock(id string) (*models.Stock, error) {
	if _, err := s.stockRepo.GetDeletedByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("deleted stock batch %s not found", id)).WithError(err)
		}
		return nil, err
	}
	if err := s.stockRepo.Restore(id); err != nil {
		return nil, err
	}
	return s.stockRepo.GetByID(id)
}

// HardDeleteStock permanently removes a stock batch; irreversible.
func (s *StockService) HardDeleteStock(id string) error {
	if err := s.stockRepo.HardDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("stock batch %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}

// dispatchLowStock addresses an alert to all registered users and publishes
// it. Failures are logged and never surfaced to the caller.
func (s *StockService) dispatchLowStock(alert rabbitmq.LowStockAlert) {
	recipients, err := s.userRepo.ListEmails()
	if err != nil {
		log.Printf("Warning: failed to resolve low-stock alert recipients: %v", err)
	}
	alert.Recipients = recipients

	if s.notifier == nil {
		log.Println("Notifier is not initialized. Skipping low-stock alert publication.")
		return
	}
	if err := s.notifier.PublishLowStock(alert); err != nil {
		log.Printf("Warning: failed to publish low-stock alert for batch %s: %v", alert.BatchNumber, err)
	}
}
