package services

import (
	"errors"
	"fmt"
	"log"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/rabbitmq"
)

// OrderService coordinates the order placement transaction: customer
// validation, per-line stock deduction, total computation, and order
// persistence committed or rolled back as one unit.
type OrderService struct {
	tx        repositories.TxManager
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	notifier  Notifier
}

// NewOrderService creates a new OrderService.
func NewOrderService(tx repositories.TxManager, orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, notifier Notifier) *OrderService {
	return &OrderService{
		tx:        tx,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// OrderLine is one requested line of an order.
type OrderLine struct {
	StockID  string `json:"stock_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderRequest is the input to PlaceOrder. TotalAmount is optional: a
// positive value is taken as-is, anything else derives the total from the
// product prices read inside the transaction.
type PlaceOrderRequest struct {
	CustomerID  string      `json:"customer_id" validate:"required,uuid"`
	Items       []OrderLine `json:"items" validate:"required,min=1,dive"`
	TotalAmount float64     `json:"total_amount" validate:"omitempty,gte=0"`
}

// PlaceOrder places an order atomically. Every line is deducted with a
// conditional update so concurrent orders against the same batch can never
// drive its quantity negative; any failure rolls back all deductions made
// for this order and persists nothing. Low-stock alerts triggered by the
// deductions are published only after the transaction commits.
func (s *OrderService) PlaceOrder(req *PlaceOrderRequest) (*models.Order, error) {
	if req.CustomerID == "" {
		return nil, apperrors.ValidationError("customer_id is required")
	}
	if len(req.Items) == 0 {
		return nil, apperrors.ValidationError("order must contain at least one item")
	}
	for i, line := range req.Items {
		if line.StockID == "" {
			return nil, apperrors.ValidationError(fmt.Sprintf("item %d: stock_id is required", i))
		}
		if line.Quantity <= 0 {
			return nil, apperrors.ValidationError(fmt.Sprintf("item %d: quantity must be positive", i))
		}
	}

	var (
		order         *models.Order
		pendingAlerts []rabbitmq.LowStockAlert
	)

	err := s.tx.WithinTx(func(r repositories.TxRepos) error {
		customer, err := r.Customers().GetByID(req.CustomerID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NotFoundError(fmt.Sprintf("customer %s not found", req.CustomerID)).WithError(err)
			}
			return err
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		var total float64

		for _, line := range req.Items {
			stock, err := r.Stocks().GetByID(line.StockID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return apperrors.NotFoundError(fmt.Sprintf("stock batch %s not found", line.StockID)).WithError(err)
				}
				return err
			}
			if stock.Product == nil {
				return apperrors.NotFoundError(fmt.Sprintf("stock batch %s references an inactive product", line.StockID))
			}

			if line.Quantity > stock.Quantity {
				return apperrors.InsufficientStockError(stock.Product.Name, line.Quantity, stock.Quantity)
			}

			ok, err := r.Stocks().DeductIfAvailable(stock.ID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// A concurrent order won the race between our read and the
				// conditional update; report the quantity it left behind.
				fresh, freshErr := r.Stocks().GetByID(stock.ID)
				available := 0
				if freshErr == nil {
					available = fresh.Quantity
				}
				return apperrors.InsufficientStockError(stock.Product.Name, line.Quantity, available)
			}

			remaining := stock.Quantity - line.Quantity
			if remaining < stock.LowStockAlert {
				pendingAlerts = append(pendingAlerts, rabbitmq.LowStockAlert{
					ProductName: stock.Product.Name,
					BatchNumber: stock.BatchNumber,
					Quantity:    remaining,
				})
			}

			items = append(items, models.OrderItem{
				StockID:  stock.ID,
				Quantity: line.Quantity,
				Price:    stock.Product.Price, // Price at the time of order
			})
			total += stock.Product.Price * float64(line.Quantity)
		}

		if req.TotalAmount > 0 {
			total = req.TotalAmount
		}

		order = &models.Order{
			CustomerID:  customer.ID,
			Items:       items,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
		}
		return r.Orders().Create(order)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.TransactionError("order could not be committed").WithError(err)
	}

	// The transaction is committed; alerts queued during it are dispatched
	// best-effort and never affect the order outcome.
	for _, alert := range pendingAlerts {
		s.dispatchLowStock(alert)
	}

	return order, nil
}

// UpdateOrderStatus updates the status of an active order. Statuses are
// free-form strings; the caller decides the vocabulary. No stock side
// effects: cancellation is a bookkeeping state, not a restock.
func (s *OrderService) UpdateOrderStatus(id string, status string) (*models.Order, error) {
	if status == "" {
		return nil, apperrors.ValidationError("order status must not be empty")
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("order %s not found", id)).WithError(err)
		}
		return nil, err
	}
	return s.orderRepo.GetByID(id)
}

// GetAllOrders retrieves all active orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetDeletedOrders retrieves all soft-deleted orders.
func (s *OrderService) GetDeletedOrders() ([]models.Order, error) {
	return s.orderRepo.GetDeleted()
}

// GetOrderByID retrieves a single active order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("order %s not found", id)).WithError(err)
		}
		return nil, err
	}
	return order, nil
}

// SoftDeleteOrder marks an order as deleted. Stock already deducted stays
// deducted.
func (s *OrderService) SoftDeleteOrder(id string) error {
	if err := s.orderRepo.SoftDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("order %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}

// RestoreOrder clears the delete marker of an order. Orders carry no unique
// key, so there is no conflict check.
func (s *OrderService) RestoreOrder(id string) (*models.Order, error) {
	if _, err := s.orderRepo.GetDeletedByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("deleted order %s not found", id)).WithError(err)
		}
		return nil, err
	}
	if err := s.orderRepo.Restore(id); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(id)
}

// HardDeleteOrder permanently removes an order and its items; irreversible.
func (s *OrderService) HardDeleteOrder(id string) error {
	if err := s.orderRepo.HardDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("order %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}

func (s *OrderService) dispatchLowStock(alert rabbitmq.LowStockAlert) {
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
