package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB, *fakeNotifier) {
	t.Helper()
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewOrderService(
		repositories.NewGORMTxManager(db),
		repositories.NewGORMOrderRepository(db),
		repositories.NewGORMUserRepository(db),
		notifier,
	)
	return svc, db, notifier
}

func stockQuantity(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var stock models.Stock
	require.NoError(t, db.First(&stock, "id = ?", id).Error)
	return stock.Quantity
}

func orderCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Order{}).Count(&count).Error)
	return count
}

func TestPlaceOrderDeductsStockAndDerivesTotal(t *testing.T) {
	svc, db, _ := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	product := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	stock := seedStock(t, db, product, 10, 2)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")

	order, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderLine{{StockID: stock.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 60.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 20.0, order.Items[0].Price)
	assert.Equal(t, 7, stockQuantity(t, db, stock.ID))
}

func TestPlaceOrderHonorsCallerTotal(t *testing.T) {
	svc, db, _ := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	product := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	stock := seedStock(t, db, product, 10, 2)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")

	order, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID:  customer.ID,
		Items:       []OrderLine{{StockID: stock.ID, Quantity: 3}},
		TotalAmount: 50.0, // discounted
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, order.TotalAmount)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, _, _ := newOrderService(t)

	_, err := svc.PlaceOrder(&PlaceOrderRequest{Items: []OrderLine{{StockID: "x", Quantity: 1}}})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	_, err = svc.PlaceOrder(&PlaceOrderRequest{CustomerID: "x"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	_, err = svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: "x",
		Items:      []OrderLine{{StockID: "y", Quantity: 0}},
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestPlaceOrderUnknownCustomer(t *testing.T) {
	svc, db, _ := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	product := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	stock := seedStock(t, db, product, 10, 2)

	_, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: "a81bc81b-dead-4e5d-abff-90865d1e13b1",
		Items:      []OrderLine{{StockID: stock.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	assert.Equal(t, 10, stockQuantity(t, db, stock.ID))
	assert.Zero(t, orderCount(t, db))
}

func TestPlaceOrderRollsBackEarlierLinesOnUnknownStock(t *testing.T) {
	svc, db, _ := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	product := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	stock := seedStock(t, db, product, 10, 2)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")

	_, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: customer.ID,
		Items: []OrderLine{
			{StockID: stock.ID, Quantity: 4},
			{StockID: "a81bc81b-dead-4e5d-abff-90865d1e13b1", Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	// The first line's deduction is rolled back with the transaction.
	assert.Equal(t, 10, stockQuantity(t, db, stock.ID))
	assert.Zero(t, orderCount(t, db))
}

func TestPlaceOrderRollsBackOnInsufficientSecondLine(t *testing.T) {
	svc, db, _ := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	shoes := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	boots := seedProduct(t, db, category, "Hiking Boots", "FOO002", 35.0)
	shoesStock := seedStock(t, db, shoes, 10, 2)
	bootsStock := seedStock(t, db, boots, 3, 2)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")

	_, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: customer.ID,
		Items: []OrderLine{
			{StockID: shoesStock.ID, Quantity: 4},
			{StockID: bootsStock.ID, Quantity: 5},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInsufficientStock))
	assert.Contains(t, err.Error(), "Hiking Boots")
	assert.Contains(t, err.Error(), "requested: 5")
	assert.Contains(t, err.Error(), "available: 3")

	assert.Equal(t, 10, stockQuantity(t, db, shoesStock.ID))
	assert.Equal(t, 3, stockQuantity(t, db, bootsStock.ID))
	assert.Zero(t, orderCount(t, db))
}

func TestPlaceOrderLowStockAlertAfterCommit(t *testing.T) {
	svc, db, notifier := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	product := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	stock := seedStock(t, db, product, 10, 5)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")
	seedUser(t, db, "admin", "admin@gudang.test")
	seedUser(t, db, "staff", "staff@gudang.test")

	// Deducting to exactly the threshold does not alert; the check is
	// strictly below.
	_, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderLine{{StockID: stock.ID, Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Empty(t, notifier.published())

	// One more unit takes it below the threshold.
	_, err = svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderLine{{StockID: stock.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	alerts := notifier.published()
	require.Len(t, alerts, 1)
	assert.Equal(t, "Running Shoes", alerts[0].ProductName)
	assert.Equal(t, stock.BatchNumber, alerts[0].BatchNumber)
	assert.Equal(t, 4, alerts[0].Quantity)
	assert.ElementsMatch(t, []string{"admin@gudang.test", "staff@gudang.test"}, alerts[0].Recipients)
}

func TestPlaceOrderNoAlertWhenRolledBack(t *testing.T) {
	svc, db, notifier := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	shoes := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	boots := seedProduct(t, db, category, "Hiking Boots", "FOO002", 35.0)
	shoesStock := seedStock(t, db, shoes, 6, 5)
	bootsStock := seedStock(t, db, boots, 1, 1)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")
	seedUser(t, db, "admin", "admin@gudang.test")

	// The first line would cross the threshold, but the second line aborts
	// the transaction, so no alert may leak out.
	_, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: customer.ID,
		Items: []OrderLine{
			{StockID: shoesStock.ID, Quantity: 3},
			{StockID: bootsStock.ID, Quantity: 2},
		},
	})
	require.Error(t, err)
	assert.Empty(t, notifier.published())
	assert.Equal(t, 6, stockQuantity(t, db, shoesStock.ID))
}

func TestPlaceOrderConcurrentNoOversell(t *testing.T) {
	svc, db, _ := newOrderService(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // serialize transactions on the shared file

	category := seedCategory(t, db, "Footwear")
	product := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	stock := seedStock(t, db, product, 25, 0)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")

	const (
		workers  = 10
		perOrder = 4
	)
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.PlaceOrder(&PlaceOrderRequest{
				CustomerID: customer.ID,
				Items:      []OrderLine{{StockID: stock.ID, Quantity: perOrder}},
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	remaining := stockQuantity(t, db, stock.ID)
	assert.GreaterOrEqual(t, remaining, 0, "stock quantity must never go negative")
	assert.Equal(t, 25-succeeded*perOrder, remaining)
	assert.LessOrEqual(t, succeeded*perOrder, 25)
	assert.Equal(t, int64(succeeded), orderCount(t, db))
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, db, _ := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	product := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	stock := seedStock(t, db, product, 10, 2)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")

	order, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderLine{{StockID: stock.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(order.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, "shipped", updated.Status)

	// Any caller-defined status string is accepted.
	updated, err = svc.UpdateOrderStatus(order.ID, "awaiting_pickup")
	require.NoError(t, err)
	assert.Equal(t, "awaiting_pickup", updated.Status)

	_, err = svc.UpdateOrderStatus(order.ID, "")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	_, err = svc.UpdateOrderStatus("a81bc81b-dead-4e5d-abff-90865d1e13b1", "shipped")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestCancelOrderKeepsDeductions(t *testing.T) {
	svc, db, _ := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	product := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	stock := seedStock(t, db, product, 10, 2)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")

	order, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderLine{{StockID: stock.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(order.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, 6, stockQuantity(t, db, stock.ID))
}

func TestOrderSoftDeleteLifecycle(t *testing.T) {
	svc, db, _ := newOrderService(t)

	category := seedCategory(t, db, "Footwear")
	product := seedProduct(t, db, category, "Running Shoes", "FOO001", 20.0)
	stock := seedStock(t, db, product, 10, 2)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")

	order, err := svc.PlaceOrder(&PlaceOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderLine{{StockID: stock.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDeleteOrder(order.ID))
	assert.Equal(t, 8, stockQuantity(t, db, stock.ID), "deleting an order does not restock")

	deleted, err := svc.GetDeletedOrders()
	require.NoError(t, err)
	require.Len(t, deleted, 1)

	restored, err := svc.RestoreOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, restored.ID)

	require.NoError(t, svc.SoftDeleteOrder(order.ID))
	require.NoError(t, svc.HardDeleteOrder(order.ID))
	assert.Zero(t, orderCount(t, db))

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount, "order items are removed with the order")
}
