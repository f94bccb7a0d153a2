package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gudang/internal/models"
	"gudang/pkg/rabbitmq"
)

// newTestDB opens an isolated in-memory database for one test and migrates
// the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Stock{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)
	return db
}

// fakeNotifier records published alerts so tests can assert on them.
type fakeNotifier struct {
	mu     sync.Mutex
	alerts []rabbitmq.LowStockAlert
	err    error
}

func (f *fakeNotifier) PublishLowStock(alert rabbitmq.LowStockAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakeNotifier) published() []rabbitmq.LowStockAlert {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]rabbitmq.LowStockAlert, len(f.alerts))
	copy(out, f.alerts)
	return out
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{ID: uuid.New().String(), Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, category *models.Category, name, code string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:         uuid.New().String(),
		Name:       name,
		Code:       code,
		CategoryID: category.ID,
		Price:      price,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedStock(t *testing.T, db *gorm.DB, product *models.Product, quantity, lowStockAlert int) *models.Stock {
	t.Helper()
	stock := &models.Stock{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		BatchNumber:   "BATCH_" + product.Code + "_010126",
		Quantity:      quantity,
		LowStockAlert: lowStockAlert,
	}
	require.NoError(t, db.Create(stock).Error)
	return stock
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) *models.Customer {
	t.Helper()
	customer := &models.Customer{ID: uuid.New().String(), Name: name, Email: email}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := &models.User{ID: uuid.New().String(), Username: username, Email: email, Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}
