package repositories

import "gorm.io/gorm"

type gormTxRepos struct {
	categories CategoryRepository
	products   ProductRepository
	customers  CustomerRepository
	stocks     StockRepository
	orders     OrderRepository
}

func (r *gormTxRepos) Categories() CategoryRepository { return r.categories }
func (r *gormTxRepos) Products() ProductRepository    { return r.products }
func (r *gormTxRepos) Customers() CustomerRepository  { return r.customers }
func (r *gormTxRepos) Stocks() StockRepository        { return r.stocks }
func (r *gormTxRepos) Orders() OrderRepository        { return r.orders }

// GORMTxManager runs a function inside a database transaction, handing it
// repositories bound to the transaction handle. A non-nil return from the
// function rolls everything back.
type GORMTxManager struct {
	db *gorm.DB
}

// NewGORMTxManager creates a new instance of GORMTxManager.
func NewGORMTxManager(db *gorm.DB) *GORMTxManager {
	return &GORMTxManager{db: db}
}

// WithinTx implements TxManager.
func (tm *GORMTxManager) WithinTx(fn func(r TxRepos) error) error {
	return tm.db.Transaction(func(tx *gorm.DB) error {
		r := &gormTxRepos{
			categories: NewGORMCategoryRepository(tx),
			products:   NewGORMProductRepository(tx),
			customers:  NewGORMCustomerRepository(tx),
			stocks:     NewGORMStockRepository(tx),
			orders:     NewGORMOrderRepository(tx),
		}
		return fn(r)
	})
}
