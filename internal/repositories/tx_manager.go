package repositories

// TxRepos is the set of repositories bound to one database transaction.
// Everything done through it commits or rolls back as a unit.
type TxRepos interface {
	Categories() CategoryRepository
	Products() ProductRepository
	Customers() CustomerRepository
	Stocks() StockRepository
	Orders() OrderRepository
}

// TxManager hides transaction begin/commit/rollback from the service layer.
// The function's returned error aborts the transaction.
type TxManager interface {
	WithinTx(fn func(r TxRepos) error) error
}
