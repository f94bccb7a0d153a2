package services

import "gudang/pkg/rabbitmq"

// Notifier is the outbound contract for low-stock alerts. Implemented by
// *rabbitmq.Client; tests substitute a recording fake. Publishing is
// best-effort: callers log failures and never propagate them.
type Notifier interface {
	PublishLowStock(alert rabbitmq.LowStockAlert) error
}
