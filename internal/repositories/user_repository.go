package repositories

import "gudang/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// ListEmails returns the email addresses of all active users; low-stock
	// alerts are addressed to every one of them.
	ListEmails() ([]string, error)
	Create(user *models.User) error
}
