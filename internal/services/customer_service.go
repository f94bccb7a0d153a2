package services

import (
	"errors"
	"fmt"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

// GetAllCustomers retrieves all active customers.
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.repo.GetAll()
}

// GetDeletedCustomers retrieves all soft-deleted customers.
func (s *CustomerService) GetDeletedCustomers() ([]models.Customer, error) {
	return s.repo.GetDeleted()
}

// GetCustomerByID retrieves a single active customer by its ID.
func (s *CustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("customer %s not found", id)).WithError(err)
		}
		return nil, err
	}
	return customer, nil
}

// CreateCustomer creates a new customer. Email must be unique among active
// customers.
func (s *CustomerService) CreateCustomer(customer *models.Customer) error {
	if existing, err := s.repo.GetByEmail(customer.Email); err == nil && existing != nil {
		return apperrors.ConflictError(fmt.Sprintf("customer email '%s' already registered", customer.Email))
	}
	return s.repo.Create(customer)
}

// UpdateCustomer updates an active customer, keeping active emails unique.
func (s *CustomerService) UpdateCustomer(customer *models.Customer) error {
	if existing, err := s.repo.GetByEmail(customer.Email); err == nil && existing.ID != customer.ID {
		return apperrors.ConflictError(fmt.Sprintf("customer email '%s' already registered", customer.Email))
	}
	if err := s.repo.Update(customer); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("customer %s not found", customer.ID)).WithError(err)
		}
		return err
	}
	return nil
}

// SoftDeleteCustomer marks a customer as deleted.
func (s *CustomerService) SoftDeleteCustomer(id string) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("customer %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}

// RestoreCustomer clears the delete marker of a customer, failing with a
// conflict when an active customer holds the same email.
func (s *CustomerService) RestoreCustomer(id string) (*models.Customer, error) {
	deleted, err := s.repo.GetDeletedByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFoundError(fmt.Sprintf("deleted customer %s not found", id)).WithError(err)
		}
		return nil, err
	}
	if active, err := s.repo.GetByEmail(deleted.Email); err == nil && active != nil {
		return nil, apperrors.ConflictError(fmt.Sprintf("cannot restore customer %s: email '%s' is in use by an active customer", id, deleted.Email))
	}
	if err := s.repo.Restore(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// HardDeleteCustomer permanently removes a customer; irreversible.
func (s *CustomerService) HardDeleteCustomer(id string) error {
	if err := s.repo.HardDelete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFoundError(fmt.Sprintf("customer %s not found", id)).WithError(err)
		}
		return err
	}
	return nil
}
