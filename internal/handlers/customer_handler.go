package handlers

import (
	"log"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Get("/", h.HandleGetCustomers)
	customerRoutes.Get("/deleted", h.HandleGetDeletedCustomers)
	customerRoutes.Get("/:id", h.HandleGetCustomerByID)
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Put("/:id", h.HandleUpdateCustomer)
	customerRoutes.Delete("/:id", h.HandleDeleteCustomer)
	customerRoutes.Post("/:id/restore", h.HandleRestoreCustomer)
	customerRoutes.Delete("/:id/permanent", h.HandleHardDeleteCustomer)
}

// HandleGetCustomers retrieves all active customers.
func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		log.Printf("Error getting all customers: %v", err)
		return writeError(c, "Could not retrieve customers", err)
	}
	return c.JSON(customers)
}

// HandleGetDeletedCustomers retrieves all soft-deleted customers.
func (h *CustomerHandler) HandleGetDeletedCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetDeletedCustomers()
	if err != nil {
		log.Printf("Error getting deleted customers: %v", err)
		return writeError(c, "Could not retrieve deleted customers", err)
	}
	return c.JSON(customers)
}

// HandleGetCustomerByID retrieves a single customer by its ID.
func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	customer, err := h.service.GetCustomerByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting customer by ID %s: %v", c.Params("id"), err)
		return writeError(c, "Could not retrieve customer", err)
	}
	return c.JSON(customer)
}

// HandleCreateCustomer creates a new customer.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		log.Printf("Error parsing customer request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(customer); err != nil {
		return writeValidationErrors(c, err)
	}

	if err := h.service.CreateCustomer(&customer); err != nil {
		log.Printf("Error creating customer: %v", err)
		return writeError(c, "Could not create customer", err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleUpdateCustomer updates an existing customer.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	existing, err := h.service.GetCustomerByID(c.Params("id"))
	if err != nil {
		return writeError(c, "Could not retrieve customer", err)
	}

	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		log.Printf("Error parsing customer request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	customer.ID = existing.ID
	customer.CreatedAt = existing.CreatedAt

	if err := h.validate.Struct(customer); err != nil {
		return writeValidationErrors(c, err)
	}

	if err := h.service.UpdateCustomer(&customer); err != nil {
		log.Printf("Error updating customer %s: %v", customer.ID, err)
		return writeError(c, "Could not update customer", err)
	}
	return c.JSON(customer)
}

// HandleDeleteCustomer soft-deletes a customer.
func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	if err := h.service.SoftDeleteCustomer(c.Params("id")); err != nil {
		log.Printf("Error deleting customer %s: %v", c.Params("id"), err)
		return writeError(c, "Could not delete customer", err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}

// HandleRestoreCustomer restores a soft-deleted customer.
func (h *CustomerHandler) HandleRestoreCustomer(c *fiber.Ctx) error {
	customer, err := h.service.RestoreCustomer(c.Params("id"))
	if err != nil {
		log.Printf("Error restoring customer %s: %v", c.Params("id"), err)
		return writeError(c, "Could not restore customer", err)
	}
	return c.JSON(customer)
}

// HandleHardDeleteCustomer permanently deletes a customer.
func (h *CustomerHandler) HandleHardDeleteCustomer(c *fiber.Ctx) error {
	if err := h.service.HardDeleteCustomer(c.Params("id")); err != nil {
		log.Printf("Error permanently deleting customer %s: %v", c.Params("id"), err)
		return writeError(c, "Could not permanently delete customer", err)
	}
	return c.JSON(fiber.Map{"message": "Customer permanently deleted"})
}
