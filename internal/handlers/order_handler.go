package handlers

import (
	"log"

	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/deleted", h.HandleGetDeletedOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
	orderRoutes.Post("/:id/restore", h.HandleRestoreOrder)
	orderRoutes.Delete("/:id/permanent", h.HandleHardDeleteOrder)
}

// HandleGetOrders retrieves all active orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return writeError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetDeletedOrders retrieves all soft-deleted orders.
func (h *OrderHandler) HandleGetDeletedOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetDeletedOrders()
	if err != nil {
		log.Printf("Error getting deleted orders: %v", err)
		return writeError(c, "Could not retrieve deleted orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", c.Params("id"), err)
		return writeError(c, "Could not retrieve order", err)
	}
	return c.JSON(order)
}

// HandlePlaceOrder places a new order. The service handles the whole
// transaction: customer validation, stock deduction, total computation, and
// persistence, all-or-nothing.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req services.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return writeValidationErrors(c, err)
	}

	order, err := h.service.PlaceOrder(&req)
	if err != nil {
		log.Printf("Error placing order: %v", err)
		return writeError(c, "Could not place order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var updateData struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(updateData); err != nil {
		return writeValidationErrors(c, err)
	}

	order, err := h.service.UpdateOrderStatus(c.Params("id"), updateData.Status)
	if err != nil {
		log.Printf("Error updating order status for order %s: %v", c.Params("id"), err)
		return writeError(c, "Could not update order status", err)
	}
	return c.JSON(order)
}

// HandleDeleteOrder soft-deletes an order.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.service.SoftDeleteOrder(c.Params("id")); err != nil {
		log.Printf("Error deleting order %s: %v", c.Params("id"), err)
		return writeError(c, "Could not delete order", err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}

// HandleRestoreOrder restores a soft-deleted order.
func (h *OrderHandler) HandleRestoreOrder(c *fiber.Ctx) error {
	order, err := h.service.RestoreOrder(c.Params("id"))
	if err != nil {
		log.Printf("Error restoring order %s: %v", c.Params("id"), err)
		return writeError(c, "Could not restore order", err)
	}
	return c.JSON(order)
}

// HandleHardDeleteOrder permanently deletes an order.
func (h *OrderHandler) HandleHardDeleteOrder(c *fiber.Ctx) error {
	if err := h.service.HardDeleteOrder(c.Params("id")); err != nil {
		log.Printf("Error permanently deleting order %s: %v", c.Params("id"), err)
		return writeError(c, "Could not permanently delete order", err)
	}
	return c.JSON(fiber.Map{"message": "Order permanently deleted"})
}
