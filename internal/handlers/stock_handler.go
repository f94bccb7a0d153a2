package handlers

import (
	"log"

	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StockHandler handles HTTP requests for stock batches.
type StockHandler struct {
	service  *services.StockService
	validate *validator.Validate
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(service *services.StockService) *StockHandler {
	return &StockHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the stock routes with the Fiber app.
func (h *StockHandler) RegisterRoutes(router fiber.Router) {
	stockRoutes := router.Group("/stocks")
	stockRoutes.Get("/", h.HandleGetStocks)
	stockRoutes.Get("/deleted", h.HandleGetDeletedStocks)
	stockRoutes.Get("/product/:productId", h.HandleGetStocksByProduct)
	stockRoutes.Get("/:id", h.HandleGetStockByID)
	stockRoutes.Post("/", h.HandleCreateBatch)
	stockRoutes.Patch("/:id", h.HandleAdjustStock)
	stockRoutes.Post("/:id/restock", h.HandleRestockBatch)
	stockRoutes.Delete("/:id", h.HandleDeleteStock)
	stockRoutes.Post("/:id/restore", h.HandleRestoreStock)
	stockRoutes.Delete("/:id/permanent", h.HandleHardDeleteStock)
}

// HandleGetStocks retrieves all active stock batches.
func (h *StockHandler) HandleGetStocks(c *fiber.Ctx) error {
	stocks, err := h.service.GetAllStock()
	if err != nil {
		log.Printf("Error getting all stock batches: %v", err)
		return writeError(c, "Could not retrieve stock batches", err)
	}
	return c.JSON(stocks)
}

// HandleGetDeletedStocks retrieves all soft-deleted stock batches.
func (h *StockHandler) HandleGetDeletedStocks(c *fiber.Ctx) error {
	stocks, err := h.service.GetDeletedStock()
	if err != nil {
		log.Printf("Error getting deleted stock batches: %v", err)
		return writeError(c, "Could not retrieve deleted stock batches", err)
	}
	return c.JSON(stocks)
}

// HandleGetStockByID retrieves a single stock batch by its ID.
func (h *StockHandler) HandleGetStockByID(c *fiber.Ctx) error {
	stock, err := h.service.GetStockByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting stock batch by ID %s: %v", c.Params("id"), err)
		return writeError(c, "Could not retrieve stock batch", err)
	}
	return c.JSON(stock)
}

// HandleGetStocksByProduct retrieves the active batches of one product.
func (h *StockHandler) HandleGetStocksByProduct(c *fiber.Ctx) error {
	stocks, err := h.service.GetStockByProduct(c.Params("productId"))
	if err != nil {
		log.Printf("Error getting stock batches for product %s: %v", c.Params("productId"), err)
		return writeError(c, "Could not retrieve stock batches for product", err)
	}
	return c.JSON(stocks)
}

// HandleCreateBatch creates a new stock batch for a product.
func (h *StockHandler) HandleCreateBatch(c *fiber.Ctx) error {
	var req services.CreateStockRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing stock request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return writeValidationErrors(c, err)
	}

	stock, err := h.service.CreateBatch(&req)
	if err != nil {
		log.Printf("Error creating stock batch: %v", err)
		return writeError(c, "Could not create stock batch", err)
	}
	return c.Status(fiber.StatusCreated).JSON(stock)
}

// HandleRestockBatch adds units to an existing batch.
func (h *StockHandler) HandleRestockBatch(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity" validate:"required,gt=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing restock body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return writeValidationErrors(c, err)
	}

	stock, err := h.service.RestockBatch(c.Params("id"), req.Quantity)
	if err != nil {
		log.Printf("Error restocking batch %s: %v", c.Params("id"), err)
		return writeError(c, "Could not restock batch", err)
	}
	return c.JSON(stock)
}

// HandleAdjustStock applies a manual adjustment to a stock batch. The
// service runs the low-stock check after the update.
func (h *StockHandler) HandleAdjustStock(c *fiber.Ctx) error {
	var req services.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing stock adjustment body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return writeValidationErrors(c, err)
	}

	stock, err := h.service.AdjustStock(c.Params("id"), &req)
	if err != nil {
		log.Printf("Error adjusting stock batch %s: %v", c.Params("id"), err)
		return writeError(c, "Could not adjust stock batch", err)
	}
	return c.JSON(stock)
}

// HandleDeleteStock soft-deletes a stock batch.
func (h *StockHandler) HandleDeleteStock(c *fiber.Ctx) error {
	if err := h.service.SoftDeleteStock(c.Params("id")); err != nil {
		log.Printf("Error deleting stock batch %s: %v", c.Params("id"), err)
		return writeError(c, "Could not delete stock batch", err)
	}
	return c.JSON(fiber.Map{"message": "Stock batch deleted"})
}

// HandleRestoreStock restores a soft-deleted stock batch.
func (h *StockHandler) HandleRestoreStock(c *fiber.Ctx) error {
	stock, err := h.service.RestoreStock(c.Params("id"))
	if err != nil {
		log.Printf("Error restoring stock batch %s: %v", c.Params("id"), err)
		return writeError(c, "Could not restore stock batch", err)
	}
	return c.JSON(stock)
}

// HandleHardDeleteStock permanently deletes a stock batch.
func (h *StockHandler) HandleHardDeleteStock(c *fiber.Ctx) error {
	if err := h.service.HardDeleteStock(c.Params("id")); err != nil {
		log.Printf("Error permanently deleting stock batch %s: %v", c.Params("id"), err)
		return writeError(c, "Could not permanently delete stock batch", err)
	}
	return c.JSON(fiber.Map{"message": "Stock batch permanently deleted"})
}
