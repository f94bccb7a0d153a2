package handlers

import (
	"log"

	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/deleted", h.HandleGetDeletedProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	productRoutes.Post("/:id/restore", h.HandleRestoreProduct)
	productRoutes.Delete("/:id/permanent", h.HandleHardDeleteProduct)
}

// HandleGetProducts retrieves all active products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return writeError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetDeletedProducts retrieves all soft-deleted products.
func (h *ProductHandler) HandleGetDeletedProducts(c *fiber.Ctx) error {
	products, err := h.service.GetDeletedProducts()
	if err != nil {
		log.Printf("Error getting deleted products: %v", err)
		return writeError(c, "Could not retrieve deleted products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", c.Params("id"), err)
		return writeError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product. The product code is generated
// by the service; any code supplied by the caller is ignored.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req services.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return writeValidationErrors(c, err)
	}

	product, err := h.service.CreateProduct(&req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return writeError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req services.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return writeValidationErrors(c, err)
	}

	product, err := h.service.UpdateProduct(c.Params("id"), &req)
	if err != nil {
		log.Printf("Error updating product %s: %v", c.Params("id"), err)
		return writeError(c, "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct soft-deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.SoftDeleteProduct(c.Params("id")); err != nil {
		log.Printf("Error deleting product %s: %v", c.Params("id"), err)
		return writeError(c, "Could not delete product", err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// HandleRestoreProduct restores a soft-deleted product.
func (h *ProductHandler) HandleRestoreProduct(c *fiber.Ctx) error {
	product, err := h.service.RestoreProduct(c.Params("id"))
	if err != nil {
		log.Printf("Error restoring product %s: %v", c.Params("id"), err)
		return writeError(c, "Could not restore product", err)
	}
	return c.JSON(product)
}

// HandleHardDeleteProduct permanently deletes a product.
func (h *ProductHandler) HandleHardDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.HardDeleteProduct(c.Params("id")); err != nil {
		log.Printf("Error permanently deleting product %s: %v", c.Params("id"), err)
		return writeError(c, "Could not permanently delete product", err)
	}
	return c.JSON(fiber.Map{"message": "Product permanently deleted"})
}
