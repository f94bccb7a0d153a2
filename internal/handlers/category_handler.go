package handlers

import (
	"log"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/deleted", h.HandleGetDeletedCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
	categoryRoutes.Post("/:id/restore", h.HandleRestoreCategory)
	categoryRoutes.Delete("/:id/permanent", h.HandleHardDeleteCategory)
}

// HandleGetCategories retrieves all active categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return writeError(c, "Could not retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandleGetDeletedCategories retrieves all soft-deleted categories.
func (h *CategoryHandler) HandleGetDeletedCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetDeletedCategories()
	if err != nil {
		log.Printf("Error getting deleted categories: %v", err)
		return writeError(c, "Could not retrieve deleted categories", err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting category by ID %s: %v", c.Params("id"), err)
		return writeError(c, "Could not retrieve category", err)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(category); err != nil {
		return writeValidationErrors(c, err)
	}

	if err := h.service.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return writeError(c, "Could not create category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory updates an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	existing, err := h.service.GetCategoryByID(c.Params("id"))
	if err != nil {
		return writeError(c, "Could not retrieve category", err)
	}

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	category.ID = existing.ID
	category.CreatedAt = existing.CreatedAt

	if err := h.validate.Struct(category); err != nil {
		return writeValidationErrors(c, err)
	}

	if err := h.service.UpdateCategory(&category); err != nil {
		log.Printf("Error updating category %s: %v", category.ID, err)
		return writeError(c, "Could not update category", err)
	}
	return c.JSON(category)
}

// HandleDeleteCategory soft-deletes a category.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.SoftDeleteCategory(c.Params("id")); err != nil {
		log.Printf("Error deleting category %s: %v", c.Params("id"), err)
		return writeError(c, "Could not delete category", err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

// HandleRestoreCategory restores a soft-deleted category.
func (h *CategoryHandler) HandleRestoreCategory(c *fiber.Ctx) error {
	category, err := h.service.RestoreCategory(c.Params("id"))
	if err != nil {
		log.Printf("Error restoring category %s: %v", c.Params("id"), err)
		return writeError(c, "Could not restore category", err)
	}
	return c.JSON(category)
}

// HandleHardDeleteCategory permanently deletes a category.
func (h *CategoryHandler) HandleHardDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.HardDeleteCategory(c.Params("id")); err != nil {
		log.Printf("Error permanently deleting category %s: %v", c.Params("id"), err)
		return writeError(c, "Could not permanently delete category", err)
	}
	return c.JSON(fiber.Map{"message": "Category permanently deleted"})
}
