package categoryController

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateCategory creates a top-level category.
func AdminCreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := services.CreateRootCategory(database.Database.Db, reqData.Name)
	if err != nil {
		return categoryErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// AdminCreateSubcategory creates a category under the :id root.
func AdminCreateSubcategory(c *fiber.Ctx) error {
	parentID := c.Locals("categoryID").(int)

	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := services.CreateSubcategory(database.Database.Db, reqData.Name, uint(parentID))
	if err != nil {
		return categoryErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subcategory created successfully!", category)
}

// AdminUpdateCategory renames or re-parents the :id category.
func AdminUpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(int)

	reqData, ok := c.Locals("validatedCategoryUpdate").(*struct {
		Name         string `json:"name"`
		ParentID     *uint  `json:"parent_id"`
		DetachParent bool   `json:"detach_parent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := services.UpdateCategory(database.Database.Db, uint(categoryID), reqData.Name, reqData.ParentID, reqData.DetachParent)
	if err != nil {
		return categoryErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// AdminArchiveCategory soft-deactivates the :id category.
func AdminArchiveCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(int)

	if err := services.ArchiveCategory(database.Database.Db, uint(categoryID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to archive category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category archived successfully!", nil)
}

// GetCategoryTree returns active root categories with their subcategories,
// both levels sorted by name.
func GetCategoryTree(c *fiber.Ctx) error {
	tree, err := services.ListCategoryTree(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", tree)
}

// GetSubcategories returns the active direct children of the :id category.
func GetSubcategories(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(int)

	children, err := services.ListSubcategories(database.Database.Db, uint(categoryID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subcategories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subcategories fetched successfully!", children)
}

func categoryErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDuplicateName):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This category already exists!", nil)
	case errors.Is(err, services.ErrExcessiveDepth):
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "A category can only have one level of subcategories!", nil)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save category!", nil)
	}
}
