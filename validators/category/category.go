package categoryValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 255 {
			errors["name"] = "Name must be at most 255 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func UpdateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			ParentID     *uint  `json:"parent_id"`
			DetachParent bool   `json:"detach_parent"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		if len(reqData.Name) > 255 {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name must be at most 255 characters long!"})
		}
		if reqData.ParentID != nil && reqData.DetachParent {
			return middleware.ValidationErrorResponse(c, map[string]string{"parent_id": "Cannot set a parent and detach it in the same request!"})
		}

		c.Locals("validatedCategoryUpdate", reqData)
		return c.Next()
	}
}

// CategoryID validates the :id route parameter.
func CategoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
		}

		c.Locals("categoryID", id)
		return c.Next()
	}
}
