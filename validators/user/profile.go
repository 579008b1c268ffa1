package userValidator

import (
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// UploadPhoto validates the multipart profile photo payload against the
// image size ceiling.
func UploadPhoto() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("photo")
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"photo": "Photo file is required!"})
		}

		if err := services.ValidateImageFile(file.Size); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
		}

		c.Locals("uploadFile", file)
		return c.Next()
	}
}
