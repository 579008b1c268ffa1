package studentValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StudentPayload is the admin-facing registration payload.
type StudentPayload struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=150"`
	LastName  string `json:"last_name" validate:"required,min=2,max=150"`
	Email     string `json:"email" validate:"required,email"`
}

var validate = validator.New()

func CreateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudentPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Failed validation: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}
