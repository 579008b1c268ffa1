package userRoutes

import (
	controllers "lms/controllers/user"
	"lms/middleware"
	validators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile routes for authenticated users
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Post("/profile/photo", middleware.JWTMiddleware, validators.UploadPhoto(), controllers.UploadProfilePhoto)
}
