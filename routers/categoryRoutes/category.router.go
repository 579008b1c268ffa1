package categoryRoutes

import (
	controllers "lms/controllers/category"
	"lms/middleware"
	validators "lms/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up public category listing and admin management routes
func SetupCategoryRoutes(app *fiber.App) {
	publicGroup := app.Group("/category")
	publicGroup.Get("/list", controllers.GetCategoryTree)
	publicGroup.Get("/:id/subcategories", validators.CategoryID(), controllers.GetSubcategories)

	adminGroup := app.Group("/admin/category", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/create", validators.CreateCategory(), controllers.AdminCreateCategory)
	adminGroup.Post("/:id/subcategory", validators.CategoryID(), validators.CreateCategory(), controllers.AdminCreateSubcategory)
	adminGroup.Put("/:id", validators.CategoryID(), validators.UpdateCategory(), controllers.AdminUpdateCategory)
	adminGroup.Post("/:id/archive", validators.CategoryID(), controllers.AdminArchiveCategory)
}
