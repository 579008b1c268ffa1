package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Published course catalog
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Content viewing (for authenticated users)
	courseGroup.Get("/:id/content", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseContent)
	courseGroup.Get("/:id/quizzes", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseQuizzes)
}
