package studentRoutes

import (
	controllers "lms/controllers/student"
	"lms/middleware"
	courseValidators "lms/validators/course"
	validators "lms/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up student management and enrollment routes
func SetupStudentRoutes(app *fiber.App) {
	// Enrollment (authenticated student)
	courseGroup := app.Group("/course")
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	studentGroup := app.Group("/student")
	studentGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)

	// Admin student management
	adminGroup := app.Group("/admin/student", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/create", validators.CreateStudent(), controllers.AdminCreateStudent)
	adminGroup.Get("/list", controllers.AdminListStudents)

	// Admin enrollment views
	adminCourseGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)
	adminCourseGroup.Get("/:id/enrollments", courseValidators.CourseID(), controllers.AdminGetCourseEnrollments)
}
