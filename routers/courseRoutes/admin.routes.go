package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.CourseID(), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Post("/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Post("/:id/unpublish", validators.CourseID(), controllers.AdminUnpublishCourse)
	adminGroup.Post("/:id/archive", validators.CourseID(), controllers.AdminArchiveCourse)

	// Content uploads
	adminGroup.Post("/:id/video", validators.CourseID(), validators.UploadVideo(), controllers.AdminUploadVideo)
	adminGroup.Post("/:id/document", validators.CourseID(), validators.UploadDocument(), controllers.AdminUploadDocument)

	// Quiz management
	adminGroup.Post("/:id/quiz", validators.CourseID(), validators.CreateQuiz(), controllers.AdminCreateQuiz)

	quizGroup := app.Group("/admin/quiz", middleware.JWTMiddleware, middleware.AdminOnly)
	quizGroup.Post("/:quiz_id/question", validators.AddQuestion(), controllers.AdminAddQuestion)

	questionGroup := app.Group("/admin/question", middleware.JWTMiddleware, middleware.AdminOnly)
	questionGroup.Post("/:question_id/answer", validators.AddAnswer(), controllers.AdminAddAnswer)
}
