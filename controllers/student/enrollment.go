package studentController

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the authenticated student into the :id course.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	student, err := services.FindStudentByUser(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Student not found!", nil)
	}

	enrollment, err := services.Enroll(db, student.ID, uint(courseID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNotAvailable):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not available!", nil)
		case errors.Is(err, services.ErrDuplicateEnrollment):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student already enrolled in this course!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetMyEnrollments lists the authenticated student's active enrollments.
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	student, err := services.FindStudentByUser(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Student not found!", nil)
	}

	enrollments, err := services.ListStudentEnrollments(db, student.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// AdminGetCourseEnrollments lists everyone enrolled in the :id course.
func AdminGetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	enrollments, err := services.ListCourseEnrollments(database.Database.Db, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	for i := range enrollments {
		enrollments[i].Student.User.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}
