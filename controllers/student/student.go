package studentController

import (
	"errors"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/services"
	"lms/utils"
	studentValidator "lms/validators/student"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateStudent registers a student account. Persistence commits first;
// the credential email is a separate step afterwards, so a delivery failure
// never rolls back the account.
func AdminCreateStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*studentValidator.StudentPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	password, err := utils.GenerateStrongPassword()
	if err != nil {
		log.Printf("Error generating password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	student, err := services.RegisterStudent(
		database.Database.Db,
		reqData.FirstName,
		reqData.LastName,
		reqData.Email,
		password,
		config.AppConfig.SaltRound,
	)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A user with this email already exists!", nil)
		}
		log.Printf("Error registering student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register student!", nil)
	}

	utils.SendCredentialEmail(student.User.Email, student.User.FirstName, password)

	student.User.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student registered successfully!", student)
}

// AdminListStudents returns all active students.
func AdminListStudents(c *fiber.Ctx) error {
	students, err := services.ListStudents(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	for i := range students {
		students[i].User.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}
