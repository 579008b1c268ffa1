package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateQuiz attaches a quiz to a course.
func AdminCreateQuiz(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Title string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status = ?", courseID, models.StatusActive).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	quiz := models.CourseQuiz{CourseID: course.ID, Title: reqData.Title}
	if err := db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminAddQuestion attaches a question to a quiz.
func AdminAddQuestion(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Text  string `json:"text"`
		Order int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz models.CourseQuiz
	if err := db.Where("id = ? AND status = ?", quizID, models.StatusActive).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	question := models.QuizQuestion{QuizID: quiz.ID, Text: reqData.Text, OrderIndex: reqData.Order}
	if err := db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

// AdminAddAnswer attaches an answer option to a question.
func AdminAddAnswer(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	reqData, ok := c.Locals("validatedAnswer").(*struct {
		Text      string `json:"text"`
		IsCorrect bool   `json:"is_correct"`
		Order     int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var question models.QuizQuestion
	if err := db.Where("id = ? AND status = ?", questionID, models.StatusActive).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	answer := models.QuizAnswer{
		QuestionID: question.ID,
		Text:       reqData.Text,
		IsCorrect:  reqData.IsCorrect,
		OrderIndex: reqData.Order,
	}
	if err := db.Create(&answer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Answer added successfully!", answer)
}

// GetCourseQuizzes returns the quizzes of a published course with questions
// and answers in display order.
func GetCourseQuizzes(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_published = ? AND status = ?", courseID, true, models.StatusActive).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	quizzes, err := services.ListCourseQuizzes(db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}
