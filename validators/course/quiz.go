package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Quiz title is required!"})
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, err := strconv.Atoi(strings.TrimSpace(c.Params("quiz_id")))
		if err != nil || quizID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(struct {
			Text  string `json:"text"`
			Order int    `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Text) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"text": "Question text is required!"})
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

func AddAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID, err := strconv.Atoi(strings.TrimSpace(c.Params("question_id")))
		if err != nil || questionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		reqData := new(struct {
			Text      string `json:"text"`
			IsCorrect bool   `json:"is_correct"`
			Order     int    `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Text) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"text": "Answer text is required!"})
		}

		c.Locals("questionID", questionID)
		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}
