package courseValidator

import (
	"lms/middleware"
	"lms/services"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UploadVideo validates the multipart video payload: a title field plus an
// .mp4 file within the size ceiling.
func UploadVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := strings.TrimSpace(c.FormValue("title"))
		if title == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		file, err := c.FormFile("video_file")
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"video_file": "Video file is required!"})
		}

		if err := services.ValidateVideoFile(file.Filename, file.Size); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
		}

		c.Locals("uploadTitle", title)
		c.Locals("uploadFile", file)
		return c.Next()
	}
}

// UploadDocument validates the multipart document payload analogously.
func UploadDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := strings.TrimSpace(c.FormValue("title"))
		if title == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		file, err := c.FormFile("document_file")
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"document_file": "Document file is required!"})
		}

		if err := services.ValidateDocumentFile(file.Filename, file.Size); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
		}

		c.Locals("uploadTitle", title)
		c.Locals("uploadFile", file)
		return c.Next()
	}
}
