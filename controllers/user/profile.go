package userController

import (
	"errors"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/services"
	"lms/utils"
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UploadProfilePhoto stores a validated profile photo and records its public
// URL on the authenticated user.
func UploadProfilePhoto(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file := c.Locals("uploadFile").(*multipart.FileHeader)

	destDir := filepath.Join(config.AppConfig.UploadDir, "user", "photos")
	storedPath, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store photo!", nil)
	}

	user, err := services.SetUserPhoto(database.Database.Db, userID, utils.GetFileURL(storedPath))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile photo!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile photo updated successfully!", user)
}
