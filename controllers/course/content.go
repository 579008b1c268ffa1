package controllers

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services"
	"lms/utils"
	"mime/multipart"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// AdminUploadVideo stores a validated .mp4 and attaches it to the course.
func AdminUploadVideo(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	title := c.Locals("uploadTitle").(string)
	file := c.Locals("uploadFile").(*multipart.FileHeader)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status = ?", courseID, models.StatusActive).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, "course", "videos")
	storedPath, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store video file!", nil)
	}

	order, _ := strconv.Atoi(c.FormValue("order", "0"))
	video := models.CourseVideo{
		CourseID:   course.ID,
		Title:      title,
		FilePath:   storedPath,
		FileSize:   file.Size,
		OrderIndex: order,
	}

	if err := db.Create(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save video!", nil)
	}
	video.FileURL = utils.GetFileURL(video.FilePath)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video uploaded successfully!", video)
}

// AdminUploadDocument stores a validated .pdf and attaches it to the course.
func AdminUploadDocument(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	title := c.Locals("uploadTitle").(string)
	file := c.Locals("uploadFile").(*multipart.FileHeader)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status = ?", courseID, models.StatusActive).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, "course", "documents")
	storedPath, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store document file!", nil)
	}

	order, _ := strconv.Atoi(c.FormValue("order", "0"))
	document := models.CourseDocument{
		CourseID:   course.ID,
		Title:      title,
		FilePath:   storedPath,
		FileSize:   file.Size,
		OrderIndex: order,
	}

	if err := db.Create(&document).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
	}
	document.FileURL = utils.GetFileURL(document.FilePath)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Document uploaded successfully!", document)
}

// GetCourseContent returns a published course's videos and documents in
// display order.
func GetCourseContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_published = ? AND status = ?", courseID, true, models.StatusActive).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	videos, err := services.ListCourseVideos(db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
	}

	documents, err := services.ListCourseDocuments(db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
	}

	for i := range videos {
		videos[i].FileURL = utils.GetFileURL(videos[i].FilePath)
	}
	for i := range documents {
		documents[i].FileURL = utils.GetFileURL(documents[i].FilePath)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully!", fiber.Map{
		"videos":    videos,
		"documents": documents,
	})
}
