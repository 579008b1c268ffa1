package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a new course in an existing active category.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		CategoryID  uint     `json:"category_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ? AND status = ?", reqData.CategoryID, models.StatusActive).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       *reqData.Price,
		CategoryID:  category.ID,
		IsPublished: false,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates provided fields of an existing course.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status = ?", courseID, models.StatusActive).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		CategoryID  uint     `json:"category_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.CategoryID != 0 {
		var category models.Category
		if err := db.Where("id = ? AND status = ?", reqData.CategoryID, models.StatusActive).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		course.CategoryID = category.ID
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminPublishCourse flips the published flag on.
func AdminPublishCourse(c *fiber.Ctx) error {
	return setCoursePublished(c, true, "Course published successfully!")
}

// AdminUnpublishCourse hides the course from new enrollments. Existing
// enrollments stay intact.
func AdminUnpublishCourse(c *fiber.Ctx) error {
	return setCoursePublished(c, false, "Course unpublished successfully!")
}

func setCoursePublished(c *fiber.Ctx, published bool, message string) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status = ?", courseID, models.StatusActive).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsPublished = published
	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, course)
}

// AdminArchiveCourse soft-deactivates a course.
func AdminArchiveCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status = ?", courseID, models.StatusActive).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Status = models.StatusArchived
	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to archive course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course archived successfully!", nil)
}

// GetAllCourses lists published active courses with pagination.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page, limit := 1, 20
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{}).
		Where("is_published = ? AND status = ?", true, models.StatusActive).
		Preload("Category")

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns one published course with its category.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	err := database.Database.Db.
		Where("id = ? AND is_published = ? AND status = ?", courseID, true, models.StatusActive).
		Preload("Category").
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
