package services

import (
	"lms/models"

	"gorm.io/gorm"
)

// contentOrder is the deterministic display ordering for every course content
// listing: explicit sequence first, creation time as the tie-break.
const contentOrder = "order_index asc, created_at asc"

// ListCourseVideos returns a course's active videos in display order.
func ListCourseVideos(db *gorm.DB, courseID uint) ([]models.CourseVideo, error) {
	var videos []models.CourseVideo
	err := db.Where("course_id = ? AND status = ?", courseID, models.StatusActive).
		Order(contentOrder).
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// ListCourseDocuments returns a course's active documents in display order.
func ListCourseDocuments(db *gorm.DB, courseID uint) ([]models.CourseDocument, error) {
	var documents []models.CourseDocument
	err := db.Where("course_id = ? AND status = ?", courseID, models.StatusActive).
		Order(contentOrder).
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// ListCourseQuizzes returns a course's active quizzes with their questions
// and answers, each level in display order.
func ListCourseQuizzes(db *gorm.DB, courseID uint) ([]models.CourseQuiz, error) {
	var quizzes []models.CourseQuiz
	err := db.Where("course_id = ? AND status = ?", courseID, models.StatusActive).
		Order("created_at asc").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.StatusActive).Order(contentOrder)
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.StatusActive).Order(contentOrder)
		}).
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}
