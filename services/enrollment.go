package services

import (
	"errors"
	"lms/models"
	"time"

	"gorm.io/gorm"
)

// Enroll creates an enrollment for an active student in a published, active
// course. The enrollment date is set at commit time, never client-supplied.
// The application-level existence check gives a clean rejection in the common
// case; the partial unique index on (student_id, course_id) is what actually
// guarantees a single winner when two requests race.
func Enroll(db *gorm.DB, studentID, courseID uint) (*models.StudentEnrollment, error) {
	enrollment := models.StudentEnrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.Where("id = ? AND status = ?", studentID, models.StatusActive).First(&student).Error; err != nil {
			return err
		}

		var course models.Course
		if err := tx.Where("id = ? AND status = ?", courseID, models.StatusActive).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotAvailable
			}
			return err
		}
		if !course.IsPublished {
			return ErrCourseNotAvailable
		}

		var count int64
		if err := tx.Model(&models.StudentEnrollment{}).
			Where("student_id = ? AND course_id = ? AND status = ?", studentID, courseID, models.StatusActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEnrollment
		}

		enrollment.EnrollmentDate = time.Now()
		return tx.Create(&enrollment).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// concurrent request won the pair index
		err = ErrDuplicateEnrollment
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ArchiveEnrollment soft-deactivates an enrollment, releasing the pair slot
// so the student may enroll in the course again later.
func ArchiveEnrollment(db *gorm.DB, id uint) error {
	var enrollment models.StudentEnrollment
	if err := db.First(&enrollment, id).Error; err != nil {
		return err
	}
	enrollment.Status = models.StatusArchived
	return db.Save(&enrollment).Error
}

// ListStudentEnrollments returns a student's active enrollments with course
// details, newest first.
func ListStudentEnrollments(db *gorm.DB, studentID uint) ([]models.StudentEnrollment, error) {
	var enrollments []models.StudentEnrollment
	err := db.Where("student_id = ? AND status = ?", studentID, models.StatusActive).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListCourseEnrollments returns the active enrollments of a course with the
// student identities preloaded.
func ListCourseEnrollments(db *gorm.DB, courseID uint) ([]models.StudentEnrollment, error) {
	var enrollments []models.StudentEnrollment
	err := db.Where("course_id = ? AND status = ?", courseID, models.StatusActive).
		Preload("Student.User").
		Order("created_at desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
