package services

import (
	"lms/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the same error
// translation the production connection uses, so duplicate-key detection
// behaves identically.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every session on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Category{},
		&models.Course{},
		&models.CourseVideo{},
		&models.CourseDocument{},
		&models.CourseQuiz{},
		&models.QuizQuestion{},
		&models.QuizAnswer{},
		&models.StudentEnrollment{},
	))

	return db
}

func createTestStudent(t *testing.T, db *gorm.DB, email string) *models.Student {
	t.Helper()

	student, err := RegisterStudent(db, "Test", "Student", email, "secret-password", 4)
	require.NoError(t, err)
	return student
}

func createTestCourse(t *testing.T, db *gorm.DB, title string, published bool) *models.Course {
	t.Helper()

	category, err := CreateRootCategory(db, "category for "+title)
	require.NoError(t, err)

	course := models.Course{
		Title:       title,
		Description: "test course",
		Price:       49.99,
		CategoryID:  category.ID,
		IsPublished: published,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}
