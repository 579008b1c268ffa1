package services

import (
	"errors"
	"lms/models"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterStudent creates the user identity and the student row in a single
// transaction and returns the generated plaintext password. Sending the
// credential email is deliberately the caller's job: persistence stays free
// of external I/O.
func RegisterStudent(db *gorm.DB, firstName, lastName, email, password string, saltRound int) (*models.Student, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), saltRound)
	if err != nil {
		return nil, err
	}

	student := models.Student{
		User: models.User{
			FirstName: strings.TrimSpace(firstName),
			LastName:  strings.TrimSpace(lastName),
			Email:     email,
			Password:  string(hashed),
			Role:      models.RoleStudent,
		},
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ? AND status = ?", email, models.StatusActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		return tx.Create(&student).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ListStudents returns all active students with their user records.
func ListStudents(db *gorm.DB) ([]models.Student, error) {
	var students []models.Student
	err := db.Where("status = ?", models.StatusActive).
		Preload("User").
		Order("created_at desc").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// FindStudentByUser resolves the student row behind an authenticated user.
func FindStudentByUser(db *gorm.DB, userID uint) (*models.Student, error) {
	var student models.Student
	err := db.Where("user_id = ? AND status = ?", userID, models.StatusActive).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}
