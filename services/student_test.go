package services

import (
	"lms/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterStudent(t *testing.T) {
	db := setupTestDB(t)

	student, err := RegisterStudent(db, " Alice ", " Smith ", "Alice@Example.com", "generated-secret", 4)
	require.NoError(t, err)

	assert.Equal(t, "Alice", student.User.FirstName)
	assert.Equal(t, "Smith", student.User.LastName)
	assert.Equal(t, "alice@example.com", student.User.Email)
	assert.Equal(t, models.RoleStudent, student.User.Role)

	// password is stored hashed, never in plaintext
	assert.NotEqual(t, "generated-secret", student.User.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.User.Password), []byte("generated-secret")))
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	_, err := RegisterStudent(db, "Alice", "Smith", "alice@example.com", "pw-one", 4)
	require.NoError(t, err)

	_, err = RegisterStudent(db, "Other", "Alice", "alice@example.com", "pw-two", 4)
	assert.ErrorIs(t, err, ErrEmailTaken)

	// the failed registration must not leave a dangling user row
	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(1), users)
}

func TestRegisterStudentEmailFreedByArchive(t *testing.T) {
	db := setupTestDB(t)

	student, err := RegisterStudent(db, "Alice", "Smith", "alice@example.com", "pw-one", 4)
	require.NoError(t, err)

	student.User.Status = models.StatusArchived
	require.NoError(t, db.Save(&student.User).Error)

	// email uniqueness is scoped to non-archived users
	_, err = RegisterStudent(db, "Alice", "Again", "alice@example.com", "pw-two", 4)
	assert.NoError(t, err)
}

func TestFindStudentByUser(t *testing.T) {
	db := setupTestDB(t)

	created := createTestStudent(t, db, "alice@example.com")

	found, err := FindStudentByUser(db, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}
