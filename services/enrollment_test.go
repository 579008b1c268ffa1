package services

import (
	"lms/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnrollSuccess(t *testing.T) {
	db := setupTestDB(t)

	student := createTestStudent(t, db, "alice@example.com")
	course := createTestCourse(t, db, "Intro", true)

	before := time.Now()
	enrollment, err := Enroll(db, student.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, student.ID, enrollment.StudentID)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.Equal(t, models.StatusActive, enrollment.Status)
	// enrollment date is set at commit time, not supplied by the caller
	assert.False(t, enrollment.EnrollmentDate.Before(before))
	assert.False(t, enrollment.EnrollmentDate.After(time.Now()))
}

func TestEnrollDuplicate(t *testing.T) {
	db := setupTestDB(t)

	student := createTestStudent(t, db, "alice@example.com")
	course := createTestCourse(t, db, "Intro", true)

	_, err := Enroll(db, student.ID, course.ID)
	require.NoError(t, err)

	_, err = Enroll(db, student.ID, course.ID)
	assert.ErrorIs(t, err, ErrDuplicateEnrollment)

	var count int64
	db.Model(&models.StudentEnrollment{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollUnpublishedCourse(t *testing.T) {
	db := setupTestDB(t)

	student := createTestStudent(t, db, "alice@example.com")
	course := createTestCourse(t, db, "Draft", false)

	_, err := Enroll(db, student.ID, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotAvailable)

	var count int64
	db.Model(&models.StudentEnrollment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestEnrollArchivedCourse(t *testing.T) {
	db := setupTestDB(t)

	student := createTestStudent(t, db, "alice@example.com")
	course := createTestCourse(t, db, "Retired", true)
	course.Status = models.StatusArchived
	require.NoError(t, db.Save(course).Error)

	_, err := Enroll(db, student.ID, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotAvailable)
}

// The existence pre-check alone is a race under concurrent requests; the
// partial unique index must reject the second insert even when the pre-check
// has been bypassed.
func TestEnrollPairIndexBackstop(t *testing.T) {
	db := setupTestDB(t)

	student := createTestStudent(t, db, "alice@example.com")
	course := createTestCourse(t, db, "Intro", true)

	first := models.StudentEnrollment{StudentID: student.ID, CourseID: course.ID, EnrollmentDate: time.Now()}
	require.NoError(t, db.Create(&first).Error)

	second := models.StudentEnrollment{StudentID: student.ID, CourseID: course.ID, EnrollmentDate: time.Now()}
	err := db.Create(&second).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestReenrollAfterArchive(t *testing.T) {
	db := setupTestDB(t)

	student := createTestStudent(t, db, "alice@example.com")
	course := createTestCourse(t, db, "Intro", true)

	enrollment, err := Enroll(db, student.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, ArchiveEnrollment(db, enrollment.ID))

	// the archived row released the pair slot
	_, err = Enroll(db, student.ID, course.ID)
	assert.NoError(t, err)
}

func TestUnpublishKeepsExistingEnrollments(t *testing.T) {
	db := setupTestDB(t)

	student := createTestStudent(t, db, "alice@example.com")
	course := createTestCourse(t, db, "Intro", true)

	_, err := Enroll(db, student.ID, course.ID)
	require.NoError(t, err)

	course.IsPublished = false
	require.NoError(t, db.Save(course).Error)

	// existing enrollments are not re-validated
	enrollments, err := ListStudentEnrollments(db, student.ID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)

	// but new students can no longer join
	other := createTestStudent(t, db, "bob@example.com")
	_, err = Enroll(db, other.ID, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotAvailable)
}

func TestListCourseEnrollments(t *testing.T) {
	db := setupTestDB(t)

	course := createTestCourse(t, db, "Intro", true)
	alice := createTestStudent(t, db, "alice@example.com")
	bob := createTestStudent(t, db, "bob@example.com")

	_, err := Enroll(db, alice.ID, course.ID)
	require.NoError(t, err)
	_, err = Enroll(db, bob.ID, course.ID)
	require.NoError(t, err)

	enrollments, err := ListCourseEnrollments(db, course.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	assert.NotEmpty(t, enrollments[0].Student.User.Email)
}
