package models

import "time"

// StudentEnrollment records that a student joined a course. The pair index is
// partial over ACTIVE rows: an archived enrollment releases the slot so the
// student can enroll again, while two live enrollments for the same pair can
// never both commit, even under concurrent requests.
type StudentEnrollment struct {
	BaseModel
	StudentID      uint      `json:"student_id" gorm:"not null;uniqueIndex:udx_enrollment_pair,where:status = 'ACTIVE'"`
	CourseID       uint      `json:"course_id" gorm:"not null;uniqueIndex:udx_enrollment_pair,where:status = 'ACTIVE'"`
	Student        Student   `json:"student" gorm:"foreignKey:StudentID"`
	Course         Course    `json:"course" gorm:"foreignKey:CourseID"`
	EnrollmentDate time.Time `json:"enrollment_date"`
}
