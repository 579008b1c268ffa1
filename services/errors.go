package services

import "errors"

// Rejection kinds surfaced by the domain services. Controllers map these to
// HTTP statuses; callers decide whether to retry. Every mutating operation
// rolls back completely when one of these is returned.
var (
	ErrDuplicateName       = errors.New("category name already exists")
	ErrExcessiveDepth      = errors.New("a category can only have one level of subcategories")
	ErrDuplicateEnrollment = errors.New("student is already enrolled in this course")
	ErrCourseNotAvailable  = errors.New("course is not published or not active")
	ErrInvalidUpload       = errors.New("invalid upload")
	ErrEmailTaken          = errors.New("a user with this email already exists")
)
