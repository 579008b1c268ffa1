package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVideoFile(t *testing.T) {
	// 10MB .mp4 is fine
	assert.NoError(t, ValidateVideoFile("lesson-1.mp4", 10*1024*1024))
	// extension check is case-insensitive
	assert.NoError(t, ValidateVideoFile("lesson-1.MP4", 1024))

	// wrong container fails regardless of size
	assert.ErrorIs(t, ValidateVideoFile("lesson-1.mov", 1024), ErrInvalidUpload)
	// over the 50MB ceiling
	assert.ErrorIs(t, ValidateVideoFile("lesson-1.mp4", 60*1024*1024), ErrInvalidUpload)
	// exactly at the ceiling is allowed
	assert.NoError(t, ValidateVideoFile("lesson-1.mp4", MaxVideoSize))
}

func TestValidateDocumentFile(t *testing.T) {
	assert.NoError(t, ValidateDocumentFile("syllabus.pdf", 5*1024*1024))

	assert.ErrorIs(t, ValidateDocumentFile("syllabus.docx", 1024), ErrInvalidUpload)
	assert.ErrorIs(t, ValidateDocumentFile("syllabus.pdf", 11*1024*1024), ErrInvalidUpload)
}

func TestValidateImageFile(t *testing.T) {
	assert.NoError(t, ValidateImageFile(2*1024*1024))
	assert.ErrorIs(t, ValidateImageFile(4*1024*1024), ErrInvalidUpload)
}
