package services

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Upload ceilings. All numeric byte counts; the size gate compares integers,
// nothing else.
const (
	MaxVideoSize    = 50 * 1024 * 1024 // 50MB
	MaxDocumentSize = 10 * 1024 * 1024 // 10MB
	MaxImageSize    = 3 * 1024 * 1024  // 3MB
)

// ValidateVideoFile accepts only .mp4 files up to MaxVideoSize.
func ValidateVideoFile(filename string, size int64) error {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".mp4" {
		return fmt.Errorf("%w: only .mp4 files are allowed", ErrInvalidUpload)
	}
	if size > MaxVideoSize {
		return fmt.Errorf("%w: video file size must be less than 50MB", ErrInvalidUpload)
	}
	return nil
}

// ValidateDocumentFile accepts only .pdf files up to MaxDocumentSize.
func ValidateDocumentFile(filename string, size int64) error {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".pdf" {
		return fmt.Errorf("%w: only .pdf files are allowed", ErrInvalidUpload)
	}
	if size > MaxDocumentSize {
		return fmt.Errorf("%w: document file size must be less than 10MB", ErrInvalidUpload)
	}
	return nil
}

// ValidateImageFile gates profile photos by size only.
func ValidateImageFile(size int64) error {
	if size > MaxImageSize {
		return fmt.Errorf("%w: max size of file is 3 MB", ErrInvalidUpload)
	}
	return nil
}
