package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFileURL(t *testing.T) {
	assert.Equal(t, "/uploads/20240101120000.000000.mp4", GetFileURL("storage/course/videos/20240101120000.000000.mp4"))
	assert.Equal(t, "/uploads/photo.jpg", GetFileURL("photo.jpg"))
	assert.Equal(t, "", GetFileURL(""))
}
