package services

import (
	"lms/models"

	"gorm.io/gorm"
)

// SetUserPhoto stores the public photo location on an active user after the
// upload has been validated and persisted to disk.
func SetUserPhoto(db *gorm.DB, userID uint, photoURL string) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ? AND status = ?", userID, models.StatusActive).First(&user).Error; err != nil {
		return nil, err
	}

	user.PhotoURL = photoURL
	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
