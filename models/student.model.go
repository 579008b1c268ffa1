package models

// Student links a user identity to the learning domain.
type Student struct {
	BaseModel
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`
	User   User `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
