package models

import "time"

// User roles
const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
)

type User struct {
	BaseModel
	FirstName string     `json:"first_name" gorm:"default:''"`
	LastName  string     `json:"last_name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"not null;uniqueIndex:udx_users_email,where:status = 'ACTIVE'"`
	Password  string     `json:"-" gorm:"not null"`
	Role      string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	PhotoURL  string     `json:"photo_url" gorm:"default:''"`
	LastLogin *time.Time `json:"last_login"`
}
