package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lifecycle states shared by all domain rows. Rows are archived, never
// physically deleted, so references from other tables stay intact.
const (
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"
)

// BaseModel is embedded by every domain entity: numeric PK plus a stable
// public UUID and a single lifecycle status field.
type BaseModel struct {
	gorm.Model
	UUID   string `json:"uuid" gorm:"size:36;uniqueIndex"`
	Status string `json:"status" gorm:"size:16;default:'ACTIVE';index"`
}

// BeforeCreate assigns the public UUID.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.UUID == "" {
		b.UUID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusActive
	}
	return nil
}
