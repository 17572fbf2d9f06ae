package models

import (
	"time"

	"gorm.io/gorm"
)

// Preset is a named seed color a user wants to reuse across runs.
type Preset struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Seed      string `gorm:"not null"` // Canonical #rrggbb
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
