package model

import (
	"time"
)

// Profile represents the database model for donor profiles
type Profile struct {
	ID             string    `gorm:"primaryKey;size:36"`
	Email          string    `gorm:"uniqueIndex;not null;size:255"`
	FullName       string    `gorm:"size:255"`
	Role           string    `gorm:"not null;size:50;default:donor"`
	IsRotaryMember bool      `gorm:"not null;default:false"`
	City           string    `gorm:"size:100"`
	Country        string    `gorm:"size:100"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
