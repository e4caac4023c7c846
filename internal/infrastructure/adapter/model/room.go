package model

import (
	"time"
)

// ContributionRoom represents the database model for pooled funding rooms
type ContributionRoom struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Title         string    `gorm:"not null;size:255"`
	Description   string    `gorm:"not null;type:text"`
	GoalAmount    int64     `gorm:"not null"` // Whole NPR
	CurrentAmount int64     `gorm:"not null;default:0"`
	TargetTrees   int       `gorm:"not null"`
	TreeSpecies   string    `gorm:"not null;size:100"`
	SiteID        string    `gorm:"index;size:36"`
	Status        string    `gorm:"not null;index;size:50"`
	Deadline      time.Time `gorm:"not null"`
	CreatedBy     string    `gorm:"not null;size:36"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for ContributionRoom
func (ContributionRoom) TableName() string {
	return "contribution_rooms"
}

// RoomContribution represents the database model for room-scoped payments
type RoomContribution struct {
	ID            string    `gorm:"primaryKey;size:36"`
	RoomID        string    `gorm:"not null;index;size:36"`
	UserID        string    `gorm:"not null;index;size:36"`
	Amount        int64     `gorm:"not null"` // Whole NPR
	Message       string    `gorm:"type:text"`
	IsAnonymous   bool      `gorm:"not null;default:false"`
	PaymentStatus string    `gorm:"not null;index;size:50"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for RoomContribution
func (RoomContribution) TableName() string {
	return "room_contributions"
}
