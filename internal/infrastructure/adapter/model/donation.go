package model

import (
	"time"
)

// Donation represents the database model for donations
type Donation struct {
	ID                 string    `gorm:"primaryKey;size:36"`
	UserID             string    `gorm:"not null;index;size:36"`
	SiteID             string    `gorm:"index;size:36"`
	Amount             int64     `gorm:"not null"` // Whole NPR
	TreesCount         int       `gorm:"not null"`
	TreeSpecies        string    `gorm:"not null;size:100"`
	PaymentMethod      string    `gorm:"not null;size:50"`
	PaymentStatus      string    `gorm:"not null;index;size:50"`
	EsewaTransactionID string    `gorm:"size:255"`
	EsewaRefID         string    `gorm:"size:255"`
	DonationMessage    string    `gorm:"type:text"`
	IsAnonymous        bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null;index"`
	CompletedAt        *time.Time
}

// TableName specifies the table name for Donation
func (Donation) TableName() string {
	return "donations"
}

// Tree represents the database model for individual planted trees
type Tree struct {
	ID          string    `gorm:"primaryKey;size:36"`
	DonationID  string    `gorm:"not null;index;size:36"`
	SiteID      string    `gorm:"index;size:36"`
	Species     string    `gorm:"not null;size:100"`
	Status      string    `gorm:"not null;size:50"`
	PlantedBy   string    `gorm:"size:36"`
	PlantedDate time.Time `gorm:"not null"`
}

// TableName specifies the table name for Tree
func (Tree) TableName() string {
	return "trees"
}
