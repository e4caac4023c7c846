package model

import (
	"time"
)

// PlantingSite represents the database model for planting sites
type PlantingSite struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Name         string    `gorm:"not null;size:255"`
	Description  string    `gorm:"type:text"`
	Address      string    `gorm:"size:512"`
	Latitude     float64   `gorm:"not null;default:0"`
	Longitude    float64   `gorm:"not null;default:0"`
	TargetTrees  int       `gorm:"not null"`
	PlantedTrees int       `gorm:"not null;default:0"`
	Status       string    `gorm:"not null;index;size:50"`
	SiteAdminID  string    `gorm:"size:36"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for PlantingSite
func (PlantingSite) TableName() string {
	return "planting_sites"
}

// ImpactMetric represents the database model for per-site environmental metrics
type ImpactMetric struct {
	ID                  string    `gorm:"primaryKey;size:36"`
	SiteID              string    `gorm:"not null;index;size:36"`
	CO2AbsorbedKg       float64   `gorm:"column:co2_absorbed_kg;not null;default:0"`
	OxygenProducedKg    float64   `gorm:"not null;default:0"`
	WaterFilteredLiters float64   `gorm:"not null;default:0"`
	CalculatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for ImpactMetric
func (ImpactMetric) TableName() string {
	return "impact_metrics"
}

// SiteNotification represents the database model for site admin notifications
type SiteNotification struct {
	ID               string    `gorm:"primaryKey;size:64"`
	SiteID           string    `gorm:"not null;index;size:36"`
	NotificationType string    `gorm:"not null;size:50"`
	Title            string    `gorm:"not null;size:255"`
	Message          string    `gorm:"type:text"`
	IsRead           bool      `gorm:"not null;default:false;index"`
	CreatedAt        time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for SiteNotification
func (SiteNotification) TableName() string {
	return "site_notifications"
}
