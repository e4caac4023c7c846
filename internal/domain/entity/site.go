package entity

import "time"

// SiteStatus defines the lifecycle states of a planting site
type SiteStatus string

// SiteStatus constants
const (
	SitePlanning    SiteStatus = "planning"
	SiteActive      SiteStatus = "active"
	SiteCompleted   SiteStatus = "completed"
	SiteMaintenance SiteStatus = "maintenance"
)

// TreeStatus defines the lifecycle states of an individual tree
type TreeStatus string

// TreeStatus constants
const (
	TreePlanted  TreeStatus = "planted"
	TreeGrowing  TreeStatus = "growing"
	TreeMature   TreeStatus = "mature"
	TreeDeceased TreeStatus = "deceased"
)

// PlantingSite is a physical location with a planting target and a running
// planted-tree counter
type PlantingSite struct {
	ID           string
	Name         string
	Description  string
	Address      string
	Latitude     float64
	Longitude    float64
	TargetTrees  int
	PlantedTrees int
	Status       SiteStatus
	SiteAdminID  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CountsAsActive reports whether the site belongs in the activeSites statistic
// and may receive new donations
func (s *PlantingSite) CountsAsActive() bool {
	return s.Status == SiteActive || s.Status == SitePlanning
}

// Tree is an individual planted tree created when a donation completes
type Tree struct {
	ID          string
	DonationID  string
	SiteID      string
	Species     string
	Status      TreeStatus
	PlantedBy   string
	PlantedDate time.Time
}

// ImpactMetric is an externally calculated per-site environmental metric row.
// When any rows exist their sums are preferred over the per-tree multipliers.
type ImpactMetric struct {
	ID                  string
	SiteID              string
	CO2AbsorbedKg       float64
	OxygenProducedKg    float64
	WaterFilteredLiters float64
	CalculatedAt        time.Time
}

// SiteNotification informs site admins about activity on their sites,
// such as an incoming completed donation
type SiteNotification struct {
	ID               string
	SiteID           string
	NotificationType string
	Title            string
	Message          string
	IsRead           bool
	CreatedAt        time.Time
}
