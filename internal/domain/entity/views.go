package entity

// Derived views recomputed on demand from the persisted records. None of these
// are persisted; they are thrown away and rebuilt on every refresh.

// GlobalStats are the platform-wide totals shown on the landing page
type GlobalStats struct {
	TotalTrees          int64   `json:"totalTrees"`
	TotalDonors         int64   `json:"totalDonors"`
	TotalAmount         int64   `json:"totalAmount"`
	ActiveSites         int     `json:"activeSites"`
	RecentPlantings     int64   `json:"recentPlantings"`
	CO2AbsorbedKg       float64 `json:"co2Absorbed"`
	OxygenProducedKg    float64 `json:"oxygenProduced"`
	WaterFilteredLiters float64 `json:"waterFiltered"`
}

// LeaderboardEntry is one row of the donor leaderboard: a distinct payer with
// completed, non-anonymous donations
type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	Name           string `json:"name"`
	Amount         int64  `json:"amount"`
	Trees          int64  `json:"trees"`
	Avatar         string `json:"avatar"`
	Verified       bool   `json:"verified"`
	IsRotaryMember bool   `json:"isRotaryMember"`
	City           string `json:"city"`
	Trend          string `json:"trend"`
}

// OrganizationEntry is one row of the synthetic organization leaderboard.
// Amounts are a fixed proportional allocation of the global totals, not real
// tracked organizational donations.
type OrganizationEntry struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Amount      int64  `json:"amount"`
	Trees       int64  `json:"trees"`
	Avatar      string `json:"avatar"`
	Verified    bool   `json:"verified"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RoomProgress is the derived funding state of one contribution room
type RoomProgress struct {
	RoomID             string     `json:"roomId"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	TreeSpecies        string     `json:"treeSpecies"`
	SiteID             string     `json:"siteId"`
	Status             RoomStatus `json:"status"`
	GoalAmount         int64      `json:"goalAmount"`
	CurrentAmount      int64      `json:"currentAmount"`
	TargetTrees        int        `json:"targetTrees"`
	ProgressPercentage float64    `json:"progressPercentage"`
	RemainingDays      int        `json:"remainingDays"`
	ContributionCount  int64      `json:"contributionCount"`
}
