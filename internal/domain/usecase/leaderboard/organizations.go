package leaderboard

import (
	"math"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
)

// Organization is one configured partner organization with its fixed
// attribution ratio
type Organization struct {
	Name        string
	Type        string
	Description string
	Avatar      string
	Ratio       float64
}

// DefaultOrganizations lists the partner organizations in descending ratio
// order. Ranks follow this order, not the recomputed amounts.
func DefaultOrganizations() []Organization {
	return []Organization{
		{
			Name:        "Rotary Club of Kasthamandap",
			Type:        "Service Organization",
			Description: "Leading environmental initiatives in Nepal",
			Avatar:      "RCK",
			Ratio:       0.30,
		},
		{
			Name:        "Nepal Environmental Foundation",
			Type:        "NGO",
			Description: "Dedicated to environmental conservation",
			Avatar:      "NEF",
			Ratio:       0.25,
		},
		{
			Name:        "Himalayan Bank Limited",
			Type:        "Corporate",
			Description: "Corporate social responsibility initiative",
			Avatar:      "HBL",
			Ratio:       0.20,
		},
		{
			Name:        "Tribhuvan University",
			Type:        "Educational Institution",
			Description: "Academic community environmental program",
			Avatar:      "TU",
			Ratio:       0.15,
		},
		{
			Name:        "Kathmandu Metropolitan City",
			Type:        "Government",
			Description: "Municipal environmental initiative",
			Avatar:      "KMC",
			Ratio:       0.10,
		},
	}
}

// OrganizationEstimator derives a synthetic organization leaderboard by
// applying each organization's fixed ratio to the current global totals. This
// is a display estimate, not a ledger: no per-organization donation rows exist.
type OrganizationEstimator struct {
	organizations []Organization
}

// NewOrganizationEstimator creates an estimator over the given organizations,
// defaulting to the configured partner list when empty
func NewOrganizationEstimator(organizations []Organization) *OrganizationEstimator {
	if len(organizations) == 0 {
		organizations = DefaultOrganizations()
	}
	return &OrganizationEstimator{organizations: organizations}
}

// Estimate allocates the global totals across the configured organizations.
// Ranks are assigned by configuration order before filtering; organizations
// whose derived amount floors to zero are dropped without re-ranking.
func (e *OrganizationEstimator) Estimate(stats entity.GlobalStats) []entity.OrganizationEntry {
	entries := make([]entity.OrganizationEntry, 0, len(e.organizations))
	for i, org := range e.organizations {
		amount := int64(math.Floor(float64(stats.TotalAmount) * org.Ratio))
		if amount == 0 {
			continue
		}
		entries = append(entries, entity.OrganizationEntry{
			Rank:        i + 1,
			Name:        org.Name,
			Amount:      amount,
			Trees:       int64(math.Floor(float64(stats.TotalTrees) * org.Ratio)),
			Avatar:      org.Avatar,
			Verified:    true,
			Type:        org.Type,
			Description: org.Description,
		})
	}
	return entries
}
