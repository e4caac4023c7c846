package migration

import (
	"context"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
)

// Default planting sites created on a fresh database so donations have
// somewhere to point before an admin registers real sites
var defaultSites = []usecase.CreateSiteRequest{
	{
		Name:        "Shivapuri Buffer Zone",
		Description: "Community reforestation strip along the Shivapuri Nagarjun park boundary",
		Address:     "Budhanilkantha, Kathmandu",
		Latitude:    27.7792,
		Longitude:   85.3875,
		TargetTrees: 5000,
		Status:      entity.SiteActive,
	},
	{
		Name:        "Godawari Community Forest",
		Description: "Mixed native species planting with the local forest user group",
		Address:     "Godawari, Lalitpur",
		Latitude:    27.5965,
		Longitude:   85.3785,
		TargetTrees: 3000,
		Status:      entity.SiteActive,
	},
	{
		Name:        "Changunarayan Hillside",
		Description: "Erosion control planting below the Changunarayan temple ridge",
		Address:     "Changunarayan, Bhaktapur",
		Latitude:    27.7164,
		Longitude:   85.4278,
		TargetTrees: 2000,
		Status:      entity.SitePlanning,
	},
}

// CreateDefaultSites seeds the default planting sites on an empty database
func CreateDefaultSites(ctx context.Context, sites persistence.SiteRepository, siteService usecase.SiteUseCase) error {
	existing, err := sites.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, req := range defaultSites {
		if _, err := siteService.CreateSite(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
