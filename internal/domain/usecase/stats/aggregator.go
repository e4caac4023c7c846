package stats

import (
	"context"
	"time"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
)

// Per-tree environmental multipliers, applied when no externally calculated
// metric rows exist. Values are per tree per year.
const (
	CO2PerTreeKg        = 22.0
	OxygenPerTreeKg     = 16.0
	WaterPerTreeLiters  = 120.0
	recentPlantingsSpan = 7 * 24 * time.Hour
)

// Aggregator computes the platform-wide statistics from the completed
// donation set
type Aggregator struct {
	donations persistence.DonationRepository
	sites     persistence.SiteRepository
	metrics   persistence.ImpactMetricRepository
	time      coreport.TimeProvider
	logger    coreport.Logger
}

// NewAggregator creates a stats aggregator
func NewAggregator(
	donations persistence.DonationRepository,
	sites persistence.SiteRepository,
	metrics persistence.ImpactMetricRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Aggregator {
	return &Aggregator{
		donations: donations,
		sites:     sites,
		metrics:   metrics,
		time:      timeProvider,
		logger:    logger,
	}
}

// Compute derives the global statistics from the current completed donation
// set. A failure on the donations query is returned to the caller so the
// boundary can substitute the fallback snapshot; failures on the secondary
// site/metric queries degrade gracefully instead. An empty donation set yields
// the fallback snapshot directly so the landing page is never blank.
func (a *Aggregator) Compute(ctx context.Context) (entity.GlobalStats, error) {
	donations, err := a.donations.ListCompleted(ctx)
	if err != nil {
		a.logger.Error("Failed to fetch donations for stats", map[string]any{
			"error": err.Error(),
		})
		return entity.GlobalStats{}, err
	}
	if len(donations) == 0 {
		return FallbackStats(), nil
	}

	var totalTrees, totalAmount, recentPlantings int64
	donors := make(map[string]struct{}, len(donations))
	weekAgo := a.time.Now().Add(-recentPlantingsSpan)

	for _, d := range donations {
		if !d.CountsTowardAggregates() {
			continue
		}
		totalTrees += int64(d.TreesCount)
		totalAmount += d.Amount
		donors[d.UserID] = struct{}{}
		// Sliding window, inclusive at exactly seven days ago.
		if !d.CreatedAt.Before(weekAgo) {
			recentPlantings += int64(d.TreesCount)
		}
	}

	stats := entity.GlobalStats{
		TotalTrees:      totalTrees,
		TotalDonors:     int64(len(donors)),
		TotalAmount:     totalAmount,
		RecentPlantings: recentPlantings,
	}

	stats.ActiveSites = a.activeSiteCount(ctx)
	a.applyEnvironmentalMetrics(ctx, &stats)

	return stats, nil
}

// activeSiteCount returns the number of sites in planning or active status.
// A failed query is logged and counted as zero; it must not take down the
// whole snapshot.
func (a *Aggregator) activeSiteCount(ctx context.Context) int {
	sites, err := a.sites.ListByStatus(ctx, entity.SiteActive, entity.SitePlanning)
	if err != nil {
		a.logger.Warn("Failed to fetch active sites, counting zero", map[string]any{
			"error": err.Error(),
		})
		return 0
	}
	return len(sites)
}

// applyEnvironmentalMetrics prefers the sums of externally calculated metric
// rows; when none exist (or the query fails) it falls back to the fixed
// per-tree multipliers.
func (a *Aggregator) applyEnvironmentalMetrics(ctx context.Context, stats *entity.GlobalStats) {
	metrics, err := a.metrics.List(ctx)
	if err != nil {
		a.logger.Warn("Failed to fetch impact metrics, using per-tree multipliers", map[string]any{
			"error": err.Error(),
		})
		metrics = nil
	}

	if len(metrics) == 0 {
		trees := float64(stats.TotalTrees)
		stats.CO2AbsorbedKg = trees * CO2PerTreeKg
		stats.OxygenProducedKg = trees * OxygenPerTreeKg
		stats.WaterFilteredLiters = trees * WaterPerTreeLiters
		return
	}

	for _, m := range metrics {
		stats.CO2AbsorbedKg += m.CO2AbsorbedKg
		stats.OxygenProducedKg += m.OxygenProducedKg
		stats.WaterFilteredLiters += m.WaterFilteredLiters
	}
}
