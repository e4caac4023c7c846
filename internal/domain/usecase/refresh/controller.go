// Package refresh keeps the derived read views warm. A controller holds the
// latest statistics, leaderboard and room progress snapshots in memory,
// re-computes them when the change feed reports relevant writes, and re-runs
// everything on a fixed schedule as a backstop for missed notifications.
package refresh

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
	"github.com/rotaryroots/hariyo-ban/internal/domain/usecase/leaderboard"
	"github.com/rotaryroots/hariyo-ban/internal/domain/usecase/room"
	"github.com/rotaryroots/hariyo-ban/internal/domain/usecase/stats"
)

// DefaultRefreshSchedule re-runs every aggregator twice a minute, matching the
// polling cadence the read views were designed around.
const DefaultRefreshSchedule = "@every 30s"

// Controller implements the read-side views. It never returns an error to
// callers: a failed recompute keeps the previous snapshot, and before the
// first successful one the documented fallback snapshots are served.
type Controller struct {
	aggregator *stats.Aggregator
	ranker     *leaderboard.Ranker
	estimator  *leaderboard.OrganizationEstimator
	tracker    *room.ProgressTracker
	feed       persistence.ChangeFeed
	logger     coreport.Logger
	schedule   string

	mu        sync.RWMutex
	statsView entity.GlobalStats
	boardView []entity.LeaderboardEntry
	orgView   []entity.OrganizationEntry
	roomView  []entity.RoomProgress

	// Monotonic generations per view family. A recompute claims its
	// generation before fetching, so a slow fetch that finishes after a
	// newer one can never overwrite the newer snapshot.
	statsSeq, statsApplied uint64
	boardSeq, boardApplied uint64
	roomSeq, roomApplied   uint64

	cron   *cron.Cron
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewController creates a refresh controller pre-seeded with the fallback
// snapshots. An empty schedule selects DefaultRefreshSchedule.
func NewController(
	aggregator *stats.Aggregator,
	ranker *leaderboard.Ranker,
	estimator *leaderboard.OrganizationEstimator,
	tracker *room.ProgressTracker,
	feed persistence.ChangeFeed,
	logger coreport.Logger,
	schedule string,
) *Controller {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}
	fallback := stats.FallbackStats()
	return &Controller{
		aggregator: aggregator,
		ranker:     ranker,
		estimator:  estimator,
		tracker:    tracker,
		feed:       feed,
		logger:     logger,
		schedule:   schedule,
		statsView:  fallback,
		boardView:  leaderboard.FallbackLeaderboard(),
		orgView:    estimator.Estimate(fallback),
		roomView:   []entity.RoomProgress{},
	}
}

// Start primes every view, subscribes to the change feed and arms the
// periodic backstop. It returns once the initial snapshots are in place.
func (c *Controller) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.Refetch(runCtx)

	events, unsubscribe := c.feed.Subscribe(runCtx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer unsubscribe()
		c.consume(runCtx, events)
	}()

	c.cron = cron.New()
	if _, err := c.cron.AddFunc(c.schedule, func() { c.Refetch(runCtx) }); err != nil {
		cancel()
		return err
	}
	c.cron.Start()

	c.logger.Info("Realtime refresh controller started", map[string]any{
		"schedule": c.schedule,
	})
	return nil
}

// Stop cancels the event loop and the backstop schedule, then waits for
// in-flight recomputes to finish.
func (c *Controller) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	if c.cron != nil {
		<-c.cron.Stop().Done()
	}
	c.wg.Wait()
	c.logger.Info("Realtime refresh controller stopped", nil)
}

// Stats returns the latest global statistics snapshot
func (c *Controller) Stats() entity.GlobalStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statsView
}

// Leaderboard returns the latest donor leaderboard
func (c *Controller) Leaderboard() []entity.LeaderboardEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.LeaderboardEntry, len(c.boardView))
	copy(out, c.boardView)
	return out
}

// OrganizationLeaderboard returns the synthetic organization ranking derived
// from the current global totals
func (c *Controller) OrganizationLeaderboard() []entity.OrganizationEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.OrganizationEntry, len(c.orgView))
	copy(out, c.orgView)
	return out
}

// RoomProgress returns the latest per-room funding progress
func (c *Controller) RoomProgress() []entity.RoomProgress {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.RoomProgress, len(c.roomView))
	copy(out, c.roomView)
	return out
}

// Refetch re-runs every aggregator immediately and synchronously
func (c *Controller) Refetch(ctx context.Context) {
	c.refreshStats(ctx)
	c.refreshLeaderboard(ctx)
	c.refreshRooms(ctx)
}

func (c *Controller) consume(ctx context.Context, events <-chan persistence.ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			c.dispatch(ctx, event)
		}
	}
}

func (c *Controller) dispatch(ctx context.Context, event persistence.ChangeEvent) {
	c.logger.Debug("Change event received", map[string]any{
		"table":  event.Table,
		"action": string(event.Action),
	})
	switch event.Table {
	case persistence.TableDonations:
		c.refreshStats(ctx)
		c.refreshLeaderboard(ctx)
	case persistence.TableProfiles:
		c.refreshLeaderboard(ctx)
	case persistence.TableContributionRooms, persistence.TableRoomContributions:
		c.refreshRooms(ctx)
	}
}

func (c *Controller) refreshStats(ctx context.Context) {
	c.mu.Lock()
	c.statsSeq++
	gen := c.statsSeq
	c.mu.Unlock()

	view, err := c.aggregator.Compute(ctx)
	if err != nil {
		c.logger.Warn("Statistics recompute failed, keeping previous snapshot", map[string]any{
			"error": err.Error(),
		})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen <= c.statsApplied {
		return
	}
	c.statsApplied = gen
	c.statsView = view
	c.orgView = c.estimator.Estimate(view)
}

func (c *Controller) refreshLeaderboard(ctx context.Context) {
	c.mu.Lock()
	c.boardSeq++
	gen := c.boardSeq
	c.mu.Unlock()

	view, err := c.ranker.Compute(ctx)
	if err != nil {
		c.logger.Warn("Leaderboard recompute failed, keeping previous snapshot", map[string]any{
			"error": err.Error(),
		})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen <= c.boardApplied {
		return
	}
	c.boardApplied = gen
	c.boardView = view
}

func (c *Controller) refreshRooms(ctx context.Context) {
	c.mu.Lock()
	c.roomSeq++
	gen := c.roomSeq
	c.mu.Unlock()

	view, err := c.tracker.Snapshot(ctx)
	if err != nil {
		c.logger.Warn("Room progress recompute failed, keeping previous snapshot", map[string]any{
			"error": err.Error(),
		})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen <= c.roomApplied {
		return
	}
	c.roomApplied = gen
	c.roomView = view
}
