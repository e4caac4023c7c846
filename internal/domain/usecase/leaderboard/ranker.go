package leaderboard

import (
	"context"
	"sort"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
)

// Ranker turns the completed, non-anonymous donation set into the donor
// leaderboard
type Ranker struct {
	donations persistence.DonationRepository
	profiles  persistence.ProfileRepository
	logger    coreport.Logger
}

// NewRanker creates a leaderboard ranker
func NewRanker(
	donations persistence.DonationRepository,
	profiles persistence.ProfileRepository,
	logger coreport.Logger,
) *Ranker {
	return &Ranker{
		donations: donations,
		profiles:  profiles,
		logger:    logger,
	}
}

// payerTotals accumulates one payer's completed donations
type payerTotals struct {
	profile *entity.Profile
	amount  int64
	trees   int64
}

// Compute groups completed, non-anonymous donations by payer, sums amounts and
// tree counts, and ranks payers by total amount descending. Ties keep their
// first-appearance input order. An empty result is replaced with the fixed
// sample so the page is never blank; a query failure is returned to the caller
// so the boundary can substitute the same sample.
func (r *Ranker) Compute(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	donations, err := r.donations.ListCompleted(ctx)
	if err != nil {
		r.logger.Error("Failed to fetch donations for leaderboard", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	// Group by payer, preserving first-appearance order for stable ties.
	totals := make(map[string]*payerTotals)
	var order []string
	for _, d := range donations {
		if !d.CountsTowardAggregates() || d.IsAnonymous {
			continue
		}
		t, ok := totals[d.UserID]
		if !ok {
			t = &payerTotals{}
			totals[d.UserID] = t
			order = append(order, d.UserID)
		}
		t.amount += d.Amount
		t.trees += int64(d.TreesCount)
	}

	if len(order) == 0 {
		return FallbackLeaderboard(), nil
	}

	profiles, err := r.profiles.ListByIDs(ctx, order)
	if err != nil {
		r.logger.Error("Failed to fetch profiles for leaderboard", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	for _, p := range profiles {
		if t, ok := totals[p.ID]; ok {
			t.profile = p
		}
	}

	// Payers without a profile row are dropped, mirroring an inner join.
	ranked := make([]*payerTotals, 0, len(order))
	for _, id := range order {
		if totals[id].profile != nil {
			ranked = append(ranked, totals[id])
		}
	}
	if len(ranked) == 0 {
		return FallbackLeaderboard(), nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].amount > ranked[j].amount
	})

	entries := make([]entity.LeaderboardEntry, len(ranked))
	for i, t := range ranked {
		entries[i] = entity.LeaderboardEntry{
			Rank:           i + 1,
			Name:           t.profile.DisplayName(),
			Amount:         t.amount,
			Trees:          t.trees,
			Avatar:         t.profile.AvatarInitials(),
			Verified:       true,
			IsRotaryMember: t.profile.IsRotaryMember,
			City:           t.profile.DisplayCity(),
			Trend:          "up",
		}
	}
	return entries, nil
}

// FallbackLeaderboard is the fixed sample served instead of an empty or failed
// leaderboard
func FallbackLeaderboard() []entity.LeaderboardEntry {
	return []entity.LeaderboardEntry{
		{Rank: 1, Name: "Priya Sharma", Amount: 25000, Trees: 125, Avatar: "PS", Verified: true, IsRotaryMember: true, City: "Kathmandu", Trend: "up"},
		{Rank: 2, Name: "Rajesh Thapa", Amount: 18500, Trees: 92, Avatar: "RT", Verified: true, IsRotaryMember: false, City: "Lalitpur", Trend: "up"},
		{Rank: 3, Name: "Anita Gurung", Amount: 15200, Trees: 76, Avatar: "AG", Verified: false, IsRotaryMember: false, City: "Bhaktapur", Trend: "same"},
	}
}
