package migration

import (
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"gorm.io/gorm"
)

// AggregateIndexManager manages the PostgreSQL indexes the aggregation
// queries lean on
type AggregateIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAggregateIndexManager creates a new aggregate index manager
func NewAggregateIndexManager(db *gorm.DB, logger coreport.Logger) *AggregateIndexManager {
	return &AggregateIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAggregateIndexes creates the indexes backing the statistics and
// leaderboard scans
func (m *AggregateIndexManager) CreateAggregateIndexes() error {
	m.logger.Info("Creating aggregate PostgreSQL indexes", nil)

	// Partial index for the completed-donation scans the statistics and
	// leaderboard aggregators run on every refresh
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_donations_completed
		ON donations (user_id, created_at)
		WHERE payment_status = 'completed'
	`).Error; err != nil {
		m.logger.Error("Failed to create completed donations partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Composite index for recent-plantings window queries
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_donations_status_created
		ON donations (payment_status, created_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create donation status/created index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Completed contributions per room back the contributor counts
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_room_contributions_completed
		ON room_contributions (room_id)
		WHERE payment_status = 'completed'
	`).Error; err != nil {
		m.logger.Error("Failed to create completed contributions partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Rooms are listed by status on every progress refresh
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_contribution_rooms_status_created
		ON contribution_rooms (status, created_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create room status index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Unread notifications dominate the admin feed query
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_site_notifications_unread
		ON site_notifications (site_id, created_at)
		WHERE is_read = false
	`).Error; err != nil {
		m.logger.Error("Failed to create unread notifications partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	return nil
}
