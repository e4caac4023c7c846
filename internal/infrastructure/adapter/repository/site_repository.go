package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SiteRepository implements the site repository interface using GORM
type SiteRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSiteRepository creates a new SiteRepository instance
func NewSiteRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SiteRepository {
	return &SiteRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func siteToModel(s *entity.PlantingSite) model.PlantingSite {
	return model.PlantingSite{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Address:      s.Address,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		TargetTrees:  s.TargetTrees,
		PlantedTrees: s.PlantedTrees,
		Status:       string(s.Status),
		SiteAdminID:  s.SiteAdminID,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func siteToEntity(m *model.PlantingSite) *entity.PlantingSite {
	return &entity.PlantingSite{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Address:      m.Address,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		TargetTrees:  m.TargetTrees,
		PlantedTrees: m.PlantedTrees,
		Status:       entity.SiteStatus(m.Status),
		SiteAdminID:  m.SiteAdminID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *SiteRepository) handleDatabaseError(operation string, err error, siteID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"site_id": siteID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrSiteNotFound
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateRecord
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new planting site
func (r *SiteRepository) Create(ctx context.Context, site *entity.PlantingSite) error {
	siteModel := siteToModel(site)
	result := r.db.WithContext(ctx).Create(&siteModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating site", result.Error, site.ID)
	}
	return nil
}

// GetByID retrieves a site by ID
func (r *SiteRepository) GetByID(ctx context.Context, id string) (*entity.PlantingSite, error) {
	var siteModel model.PlantingSite
	result := r.db.WithContext(ctx).First(&siteModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting site", result.Error, id)
	}
	return siteToEntity(&siteModel), nil
}

// Update persists site changes
func (r *SiteRepository) Update(ctx context.Context, site *entity.PlantingSite) error {
	result := r.db.WithContext(ctx).Model(&model.PlantingSite{}).
		Where("id = ?", site.ID).
		Updates(map[string]interface{}{
			"name":         site.Name,
			"description":  site.Description,
			"address":      site.Address,
			"latitude":     site.Latitude,
			"longitude":    site.Longitude,
			"target_trees": site.TargetTrees,
			"status":       string(site.Status),
			"updated_at":   r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating site", result.Error, site.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrSiteNotFound
	}
	return nil
}

// List returns all sites ordered by name
func (r *SiteRepository) List(ctx context.Context) ([]*entity.PlantingSite, error) {
	var siteModels []model.PlantingSite
	result := r.db.WithContext(ctx).Order("name asc").Find(&siteModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing sites", result.Error, "")
	}

	sites := make([]*entity.PlantingSite, 0, len(siteModels))
	for i := range siteModels {
		sites = append(sites, siteToEntity(&siteModels[i]))
	}
	return sites, nil
}

// ListByStatus returns sites whose status is in the given set, ordered by name
func (r *SiteRepository) ListByStatus(ctx context.Context, statuses ...entity.SiteStatus) ([]*entity.PlantingSite, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	var siteModels []model.PlantingSite
	result := r.db.WithContext(ctx).
		Where("status IN ?", values).
		Order("name asc").
		Find(&siteModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing sites by status", result.Error, "")
	}

	sites := make([]*entity.PlantingSite, 0, len(siteModels))
	for i := range siteModels {
		sites = append(sites, siteToEntity(&siteModels[i]))
	}
	return sites, nil
}

// IncrementPlantedTrees atomically adds count to a site's planted-tree counter
func (r *SiteRepository) IncrementPlantedTrees(ctx context.Context, siteID string, count int) error {
	result := r.db.WithContext(ctx).Model(&model.PlantingSite{}).
		Where("id = ?", siteID).
		Updates(map[string]interface{}{
			"planted_trees": gorm.Expr("planted_trees + ?", count),
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("incrementing planted trees", result.Error, siteID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Site not found during counter increment", map[string]any{
			"site_id": siteID,
		})
		return errs.ErrSiteNotFound
	}

	r.logger.Debug("Planted tree counter incremented", map[string]any{
		"site_id": siteID,
		"count":   count,
	})
	return nil
}

// ImpactMetricRepository implements the impact metric reader using GORM
type ImpactMetricRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewImpactMetricRepository creates a new ImpactMetricRepository instance
func NewImpactMetricRepository(db *gorm.DB, logger coreport.Logger) *ImpactMetricRepository {
	return &ImpactMetricRepository{db: db, logger: logger}
}

// List returns all metric rows
func (r *ImpactMetricRepository) List(ctx context.Context) ([]*entity.ImpactMetric, error) {
	var metricModels []model.ImpactMetric
	result := r.db.WithContext(ctx).Find(&metricModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing impact metrics", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	metrics := make([]*entity.ImpactMetric, 0, len(metricModels))
	for i := range metricModels {
		m := &metricModels[i]
		metrics = append(metrics, &entity.ImpactMetric{
			ID:                  m.ID,
			SiteID:              m.SiteID,
			CO2AbsorbedKg:       m.CO2AbsorbedKg,
			OxygenProducedKg:    m.OxygenProducedKg,
			WaterFilteredLiters: m.WaterFilteredLiters,
			CalculatedAt:        m.CalculatedAt,
		})
	}
	return metrics, nil
}

// NotificationRepository implements the notification repository using GORM
type NotificationRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNotificationRepository creates a new NotificationRepository instance
func NewNotificationRepository(db *gorm.DB, logger coreport.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, logger: logger}
}

// Create saves a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entity.SiteNotification) error {
	notificationModel := model.SiteNotification{
		ID:               notification.ID,
		SiteID:           notification.SiteID,
		NotificationType: notification.NotificationType,
		Title:            notification.Title,
		Message:          notification.Message,
		IsRead:           notification.IsRead,
		CreatedAt:        notification.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&notificationModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating notification", map[string]any{
			"site_id": notification.SiteID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// List returns notifications newest first, optionally only unread ones
func (r *NotificationRepository) List(ctx context.Context, unreadOnly bool) ([]*entity.SiteNotification, error) {
	query := r.db.WithContext(ctx).Order("created_at desc")
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notificationModels []model.SiteNotification
	result := query.Find(&notificationModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing notifications", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	notifications := make([]*entity.SiteNotification, 0, len(notificationModels))
	for i := range notificationModels {
		m := &notificationModels[i]
		notifications = append(notifications, &entity.SiteNotification{
			ID:               m.ID,
			SiteID:           m.SiteID,
			NotificationType: m.NotificationType,
			Title:            m.Title,
			Message:          m.Message,
			IsRead:           m.IsRead,
			CreatedAt:        m.CreatedAt,
		})
	}
	return notifications, nil
}

// MarkRead flags a notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.SiteNotification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		r.logger.Error("Database error when marking notification read", map[string]any{
			"notification_id": id,
			"error":           result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotificationNotFound
	}
	return nil
}
