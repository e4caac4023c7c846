package site

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
)

// Service implements planting site and notification management
type Service struct {
	sites         persistence.SiteRepository
	notifications persistence.NotificationRepository
	time          coreport.TimeProvider
	logger        coreport.Logger
}

// NewService creates a site service instance
func NewService(
	sites persistence.SiteRepository,
	notifications persistence.NotificationRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.SiteUseCase {
	return &Service{
		sites:         sites,
		notifications: notifications,
		time:          timeProvider,
		logger:        logger,
	}
}

// ListSites returns planting sites, optionally only those that count as
// active for the statistics snapshot
func (s *Service) ListSites(ctx context.Context, activeOnly bool) ([]*entity.PlantingSite, error) {
	if !activeOnly {
		return s.sites.List(ctx)
	}
	return s.sites.ListByStatus(ctx, entity.SiteActive, entity.SitePlanning)
}

// CreateSite registers a new planting site
func (s *Service) CreateSite(ctx context.Context, req usecase.CreateSiteRequest) (*entity.PlantingSite, error) {
	if req.Name == "" || req.Address == "" {
		return nil, errs.ErrInvalidTitle
	}
	if req.TargetTrees <= 0 {
		return nil, errs.ErrInvalidTreeCount
	}

	status := req.Status
	if status == "" {
		status = entity.SitePlanning
	}
	now := s.time.Now()
	site := &entity.PlantingSite{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		TargetTrees:  req.TargetTrees,
		PlantedTrees: 0,
		Status:       status,
		SiteAdminID:  req.SiteAdminID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.sites.Create(ctx, site); err != nil {
		s.logger.Error("Failed to create planting site", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Planting site created", map[string]any{
		"site_id":      site.ID,
		"name":         site.Name,
		"target_trees": site.TargetTrees,
	})
	return site, nil
}

// Notifications lists admin notifications, newest first
func (s *Service) Notifications(ctx context.Context, unreadOnly bool) ([]*entity.SiteNotification, error) {
	return s.notifications.List(ctx, unreadOnly)
}

// MarkNotificationRead flags one notification as read
func (s *Service) MarkNotificationRead(ctx context.Context, id string) error {
	if id == "" {
		return errs.ErrNotificationNotFound
	}
	return s.notifications.MarkRead(ctx, id)
}
