package dto

import (
	"time"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
)

// CreateSiteRequest represents the API request for registering a planting site
type CreateSiteRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address" binding:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	TargetTrees int     `json:"targetTrees" binding:"required,gt=0"`
	Status      string  `json:"status"`
	SiteAdminID string  `json:"siteAdminId"`
}

// SiteResponse represents one planting site in API responses
type SiteResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	TargetTrees  int       `json:"targetTrees"`
	PlantedTrees int       `json:"plantedTrees"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NotificationResponse represents one site notification in API responses
type NotificationResponse struct {
	ID               string    `json:"id"`
	SiteID           string    `json:"siteId"`
	NotificationType string    `json:"notificationType"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	IsRead           bool      `json:"isRead"`
	CreatedAt        time.Time `json:"createdAt"`
}

// SiteToResponse maps a site entity to its API representation
func SiteToResponse(s *entity.PlantingSite) SiteResponse {
	return SiteResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Address:      s.Address,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		TargetTrees:  s.TargetTrees,
		PlantedTrees: s.PlantedTrees,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
	}
}

// SitesToResponse maps a slice of site entities
func SitesToResponse(sites []*entity.PlantingSite) []SiteResponse {
	out := make([]SiteResponse, 0, len(sites))
	for _, s := range sites {
		out = append(out, SiteToResponse(s))
	}
	return out
}

// NotificationToResponse maps a notification entity to its API representation
func NotificationToResponse(n *entity.SiteNotification) NotificationResponse {
	return NotificationResponse{
		ID:               n.ID,
		SiteID:           n.SiteID,
		NotificationType: n.NotificationType,
		Title:            n.Title,
		Message:          n.Message,
		IsRead:           n.IsRead,
		CreatedAt:        n.CreatedAt,
	}
}

// NotificationsToResponse maps a slice of notification entities
func NotificationsToResponse(notifications []*entity.SiteNotification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationToResponse(n))
	}
	return out
}
