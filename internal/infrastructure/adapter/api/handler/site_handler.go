package handler

import (
	"net/http"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	domainerr "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SiteHandler handles planting site and admin notification HTTP requests
type SiteHandler struct {
	sites  usecase.SiteUseCase
	logger coreport.Logger
}

// NewSiteHandler creates a new site handler instance
func NewSiteHandler(sites usecase.SiteUseCase, logger coreport.Logger) *SiteHandler {
	return &SiteHandler{
		sites:  sites,
		logger: logger,
	}
}

// List handles the GET /sites endpoint. ?active=true limits the result to
// sites that may receive donations.
func (h *SiteHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	sites, err := h.sites.ListSites(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SitesToResponse(sites))
}

// Create handles the POST /sites endpoint
func (h *SiteHandler) Create(c *gin.Context) {
	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid site request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidTitle),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	site, err := h.sites.CreateSite(c.Request.Context(), usecase.CreateSiteRequest{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TargetTrees: req.TargetTrees,
		Status:      entity.SiteStatus(req.Status),
		SiteAdminID: req.SiteAdminID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SiteToResponse(site))
}

// Notifications handles the GET /admin/notifications endpoint.
// ?unread=true limits the result to unread notifications.
func (h *SiteHandler) Notifications(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.sites.Notifications(c.Request.Context(), unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NotificationsToResponse(notifications))
}

// MarkNotificationRead handles the POST /admin/notifications/:id/read endpoint
func (h *SiteHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.sites.MarkNotificationRead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
