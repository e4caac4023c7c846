package handler

import (
	"net/http"

	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
	"github.com/gin-gonic/gin"
)

// ViewsHandler serves the derived read views: global statistics, the donor
// leaderboard and the organization ranking. These endpoints never fail; the
// controller behind them substitutes fallback snapshots on upstream errors.
type ViewsHandler struct {
	views  usecase.ViewsUseCase
	logger coreport.Logger
}

// NewViewsHandler creates a new views handler instance
func NewViewsHandler(views usecase.ViewsUseCase, logger coreport.Logger) *ViewsHandler {
	return &ViewsHandler{
		views:  views,
		logger: logger,
	}
}

// GetStats handles the GET /stats endpoint
func (h *ViewsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.views.Stats())
}

// GetLeaderboard handles the GET /leaderboard endpoint
func (h *ViewsHandler) GetLeaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.views.Leaderboard())
}

// GetOrganizationLeaderboard handles the GET /leaderboard/organizations endpoint
func (h *ViewsHandler) GetOrganizationLeaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.views.OrganizationLeaderboard())
}

// Refresh handles the POST /refresh endpoint, forcing an immediate recompute
// of every view
func (h *ViewsHandler) Refresh(c *gin.Context) {
	h.views.Refetch(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"stats":       h.views.Stats(),
		"leaderboard": h.views.Leaderboard(),
	})
}
