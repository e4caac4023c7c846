package handler

import (
	"net/http"

	domainerr "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DonationHandler handles donation-related HTTP requests
type DonationHandler struct {
	donations usecase.DonationUseCase
	logger    coreport.Logger
}

// NewDonationHandler creates a new donation handler instance
func NewDonationHandler(donations usecase.DonationUseCase, logger coreport.Logger) *DonationHandler {
	return &DonationHandler{
		donations: donations,
		logger:    logger,
	}
}

// Initiate handles the POST /donations endpoint
func (h *DonationHandler) Initiate(c *gin.Context) {
	var req dto.DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid donation request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	initiated, err := h.donations.Initiate(c.Request.Context(), usecase.InitiateDonationRequest{
		UserID:      req.UserID,
		SiteID:      req.SiteID,
		Amount:      req.Amount,
		TreesCount:  req.TreesCount,
		TreeSpecies: req.TreeSpecies,
		Message:     req.Message,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PaymentFormResponse{
		RecordID: initiated.RecordID,
		Form:     initiated.FormPost,
	})
}

// GetByID handles the GET /donations/:id endpoint
func (h *DonationHandler) GetByID(c *gin.Context) {
	donation, err := h.donations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DonationToResponse(donation))
}

// ListByUser handles the GET /users/:userId/donations endpoint
func (h *DonationHandler) ListByUser(c *gin.Context) {
	donations, err := h.donations.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DonationsToResponse(donations))
}
