package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/payment"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the eSewa callback endpoints. The gateway appends
// oid/amt/refId to the success URL and pid to the failure URL; the tracking ID
// identifies either a donation or a room contribution.
type PaymentHandler struct {
	gateway   payment.Gateway
	donations usecase.DonationUseCase
	rooms     usecase.RoomUseCase
	logger    coreport.Logger
}

// NewPaymentHandler creates a new payment callback handler instance
func NewPaymentHandler(
	gateway payment.Gateway,
	donations usecase.DonationUseCase,
	rooms usecase.RoomUseCase,
	logger coreport.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		gateway:   gateway,
		donations: donations,
		rooms:     rooms,
		logger:    logger,
	}
}

// EsewaSuccess handles the GET /payments/esewa/success callback
func (h *PaymentHandler) EsewaSuccess(c *gin.Context) {
	cb, err := h.gateway.ParseSuccessCallback(map[string]string{
		"oid":   c.Query("oid"),
		"amt":   c.Query("amt"),
		"refId": c.Query("refId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// Room-scoped form posts tag their success URL with type=room. Callbacks
	// without the marker resolve by order ID: a donation and a room
	// contribution never share one, so the donation miss falls through.
	if c.Query("type") == "room" {
		h.finalizeContribution(c, cb)
		return
	}

	donation, err := h.donations.Finalize(c.Request.Context(), cb)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"type":     "donation",
			"donation": dto.DonationToResponse(donation),
		})
		return
	}
	if !errors.Is(err, domainerr.ErrDonationNotFound) {
		respondError(c, err)
		return
	}

	h.finalizeContribution(c, cb)
}

func (h *PaymentHandler) finalizeContribution(c *gin.Context, cb payment.Callback) {
	contribution, err := h.rooms.FinalizeContribution(c.Request.Context(), cb)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"type":         "contribution",
		"contribution": dto.ContributionToResponse(contribution),
	})
}

// EsewaFailure handles the GET /payments/esewa/failure callback
func (h *PaymentHandler) EsewaFailure(c *gin.Context) {
	trackingID := c.Query("pid")
	if trackingID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCallback),
			Message: "missing parameter pid",
		})
		return
	}

	err := h.donations.Fail(c.Request.Context(), trackingID)
	if err != nil && errors.Is(err, domainerr.ErrDonationNotFound) {
		err = h.rooms.FailContribution(c.Request.Context(), trackingID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("Payment marked failed from gateway callback", map[string]any{
		"tracking_id": trackingID,
	})
	c.JSON(http.StatusOK, gin.H{"status": "failed", "trackingId": trackingID})
}
