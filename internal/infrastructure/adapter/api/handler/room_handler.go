package handler

import (
	"net/http"

	domainerr "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/usecase"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RoomHandler handles contribution room HTTP requests
type RoomHandler struct {
	rooms  usecase.RoomUseCase
	logger coreport.Logger
}

// NewRoomHandler creates a new room handler instance
func NewRoomHandler(rooms usecase.RoomUseCase, logger coreport.Logger) *RoomHandler {
	return &RoomHandler{
		rooms:  rooms,
		logger: logger,
	}
}

// Create handles the POST /rooms endpoint
func (h *RoomHandler) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid room request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidGoal),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	room, err := h.rooms.CreateRoom(c.Request.Context(), usecase.CreateRoomRequest{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		TargetTrees: req.TargetTrees,
		TreeSpecies: req.TreeSpecies,
		SiteID:      req.SiteID,
		Deadline:    req.Deadline,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RoomToResponse(room))
}

// List handles the GET /rooms endpoint, returning derived progress per room
func (h *RoomHandler) List(c *gin.Context) {
	progress, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// Get handles the GET /rooms/:id endpoint
func (h *RoomHandler) Get(c *gin.Context) {
	detail, err := h.rooms.GetRoomDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoomDetailResponse{
		Room:          dto.RoomToResponse(detail.Room),
		Progress:      detail.Progress,
		Contributions: dto.ContributionsToResponse(detail.Contributions),
	})
}

// Contribute handles the POST /rooms/:id/contributions endpoint
func (h *RoomHandler) Contribute(c *gin.Context) {
	var req dto.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid contribution request format", map[string]any{
			"room_id": c.Param("id"),
			"error":   err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	initiated, err := h.rooms.Contribute(c.Request.Context(), usecase.ContributeRequest{
		RoomID:      c.Param("id"),
		UserID:      req.UserID,
		Amount:      req.Amount,
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
