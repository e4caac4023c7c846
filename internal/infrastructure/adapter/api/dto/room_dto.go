package dto

import (
	"time"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
)

// CreateRoomRequest represents the API request for opening a contribution room
type CreateRoomRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	GoalAmount  int64     `json:"goalAmount" binding:"required,gt=0"`
	TargetTrees int       `json:"targetTrees" binding:"required,gt=0"`
	TreeSpecies string    `json:"treeSpecies" binding:"required"`
	SiteID      string    `json:"siteId"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	CreatedBy   string    `json:"createdBy" binding:"required"`
}

// ContributeRequest represents the API request for one pooled micro-donation
type ContributeRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Message     string `json:"message"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// RoomResponse represents one contribution room in API responses
type RoomResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	GoalAmount    int64     `json:"goalAmount"`
	CurrentAmount int64     `json:"currentAmount"`
	TargetTrees   int       `json:"targetTrees"`
	TreeSpecies   string    `json:"treeSpecies"`
	SiteID        string    `json:"siteId,omitempty"`
	Status        string    `json:"status"`
	Deadline      time.Time `json:"deadline"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ContributionResponse represents one room contribution in API responses
type ContributionResponse struct {
	ID            string    `json:"id"`
	RoomID        string    `json:"roomId"`
	UserID        string    `json:"userId"`
	Amount        int64     `json:"amount"`
	Message       string    `json:"message,omitempty"`
	IsAnonymous   bool      `json:"isAnonymous"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RoomDetailResponse bundles a room with its progress and contributions
type RoomDetailResponse struct {
	Room          RoomResponse           `json:"room"`
	Progress      entity.RoomProgress    `json:"progress"`
	Contributions []ContributionResponse `json:"contributions"`
}

// RoomToResponse maps a room entity to its API representation
func RoomToResponse(r *entity.ContributionRoom) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		GoalAmount:    r.GoalAmount,
		CurrentAmount: r.CurrentAmount,
		TargetTrees:   r.TargetTrees,
		TreeSpecies:   r.TreeSpecies,
		SiteID:        r.SiteID,
		Status:        string(r.Status),
		Deadline:      r.Deadline,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
	}
}

// ContributionToResponse maps a contribution entity to its API representation
func ContributionToResponse(c *entity.RoomContribution) ContributionResponse {
	return ContributionResponse{
		ID:            c.ID,
		RoomID:        c.RoomID,
		UserID:        c.UserID,
		Amount:        c.Amount,
		Message:       c.Message,
		IsAnonymous:   c.IsAnonymous,
		PaymentStatus: string(c.PaymentStatus),
		CreatedAt:     c.CreatedAt,
	}
}

// ContributionsToResponse maps a slice of contribution entities
func ContributionsToResponse(contributions []*entity.RoomContribution) []ContributionResponse {
	out := make([]ContributionResponse, 0, len(contributions))
	for _, c := range contributions {
		out = append(out, ContributionToResponse(c))
	}
	return out
}
