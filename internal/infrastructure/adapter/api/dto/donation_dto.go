package dto

import (
	"time"

	"github.com/rotaryroots/hariyo-ban/internal/domain/entity"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/payment"
)

// DonationRequest represents the API request for initiating a donation
type DonationRequest struct {
	UserID      string `json:"userId" binding:"required"`
	SiteID      string `json:"siteId"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	TreesCount  int    `json:"treesCount" binding:"required,gt=0"`
	TreeSpecies string `json:"treeSpecies" binding:"required"`
	Message     string `json:"message"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// PaymentFormResponse carries the gateway form the client must submit
type PaymentFormResponse struct {
	RecordID string           `json:"recordId"`
	Form     payment.FormPost `json:"form"`
}

// DonationResponse represents one donation in API responses
type DonationResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	SiteID        string     `json:"siteId,omitempty"`
	Amount        int64      `json:"amount"`
	TreesCount    int        `json:"treesCount"`
	TreeSpecies   string     `json:"treeSpecies"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentStatus string     `json:"paymentStatus"`
	EsewaRefID    string     `json:"esewaRefId,omitempty"`
	Message       string     `json:"message,omitempty"`
	IsAnonymous   bool       `json:"isAnonymous"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// DonationToResponse maps a donation entity to its API representation
func DonationToResponse(d *entity.Donation) DonationResponse {
	return DonationResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		SiteID:        d.SiteID,
		Amount:        d.Amount,
		TreesCount:    d.TreesCount,
		TreeSpecies:   d.TreeSpecies,
		PaymentMethod: d.PaymentMethod,
		PaymentStatus: string(d.PaymentStatus),
		EsewaRefID:    d.EsewaRefID,
		Message:       d.DonationMessage,
		IsAnonymous:   d.IsAnonymous,
		CreatedAt:     d.CreatedAt,
		CompletedAt:   d.CompletedAt,
	}
}

// DonationsToResponse maps a slice of donation entities
func DonationsToResponse(donations []*entity.Donation) []DonationResponse {
	out := make([]DonationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, DonationToResponse(d))
	}
	return out
}
