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

// DonationRepository implements the donation repository interface using GORM
type DonationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDonationRepository creates a new DonationRepository instance
func NewDonationRepository(db *gorm.DB, logger coreport.Logger) *DonationRepository {
	return &DonationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func donationToModel(d *entity.Donation) model.Donation {
	return model.Donation{
		ID:                 d.ID,
		UserID:             d.UserID,
		SiteID:             d.SiteID,
		Amount:             d.Amount,
		TreesCount:         d.TreesCount,
		TreeSpecies:        d.TreeSpecies,
		PaymentMethod:      d.PaymentMethod,
		PaymentStatus:      string(d.PaymentStatus),
		EsewaTransactionID: d.EsewaTransactionID,
		EsewaRefID:         d.EsewaRefID,
		DonationMessage:    d.DonationMessage,
		IsAnonymous:        d.IsAnonymous,
		CreatedAt:          d.CreatedAt,
		CompletedAt:        d.CompletedAt,
	}
}

func donationToEntity(m *model.Donation) *entity.Donation {
	return &entity.Donation{
		ID:                 m.ID,
		UserID:             m.UserID,
		SiteID:             m.SiteID,
		Amount:             m.Amount,
		TreesCount:         m.TreesCount,
		TreeSpecies:        m.TreeSpecies,
		PaymentMethod:      m.PaymentMethod,
		PaymentStatus:      entity.PaymentStatus(m.PaymentStatus),
		EsewaTransactionID: m.EsewaTransactionID,
		EsewaRefID:         m.EsewaRefID,
		DonationMessage:    m.DonationMessage,
		IsAnonymous:        m.IsAnonymous,
		CreatedAt:          m.CreatedAt,
		CompletedAt:        m.CompletedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *DonationRepository) handleDatabaseError(operation string, err error, donationID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"donation_id": donationID,
		"error":       err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrDonationNotFound
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateRecord
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new pending donation
func (r *DonationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	donationModel := donationToModel(donation)

	result := r.db.WithContext(ctx).Create(&donationModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating donation", result.Error, donation.ID)
	}

	r.logger.Debug("Donation created", map[string]any{
		"donation_id": donation.ID,
		"amount":      donation.Amount,
	})
	return nil
}

// GetByID retrieves a donation by ID
func (r *DonationRepository) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	var donationModel model.Donation
	result := r.db.WithContext(ctx).First(&donationModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting donation", result.Error, id)
	}
	return donationToEntity(&donationModel), nil
}

// Update persists status transitions and gateway identifiers
func (r *DonationRepository) Update(ctx context.Context, donation *entity.Donation) error {
	result := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("id = ?", donation.ID).
		Updates(map[string]interface{}{
			"payment_status":       string(donation.PaymentStatus),
			"esewa_transaction_id": donation.EsewaTransactionID,
			"esewa_ref_id":         donation.EsewaRefID,
			"completed_at":         donation.CompletedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating donation", result.Error, donation.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Donation not found during update", map[string]any{
			"donation_id": donation.ID,
		})
		return errs.ErrDonationNotFound
	}
	return nil
}

// ListCompleted returns all completed donations ordered by creation time
func (r *DonationRepository) ListCompleted(ctx context.Context) ([]*entity.Donation, error) {
	var donationModels []model.Donation
	result := r.db.WithContext(ctx).
		Where("payment_status = ?", string(entity.PaymentCompleted)).
		Order("created_at asc").
		Find(&donationModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing completed donations", result.Error, "")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for i := range donationModels {
		donations = append(donations, donationToEntity(&donationModels[i]))
	}
	return donations, nil
}

// ListByUser returns all donations of one payer, newest first
func (r *DonationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Donation, error) {
	var donationModels []model.Donation
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&donationModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing user donations", result.Error, "")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for i := range donationModels {
		donations = append(donations, donationToEntity(&donationModels[i]))
	}
	return donations, nil
}

// TreeRepository implements the tree repository interface using GORM
type TreeRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTreeRepository creates a new TreeRepository instance
func NewTreeRepository(db *gorm.DB, logger coreport.Logger) *TreeRepository {
	return &TreeRepository{db: db, logger: logger}
}

// CreateBatch inserts one row per tree in a single statement
func (r *TreeRepository) CreateBatch(ctx context.Context, trees []*entity.Tree) error {
	if len(trees) == 0 {
		return nil
	}

	treeModels := make([]model.Tree, 0, len(trees))
	for _, t := range trees {
		treeModels = append(treeModels, model.Tree{
			ID:          t.ID,
			DonationID:  t.DonationID,
			SiteID:      t.SiteID,
			Species:     t.Species,
			Status:      string(t.Status),
			PlantedBy:   t.PlantedBy,
			PlantedDate: t.PlantedDate,
		})
	}

	result := r.db.WithContext(ctx).Create(&treeModels)
	if result.Error != nil {
		r.logger.Error("Failed to batch-insert trees", map[string]any{
			"donation_id": trees[0].DonationID,
			"count":       len(trees),
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Debug("Trees created", map[string]any{
		"donation_id": trees[0].DonationID,
		"count":       len(trees),
	})
	return nil
}

// CountBySite returns the number of tree rows referencing a site
func (r *TreeRepository) CountBySite(ctx context.Context, siteID string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Tree{}).
		Where("site_id = ?", siteID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}
