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

// RoomRepository implements the room repository interface using GORM
type RoomRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRoomRepository creates a new RoomRepository instance
func NewRoomRepository(db *gorm.DB, logger coreport.Logger) *RoomRepository {
	return &RoomRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func roomToModel(r *entity.ContributionRoom) model.ContributionRoom {
	return model.ContributionRoom{
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

func roomToEntity(m *model.ContributionRoom) *entity.ContributionRoom {
	return &entity.ContributionRoom{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		GoalAmount:    m.GoalAmount,
		CurrentAmount: m.CurrentAmount,
		TargetTrees:   m.TargetTrees,
		TreeSpecies:   m.TreeSpecies,
		SiteID:        m.SiteID,
		Status:        entity.RoomStatus(m.Status),
		Deadline:      m.Deadline,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func contributionToModel(c *entity.RoomContribution) model.RoomContribution {
	return model.RoomContribution{
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

func contributionToEntity(m *model.RoomContribution) *entity.RoomContribution {
	return &entity.RoomContribution{
		ID:            m.ID,
		RoomID:        m.RoomID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Message:       m.Message,
		IsAnonymous:   m.IsAnonymous,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		CreatedAt:     m.CreatedAt,
	}
}

func (r *RoomRepository) handleRoomError(operation string, err error, roomID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"room_id": roomID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrRoomNotFound
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateRecord
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// CreateRoom saves a new contribution room
func (r *RoomRepository) CreateRoom(ctx context.Context, room *entity.ContributionRoom) error {
	roomModel := roomToModel(room)
	result := r.db.WithContext(ctx).Create(&roomModel)
	if result.Error != nil {
		return r.handleRoomError("creating room", result.Error, room.ID)
	}
	return nil
}

// GetRoomByID retrieves a room by ID
func (r *RoomRepository) GetRoomByID(ctx context.Context, id string) (*entity.ContributionRoom, error) {
	var roomModel model.ContributionRoom
	result := r.db.WithContext(ctx).First(&roomModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleRoomError("getting room", result.Error, id)
	}
	return roomToEntity(&roomModel), nil
}

// UpdateRoom persists room changes, including the running total and status
func (r *RoomRepository) UpdateRoom(ctx context.Context, room *entity.ContributionRoom) error {
	result := r.db.WithContext(ctx).Model(&model.ContributionRoom{}).
		Where("id = ?", room.ID).
		Updates(map[string]interface{}{
			"current_amount": room.CurrentAmount,
			"status":         string(room.Status),
			"title":          room.Title,
			"description":    room.Description,
			"deadline":       room.Deadline,
		})
	if result.Error != nil {
		return r.handleRoomError("updating room", result.Error, room.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRoomNotFound
	}
	return nil
}

// ListRooms returns rooms whose status is in the given set, newest first
func (r *RoomRepository) ListRooms(ctx context.Context, statuses ...entity.RoomStatus) ([]*entity.ContributionRoom, error) {
	query := r.db.WithContext(ctx).Order("created_at desc")
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		query = query.Where("status IN ?", values)
	}

	var roomModels []model.ContributionRoom
	result := query.Find(&roomModels)
	if result.Error != nil {
		return nil, r.handleRoomError("listing rooms", result.Error, "")
	}

	rooms := make([]*entity.ContributionRoom, 0, len(roomModels))
	for i := range roomModels {
		rooms = append(rooms, roomToEntity(&roomModels[i]))
	}
	return rooms, nil
}

// CreateContribution saves a new pending room contribution
func (r *RoomRepository) CreateContribution(ctx context.Context, contribution *entity.RoomContribution) error {
	contributionModel := contributionToModel(contribution)
	result := r.db.WithContext(ctx).Create(&contributionModel)
	if result.Error != nil {
		return r.handleRoomError("creating contribution", result.Error, contribution.RoomID)
	}
	return nil
}

// GetContributionByID retrieves a contribution by ID
func (r *RoomRepository) GetContributionByID(ctx context.Context, id string) (*entity.RoomContribution, error) {
	var contributionModel model.RoomContribution
	result := r.db.WithContext(ctx).First(&contributionModel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrContributionNotFound
		}
		r.logger.Error("Database error when getting contribution", map[string]any{
			"contribution_id": id,
			"error":           result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return contributionToEntity(&contributionModel), nil
}

// UpdateContribution persists contribution status transitions
func (r *RoomRepository) UpdateContribution(ctx context.Context, contribution *entity.RoomContribution) error {
	result := r.db.WithContext(ctx).Model(&model.RoomContribution{}).
		Where("id = ?", contribution.ID).
		Update("payment_status", string(contribution.PaymentStatus))
	if result.Error != nil {
		return r.handleRoomError("updating contribution", result.Error, contribution.RoomID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrContributionNotFound
	}
	return nil
}

// ListCompletedContributions returns a room's completed contributions, newest first
func (r *RoomRepository) ListCompletedContributions(ctx context.Context, roomID string) ([]*entity.RoomContribution, error) {
	var contributionModels []model.RoomContribution
	result := r.db.WithContext(ctx).
		Where("room_id = ? AND payment_status = ?", roomID, string(entity.PaymentCompleted)).
		Order("created_at desc").
		Find(&contributionModels)
	if result.Error != nil {
		return nil, r.handleRoomError("listing contributions", result.Error, roomID)
	}

	contributions := make([]*entity.RoomContribution, 0, len(contributionModels))
	for i := range contributionModels {
		contributions = append(contributions, contributionToEntity(&contributionModels[i]))
	}
	return contributions, nil
}

// CountCompletedContributions returns the number of completed contributions
// for a room
func (r *RoomRepository) CountCompletedContributions(ctx context.Context, roomID string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.RoomContribution{}).
		Where("room_id = ? AND payment_status = ?", roomID, string(entity.PaymentCompleted)).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleRoomError("counting contributions", result.Error, roomID)
	}
	return count, nil
}
