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

// ProfileRepository implements the profile reader using GORM
type ProfileRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewProfileRepository creates a new ProfileRepository instance
func NewProfileRepository(db *gorm.DB, logger coreport.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, logger: logger}
}

func profileToEntity(m *model.Profile) *entity.Profile {
	return &entity.Profile{
		ID:             m.ID,
		Email:          m.Email,
		FullName:       m.FullName,
		Role:           m.Role,
		IsRotaryMember: m.IsRotaryMember,
		City:           m.City,
		Country:        m.Country,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profileModel model.Profile
	result := r.db.WithContext(ctx).First(&profileModel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProfileNotFound
		}
		r.logger.Error("Database error when getting profile", map[string]any{
			"profile_id": id,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return profileToEntity(&profileModel), nil
}

// ListByIDs returns the profiles for the given IDs; missing IDs are silently
// omitted, so callers get inner-join semantics
func (r *ProfileRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []model.Profile
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profileModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing profiles", map[string]any{
			"count": len(ids),
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, profileToEntity(&profileModels[i]))
	}
	return profiles, nil
}
