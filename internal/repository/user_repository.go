package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"optimizer/internal/model"
)

// UserRepository persists staff profiles keyed by Telegram identity.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Find looks a profile up by Telegram ID. An unknown identity is not an
// error: it returns (nil, nil) and drives the registration branch.
func (r *UserRepository) Find(ctx context.Context, telegramID int64) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&profile).Error
	switch {
	case err == nil:
		return &profile, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

// Upsert inserts or overwrites the profile for the given Telegram identity in
// one statement. The telegram_id unique index arbitrates concurrent writes,
// so no read-then-write race can produce duplicate rows. Fresh rows get an
// opaque UUID primary key; updates refresh every mutable field and updated_at.
func (r *UserRepository) Upsert(ctx context.Context, telegramID int64, fullName string, role model.Role, branch model.Branch, lang model.Language) (*model.UserProfile, error) {
	profile := model.UserProfile{
		ID:         uuid.NewString(),
		TelegramID: telegramID,
		FullName:   fullName,
		Role:       role,
		Branch:     branch,
		Language:   lang,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "role", "branch", "language", "updated_at"}),
	}).Create(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	// Re-read so the caller sees the stored row (the original ID and
	// created_at survive an update).
	stored, err := r.Find(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("upsert user: row vanished after write")
	}
	return stored, nil
}
