package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	domainRepo "github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/domain/reward"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *gorm.DB) domainRepo.RewardRepository {
	return &rewardRepository{db: db}
}

// Award reads the profile under a row lock, applies the pure reward logic
// and writes points and badge back in the same transaction. The row lock
// serializes concurrent qualifying actions for one user.
func (r *rewardRepository) Award(ctx context.Context, userID uuid.UUID, action reward.Action) (*reward.Outcome, error) {
	var outcome reward.Outcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("User")
		}
		if err != nil {
			return err
		}

		badge := reward.Badge(action)
		var hasBadge bool
		if badge != "" {
			var count int64
			if err := tx.Model(&entity.UserBadge{}).
				Where("user_id = ? AND badge = ?", userID, badge).
				Count(&count).Error; err != nil {
				return err
			}
			hasBadge = count > 0
		}

		outcome = reward.Apply(user.Points, hasBadge, action)
		if !outcome.KnownAction {
			return nil
		}

		if outcome.NewBadge {
			if err := tx.Create(&entity.UserBadge{
				UserID: userID,
				Badge:  outcome.Badge,
			}).Error; err != nil {
				return err
			}
		}

		return tx.Model(&entity.User{}).
			Where("id = ?", userID).
			Update("points", outcome.Points).Error
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}
