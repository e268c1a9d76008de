package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/reward"
)

// RewardRepository applies reward grants to user profiles
type RewardRepository interface {
	// Award applies a qualifying action inside a row-locked transaction so
	// concurrent grants (two sessions acting at once) never lose points or
	// double-grant a one-time badge.
	Award(ctx context.Context, userID uuid.UUID, action reward.Action) (*reward.Outcome, error)
}
