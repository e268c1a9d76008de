package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/domain/reward"
	"github.com/mkulima/shamba-api/pkg/apperror"
)

// RewardService grants points and badges for qualifying actions
type RewardService struct {
	rewardRepo repository.RewardRepository
	userRepo   repository.UserRepository
}

// NewRewardService creates a new reward service
func NewRewardService(rewardRepo repository.RewardRepository, userRepo repository.UserRepository) *RewardService {
	return &RewardService{
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
	}
}

// Award applies a qualifying action and returns the outcome
func (s *RewardService) Award(ctx context.Context, userID uuid.UUID, action reward.Action) (*reward.Outcome, error) {
	return s.rewardRepo.Award(ctx, userID, action)
}

// AwardQuietly applies a qualifying action without failing the caller's
// operation. A sale that saves but misses its bonus is better than a sale
// that fails.
func (s *RewardService) AwardQuietly(ctx context.Context, userID uuid.UUID, action reward.Action) {
	if _, err := s.rewardRepo.Award(ctx, userID, action); err != nil {
		log.Printf("Reward grant %q for user %s failed: %v", action, userID, err)
	}
}

// Profile summarizes a user's reward state
type Profile struct {
	Points int64    `json:"points"`
	Level  int64    `json:"level"`
	Badges []string `json:"badges"`
}

// GetProfile returns the reward profile for a user
func (s *RewardService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.userRepo.GetWithBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	badges := make([]string, 0, len(user.Badges))
	for _, b := range user.Badges {
		badges = append(badges, b.Badge)
	}

	return &Profile{
		Points: user.Points,
		Level:  reward.Level(user.Points),
		Badges: badges,
	}, nil
}
