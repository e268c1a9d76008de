package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkulima/shamba-api/internal/application/service"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/response"
)

// RewardHandler handles reward profile HTTP requests
type RewardHandler struct {
	rewardService *service.RewardService
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewardService *service.RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

// Profile returns the user's points, level and badges
func (h *RewardHandler) Profile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	profile, err := h.rewardService.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Rewards retrieved successfully", profile)
}
