package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/application/service"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/request"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/response"
)

// TopicHandler handles community feed HTTP requests
type TopicHandler struct {
	topicService *service.TopicService
	authService  *service.AuthService
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(topicService *service.TopicService, authService *service.AuthService) *TopicHandler {
	return &TopicHandler{topicService: topicService, authService: authService}
}

// ListPublic handles the shared public feed. No auth required.
func (h *TopicHandler) ListPublic(c *gin.Context) {
	params := &repository.TopicFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
	}

	result, err := h.topicService.ListPublicTopics(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Public topics retrieved successfully", result)
}

// List handles listing the authenticated user's topics
func (h *TopicHandler) List(c *gin.Context) {
	params := &repository.TopicFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
	}

	result, err := h.topicService.ListTopics(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Topics retrieved successfully", result)
}

// Create handles posting a topic, optionally with an image upload
func (h *TopicHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateTopicRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateTopicInput{
		OwnerID:     *userID,
		AuthorName:  h.authorName(c, *userID),
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}

	topic, err := h.topicService.CreateTopic(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Topic posted successfully", topic)
}

// authorName resolves the display name stamped onto topics and comments
func (h *TopicHandler) authorName(c *gin.Context, userID uuid.UUID) string {
	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil || user == nil {
		return GetUserEmail(c)
	}
	return user.FirstName + " " + user.LastName
}

// Get handles retrieving a topic with its comments
func (h *TopicHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid topic ID")
		return
	}

	topic, err := h.topicService.GetTopic(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Topic retrieved successfully", topic)
}

// Update handles patching a topic. Admins may edit any topic.
func (h *TopicHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid topic ID")
		return
	}

	var req request.UpdateTopicRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateTopicInput{
		ID:          id,
		RequesterID: *userID,
		IsAdmin:     IsAdmin(c),
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}

	topic, err := h.topicService.UpdateTopic(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Topic updated successfully", topic)
}

// UploadImage handles attaching or replacing a topic's image
func (h *TopicHandler) UploadImage(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid topic ID")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Image file is required")
		return
	}

	topic, err := h.topicService.SetImage(c.Request.Context(), id, *userID, IsAdmin(c), file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Topic image uploaded successfully", topic)
}

// Delete handles removing a topic. Admins may delete any topic.
func (h *TopicHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid topic ID")
		return
	}

	if err := h.topicService.DeleteTopic(c.Request.Context(), id, *userID, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Like handles liking a topic
func (h *TopicHandler) Like(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid topic ID")
		return
	}

	topic, err := h.topicService.LikeTopic(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Topic liked", topic)
}

// AddComment handles commenting on a topic
func (h *TopicHandler) AddComment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid topic ID")
		return
	}

	var req request.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.topicService.AddComment(c.Request.Context(), &service.AddCommentInput{
		TopicID:    id,
		AuthorID:   *userID,
		AuthorName: h.authorName(c, *userID),
		Body:       req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Comment posted successfully", comment)
}
