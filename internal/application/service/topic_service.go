package service

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/domain/reward"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"github.com/mkulima/shamba-api/pkg/pagination"
	"github.com/mkulima/shamba-api/pkg/storage"
)

// TopicService handles the community feed
type TopicService struct {
	topicRepo repository.TopicRepository
	rewards   *RewardService
	storage   *storage.LocalStorage
	hub       *live.Hub
}

// NewTopicService creates a new topic service
func NewTopicService(topicRepo repository.TopicRepository, rewards *RewardService, store *storage.LocalStorage, hub *live.Hub) *TopicService {
	return &TopicService{
		topicRepo: topicRepo,
		rewards:   rewards,
		storage:   store,
		hub:       hub,
	}
}

// CreateTopicInput represents the create topic input
type CreateTopicInput struct {
	OwnerID     uuid.UUID
	AuthorName  string
	Title       string
	Description string
	IsPublic    bool
	Image       *multipart.FileHeader
}

// CreateTopic creates a topic, saving the attached image when present
func (s *TopicService) CreateTopic(ctx context.Context, input *CreateTopicInput) (*entity.Topic, error) {
	if input.Title == "" {
		return nil, apperror.NewFieldError("title", "is required")
	}

	topic := &entity.Topic{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		AuthorName:  input.AuthorName,
		Title:       input.Title,
		Description: input.Description,
		IsPublic:    input.IsPublic,
	}

	if input.Image != nil {
		url, err := s.storage.SaveImage(input.OwnerID, topic.ID, input.Image)
		if err != nil {
			return nil, err
		}
		topic.ImageURL = &url
	}

	if err := s.topicRepo.Create(ctx, topic); err != nil {
		if topic.ImageURL != nil {
			s.storage.Delete(*topic.ImageURL)
		}
		return nil, err
	}

	s.rewards.AwardQuietly(ctx, input.OwnerID, reward.ActionFirstTopic)
	s.hub.Notify(input.OwnerID, live.CollectionTopics)
	return topic, nil
}

// GetTopic retrieves a topic with its comments. Private topics are only
// visible to their owner; a non-owner gets the same not-found as a missing
// topic. Viewing counts as a qualifying action for the viewer.
func (s *TopicService) GetTopic(ctx context.Context, id, viewerID uuid.UUID) (*entity.Topic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, apperror.NewNotFoundError("Topic")
	}
	if !topic.IsPublic && topic.OwnerID != viewerID {
		return nil, apperror.NewNotFoundError("Topic")
	}

	s.rewards.AwardQuietly(ctx, viewerID, reward.ActionFirstTopicView)
	return topic, nil
}

// ListTopics lists the owner's topics with pagination
func (s *TopicService) ListTopics(ctx context.Context, params *repository.TopicFilterParams) (*pagination.PaginatedResult[entity.Topic], error) {
	topics, total, err := s.topicRepo.ListOwned(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(topics, pag), nil
}

// ListPublicTopics lists public topics across all owners
func (s *TopicService) ListPublicTopics(ctx context.Context, params *repository.TopicFilterParams) (*pagination.PaginatedResult[entity.Topic], error) {
	topics, total, err := s.topicRepo.ListPublic(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(topics, pag), nil
}

// UpdateTopicInput represents the update topic input
type UpdateTopicInput struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	IsAdmin     bool
	Title       *string
	Description *string
	IsPublic    *bool
	Image       *multipart.FileHeader
}

// UpdateTopic patches a topic. Members may edit their own topics; admins
// may edit any. A new image replaces the stored one.
func (s *TopicService) UpdateTopic(ctx context.Context, input *UpdateTopicInput) (*entity.Topic, error) {
	topic, err := s.topicRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, apperror.NewNotFoundError("Topic")
	}
	if topic.OwnerID != input.RequesterID && !input.IsAdmin {
		return nil, apperror.NewAppError(http.StatusForbidden, "You can only edit your own topics")
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperror.NewFieldError("title", "is required")
		}
		topic.Title = *input.Title
	}
	if input.Description != nil {
		topic.Description = *input.Description
	}
	if input.IsPublic != nil {
		topic.IsPublic = *input.IsPublic
	}
	if input.Image != nil {
		old := topic.ImageURL
		url, err := s.storage.SaveImage(topic.OwnerID, topic.ID, input.Image)
		if err != nil {
			return nil, err
		}
		topic.ImageURL = &url
		if old != nil && *old != url {
			s.storage.Delete(*old)
		}
	}

	if err := s.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}

	s.hub.Notify(topic.OwnerID, live.CollectionTopics)
	return topic, nil
}

// SetImage saves an uploaded image and persists its URL onto the topic,
// replacing any previous image. Members may only set images on their own
// topics; admins may set any.
func (s *TopicService) SetImage(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool, file *multipart.FileHeader) (*entity.Topic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, apperror.NewNotFoundError("Topic")
	}
	if topic.OwnerID != requesterID && !isAdmin {
		return nil, apperror.NewAppError(http.StatusForbidden, "You can only edit your own topics")
	}

	old := topic.ImageURL
	url, err := s.storage.SaveImage(topic.OwnerID, topic.ID, file)
	if err != nil {
		return nil, err
	}
	topic.ImageURL = &url

	if err := s.topicRepo.Update(ctx, topic); err != nil {
		s.storage.Delete(url)
		return nil, err
	}
	if old != nil && *old != url {
		s.storage.Delete(*old)
	}

	s.hub.Notify(topic.OwnerID, live.CollectionTopics)
	return topic, nil
}

// DeleteTopic removes a topic. Members may delete their own topics; admins
// may delete any.
func (s *TopicService) DeleteTopic(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) error {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if topic == nil {
		return apperror.NewNotFoundError("Topic")
	}
	if topic.OwnerID != requesterID && !isAdmin {
		return apperror.NewAppError(http.StatusForbidden, "You can only delete your own topics")
	}

	if err := s.topicRepo.Delete(ctx, id); err != nil {
		return err
	}
	if topic.ImageURL != nil {
		s.storage.Delete(*topic.ImageURL)
	}

	s.hub.Notify(topic.OwnerID, live.CollectionTopics)
	return nil
}

// LikeTopic increments the like counter atomically
func (s *TopicService) LikeTopic(ctx context.Context, id uuid.UUID) (*entity.Topic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, apperror.NewNotFoundError("Topic")
	}

	if err := s.topicRepo.IncrementLikes(ctx, id); err != nil {
		return nil, err
	}
	topic.Likes++

	s.hub.Notify(topic.OwnerID, live.CollectionTopics)
	return topic, nil
}

// AddCommentInput represents the add comment input
type AddCommentInput struct {
	TopicID    uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Body       string
}

// AddComment appends a comment to a topic
func (s *TopicService) AddComment(ctx context.Context, input *AddCommentInput) (*entity.TopicComment, error) {
	if input.Body == "" {
		return nil, apperror.NewFieldError("body", "is required")
	}

	topic, err := s.topicRepo.GetByID(ctx, input.TopicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, apperror.NewNotFoundError("Topic")
	}

	comment := &entity.TopicComment{
		TopicID:    topic.ID,
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
		Body:       input.Body,
	}
	if err := s.topicRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	s.hub.Notify(topic.OwnerID, live.CollectionTopics)
	return comment, nil
}

// ListAllTopics returns the owner's full topic set for the live feed
func (s *TopicService) ListAllTopics(ctx context.Context) ([]entity.Topic, error) {
	return s.topicRepo.ListAllOwned(ctx)
}
