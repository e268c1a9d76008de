package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// TopicFilterParams holds filters for listing topics
type TopicFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	Create(ctx context.Context, topic *entity.Topic) error
	// GetByID loads a topic with its comments
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Topic, error)
	Update(ctx context.Context, topic *entity.Topic) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListOwned returns the owner's topics, newest first
	ListOwned(ctx context.Context, params *TopicFilterParams) ([]entity.Topic, int64, error)
	// ListPublic returns public topics across all owners, newest first
	ListPublic(ctx context.Context, params *TopicFilterParams) ([]entity.Topic, int64, error)
	// ListAllOwned returns the owner's entire topic set, newest first
	ListAllOwned(ctx context.Context) ([]entity.Topic, error)
	// IncrementLikes bumps the like counter atomically
	IncrementLikes(ctx context.Context, id uuid.UUID) error
	AddComment(ctx context.Context, comment *entity.TopicComment) error
}
