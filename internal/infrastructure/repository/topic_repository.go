package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	domainRepo "github.com/mkulima/shamba-api/internal/domain/repository"
	"gorm.io/gorm"
)

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *gorm.DB) domainRepo.TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(ctx context.Context, topic *entity.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

// GetByID loads a topic without owner scoping: public topics are readable
// by anyone, so visibility is the service's decision.
func (r *topicRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Topic, error) {
	var topic entity.Topic
	err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&topic, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &topic, err
}

func (r *topicRepository) Update(ctx context.Context, topic *entity.Topic) error {
	return r.db.WithContext(ctx).Save(topic).Error
}

func (r *topicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Topic{}, "id = ?", id).Error
}

func (r *topicRepository) ListOwned(ctx context.Context, params *domainRepo.TopicFilterParams) ([]entity.Topic, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Topic{}).Scopes(OwnerScope(ctx))
	return r.list(query, params)
}

func (r *topicRepository) ListPublic(ctx context.Context, params *domainRepo.TopicFilterParams) ([]entity.Topic, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Topic{}).Where("is_public = ?", true)
	return r.list(query, params)
}

func (r *topicRepository) list(query *gorm.DB, params *domainRepo.TopicFilterParams) ([]entity.Topic, int64, error) {
	var topics []entity.Topic
	var total int64

	if params.Search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&topics).Error

	return topics, total, err
}

// IncrementLikes bumps the counter with an atomic column update so two
// concurrent likes never overwrite each other.
func (r *topicRepository) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Topic{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1")).Error
}

func (r *topicRepository) AddComment(ctx context.Context, comment *entity.TopicComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *topicRepository) ListAllOwned(ctx context.Context) ([]entity.Topic, error) {
	var topics []entity.Topic
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).
		Order("created_at DESC").
		Find(&topics).Error
	return topics, err
}
