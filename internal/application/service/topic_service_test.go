package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/domain/reward"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"github.com/mkulima/shamba-api/pkg/storage"
)

type fakeTopicRepo struct {
	topics map[uuid.UUID]entity.Topic
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{topics: make(map[uuid.UUID]entity.Topic)}
}

func (r *fakeTopicRepo) Create(ctx context.Context, topic *entity.Topic) error {
	r.topics[topic.ID] = *topic
	return nil
}

func (r *fakeTopicRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Topic, error) {
	topic, ok := r.topics[id]
	if !ok {
		return nil, nil
	}
	return &topic, nil
}

func (r *fakeTopicRepo) Update(ctx context.Context, topic *entity.Topic) error {
	r.topics[topic.ID] = *topic
	return nil
}

func (r *fakeTopicRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.topics, id)
	return nil
}

func (r *fakeTopicRepo) ListOwned(ctx context.Context, params *repository.TopicFilterParams) ([]entity.Topic, int64, error) {
	return nil, 0, nil
}

func (r *fakeTopicRepo) ListPublic(ctx context.Context, params *repository.TopicFilterParams) ([]entity.Topic, int64, error) {
	return nil, 0, nil
}

func (r *fakeTopicRepo) ListAllOwned(ctx context.Context) ([]entity.Topic, error) {
	all := make([]entity.Topic, 0, len(r.topics))
	for _, topic := range r.topics {
		all = append(all, topic)
	}
	return all, nil
}

func (r *fakeTopicRepo) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	topic := r.topics[id]
	topic.Likes++
	r.topics[id] = topic
	return nil
}

func (r *fakeTopicRepo) AddComment(ctx context.Context, comment *entity.TopicComment) error {
	return nil
}

type fakeRewardRepo struct{}

func (fakeRewardRepo) Award(ctx context.Context, userID uuid.UUID, action reward.Action) (*reward.Outcome, error) {
	return &reward.Outcome{}, nil
}

func newTopicServiceForTest(t *testing.T, repo repository.TopicRepository) *TopicService {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads", 1<<20)
	if err != nil {
		t.Fatalf("NewLocalStorage() error: %v", err)
	}
	rewards := NewRewardService(fakeRewardRepo{}, nil)
	return NewTopicService(repo, rewards, store, live.NewHub())
}

func TestGetTopicHidesPrivateTopicsFromNonOwners(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := newTopicServiceForTest(t, repo)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()

	private := entity.Topic{ID: uuid.New(), OwnerID: owner, Title: "Fencing plans", IsPublic: false}
	public := entity.Topic{ID: uuid.New(), OwnerID: owner, Title: "Maize prices", IsPublic: true}
	repo.topics[private.ID] = private
	repo.topics[public.ID] = public

	if _, err := svc.GetTopic(ctx, private.ID, owner); err != nil {
		t.Errorf("owner denied own private topic: %v", err)
	}

	_, err := svc.GetTopic(ctx, private.ID, stranger)
	if err == nil {
		t.Fatal("non-owner read a private topic")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusNotFound {
		t.Errorf("private topic denial code = %d, want %d", appErr.Code, http.StatusNotFound)
	}

	if _, err := svc.GetTopic(ctx, public.ID, stranger); err != nil {
		t.Errorf("non-owner denied a public topic: %v", err)
	}
}

func TestUpdateTopicRequiresOwnership(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := newTopicServiceForTest(t, repo)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	topic := entity.Topic{ID: uuid.New(), OwnerID: owner, Title: "Original title", IsPublic: true}
	repo.topics[topic.ID] = topic

	newTitle := "Hijacked title"
	_, err := svc.UpdateTopic(ctx, &UpdateTopicInput{
		ID:          topic.ID,
		RequesterID: stranger,
		Title:       &newTitle,
	})
	if err == nil {
		t.Fatal("non-owner updated someone else's topic")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusForbidden {
		t.Errorf("update denial code = %d, want %d", appErr.Code, http.StatusForbidden)
	}
	if repo.topics[topic.ID].Title != "Original title" {
		t.Errorf("stored title changed to %q after denied update", repo.topics[topic.ID].Title)
	}

	ownerTitle := "Renamed by owner"
	if _, err := svc.UpdateTopic(ctx, &UpdateTopicInput{
		ID:          topic.ID,
		RequesterID: owner,
		Title:       &ownerTitle,
	}); err != nil {
		t.Fatalf("owner denied updating own topic: %v", err)
	}
	if repo.topics[topic.ID].Title != ownerTitle {
		t.Errorf("stored title = %q, want %q", repo.topics[topic.ID].Title, ownerTitle)
	}

	adminTitle := "Renamed by admin"
	if _, err := svc.UpdateTopic(ctx, &UpdateTopicInput{
		ID:          topic.ID,
		RequesterID: stranger,
		IsAdmin:     true,
		Title:       &adminTitle,
	}); err != nil {
		t.Errorf("admin denied updating another user's topic: %v", err)
	}
}

func TestSetImageRequiresOwnership(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := newTopicServiceForTest(t, repo)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	topic := entity.Topic{ID: uuid.New(), OwnerID: owner, Title: "With image"}
	repo.topics[topic.ID] = topic

	_, err := svc.SetImage(ctx, topic.ID, stranger, false, nil)
	if err == nil {
		t.Fatal("non-owner replaced someone else's topic image")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusForbidden {
		t.Errorf("image denial code = %d, want %d", appErr.Code, http.StatusForbidden)
	}
}

func TestListAllTopicsReturnsFullSet(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := newTopicServiceForTest(t, repo)
	ctx := context.Background()

	owner := uuid.New()
	const count = 150
	for i := 0; i < count; i++ {
		id := uuid.New()
		repo.topics[id] = entity.Topic{ID: id, OwnerID: owner, Title: fmt.Sprintf("Topic %d", i)}
	}

	topics, err := svc.ListAllTopics(ctx)
	if err != nil {
		t.Fatalf("ListAllTopics() error: %v", err)
	}
	if len(topics) != count {
		t.Errorf("ListAllTopics() returned %d topics, want %d", len(topics), count)
	}
}
