package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

type fakeTaskRepo struct {
	tasks []entity.Task
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entity.Task) error {
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	for _, task := range r.tasks {
		if task.ID == id {
			return &task, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *entity.Task) error { return nil }
func (r *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func (r *fakeTaskRepo) List(ctx context.Context, params *repository.TaskFilterParams) ([]entity.Task, int64, error) {
	return nil, 0, nil
}

func (r *fakeTaskRepo) ListAll(ctx context.Context) ([]entity.Task, error) {
	return r.tasks, nil
}

func (r *fakeTaskRepo) ListRange(ctx context.Context, from, to *time.Time) ([]entity.Task, error) {
	var matched []entity.Task
	for _, task := range r.tasks {
		if from != nil && task.TaskDate.Before(*from) {
			continue
		}
		if to != nil && task.TaskDate.After(*to) {
			continue
		}
		matched = append(matched, task)
	}
	return matched, nil
}

func (r *fakeTaskRepo) Complete(ctx context.Context, task *entity.Task) (*entity.ArchivedTask, error) {
	return nil, nil
}

func (r *fakeTaskRepo) ListArchived(ctx context.Context, params *pagination.PaginationParams) ([]entity.ArchivedTask, int64, error) {
	return nil, 0, nil
}

func (r *fakeTaskRepo) DueReminders(ctx context.Context, now time.Time) ([]entity.Task, error) {
	return nil, nil
}

func (r *fakeTaskRepo) MarkReminderSent(ctx context.Context, id uuid.UUID) error { return nil }

func TestBucketByDate(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tasks := []entity.Task{
		{Title: "prune trees", TaskDate: day2},
		{Title: "buy feed", TaskDate: day1},
		{Title: "fix fence", TaskDate: day1},
	}

	days := BucketByDate(tasks)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}

	if days[0].Date != "2026-03-01" {
		t.Errorf("first day = %q, want 2026-03-01", days[0].Date)
	}
	if len(days[0].Tasks) != 2 {
		t.Errorf("first day has %d tasks, want 2", len(days[0].Tasks))
	}
	if days[1].Date != "2026-03-15" || len(days[1].Tasks) != 1 {
		t.Errorf("second day = %q with %d tasks, want 2026-03-15 with 1", days[1].Date, len(days[1].Tasks))
	}
}

func TestBucketByDateEmpty(t *testing.T) {
	if days := BucketByDate(nil); len(days) != 0 {
		t.Errorf("got %d days for no tasks, want 0", len(days))
	}
}

func TestCalendarReturnsEveryTaskInRange(t *testing.T) {
	repo := &fakeTaskRepo{}
	owner := uuid.New()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Spread well past any page size so truncation would show up
	const count = 240
	for i := 0; i < count; i++ {
		repo.tasks = append(repo.tasks, entity.Task{
			ID:       uuid.New(),
			OwnerID:  owner,
			Title:    fmt.Sprintf("task %d", i),
			TaskDate: start.AddDate(0, 0, i%30),
		})
	}

	svc := NewTaskService(repo, NewRewardService(fakeRewardRepo{}, nil), live.NewHub())

	end := start.AddDate(0, 1, 0)
	days, err := svc.Calendar(context.Background(), &start, &end)
	if err != nil {
		t.Fatalf("Calendar() error: %v", err)
	}

	total := 0
	for _, day := range days {
		total += len(day.Tasks)
	}
	if total != count {
		t.Errorf("calendar holds %d tasks, want %d", total, count)
	}
	if len(days) != 30 {
		t.Errorf("calendar holds %d days, want 30", len(days))
	}
}
