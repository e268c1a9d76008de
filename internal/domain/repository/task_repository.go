package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// TaskFilterParams holds filters for listing tasks
type TaskFilterParams struct {
	Pagination *pagination.PaginationParams
	From       *time.Time
	To         *time.Time
}

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TaskFilterParams) ([]entity.Task, int64, error)
	// ListAll returns every open task for the owner in context by date
	ListAll(ctx context.Context) ([]entity.Task, error)
	// ListRange returns every open task for the owner in the date range,
	// unpaged, for the calendar view
	ListRange(ctx context.Context, from, to *time.Time) ([]entity.Task, error)

	// Complete moves the task to the archive table atomically
	Complete(ctx context.Context, task *entity.Task) (*entity.ArchivedTask, error)
	ListArchived(ctx context.Context, params *pagination.PaginationParams) ([]entity.ArchivedTask, int64, error)

	// DueReminders returns tasks across all owners whose reminder is due and
	// not yet sent
	DueReminders(ctx context.Context, now time.Time) ([]entity.Task, error)
	// MarkReminderSent flags the reminder as delivered
	MarkReminderSent(ctx context.Context, id uuid.UUID) error
}
