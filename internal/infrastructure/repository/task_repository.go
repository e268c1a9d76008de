package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	domainRepo "github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/pkg/pagination"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) domainRepo.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &task, err
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).Delete(&entity.Task{}, "id = ?", id).Error
}

func (r *taskRepository) List(ctx context.Context, params *domainRepo.TaskFilterParams) ([]entity.Task, int64, error) {
	var tasks []entity.Task
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Task{}).Scopes(OwnerScope(ctx))

	if params.From != nil {
		query = query.Where("task_date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("task_date <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("task_date ASC, created_at ASC").
		Find(&tasks).Error

	return tasks, total, err
}

func (r *taskRepository) ListAll(ctx context.Context) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).
		Order("task_date ASC, created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) ListRange(ctx context.Context, from, to *time.Time) ([]entity.Task, error) {
	query := r.db.WithContext(ctx).Scopes(OwnerScope(ctx))
	if from != nil {
		query = query.Where("task_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("task_date <= ?", *to)
	}

	var tasks []entity.Task
	err := query.Order("task_date ASC, created_at ASC").Find(&tasks).Error
	return tasks, err
}

// Complete moves the task to the archive table atomically
func (r *taskRepository) Complete(ctx context.Context, task *entity.Task) (*entity.ArchivedTask, error) {
	archived := &entity.ArchivedTask{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		Title:       task.Title,
		TaskDate:    task.TaskDate,
		Reminder:    task.Reminder,
		CompletedAt: time.Now(),
		CreatedAt:   task.CreatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(archived).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Task{}, "id = ?", task.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return archived, nil
}

func (r *taskRepository) ListArchived(ctx context.Context, params *pagination.PaginationParams) ([]entity.ArchivedTask, int64, error) {
	var archived []entity.ArchivedTask
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ArchivedTask{}).Scopes(OwnerScope(ctx))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("completed_at DESC").
		Find(&archived).Error

	return archived, total, err
}

// DueReminders runs unscoped across owners; the scheduler notifies each
// owner's feed individually.
func (r *taskRepository) DueReminders(ctx context.Context, now time.Time) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.db.WithContext(ctx).
		Where("reminder IS NOT NULL AND reminder <= ? AND reminder_sent = ?", now, false).
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) MarkReminderSent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Task{}).
		Where("id = ?", id).
		Update("reminder_sent", true).Error
}
