package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/domain/reward"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// TaskService handles the task calendar
type TaskService struct {
	taskRepo repository.TaskRepository
	rewards  *RewardService
	hub      *live.Hub
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository, rewards *RewardService, hub *live.Hub) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		rewards:  rewards,
		hub:      hub,
	}
}

// CreateTaskInput represents the create task input
type CreateTaskInput struct {
	OwnerID  uuid.UUID
	Title    string
	TaskDate time.Time
	Reminder *time.Time
}

// CreateTask schedules a task
func (s *TaskService) CreateTask(ctx context.Context, input *CreateTaskInput) (*entity.Task, error) {
	if input.Title == "" {
		return nil, apperror.NewFieldError("title", "is required")
	}
	if input.TaskDate.IsZero() {
		return nil, apperror.NewFieldError("task_date", "is required")
	}

	task := &entity.Task{
		OwnerID:  input.OwnerID,
		Title:    input.Title,
		TaskDate: input.TaskDate,
		Reminder: input.Reminder,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.rewards.AwardQuietly(ctx, input.OwnerID, reward.ActionFirstTask)
	s.hub.Notify(input.OwnerID, live.CollectionTasks)
	return task, nil
}

// GetTask retrieves a task
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}
	return task, nil
}

// ListTasks lists open tasks with pagination and an optional date range
func (s *TaskService) ListTasks(ctx context.Context, params *repository.TaskFilterParams) (*pagination.PaginatedResult[entity.Task], error) {
	tasks, total, err := s.taskRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(tasks, pag), nil
}

// CalendarDay groups the tasks of one calendar date
type CalendarDay struct {
	Date  string        `json:"date"`
	Tasks []entity.Task `json:"tasks"`
}

// Calendar returns the open tasks in the date range bucketed by date
func (s *TaskService) Calendar(ctx context.Context, from, to *time.Time) ([]CalendarDay, error) {
	tasks, err := s.taskRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return BucketByDate(tasks), nil
}

// BucketByDate groups tasks by calendar date, days in ascending order
func BucketByDate(tasks []entity.Task) []CalendarDay {
	byDate := make(map[string][]entity.Task)
	for _, t := range tasks {
		key := t.TaskDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], t)
	}

	days := make([]CalendarDay, 0, len(byDate))
	for date, bucket := range byDate {
		days = append(days, CalendarDay{Date: date, Tasks: bucket})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// UpdateTaskInput represents the update task input
type UpdateTaskInput struct {
	ID       uuid.UUID
	Title    *string
	TaskDate *time.Time
	Reminder *time.Time
	// ClearReminder drops the reminder when true
	ClearReminder bool
}

// UpdateTask patches a task. Moving the reminder re-arms it.
func (s *TaskService) UpdateTask(ctx context.Context, input *UpdateTaskInput) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperror.NewFieldError("title", "is required")
		}
		task.Title = *input.Title
	}
	if input.TaskDate != nil {
		task.TaskDate = *input.TaskDate
	}
	if input.ClearReminder {
		task.Reminder = nil
		task.ReminderSent = false
	} else if input.Reminder != nil {
		task.Reminder = input.Reminder
		task.ReminderSent = false
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.hub.Notify(task.OwnerID, live.CollectionTasks)
	return task, nil
}

// DeleteTask removes an open task without archiving it
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return apperror.NewNotFoundError("Task")
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Notify(task.OwnerID, live.CollectionTasks)
	return nil
}

// CompleteTask moves a task to the archive atomically
func (s *TaskService) CompleteTask(ctx context.Context, id uuid.UUID) (*entity.ArchivedTask, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}

	archived, err := s.taskRepo.Complete(ctx, task)
	if err != nil {
		return nil, err
	}

	s.hub.Notify(task.OwnerID, live.CollectionTasks)
	return archived, nil
}

// ListArchivedTasks lists completed tasks with pagination
func (s *TaskService) ListArchivedTasks(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ArchivedTask], error) {
	archived, total, err := s.taskRepo.ListArchived(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(archived, pag), nil
}

// ListAllTasks returns every open task for the owner by date
func (s *TaskService) ListAllTasks(ctx context.Context) ([]entity.Task, error) {
	return s.taskRepo.ListAll(ctx)
}
