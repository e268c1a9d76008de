package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/enum"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// WorkerService handles worker records, ledgers and salary months
type WorkerService struct {
	workerRepo repository.WorkerRepository
	hub        *live.Hub
}

// NewWorkerService creates a new worker service
func NewWorkerService(workerRepo repository.WorkerRepository, hub *live.Hub) *WorkerService {
	return &WorkerService{
		workerRepo: workerRepo,
		hub:        hub,
	}
}

// CreateWorkerInput represents the create worker input
type CreateWorkerInput struct {
	OwnerID    uuid.UUID
	Name       string
	Phone      *string
	BaseSalary int64
}

// CreateWorker registers a worker
func (s *WorkerService) CreateWorker(ctx context.Context, input *CreateWorkerInput) (*entity.Worker, error) {
	if input.BaseSalary < 0 {
		return nil, apperror.NewFieldError("base_salary", "cannot be negative")
	}

	worker := &entity.Worker{
		OwnerID:    input.OwnerID,
		Name:       input.Name,
		Phone:      input.Phone,
		BaseSalary: input.BaseSalary,
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}

	s.hub.Notify(input.OwnerID, live.CollectionWorkers)
	return worker, nil
}

// GetWorker retrieves a worker with ledger and paid months
func (s *WorkerService) GetWorker(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperror.NewNotFoundError("Worker")
	}
	return worker, nil
}

// ListWorkers lists workers with pagination
func (s *WorkerService) ListWorkers(ctx context.Context, params *repository.WorkerFilterParams) (*pagination.PaginatedResult[entity.Worker], error) {
	workers, total, err := s.workerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(workers, pag), nil
}

// UpdateWorkerInput represents the update worker input
type UpdateWorkerInput struct {
	ID         uuid.UUID
	Name       *string
	Phone      *string
	BaseSalary *int64
}

// UpdateWorker patches a worker
func (s *WorkerService) UpdateWorker(ctx context.Context, input *UpdateWorkerInput) (*entity.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperror.NewNotFoundError("Worker")
	}

	if input.Name != nil {
		worker.Name = *input.Name
	}
	if input.Phone != nil {
		worker.Phone = input.Phone
	}
	if input.BaseSalary != nil {
		if *input.BaseSalary < 0 {
			return nil, apperror.NewFieldError("base_salary", "cannot be negative")
		}
		worker.BaseSalary = *input.BaseSalary
	}

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	s.hub.Notify(worker.OwnerID, live.CollectionWorkers)
	return worker, nil
}

// DeleteWorker removes a worker
func (s *WorkerService) DeleteWorker(ctx context.Context, id uuid.UUID) error {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if worker == nil {
		return apperror.NewNotFoundError("Worker")
	}

	if err := s.workerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Notify(worker.OwnerID, live.CollectionWorkers)
	return nil
}

// AddTransactionInput represents the add transaction input
type AddTransactionInput struct {
	WorkerID  uuid.UUID
	Type      enum.WorkerTransactionType
	Amount    int64
	Note      *string
	EntryDate time.Time
}

// AddTransaction appends a ledger entry to a worker
func (s *WorkerService) AddTransaction(ctx context.Context, input *AddTransactionInput) (*entity.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, input.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperror.NewNotFoundError("Worker")
	}

	if input.Amount <= 0 {
		return nil, apperror.NewFieldError("amount", "must be greater than zero")
	}

	entryDate := input.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}

	transaction := &entity.WorkerTransaction{
		WorkerID:  worker.ID,
		Type:      input.Type,
		Amount:    input.Amount,
		Note:      input.Note,
		EntryDate: entryDate,
	}
	if err := s.workerRepo.AddTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	worker.Transactions = append(worker.Transactions, *transaction)

	s.hub.Notify(worker.OwnerID, live.CollectionWorkers)
	return worker, nil
}

// PaySalaryInput represents the pay salary input
type PaySalaryInput struct {
	WorkerID uuid.UUID
	Year     int
	Month    int
	// Amount overrides the worker's base salary when set
	Amount *int64
}

// PaySalary records one month's salary as a ledger entry and marks the
// month paid. Paying the same month twice is rejected.
func (s *WorkerService) PaySalary(ctx context.Context, input *PaySalaryInput) (*entity.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, input.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperror.NewNotFoundError("Worker")
	}

	if input.Month < 1 || input.Month > 12 {
		return nil, apperror.NewFieldError("month", "must be between 1 and 12")
	}
	if worker.MonthPaid(input.Year, input.Month) {
		return nil, apperror.NewConflictError("Salary for this month is already recorded")
	}

	amount := worker.BaseSalary
	if input.Amount != nil {
		amount = *input.Amount
	}
	if amount <= 0 {
		return nil, apperror.NewFieldError("amount", "must be greater than zero")
	}

	transaction := &entity.WorkerTransaction{
		WorkerID:  worker.ID,
		Type:      enum.WorkerTransactionSalary,
		Amount:    amount,
		EntryDate: time.Now(),
	}
	month := &entity.WorkerPaidMonth{
		WorkerID: worker.ID,
		Year:     input.Year,
		Month:    input.Month,
	}

	if err := s.workerRepo.PaySalary(ctx, worker, transaction, month); err != nil {
		return nil, err
	}
	worker.Transactions = append(worker.Transactions, *transaction)
	worker.PaidMonths = append(worker.PaidMonths, *month)

	s.hub.Notify(worker.OwnerID, live.CollectionWorkers)
	return worker, nil
}

// ListAllWorkers returns the full owner-scoped worker set with ledgers
func (s *WorkerService) ListAllWorkers(ctx context.Context) ([]entity.Worker, error) {
	return s.workerRepo.ListAll(ctx)
}
