package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// WorkerFilterParams holds filters for listing workers
type WorkerFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}

// WorkerRepository defines the interface for worker data operations
type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	// GetByID loads a worker with transactions and paid months
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error)
	Update(ctx context.Context, worker *entity.Worker) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *WorkerFilterParams) ([]entity.Worker, int64, error)
	// ListAll returns every worker for the owner in context with transactions
	ListAll(ctx context.Context) ([]entity.Worker, error)

	AddTransaction(ctx context.Context, transaction *entity.WorkerTransaction) error
	// PaySalary records the salary transaction and marks the month paid in
	// one transaction; fails if the month is already marked
	PaySalary(ctx context.Context, worker *entity.Worker, transaction *entity.WorkerTransaction, month *entity.WorkerPaidMonth) error
}
