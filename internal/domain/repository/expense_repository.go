package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/enum"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// ExpenseFilterParams holds filters for listing expenses
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.ExpenseType
	Category   string
	From       *time.Time
	To         *time.Time
}

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
	// ListAll returns every expense for the owner in context, newest first
	ListAll(ctx context.Context) ([]entity.Expense, error)
}
