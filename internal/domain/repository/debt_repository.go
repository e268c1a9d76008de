package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/enum"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// DebtFilterParams holds filters for listing debts
type DebtFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.DebtStatus
}

// DebtRepository defines the interface for debt data operations
type DebtRepository interface {
	Create(ctx context.Context, debt *entity.Debt) error
	// GetByID loads a debt with its payments
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)
	Update(ctx context.Context, debt *entity.Debt) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *DebtFilterParams) ([]entity.Debt, int64, error)
	// ListAll returns every active debt for the owner in context with payments
	ListAll(ctx context.Context) ([]entity.Debt, error)

	// AddPayment appends a payment and persists the recomputed status in a
	// single transaction
	AddPayment(ctx context.Context, debt *entity.Debt, payment *entity.DebtPayment) error

	// Archive moves the debt and its payment history to the archive table
	// atomically
	Archive(ctx context.Context, debt *entity.Debt) (*entity.ArchivedDebt, error)
	// Restore moves an archived debt back to the active table atomically
	Restore(ctx context.Context, archived *entity.ArchivedDebt) (*entity.Debt, error)
	GetArchivedByID(ctx context.Context, id uuid.UUID) (*entity.ArchivedDebt, error)
	ListArchived(ctx context.Context, params *pagination.PaginationParams) ([]entity.ArchivedDebt, int64, error)
	// DeleteArchived permanently removes an archived debt
	DeleteArchived(ctx context.Context, id uuid.UUID) error
}
