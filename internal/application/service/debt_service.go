package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// DebtService handles debt bookkeeping: payments, status derivation and
// archival
type DebtService struct {
	debtRepo repository.DebtRepository
	hub      *live.Hub
}

// NewDebtService creates a new debt service
func NewDebtService(debtRepo repository.DebtRepository, hub *live.Hub) *DebtService {
	return &DebtService{
		debtRepo: debtRepo,
		hub:      hub,
	}
}

// CreateDebtInput represents the create debt input
type CreateDebtInput struct {
	OwnerID  uuid.UUID
	Creditor string
	Amount   int64
	DueDate  *time.Time
}

// CreateDebt records a new, unpaid debt
func (s *DebtService) CreateDebt(ctx context.Context, input *CreateDebtInput) (*entity.Debt, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewFieldError("amount", "must be greater than zero")
	}

	debt := &entity.Debt{
		OwnerID:  input.OwnerID,
		Creditor: input.Creditor,
		Amount:   input.Amount,
		DueDate:  input.DueDate,
		Status:   entity.StatusFor(input.Amount, 0),
	}
	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	s.hub.Notify(input.OwnerID, live.CollectionDebts)
	return debt, nil
}

// GetDebt retrieves a debt with payments
func (s *DebtService) GetDebt(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	debt, err := s.debtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}
	return debt, nil
}

// ListDebts lists debts with filters and pagination
func (s *DebtService) ListDebts(ctx context.Context, params *repository.DebtFilterParams) (*pagination.PaginatedResult[entity.Debt], error) {
	debts, total, err := s.debtRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(debts, pag), nil
}

// UpdateDebtInput represents the update debt input
type UpdateDebtInput struct {
	ID       uuid.UUID
	Creditor *string
	Amount   *int64
	DueDate  *time.Time
}

// UpdateDebt patches a debt and re-derives its status against the existing
// payments
func (s *DebtService) UpdateDebt(ctx context.Context, input *UpdateDebtInput) (*entity.Debt, error) {
	debt, err := s.debtRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}

	if input.Creditor != nil {
		debt.Creditor = *input.Creditor
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewFieldError("amount", "must be greater than zero")
		}
		if *input.Amount < debt.PaidTotal() {
			return nil, apperror.NewFieldError("amount", "cannot be less than payments already recorded")
		}
		debt.Amount = *input.Amount
	}
	if input.DueDate != nil {
		debt.DueDate = input.DueDate
	}
	debt.RecomputeStatus()

	if err := s.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}

	s.hub.Notify(debt.OwnerID, live.CollectionDebts)
	return debt, nil
}

// AddPaymentInput represents the add payment input
type AddPaymentInput struct {
	DebtID uuid.UUID
	Amount int64
	Note   *string
}

// AddPayment appends a payment and recomputes the debt status. Payments
// must be positive and must not exceed the remaining balance.
func (s *DebtService) AddPayment(ctx context.Context, input *AddPaymentInput) (*entity.Debt, error) {
	debt, err := s.debtRepo.GetByID(ctx, input.DebtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}

	if input.Amount <= 0 {
		return nil, apperror.NewFieldError("amount", "must be greater than zero")
	}
	if remaining := debt.Remaining(); input.Amount > remaining {
		return nil, apperror.NewFieldError("amount", "exceeds the remaining balance")
	}

	payment := &entity.DebtPayment{
		DebtID: debt.ID,
		Amount: input.Amount,
		Note:   input.Note,
	}
	debt.Payments = append(debt.Payments, *payment)
	debt.RecomputeStatus()

	if err := s.debtRepo.AddPayment(ctx, debt, payment); err != nil {
		return nil, err
	}

	s.hub.Notify(debt.OwnerID, live.CollectionDebts)
	return debt, nil
}

// ArchiveDebt moves a debt to the archive atomically
func (s *DebtService) ArchiveDebt(ctx context.Context, id uuid.UUID) (*entity.ArchivedDebt, error) {
	debt, err := s.debtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Debt")
	}

	archived, err := s.debtRepo.Archive(ctx, debt)
	if err != nil {
		return nil, err
	}

	s.hub.Notify(debt.OwnerID, live.CollectionDebts)
	return archived, nil
}

// RestoreDebt moves an archived debt back to the active collection
func (s *DebtService) RestoreDebt(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	archived, err := s.debtRepo.GetArchivedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if archived == nil {
		return nil, apperror.NewNotFoundError("Archived debt")
	}

	debt, err := s.debtRepo.Restore(ctx, archived)
	if err != nil {
		return nil, err
	}

	s.hub.Notify(debt.OwnerID, live.CollectionDebts)
	return debt, nil
}

// ListArchivedDebts lists archived debts
func (s *DebtService) ListArchivedDebts(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ArchivedDebt], error) {
	archived, total, err := s.debtRepo.ListArchived(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(archived, pag), nil
}

// DeleteArchivedDebt permanently removes an archived debt
func (s *DebtService) DeleteArchivedDebt(ctx context.Context, id uuid.UUID) error {
	archived, err := s.debtRepo.GetArchivedByID(ctx, id)
	if err != nil {
		return err
	}
	if archived == nil {
		return apperror.NewNotFoundError("Archived debt")
	}

	return s.debtRepo.DeleteArchived(ctx, id)
}

// ListAllDebts returns the full owner-scoped active debt set
func (s *DebtService) ListAllDebts(ctx context.Context) ([]entity.Debt, error) {
	return s.debtRepo.ListAll(ctx)
}
