package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/enum"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/domain/reward"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// ExpenseService handles expense-related operations
type ExpenseService struct {
	expenseRepo   repository.ExpenseRepository
	rewardService *RewardService
	hub           *live.Hub
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, rewardService *RewardService, hub *live.Hub) *ExpenseService {
	return &ExpenseService{
		expenseRepo:   expenseRepo,
		rewardService: rewardService,
		hub:           hub,
	}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	OwnerID     uuid.UUID
	Type        enum.ExpenseType
	Category    string
	Item        string
	Amount      int64
	ExpenseDate time.Time
}

// CreateExpense records an expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewFieldError("amount", "must be greater than zero")
	}

	expense := &entity.Expense{
		OwnerID:     input.OwnerID,
		Type:        input.Type,
		Category:    input.Category,
		Item:        input.Item,
		Amount:      input.Amount,
		ExpenseDate: input.ExpenseDate,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.rewardService.AwardQuietly(ctx, input.OwnerID, reward.ActionFirstExpense)
	s.hub.Notify(input.OwnerID, live.CollectionExpenses)
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses lists expenses with filters and pagination
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	ID          uuid.UUID
	Type        *enum.ExpenseType
	Category    *string
	Item        *string
	Amount      *int64
	ExpenseDate *time.Time
}

// UpdateExpense patches an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Type != nil {
		expense.Type = *input.Type
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Item != nil {
		expense.Item = *input.Item
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewFieldError("amount", "must be greater than zero")
		}
		expense.Amount = *input.Amount
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	s.hub.Notify(expense.OwnerID, live.CollectionExpenses)
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Notify(expense.OwnerID, live.CollectionExpenses)
	return nil
}

// ListAllExpenses returns the full owner-scoped expense set
func (s *ExpenseService) ListAllExpenses(ctx context.Context) ([]entity.Expense, error) {
	return s.expenseRepo.ListAll(ctx)
}
