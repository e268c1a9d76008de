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

type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository
func NewDebtRepository(db *gorm.DB) domainRepo.DebtRepository {
	return &debtRepository{db: db}
}

func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	return r.db.WithContext(ctx).Create(debt).Error
}

func (r *debtRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debt entity.Debt
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).
		Preload("Payments").
		First(&debt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &debt, err
}

func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	return r.db.WithContext(ctx).Save(debt).Error
}

func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).Delete(&entity.Debt{}, "id = ?", id).Error
}

func (r *debtRepository) List(ctx context.Context, params *domainRepo.DebtFilterParams) ([]entity.Debt, int64, error) {
	var debts []entity.Debt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Debt{}).Scopes(OwnerScope(ctx))

	if params.Search != "" {
		query = query.Where("creditor ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Payments").
		Order("created_at DESC").
		Find(&debts).Error

	return debts, total, err
}

func (r *debtRepository) ListAll(ctx context.Context) ([]entity.Debt, error) {
	var debts []entity.Debt
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).
		Preload("Payments").
		Order("created_at DESC").
		Find(&debts).Error
	return debts, err
}

// AddPayment appends the payment and persists the recomputed status in one
// transaction, so a crash never leaves a payment without its status update.
func (r *debtRepository) AddPayment(ctx context.Context, debt *entity.Debt, payment *entity.DebtPayment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Debt{}).
			Where("id = ?", debt.ID).
			Update("status", debt.Status).Error
	})
}

// Archive moves the debt and its payment history to the archive table as a
// single transaction (move semantics, no copy-then-delete window).
func (r *debtRepository) Archive(ctx context.Context, debt *entity.Debt) (*entity.ArchivedDebt, error) {
	archived := &entity.ArchivedDebt{
		ID:         debt.ID,
		OwnerID:    debt.OwnerID,
		Creditor:   debt.Creditor,
		Amount:     debt.Amount,
		DueDate:    debt.DueDate,
		Status:     debt.Status,
		Payments:   entity.PaymentsJSON(debt.Payments),
		ArchivedAt: time.Now(),
		CreatedAt:  debt.CreatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(archived).Error; err != nil {
			return err
		}
		if err := tx.Where("debt_id = ?", debt.ID).Delete(&entity.DebtPayment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Debt{}, "id = ?", debt.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return archived, nil
}

// Restore moves an archived debt back to the active table atomically
func (r *debtRepository) Restore(ctx context.Context, archived *entity.ArchivedDebt) (*entity.Debt, error) {
	debt := &entity.Debt{
		ID:        archived.ID,
		OwnerID:   archived.OwnerID,
		Creditor:  archived.Creditor,
		Amount:    archived.Amount,
		DueDate:   archived.DueDate,
		Status:    archived.Status,
		CreatedAt: archived.CreatedAt,
	}

	payments := make([]entity.DebtPayment, len(archived.Payments))
	copy(payments, archived.Payments)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(debt).Error; err != nil {
			return err
		}
		for i := range payments {
			payments[i].DebtID = debt.ID
			if err := tx.Create(&payments[i]).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&entity.ArchivedDebt{}, "id = ?", archived.ID).Error
	})
	if err != nil {
		return nil, err
	}
	debt.Payments = payments
	return debt, nil
}

func (r *debtRepository) GetArchivedByID(ctx context.Context, id uuid.UUID) (*entity.ArchivedDebt, error) {
	var archived entity.ArchivedDebt
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).First(&archived, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &archived, err
}

func (r *debtRepository) ListArchived(ctx context.Context, params *pagination.PaginationParams) ([]entity.ArchivedDebt, int64, error) {
	var archived []entity.ArchivedDebt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ArchivedDebt{}).Scopes(OwnerScope(ctx))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("archived_at DESC").
		Find(&archived).Error

	return archived, total, err
}

func (r *debtRepository) DeleteArchived(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).Delete(&entity.ArchivedDebt{}, "id = ?", id).Error
}
