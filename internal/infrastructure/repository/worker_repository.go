package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	domainRepo "github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"gorm.io/gorm"
)

type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) domainRepo.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *workerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).
		Preload("Transactions").
		Preload("PaidMonths").
		First(&worker, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &worker, err
}

func (r *workerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

func (r *workerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).Delete(&entity.Worker{}, "id = ?", id).Error
}

func (r *workerRepository) List(ctx context.Context, params *domainRepo.WorkerFilterParams) ([]entity.Worker, int64, error) {
	var workers []entity.Worker
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Worker{}).Scopes(OwnerScope(ctx))

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Transactions").
		Preload("PaidMonths").
		Order("name ASC").
		Find(&workers).Error

	return workers, total, err
}

func (r *workerRepository) ListAll(ctx context.Context) ([]entity.Worker, error) {
	var workers []entity.Worker
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).
		Preload("Transactions").
		Order("name ASC").
		Find(&workers).Error
	return workers, err
}

func (r *workerRepository) AddTransaction(ctx context.Context, transaction *entity.WorkerTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

// PaySalary records the salary transaction and the paid-month marker in a
// single transaction. The unique index on (worker_id, year, month) rejects
// a month that is already settled, rolling back the salary entry with it;
// that rejection surfaces as the same conflict error the service returns
// when it sees the month up front, so a racing duplicate is not a 500.
func (r *workerRepository) PaySalary(ctx context.Context, worker *entity.Worker, transaction *entity.WorkerTransaction, month *entity.WorkerPaidMonth) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(month).Error; err != nil {
			return err
		}
		return tx.Create(transaction).Error
	})
	if isUniqueViolation(err) {
		return apperror.NewConflictError("Salary for this month is already recorded")
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
