package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// SaleFilterParams holds filters for listing sales
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Department string
	From       *time.Time
	To         *time.Time
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListAll returns every sale for the owner in context, newest first
	ListAll(ctx context.Context) ([]entity.Sale, error)
}
