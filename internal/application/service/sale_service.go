package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/domain/reward"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// SaleService handles sale-related operations
type SaleService struct {
	saleRepo      repository.SaleRepository
	rewardService *RewardService
	hub           *live.Hub
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, rewardService *RewardService, hub *live.Hub) *SaleService {
	return &SaleService{
		saleRepo:      saleRepo,
		rewardService: rewardService,
		hub:           hub,
	}
}

// CreateSaleInput represents the create sale input. Money fields are minor
// units.
type CreateSaleInput struct {
	OwnerID    uuid.UUID
	Department string
	Product    string
	Quantity   int64
	UnitPrice  int64
	SaleDate   time.Time
	Note       *string
}

// CreateSale records a sale. Total is computed here, never trusted from the
// client. The first sale grants the trader badge.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewFieldError("quantity", "must be greater than zero")
	}
	if input.UnitPrice <= 0 {
		return nil, apperror.NewFieldError("unit_price", "must be greater than zero")
	}

	sale := &entity.Sale{
		OwnerID:    input.OwnerID,
		Department: input.Department,
		Product:    input.Product,
		Quantity:   input.Quantity,
		UnitPrice:  input.UnitPrice,
		Total:      input.Quantity * input.UnitPrice,
		SaleDate:   input.SaleDate,
		Note:       input.Note,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.rewardService.AwardQuietly(ctx, input.OwnerID, reward.ActionFirstSale)
	s.hub.Notify(input.OwnerID, live.CollectionSales)
	return sale, nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filters and pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// UpdateSaleInput represents the update sale input
type UpdateSaleInput struct {
	ID         uuid.UUID
	Department *string
	Product    *string
	Quantity   *int64
	UnitPrice  *int64
	SaleDate   *time.Time
	Note       *string
}

// UpdateSale patches a sale and recomputes its total
func (s *SaleService) UpdateSale(ctx context.Context, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	if input.Department != nil {
		sale.Department = *input.Department
	}
	if input.Product != nil {
		sale.Product = *input.Product
	}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, apperror.NewFieldError("quantity", "must be greater than zero")
		}
		sale.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice <= 0 {
			return nil, apperror.NewFieldError("unit_price", "must be greater than zero")
		}
		sale.UnitPrice = *input.UnitPrice
	}
	if input.SaleDate != nil {
		sale.SaleDate = *input.SaleDate
	}
	if input.Note != nil {
		sale.Note = input.Note
	}
	sale.Total = sale.Quantity * sale.UnitPrice

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	s.hub.Notify(sale.OwnerID, live.CollectionSales)
	return sale, nil
}

// DeleteSale deletes a sale
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	if err := s.saleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Notify(sale.OwnerID, live.CollectionSales)
	return nil
}

// ListAllSales returns the full owner-scoped sale set for feeds and
// aggregation
func (s *SaleService) ListAllSales(ctx context.Context) ([]entity.Sale, error) {
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Failed to load sales snapshot: %v", err)
		return nil, err
	}
	return sales, nil
}
