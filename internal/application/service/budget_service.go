package service

import (
	"context"
	"sort"
	"time"

	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/enum"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/pkg/money"
)

// BudgetService derives financial summaries from the owner's records.
// All figures are folds over the stored data in integer cents; nothing
// here is persisted.
type BudgetService struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	debtRepo    repository.DebtRepository
	workerRepo  repository.WorkerRepository
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	debtRepo repository.DebtRepository,
	workerRepo repository.WorkerRepository,
) *BudgetService {
	return &BudgetService{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		debtRepo:    debtRepo,
		workerRepo:  workerRepo,
	}
}

// TotalIncome sums sale totals in cents
func TotalIncome(sales []entity.Sale) int64 {
	var total int64
	for _, s := range sales {
		total += s.Total
	}
	return total
}

// TotalExpenditure sums expenses plus salary transactions in cents
func TotalExpenditure(expenses []entity.Expense, workers []entity.Worker) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	for _, w := range workers {
		for _, t := range w.Transactions {
			if t.Type == enum.WorkerTransactionSalary {
				total += t.Amount
			}
		}
	}
	return total
}

// NetProfit is income minus expenditure, exact in cents
func NetProfit(income, expenditure int64) int64 {
	return income - expenditure
}

// OutstandingDebt sums the unpaid remainder of active debts in cents
func OutstandingDebt(debts []entity.Debt) int64 {
	var total int64
	for _, d := range debts {
		total += d.Remaining()
	}
	return total
}

// MonthFigures holds one calendar month's income and expenditure
type MonthFigures struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Income      float64 `json:"income"`
	Expenditure float64 `json:"expenditure"`
	Net         float64 `json:"net"`

	incomeCents      int64
	expenditureCents int64
}

// Summary is the derived budget overview returned by the API
type Summary struct {
	TotalIncome      float64        `json:"total_income"`
	TotalExpenditure float64        `json:"total_expenditure"`
	NetProfit        float64        `json:"net_profit"`
	OutstandingDebt  float64        `json:"outstanding_debt"`
	Months           []MonthFigures `json:"months"`
}

// GetSummary folds the owner's records into the budget overview
func (s *BudgetService) GetSummary(ctx context.Context) (*Summary, error) {
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := s.debtRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	workers, err := s.workerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	income := TotalIncome(sales)
	expenditure := TotalExpenditure(expenses, workers)

	return &Summary{
		TotalIncome:      money.ToFloat(income),
		TotalExpenditure: money.ToFloat(expenditure),
		NetProfit:        money.ToFloat(NetProfit(income, expenditure)),
		OutstandingDebt:  money.ToFloat(OutstandingDebt(debts)),
		Months:           monthlyBreakdown(sales, expenses, workers),
	}, nil
}

type monthKey struct {
	year  int
	month int
}

func keyFor(t time.Time) monthKey {
	return monthKey{year: t.Year(), month: int(t.Month())}
}

func monthlyBreakdown(sales []entity.Sale, expenses []entity.Expense, workers []entity.Worker) []MonthFigures {
	byMonth := make(map[monthKey]*MonthFigures)
	get := func(k monthKey) *MonthFigures {
		if m, ok := byMonth[k]; ok {
			return m
		}
		m := &MonthFigures{Year: k.year, Month: k.month}
		byMonth[k] = m
		return m
	}

	for _, s := range sales {
		get(keyFor(s.SaleDate)).incomeCents += s.Total
	}
	for _, e := range expenses {
		get(keyFor(e.ExpenseDate)).expenditureCents += e.Amount
	}
	for _, w := range workers {
		for _, t := range w.Transactions {
			if t.Type == enum.WorkerTransactionSalary {
				get(keyFor(t.EntryDate)).expenditureCents += t.Amount
			}
		}
	}

	months := make([]MonthFigures, 0, len(byMonth))
	for _, m := range byMonth {
		m.Income = money.ToFloat(m.incomeCents)
		m.Expenditure = money.ToFloat(m.expenditureCents)
		m.Net = money.ToFloat(m.incomeCents - m.expenditureCents)
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year < months[j].Year
		}
		return months[i].Month < months[j].Month
	})
	return months
}
