package service

import (
	"testing"
	"time"

	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/enum"
)

func TestTotalIncome(t *testing.T) {
	sales := []entity.Sale{
		{Total: 10000000},
		{Total: 5050000},
		{Total: 2525000},
	}

	if got := TotalIncome(sales); got != 17575000 {
		t.Errorf("TotalIncome() = %d, want 17575000", got)
	}
}

func TestTotalIncomeEmpty(t *testing.T) {
	if got := TotalIncome(nil); got != 0 {
		t.Errorf("TotalIncome(nil) = %d, want 0", got)
	}
}

func TestTotalExpenditureIncludesSalaries(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 3000000},
	}
	workers := []entity.Worker{
		{Transactions: []entity.WorkerTransaction{
			{Type: enum.WorkerTransactionSalary, Amount: 1075000},
			// Bonuses and deductions adjust the worker balance, not the budget
			{Type: enum.WorkerTransactionBonus, Amount: 500000},
			{Type: enum.WorkerTransactionDeduction, Amount: 200000},
		}},
	}

	if got := TotalExpenditure(expenses, workers); got != 4075000 {
		t.Errorf("TotalExpenditure() = %d, want 4075000", got)
	}
}

func TestNetProfitExact(t *testing.T) {
	income := TotalIncome([]entity.Sale{
		{Total: 10000000},
		{Total: 5050000},
		{Total: 2525000},
	})
	expenditure := TotalExpenditure([]entity.Expense{
		{Amount: 3000000},
		{Amount: 1075000},
	}, nil)

	if got := NetProfit(income, expenditure); got != 13500000 {
		t.Errorf("NetProfit() = %d, want 13500000", got)
	}
}

func TestNetProfitOrderIndependent(t *testing.T) {
	sales := []entity.Sale{{Total: 123}, {Total: 45678}, {Total: 9999901}}
	expenses := []entity.Expense{{Amount: 777}, {Amount: 3333}, {Amount: 101010}}

	permute := func(s []entity.Sale, e []entity.Expense) int64 {
		return NetProfit(TotalIncome(s), TotalExpenditure(e, nil))
	}

	base := permute(sales, expenses)
	reorderedSales := []entity.Sale{sales[2], sales[0], sales[1]}
	reorderedExpenses := []entity.Expense{expenses[1], expenses[2], expenses[0]}

	if got := permute(reorderedSales, reorderedExpenses); got != base {
		t.Errorf("net profit depends on input order: %d vs %d", got, base)
	}
}

func TestNetProfitNegative(t *testing.T) {
	if got := NetProfit(100, 250); got != -150 {
		t.Errorf("NetProfit(100, 250) = %d, want -150", got)
	}
}

func TestMonthlyBreakdown(t *testing.T) {
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	sales := []entity.Sale{
		{Total: 100000, SaleDate: jan},
		{Total: 50000, SaleDate: jan},
		{Total: 25000, SaleDate: feb},
	}
	expenses := []entity.Expense{
		{Amount: 30000, ExpenseDate: feb},
	}
	workers := []entity.Worker{
		{Transactions: []entity.WorkerTransaction{
			{Type: enum.WorkerTransactionSalary, Amount: 40000, EntryDate: jan},
		}},
	}

	months := monthlyBreakdown(sales, expenses, workers)
	if len(months) != 2 {
		t.Fatalf("got %d months, want 2", len(months))
	}

	if months[0].Year != 2026 || months[0].Month != 1 {
		t.Fatalf("first month = %d-%d, want 2026-1", months[0].Year, months[0].Month)
	}
	if months[0].Income != 1500 || months[0].Expenditure != 400 || months[0].Net != 1100 {
		t.Errorf("January figures = %+v", months[0])
	}
	if months[1].Income != 250 || months[1].Expenditure != 300 || months[1].Net != -50 {
		t.Errorf("February figures = %+v", months[1])
	}
}

func TestOutstandingDebt(t *testing.T) {
	debts := []entity.Debt{
		{Amount: 50000, Payments: []entity.DebtPayment{{Amount: 20000}}},
		{Amount: 30000},
		{Amount: 10000, Payments: []entity.DebtPayment{{Amount: 10000}}},
	}

	// 30000 + 30000 + 0
	if got := OutstandingDebt(debts); got != 60000 {
		t.Errorf("OutstandingDebt() = %d, want 60000", got)
	}
}
