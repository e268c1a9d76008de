package entity

import (
	"testing"

	"github.com/mkulima/shamba-api/internal/domain/enum"
)

func TestWorkerBalance(t *testing.T) {
	worker := &Worker{
		Transactions: []WorkerTransaction{
			{Type: enum.WorkerTransactionBonus, Amount: 5000},
			{Type: enum.WorkerTransactionDeduction, Amount: 1500},
			{Type: enum.WorkerTransactionSalary, Amount: 30000},
			{Type: enum.WorkerTransactionBonus, Amount: 2000},
		},
	}

	// 5000 - 1500 - 30000 + 2000
	if got := worker.Balance(); got != -24500 {
		t.Errorf("Balance() = %d, want -24500", got)
	}
}

func TestWorkerBalanceOrderIndependent(t *testing.T) {
	entries := []WorkerTransaction{
		{Type: enum.WorkerTransactionBonus, Amount: 10000},
		{Type: enum.WorkerTransactionSalary, Amount: 40000},
		{Type: enum.WorkerTransactionDeduction, Amount: 2500},
	}

	forward := &Worker{Transactions: entries}
	reversed := &Worker{Transactions: []WorkerTransaction{entries[2], entries[1], entries[0]}}

	if forward.Balance() != reversed.Balance() {
		t.Errorf("balance depends on entry order: %d vs %d", forward.Balance(), reversed.Balance())
	}
}

func TestWorkerBalanceEmpty(t *testing.T) {
	worker := &Worker{}
	if got := worker.Balance(); got != 0 {
		t.Errorf("Balance() with no transactions = %d, want 0", got)
	}
}

func TestWorkerMonthPaid(t *testing.T) {
	worker := &Worker{
		PaidMonths: []WorkerPaidMonth{
			{Year: 2026, Month: 1},
			{Year: 2026, Month: 3},
		},
	}

	if !worker.MonthPaid(2026, 1) {
		t.Error("January 2026 should be paid")
	}
	if worker.MonthPaid(2026, 2) {
		t.Error("February 2026 should not be paid")
	}
	if worker.MonthPaid(2025, 1) {
		t.Error("January 2025 should not be paid")
	}
}

func TestTransactionTypeSign(t *testing.T) {
	if enum.WorkerTransactionBonus.Sign() != 1 {
		t.Error("bonus should add to the balance")
	}
	if enum.WorkerTransactionDeduction.Sign() != -1 {
		t.Error("deduction should subtract from the balance")
	}
	if enum.WorkerTransactionSalary.Sign() != -1 {
		t.Error("salary should subtract from the balance")
	}
}
