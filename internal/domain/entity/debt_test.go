package entity

import (
	"testing"

	"github.com/mkulima/shamba-api/internal/domain/enum"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		paid   int64
		want   enum.DebtStatus
	}{
		{"nothing paid", 10000, 0, enum.DebtStatusUnpaid},
		{"partially paid", 10000, 2500, enum.DebtStatusPartiallyPaid},
		{"one cent paid", 10000, 1, enum.DebtStatusPartiallyPaid},
		{"one cent short", 10000, 9999, enum.DebtStatusPartiallyPaid},
		{"exactly paid", 10000, 10000, enum.DebtStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.amount, tt.paid); got != tt.want {
				t.Errorf("StatusFor(%d, %d) = %v, want %v", tt.amount, tt.paid, got, tt.want)
			}
		})
	}
}

func TestDebtPaidTotalAndRemaining(t *testing.T) {
	debt := &Debt{
		Amount: 50000,
		Payments: []DebtPayment{
			{Amount: 12000},
			{Amount: 8000},
			{Amount: 500},
		},
	}

	if got := debt.PaidTotal(); got != 20500 {
		t.Errorf("PaidTotal() = %d, want 20500", got)
	}
	if got := debt.Remaining(); got != 29500 {
		t.Errorf("Remaining() = %d, want 29500", got)
	}
}

func TestDebtRecomputeStatus(t *testing.T) {
	debt := &Debt{Amount: 30000}

	debt.RecomputeStatus()
	if debt.Status != enum.DebtStatusUnpaid {
		t.Fatalf("status with no payments = %v, want unpaid", debt.Status)
	}

	debt.Payments = append(debt.Payments, DebtPayment{Amount: 10000})
	debt.RecomputeStatus()
	if debt.Status != enum.DebtStatusPartiallyPaid {
		t.Fatalf("status after partial payment = %v, want partially_paid", debt.Status)
	}

	debt.Payments = append(debt.Payments, DebtPayment{Amount: 20000})
	debt.RecomputeStatus()
	if debt.Status != enum.DebtStatusPaid {
		t.Fatalf("status after full payment = %v, want paid", debt.Status)
	}
}
