package request

import (
	"github.com/mkulima/shamba-api/internal/domain/enum"
)

// Money amounts arrive as decimal strings ("1200.50") so no float ever
// touches a stored figure.

// CreateSaleRequest represents a sale creation request
type CreateSaleRequest struct {
	Department string  `json:"department" binding:"required,max=100"`
	Product    string  `json:"product" binding:"required,max=255"`
	Quantity   int64   `json:"quantity" binding:"required,min=1"`
	UnitPrice  string  `json:"unit_price" binding:"required"`
	SaleDate   string  `json:"sale_date" binding:"required"`
	Note       *string `json:"note"`
}

// UpdateSaleRequest represents a sale update request
type UpdateSaleRequest struct {
	Department *string `json:"department" binding:"omitempty,max=100"`
	Product    *string `json:"product" binding:"omitempty,max=255"`
	Quantity   *int64  `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice  *string `json:"unit_price"`
	SaleDate   *string `json:"sale_date"`
	Note       *string `json:"note"`
}

// CreateExpenseRequest represents an expense creation request
type CreateExpenseRequest struct {
	Type        enum.ExpenseType `json:"type"`
	Category    string           `json:"category" binding:"required,max=100"`
	Item        string           `json:"item" binding:"required,max=255"`
	Amount      string           `json:"amount" binding:"required"`
	ExpenseDate string           `json:"expense_date" binding:"required"`
}

// UpdateExpenseRequest represents an expense update request
type UpdateExpenseRequest struct {
	Type        *enum.ExpenseType `json:"type"`
	Category    *string           `json:"category" binding:"omitempty,max=100"`
	Item        *string           `json:"item" binding:"omitempty,max=255"`
	Amount      *string           `json:"amount"`
	ExpenseDate *string           `json:"expense_date"`
}

// CreateDebtRequest represents a debt creation request
type CreateDebtRequest struct {
	Creditor string  `json:"creditor" binding:"required,max=255"`
	Amount   string  `json:"amount" binding:"required"`
	DueDate  *string `json:"due_date"`
}

// UpdateDebtRequest represents a debt update request
type UpdateDebtRequest struct {
	Creditor *string `json:"creditor" binding:"omitempty,max=255"`
	Amount   *string `json:"amount"`
	DueDate  *string `json:"due_date"`
}

// AddDebtPaymentRequest represents a debt payment request
type AddDebtPaymentRequest struct {
	Amount string  `json:"amount" binding:"required"`
	Note   *string `json:"note"`
}

// CreateWorkerRequest represents a worker creation request
type CreateWorkerRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	BaseSalary string  `json:"base_salary" binding:"required"`
}

// UpdateWorkerRequest represents a worker update request
type UpdateWorkerRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=255"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	BaseSalary *string `json:"base_salary"`
}

// AddWorkerTransactionRequest represents a worker ledger entry request
type AddWorkerTransactionRequest struct {
	Type      enum.WorkerTransactionType `json:"type"`
	Amount    string                     `json:"amount" binding:"required"`
	Note      *string                    `json:"note"`
	EntryDate *string                    `json:"entry_date"`
}

// PaySalaryRequest represents a salary payment request
type PaySalaryRequest struct {
	Year   int     `json:"year" binding:"required,min=2000,max=2200"`
	Month  int     `json:"month" binding:"required,min=1,max=12"`
	Amount *string `json:"amount"`
}
