package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Worker represents a farm worker. The balance is never stored; it is
// derived by folding the transaction ledger (bonus adds, deduction and
// salary subtract).
type Worker struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Phone      *string        `gorm:"size:50" json:"phone,omitempty"`
	BaseSalary int64          `gorm:"not null" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner        User                `gorm:"foreignKey:OwnerID" json:"-"`
	Transactions []WorkerTransaction `gorm:"foreignKey:WorkerID" json:"transactions,omitempty"`
	PaidMonths   []WorkerPaidMonth   `gorm:"foreignKey:WorkerID" json:"paid_months,omitempty"`
}

// MarshalJSON converts minor units to decimal and adds the derived balance
func (w Worker) MarshalJSON() ([]byte, error) {
	type Alias Worker
	return json.Marshal(&struct {
		Alias
		BaseSalary float64 `json:"base_salary"`
		Balance    float64 `json:"balance"`
	}{
		Alias:      Alias(w),
		BaseSalary: float64(w.BaseSalary) / 100,
		Balance:    float64(w.Balance()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new worker
func (w *Worker) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Worker model
func (Worker) TableName() string {
	return "workers"
}

// Balance folds the loaded transactions into the current balance
func (w *Worker) Balance() int64 {
	var balance int64
	for _, t := range w.Transactions {
		balance += t.Type.Sign() * t.Amount
	}
	return balance
}

// MonthPaid reports whether the salary for the given month is already
// recorded
func (w *Worker) MonthPaid(year, month int) bool {
	for _, m := range w.PaidMonths {
		if m.Year == year && m.Month == month {
			return true
		}
	}
	return false
}

// WorkerTransaction is one entry in a worker's ledger
type WorkerTransaction struct {
	ID        uuid.UUID                  `gorm:"type:uuid;primary_key" json:"id"`
	WorkerID  uuid.UUID                  `gorm:"type:uuid;not null;index" json:"worker_id"`
	Type      enum.WorkerTransactionType `gorm:"default:0" json:"type"`
	Amount    int64                      `gorm:"not null" json:"-"`
	Note      *string                    `gorm:"type:text" json:"note,omitempty"`
	EntryDate time.Time                  `gorm:"type:date;not null" json:"entry_date"`
	CreatedAt time.Time                  `json:"created_at"`
}

// MarshalJSON converts minor units to decimal for API responses
func (t WorkerTransaction) MarshalJSON() ([]byte, error) {
	type Alias WorkerTransaction
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(t),
		Amount: float64(t.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *WorkerTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WorkerTransaction model
func (WorkerTransaction) TableName() string {
	return "worker_transactions"
}

// WorkerPaidMonth marks a salary month as settled, unique per worker
type WorkerPaidMonth struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	WorkerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_worker_month" json:"-"`
	Year     int       `gorm:"not null;uniqueIndex:idx_worker_month" json:"year"`
	Month    int       `gorm:"not null;uniqueIndex:idx_worker_month" json:"month"`
	PaidAt   time.Time `json:"paid_at"`
}

// BeforeCreate generates a UUID before creating a new paid-month row
func (m *WorkerPaidMonth) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.PaidAt.IsZero() {
		m.PaidAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the WorkerPaidMonth model
func (WorkerPaidMonth) TableName() string {
	return "worker_paid_months"
}
