package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Debt represents money owed to a creditor. Status is derived from the sum
// of payments against the amount and recomputed on every payment.
type Debt struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Creditor  string          `gorm:"size:255;not null" json:"creditor"`
	Amount    int64           `gorm:"not null" json:"-"`
	DueDate   *time.Time      `gorm:"type:date" json:"due_date,omitempty"`
	Status    enum.DebtStatus `gorm:"default:0" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Owner    User          `gorm:"foreignKey:OwnerID" json:"-"`
	Payments []DebtPayment `gorm:"foreignKey:DebtID" json:"payments,omitempty"`
}

// MarshalJSON converts minor units to decimal for API responses
func (d Debt) MarshalJSON() ([]byte, error) {
	type Alias Debt
	return json.Marshal(&struct {
		Alias
		Amount    float64 `json:"amount"`
		Paid      float64 `json:"paid"`
		Remaining float64 `json:"remaining"`
	}{
		Alias:     Alias(d),
		Amount:    float64(d.Amount) / 100,
		Paid:      float64(d.PaidTotal()) / 100,
		Remaining: float64(d.Remaining()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new debt
func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Debt model
func (Debt) TableName() string {
	return "debts"
}

// PaidTotal sums all recorded payments
func (d *Debt) PaidTotal() int64 {
	var total int64
	for _, p := range d.Payments {
		total += p.Amount
	}
	return total
}

// Remaining returns the outstanding balance
func (d *Debt) Remaining() int64 {
	return d.Amount - d.PaidTotal()
}

// StatusFor derives a debt status from an amount and the cumulative paid
// total
func StatusFor(amount, paid int64) enum.DebtStatus {
	switch {
	case paid >= amount:
		return enum.DebtStatusPaid
	case paid > 0:
		return enum.DebtStatusPartiallyPaid
	default:
		return enum.DebtStatusUnpaid
	}
}

// RecomputeStatus re-derives Status from the loaded payments
func (d *Debt) RecomputeStatus() {
	d.Status = StatusFor(d.Amount, d.PaidTotal())
}

// DebtPayment records a single repayment against a debt
type DebtPayment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DebtID    uuid.UUID `gorm:"type:uuid;not null;index" json:"debt_id"`
	Amount    int64     `gorm:"not null" json:"-"`
	Note      *string   `gorm:"type:text" json:"note,omitempty"`
	PaidAt    time.Time `gorm:"not null" json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON converts minor units to decimal for API responses
func (p DebtPayment) MarshalJSON() ([]byte, error) {
	type Alias DebtPayment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *DebtPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the DebtPayment model
func (DebtPayment) TableName() string {
	return "debt_payments"
}

// ArchivedDebt is a debt moved out of the active collection. The move is a
// single transaction so a debt is never in both tables or neither.
type ArchivedDebt struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Creditor   string          `gorm:"size:255;not null" json:"creditor"`
	Amount     int64           `gorm:"not null" json:"-"`
	DueDate    *time.Time      `gorm:"type:date" json:"due_date,omitempty"`
	Status     enum.DebtStatus `gorm:"default:0" json:"status"`
	Payments   PaymentsJSON    `gorm:"type:jsonb" json:"payments,omitempty"`
	ArchivedAt time.Time       `gorm:"not null" json:"archived_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MarshalJSON converts minor units to decimal for API responses
func (d ArchivedDebt) MarshalJSON() ([]byte, error) {
	type Alias ArchivedDebt
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(d),
		Amount: float64(d.Amount) / 100,
	})
}

// TableName returns the table name for the ArchivedDebt model
func (ArchivedDebt) TableName() string {
	return "archived_debts"
}

// PaymentsJSON stores a payment history snapshot as a jsonb column on the
// archive row, so archived debts carry their history without child rows.
type PaymentsJSON []DebtPayment

// Value implements driver.Valuer
func (p PaymentsJSON) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]DebtPayment(p))
	return string(b), err
}

// Scan implements sql.Scanner
func (p *PaymentsJSON) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for payments column", value)
	}
	return json.Unmarshal(data, (*[]DebtPayment)(p))
}
