package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Expense represents a fixed or variable farm expense
type Expense struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"owner_id"`
	Type        enum.ExpenseType `gorm:"default:0" json:"type"`
	Category    string           `gorm:"size:100;not null" json:"category"`
	Item        string           `gorm:"size:255;not null" json:"item"`
	Amount      int64            `gorm:"not null" json:"-"`
	ExpenseDate time.Time        `gorm:"type:date;not null" json:"expense_date"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// MarshalJSON converts minor units to decimal for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
