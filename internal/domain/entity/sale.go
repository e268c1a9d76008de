package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents a recorded sale of farm produce. Amounts are stored in
// minor units; Total is always recomputed server-side as quantity times
// unit price.
type Sale struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Department string         `gorm:"size:100;not null" json:"department"`
	Product    string         `gorm:"size:255;not null" json:"product"`
	Quantity   int64          `gorm:"not null" json:"quantity"`
	UnitPrice  int64          `gorm:"not null" json:"-"`
	Total      int64          `gorm:"not null" json:"-"`
	SaleDate   time.Time      `gorm:"type:date;not null" json:"sale_date"`
	Note       *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// MarshalJSON converts minor units to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(s),
		UnitPrice: float64(s.UnitPrice) / 100,
		Total:     float64(s.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
