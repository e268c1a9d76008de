package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/reward"
	"gorm.io/gorm"
)

// Roles assignable to a user
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents an account. Points and badges form the reward profile;
// the level is always derived from points and never stored.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string         `gorm:"size:255;not null" json:"first_name"`
	LastName  string         `gorm:"size:255;not null" json:"last_name"`
	Email     string         `gorm:"size:255;unique;not null" json:"email"`
	Password  string         `gorm:"size:255" json:"-"`
	Photo     *string        `gorm:"size:255" json:"photo,omitempty"`
	Role      string         `gorm:"size:50;default:'member'" json:"role"`
	FarmName  *string        `gorm:"size:255" json:"farm_name,omitempty"`
	Points    int64          `gorm:"default:0" json:"points"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Badges   []UserBadge   `gorm:"foreignKey:UserID" json:"badges,omitempty"`
	Settings *UserSettings `gorm:"foreignKey:UserID" json:"settings,omitempty"`
}

// MarshalJSON adds the derived level to API responses
func (u User) MarshalJSON() ([]byte, error) {
	type Alias User
	return json.Marshal(&struct {
		Alias
		Level int64 `json:"level"`
	}{
		Alias: Alias(u),
		Level: reward.Level(u.Points),
	})
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasBadge reports whether the user already holds the named badge
func (u *User) HasBadge(badge string) bool {
	for _, b := range u.Badges {
		if b.Badge == badge {
			return true
		}
	}
	return false
}

// UserBadge records a one-time badge grant
type UserBadge struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_badge" json:"-"`
	Badge     string    `gorm:"size:100;not null;uniqueIndex:idx_user_badge" json:"badge"`
	AwardedAt time.Time `json:"awarded_at"`
}

// BeforeCreate generates a UUID before creating a new badge row
func (b *UserBadge) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.AwardedAt.IsZero() {
		b.AwardedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the UserBadge model
func (UserBadge) TableName() string {
	return "user_badges"
}

// UserSettings holds per-user preferences
type UserSettings struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	CurrencyCode string    `gorm:"size:10;default:'KES'" json:"currency_code"`
	Language     string    `gorm:"size:10;default:'en'" json:"language"`
	ReminderHour int       `gorm:"default:8" json:"reminder_hour"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultSettings returns the settings applied to a user before they
// save their own
func DefaultSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:       userID,
		CurrencyCode: "KES",
		Language:     "en",
		ReminderHour: 8,
	}
}

// BeforeCreate generates a UUID before creating settings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserSettings model
func (UserSettings) TableName() string {
	return "user_settings"
}
