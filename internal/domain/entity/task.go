package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a scheduled farm task. Completing a task moves it to the archive
// table in a single transaction.
type Task struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	TaskDate     time.Time      `gorm:"type:date;not null" json:"task_date"`
	Reminder     *time.Time     `json:"reminder,omitempty"`
	ReminderSent bool           `gorm:"default:false" json:"reminder_sent"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new task
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Task model
func (Task) TableName() string {
	return "tasks"
}

// ArchivedTask is a completed task moved out of the active collection
type ArchivedTask struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	TaskDate    time.Time  `gorm:"type:date;not null" json:"task_date"`
	Reminder    *time.Time `json:"reminder,omitempty"`
	CompletedAt time.Time  `gorm:"not null" json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName returns the table name for the ArchivedTask model
func (ArchivedTask) TableName() string {
	return "archived_tasks"
}
