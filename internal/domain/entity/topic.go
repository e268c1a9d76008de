package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic is a community feed item. Public topics appear on the shared feed;
// private ones are visible to the owner only. Likes are incremented
// atomically so concurrent likes never lose updates.
type Topic struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	AuthorName  string         `gorm:"size:255;not null" json:"author_name"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    *string        `gorm:"size:512" json:"image_url,omitempty"`
	IsPublic    bool           `gorm:"default:false;index" json:"is_public"`
	Likes       int64          `gorm:"default:0" json:"likes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner    User           `gorm:"foreignKey:OwnerID" json:"-"`
	Comments []TopicComment `gorm:"foreignKey:TopicID" json:"comments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new topic
func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Topic model
func (Topic) TableName() string {
	return "topics"
}

// TopicComment is a comment left on a topic
type TopicComment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TopicID    uuid.UUID `gorm:"type:uuid;not null;index" json:"topic_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	AuthorName string    `gorm:"size:255;not null" json:"author_name"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new comment
func (c *TopicComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TopicComment model
func (TopicComment) TableName() string {
	return "topic_comments"
}
