package request

// CreateTopicRequest represents a topic creation request. Sent as
// multipart form data so an image can ride along.
type CreateTopicRequest struct {
	Title       string `form:"title" binding:"required,max=255"`
	Description string `form:"description"`
	IsPublic    bool   `form:"is_public"`
}

// UpdateTopicRequest represents a topic update request
type UpdateTopicRequest struct {
	Title       *string `form:"title" binding:"omitempty,max=255"`
	Description *string `form:"description"`
	IsPublic    *bool   `form:"is_public"`
}

// AddCommentRequest represents a topic comment request
type AddCommentRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

// CreateTaskRequest represents a task creation request
type CreateTaskRequest struct {
	Title    string  `json:"title" binding:"required,max=255"`
	TaskDate string  `json:"task_date" binding:"required"`
	Reminder *string `json:"reminder"`
}

// UpdateTaskRequest represents a task update request
type UpdateTaskRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=255"`
	TaskDate      *string `json:"task_date"`
	Reminder      *string `json:"reminder"`
	ClearReminder bool    `json:"clear_reminder"`
}

// UpdateSettingsRequest represents a settings update request
type UpdateSettingsRequest struct {
	CurrencyCode *string `json:"currency_code" binding:"omitempty,len=3"`
	Language     *string `json:"language" binding:"omitempty,max=10"`
	ReminderHour *int    `json:"reminder_hour" binding:"omitempty,min=0,max=23"`
}
