package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/application/service"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/request"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/response"
)

// TaskHandler handles task calendar HTTP requests
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles listing open tasks
func (h *TaskHandler) List(c *gin.Context) {
	params := &repository.TaskFilterParams{
		Pagination: pageParams(c),
		From:       dateQuery(c, "from"),
		To:         dateQuery(c, "to"),
	}

	result, err := h.taskService.ListTasks(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tasks retrieved successfully", result)
}

// Calendar handles the date-bucketed calendar view
func (h *TaskHandler) Calendar(c *gin.Context) {
	days, err := h.taskService.Calendar(c.Request.Context(), dateQuery(c, "from"), dateQuery(c, "to"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Calendar retrieved successfully", days)
}

// Create handles scheduling a task
func (h *TaskHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	taskDate, ok := parseDate(c, "task_date", req.TaskDate)
	if !ok {
		return
	}

	input := &service.CreateTaskInput{
		OwnerID:  *userID,
		Title:    req.Title,
		TaskDate: taskDate,
	}
	if req.Reminder != nil {
		reminder, ok := parseTimestamp(c, "reminder", *req.Reminder)
		if !ok {
			return
		}
		input.Reminder = &reminder
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Task scheduled successfully", task)
}

// Get handles retrieving a single task
func (h *TaskHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task retrieved successfully", task)
}

// Update handles patching a task
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	var req request.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateTaskInput{
		ID:            id,
		Title:         req.Title,
		ClearReminder: req.ClearReminder,
	}
	if req.TaskDate != nil {
		taskDate, ok := parseDate(c, "task_date", *req.TaskDate)
		if !ok {
			return
		}
		input.TaskDate = &taskDate
	}
	if req.Reminder != nil {
		reminder, ok := parseTimestamp(c, "reminder", *req.Reminder)
		if !ok {
			return
		}
		input.Reminder = &reminder
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task updated successfully", task)
}

// Delete handles removing an open task
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Complete handles moving a task to the archive
func (h *TaskHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	archived, err := h.taskService.CompleteTask(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task completed successfully", archived)
}

// ListArchived handles listing completed tasks
func (h *TaskHandler) ListArchived(c *gin.Context) {
	result, err := h.taskService.ListArchivedTasks(c.Request.Context(), pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Archived tasks retrieved successfully", result)
}
