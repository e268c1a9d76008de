package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/application/service"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/request"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/response"
)

// WorkerHandler handles worker-related HTTP requests
type WorkerHandler struct {
	workerService *service.WorkerService
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerService *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

// List handles listing workers
func (h *WorkerHandler) List(c *gin.Context) {
	params := &repository.WorkerFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
	}

	result, err := h.workerService.ListWorkers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Workers retrieved successfully", result)
}

// Create handles registering a worker
func (h *WorkerHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	baseSalary, ok := parseMoney(c, "base_salary", req.BaseSalary)
	if !ok {
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), &service.CreateWorkerInput{
		OwnerID:    *userID,
		Name:       req.Name,
		Phone:      req.Phone,
		BaseSalary: baseSalary,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Worker registered successfully", worker)
}

// Get handles retrieving a worker with ledger and balance
func (h *WorkerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	worker, err := h.workerService.GetWorker(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Worker retrieved successfully", worker)
}

// Update handles patching a worker
func (h *WorkerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateWorkerInput{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	}
	if req.BaseSalary != nil {
		baseSalary, ok := parseMoney(c, "base_salary", *req.BaseSalary)
		if !ok {
			return
		}
		input.BaseSalary = &baseSalary
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Worker updated successfully", worker)
}

// Delete handles removing a worker
func (h *WorkerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	if err := h.workerService.DeleteWorker(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AddTransaction handles appending a bonus, deduction or salary entry
func (h *WorkerHandler) AddTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.AddWorkerTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	amount, ok := parseMoney(c, "amount", req.Amount)
	if !ok {
		return
	}

	input := &service.AddTransactionInput{
		WorkerID: id,
		Type:     req.Type,
		Amount:   amount,
		Note:     req.Note,
	}
	if req.EntryDate != nil {
		entryDate, ok := parseDate(c, "entry_date", *req.EntryDate)
		if !ok {
			return
		}
		input.EntryDate = entryDate
	}

	worker, err := h.workerService.AddTransaction(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction recorded successfully", worker)
}

// PaySalary handles paying one month's salary
func (h *WorkerHandler) PaySalary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.PaySalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.PaySalaryInput{
		WorkerID: id,
		Year:     req.Year,
		Month:    req.Month,
	}
	if req.Amount != nil {
		amount, ok := parseMoney(c, "amount", *req.Amount)
		if !ok {
			return
		}
		input.Amount = &amount
	}

	worker, err := h.workerService.PaySalary(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salary recorded successfully", worker)
}
