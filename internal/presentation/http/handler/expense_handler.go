package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/application/service"
	"github.com/mkulima/shamba-api/internal/domain/enum"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/request"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles listing expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	params := &repository.ExpenseFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		From:       dateQuery(c, "from"),
		To:         dateQuery(c, "to"),
	}
	switch c.Query("type") {
	case "fixed":
		t := enum.ExpenseTypeFixed
		params.Type = &t
	case "variable":
		t := enum.ExpenseTypeVariable
		params.Type = &t
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Create handles recording an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	amount, ok := parseMoney(c, "amount", req.Amount)
	if !ok {
		return
	}
	expenseDate, ok := parseDate(c, "expense_date", req.ExpenseDate)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		OwnerID:     *userID,
		Type:        req.Type,
		Category:    req.Category,
		Item:        req.Item,
		Amount:      amount,
		ExpenseDate: expenseDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// Get handles retrieving a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Update handles patching an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateExpenseInput{
		ID:       id,
		Type:     req.Type,
		Category: req.Category,
		Item:     req.Item,
	}
	if req.Amount != nil {
		amount, ok := parseMoney(c, "amount", *req.Amount)
		if !ok {
			return
		}
		input.Amount = &amount
	}
	if req.ExpenseDate != nil {
		expenseDate, ok := parseDate(c, "expense_date", *req.ExpenseDate)
		if !ok {
			return
		}
		input.ExpenseDate = &expenseDate
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles removing an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
