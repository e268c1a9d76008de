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

// DebtHandler handles debt-related HTTP requests
type DebtHandler struct {
	debtService *service.DebtService
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// List handles listing active debts
func (h *DebtHandler) List(c *gin.Context) {
	params := &repository.DebtFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
	}
	switch c.Query("status") {
	case "unpaid":
		s := enum.DebtStatusUnpaid
		params.Status = &s
	case "partially_paid":
		s := enum.DebtStatusPartiallyPaid
		params.Status = &s
	case "paid":
		s := enum.DebtStatusPaid
		params.Status = &s
	}

	result, err := h.debtService.ListDebts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Debts retrieved successfully", result)
}

// Create handles recording a debt
func (h *DebtHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	amount, ok := parseMoney(c, "amount", req.Amount)
	if !ok {
		return
	}

	input := &service.CreateDebtInput{
		OwnerID:  *userID,
		Creditor: req.Creditor,
		Amount:   amount,
	}
	if req.DueDate != nil {
		dueDate, ok := parseDate(c, "due_date", *req.DueDate)
		if !ok {
			return
		}
		input.DueDate = &dueDate
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Debt recorded successfully", debt)
}

// Get handles retrieving a single debt with its payments
func (h *DebtHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	debt, err := h.debtService.GetDebt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt retrieved successfully", debt)
}

// Update handles patching a debt
func (h *DebtHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	var req request.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateDebtInput{
		ID:       id,
		Creditor: req.Creditor,
	}
	if req.Amount != nil {
		amount, ok := parseMoney(c, "amount", *req.Amount)
		if !ok {
			return
		}
		input.Amount = &amount
	}
	if req.DueDate != nil {
		dueDate, ok := parseDate(c, "due_date", *req.DueDate)
		if !ok {
			return
		}
		input.DueDate = &dueDate
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt updated successfully", debt)
}

// AddPayment handles recording a payment against a debt
func (h *DebtHandler) AddPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	var req request.AddDebtPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	amount, ok := parseMoney(c, "amount", req.Amount)
	if !ok {
		return
	}

	debt, err := h.debtService.AddPayment(c.Request.Context(), &service.AddPaymentInput{
		DebtID: id,
		Amount: amount,
		Note:   req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", debt)
}

// Archive handles moving a debt to the archive
func (h *DebtHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	archived, err := h.debtService.ArchiveDebt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt archived successfully", archived)
}

// ListArchived handles listing archived debts
func (h *DebtHandler) ListArchived(c *gin.Context) {
	result, err := h.debtService.ListArchivedDebts(c.Request.Context(), pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Archived debts retrieved successfully", result)
}

// Restore handles moving an archived debt back to the active set
func (h *DebtHandler) Restore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	debt, err := h.debtService.RestoreDebt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt restored successfully", debt)
}

// DeleteArchived handles permanently deleting an archived debt
func (h *DebtHandler) DeleteArchived(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	if err := h.debtService.DeleteArchivedDebt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
