package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkulima/shamba-api/internal/application/service"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/response"
)

// BudgetHandler handles budget summary and report HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
	reportService *service.ReportService
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService *service.BudgetService, reportService *service.ReportService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, reportService: reportService}
}

// Summary handles the derived budget overview
func (h *BudgetHandler) Summary(c *gin.Context) {
	summary, err := h.budgetService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Budget summary retrieved successfully", summary)
}

// Report streams the budget workbook as an xlsx download. Headers go out
// before the first body byte, so the filename is fixed up front.
func (h *BudgetHandler) Report(c *gin.Context) {
	name := "budget-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)

	if err := h.reportService.WriteBudgetWorkbook(c.Request.Context(), c.Writer); err != nil {
		response.Error(c, err)
		return
	}
}
