package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReportService renders budget figures into downloadable workbooks
type ReportService struct {
	budget *BudgetService
}

// NewReportService creates a new report service
func NewReportService(budget *BudgetService) *ReportService {
	return &ReportService{budget: budget}
}

// WriteBudgetWorkbook writes the owner's budget summary as an xlsx
// workbook to w.
func (s *ReportService) WriteBudgetWorkbook(ctx context.Context, w io.Writer) error {
	summary, err := s.budget.GetSummary(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Budget Summary")
	f.SetCellValue(sheet, "A3", "Total Income")
	f.SetCellValue(sheet, "B3", summary.TotalIncome)
	f.SetCellValue(sheet, "A4", "Total Expenditure")
	f.SetCellValue(sheet, "B4", summary.TotalExpenditure)
	f.SetCellValue(sheet, "A5", "Net Profit")
	f.SetCellValue(sheet, "B5", summary.NetProfit)
	f.SetCellValue(sheet, "A6", "Outstanding Debt")
	f.SetCellValue(sheet, "B6", summary.OutstandingDebt)

	f.SetCellValue(sheet, "A8", "Month")
	f.SetCellValue(sheet, "B8", "Income")
	f.SetCellValue(sheet, "C8", "Expenditure")
	f.SetCellValue(sheet, "D8", "Net")
	row := 9
	for _, m := range summary.Months {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%04d-%02d", m.Year, m.Month))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Income)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.Expenditure)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), m.Net)
		row++
	}

	return f.Write(w)
}
