package documents

import (
	"bytes"
	"fmt"

	"github.com/spacerent/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// Excel renders payments and expenses as a two sheet workbook.
func Excel(payments []models.Payment, expenses []models.Expense) ([]byte, error) {
	f := excelize.NewFile()

	const paymentSheet = "Payments"
	if err := f.SetSheetName("Sheet1", paymentSheet); err != nil {
		return nil, err
	}

	headers := []string{"Receipt No", "Date", "Tenant", "Block", "Method", "Base Rent", "Additional", "Deductions", "Total", "Coverage Start", "Coverage End", "Notes"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(paymentSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, p := range payments {
		row := i + 2
		values := []any{
			ReceiptNumber(p.ID),
			p.PaymentDate.String(),
			p.TenantName,
			p.BlockID,
			string(p.PaymentMethod),
			p.BaseRent.InexactFloat64(),
			p.AdditionalCharges.InexactFloat64(),
			p.Deductions.InexactFloat64(),
			p.TotalAmount.InexactFloat64(),
			p.CoverageStart.String(),
			p.CoverageEnd.String(),
			p.Notes,
		}
		if err := setRow(f, paymentSheet, row, values); err != nil {
			return nil, err
		}
	}

	const expenseSheet = "Expenses"
	if _, err := f.NewSheet(expenseSheet); err != nil {
		return nil, err
	}

	expenseHeaders := []string{"Date", "Category", "Block", "Amount", "Notes"}
	for i, h := range expenseHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(expenseSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, e := range expenses {
		row := i + 2
		values := []any{
			e.Date.String(),
			e.Category,
			e.BlockID,
			e.Amount.InexactFloat64(),
			e.Notes,
		}
		if err := setRow(f, expenseSheet, row, values); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}

	return nil
}
