package documents

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/spacerent/backend/internal/report"
)

// SummaryOptions describe the filter window printed in the report header.
type SummaryOptions struct {
	BusinessName string
	Kind         string // "all", "payment" or "expense"
	FromDate     string
	UntilDate    string
	GeneratedAt  time.Time
}

// Summary renders the filtered transaction list as a tabular PDF report.
func Summary(transactions []report.Transaction, opts SummaryOptions) ([]byte, error) {
	if opts.BusinessName == "" {
		opts.BusinessName = "SpaceRent Management"
	}
	if opts.Kind == "" {
		opts.Kind = "all"
	}

	from := opts.FromDate
	if from == "" {
		from = "All Time"
	}
	until := opts.UntilDate
	if until == "" {
		until = "Present"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "", 20)
	pdf.Text(14, 22, opts.BusinessName)

	pdf.SetFontSize(10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(14, 30, "Financial Report: "+strings.ToUpper(opts.Kind))
	pdf.Text(14, 35, "Date Range: "+from+" to "+until)
	pdf.Text(14, 40, "Generated on: "+opts.GeneratedAt.Format("2006-01-02 15:04:05"))

	headers := []string{"Date", "Entity / Category", "Block", "Method", "Amount"}
	widths := []float64{25, 60, 25, 35, 37}

	pdf.SetY(50)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(79, 70, 229)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(40, 40, 40)
	for i, tx := range transactions {
		// Striped rows, matching the dashboard table.
		fill := i%2 == 1
		pdf.SetFillColor(241, 245, 249)

		block := "-"
		if tx.BlockID() != "" {
			block = "B-" + tx.BlockID()
		}

		method := "EXPENSE"
		if tx.Kind == report.KindPayment {
			method = string(tx.Payment.PaymentMethod)
		}

		pdf.CellFormat(widths[0], 6, tx.Date().String(), "", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[1], 6, tx.Label(), "", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[2], 6, block, "", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[3], 6, method, "", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[4], 6, formatPHP(tx.Amount()), "", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}

	income, expenses := report.Sums(transactions)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	y := pdf.GetY()
	pdf.Text(14, y+5, "Total Income: "+formatPHP(income))
	pdf.Text(14, y+10, "Total Expenses: "+formatPHP(expenses))
	pdf.Text(14, y+17, "Net Surplus: "+formatPHP(income.Sub(expenses)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
