// Package documents renders printable files for payments and records.
package documents

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/notify"
)

// formatPHP renders an amount with thousands grouping. The built in PDF
// fonts cannot encode the peso sign, so the ISO code is used instead.
func formatPHP(amount decimal.Decimal) string {
	return "PHP " + notify.FormatAmount(amount)
}

// ReceiptNumber formats the printed receipt number for a payment.
func ReceiptNumber(paymentID uint64) string {
	return fmt.Sprintf("PAY-%05d", paymentID)
}

// Receipt renders an acknowledgement receipt for a payment as a PDF.
func Receipt(payment models.Payment, owner models.Owner) ([]byte, error) {
	businessName := owner.BusinessName
	if businessName == "" {
		businessName = "SpaceRent Management"
	}

	pdf := fpdf.New("L", "mm", "A5", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetDrawColor(200, 200, 200)
	pdf.Rect(5, 5, 200, 138, "D")

	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "", 18)
	pdf.SetXY(5, 15)
	pdf.CellFormat(200, 8, "ACKNOWLEDGEMENT RECEIPT", "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(5, 24)
	pdf.CellFormat(200, 6, businessName, "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(5, 30)
	pdf.CellFormat(200, 4, owner.Address, "", 0, "C", false, 0, "")

	pdf.SetLineWidth(0.5)
	pdf.Line(15, 38, 195, 38)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(155, 48, "Receipt No: "+ReceiptNumber(payment.ID))
	pdf.Text(155, 53, "Date: "+payment.PaymentDate.String())

	pdf.SetFontSize(11)
	pdf.Text(15, 55, "RECEIVED FROM:")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(50, 55, payment.TenantName)
	pdf.Line(50, 56, 140, 56)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(15, 65, "THE SUM OF:")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(50, 65, formatPHP(payment.TotalAmount))
	pdf.Line(50, 66, 140, 66)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(15, 75, "FOR PAYMENT OF:")
	pdf.Text(50, 75, "Rental for Block "+payment.BlockID)
	pdf.Text(50, 80, fmt.Sprintf("Coverage: %s to %s", payment.CoverageStart, payment.CoverageEnd))

	pdf.Text(15, 90, "PAYMENT METHOD:")
	pdf.Text(50, 90, string(payment.PaymentMethod))

	if payment.Notes != "" {
		pdf.Text(15, 100, "REMARKS:")
		pdf.SetFontSize(9)
		pdf.SetXY(50, 97)
		pdf.MultiCell(100, 4, payment.Notes, "", "L", false)
	}

	pdf.Line(140, 120, 190, 120)
	pdf.SetFont("Helvetica", "", 9)
	signatory := owner.Proprietor
	if signatory == "" {
		signatory = "Authorized Representative"
	}
	pdf.SetXY(140, 122)
	pdf.CellFormat(50, 4, signatory, "", 0, "C", false, 0, "")
	pdf.SetXY(140, 127)
	pdf.CellFormat(50, 4, "Authorized Signature", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
