package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	v1 "github.com/spacerent/backend/internal/controllers/v1"
	"github.com/spacerent/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDocumentsReceipt() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{
		TenantName: "Ana Reyes",
		BaseRent:   decimal.NewFromInt(5000),
	})

	r := test.Request(suite.T(), http.MethodGet, payment.Data.Links.Receipt, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/pdf", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "Receipt_Ana_Reyes")
	assert.True(suite.T(), len(r.Body.Bytes()) > 1000, "PDF is suspiciously small: %d bytes", len(r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestDocumentsReceiptErrors() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Nonexistent payment", "912", http.StatusNotFound},
		{"Invalid ID", "NotANumber", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/documents/receipt/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDocumentsReport() {
	_ = createTestPayment(suite.T(), v1.PaymentEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name        string
		query       string
		contentType string
	}{
		{"Default is PDF", "", "application/pdf"},
		{"Explicit PDF", "format=pdf", "application/pdf"},
		{"Excel workbook", "format=xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"Payments only", "kind=payment", "application/pdf"},
		{"Date range", "fromDate=2024-01-01&untilDate=2024-12-31", "application/pdf"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/documents/report?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			assert.Equal(t, tt.contentType, r.Header().Get("Content-Type"))
			assert.NotEmpty(t, r.Body.Bytes())
		})
	}
}

func (suite *TestSuiteStandard) TestDocumentsReportUnknownFormat() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/documents/report?format=docx", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
