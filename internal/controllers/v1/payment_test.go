package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/spacerent/backend/internal/controllers/v1"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/types"
	"github.com/spacerent/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestPayment(t *testing.T, editable v1.PaymentEditable, expectedStatus ...int) v1.PaymentResponse {
	if editable.TenantName == "" {
		editable.TenantName = "Ana Reyes"
	}
	if editable.BlockID == "" {
		editable.BlockID = "A-1"
	}
	if editable.PaymentDate.IsZero() {
		editable.PaymentDate = types.NewDate(2024, time.May, 5)
	}
	if editable.BaseRent.IsZero() {
		editable.BaseRent = decimal.NewFromInt(5000)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.PaymentEditable{editable}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/payments", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.PaymentCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.PaymentResponse{}
}

// TestPaymentsTotal verifies that the total is computed on creation.
func (suite *TestSuiteStandard) TestPaymentsTotal() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{
		BaseRent:          decimal.NewFromInt(5000),
		AdditionalCharges: decimal.NewFromInt(150),
		Deductions:        decimal.NewFromInt(50),
	})

	assert.True(suite.T(), payment.Data.TotalAmount.Equal(decimal.NewFromInt(5100)), "Total is %s", payment.Data.TotalAmount)
}

// TestPaymentsDefaultMethod verifies that the payment method defaults to cash.
func (suite *TestSuiteStandard) TestPaymentsDefaultMethod() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{})

	assert.Equal(suite.T(), models.MethodCash, payment.Data.PaymentMethod)
}

func (suite *TestSuiteStandard) TestPaymentsInvalidMethod() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payments", []map[string]any{
		{
			"tenantName":    "Ana Reyes",
			"blockId":       "A-1",
			"paymentDate":   "2024-05-05",
			"baseRent":      "5000",
			"paymentMethod": "Barter",
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPaymentsLinks() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{})

	assert.Contains(suite.T(), payment.Data.Links.Self, fmt.Sprintf("/v1/payments/%d", payment.Data.ID))
	assert.Contains(suite.T(), payment.Data.Links.Receipt, fmt.Sprintf("/v1/documents/receipt/%d", payment.Data.ID))
}

// TestPaymentsUpdateRecomputesTotal verifies that a partial update keeps
// the derived total consistent.
func (suite *TestSuiteStandard) TestPaymentsUpdateRecomputesTotal() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{
		BaseRent:          decimal.NewFromInt(5000),
		AdditionalCharges: decimal.NewFromInt(200),
	})

	r := test.Request(suite.T(), http.MethodPatch, payment.Data.Links.Self, map[string]any{
		"deductions": "500",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.PaymentResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.True(suite.T(), updated.Data.TotalAmount.Equal(decimal.NewFromInt(4700)), "Total is %s", updated.Data.TotalAmount)
	assert.True(suite.T(), updated.Data.BaseRent.Equal(decimal.NewFromInt(5000)), "Fields not in the request body must be unchanged")
}

func (suite *TestSuiteStandard) TestPaymentsDelete() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{})

	r := test.Request(suite.T(), http.MethodDelete, payment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, payment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestPaymentsGetFiltered() {
	_ = createTestPayment(suite.T(), v1.PaymentEditable{
		TenantName:    "Ana Reyes",
		BlockID:       "A-1",
		PaymentDate:   types.NewDate(2024, time.April, 5),
		PaymentMethod: models.MethodGCash,
	})
	_ = createTestPayment(suite.T(), v1.PaymentEditable{
		TenantName:  "Ben Cruz",
		BlockID:     "A-2",
		PaymentDate: types.NewDate(2024, time.May, 5),
		Notes:       "Paid late",
	})
	_ = createTestPayment(suite.T(), v1.PaymentEditable{
		TenantName:  "Carla Diaz",
		BlockID:     "B-1",
		PaymentDate: types.NewDate(2024, time.June, 5),
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 3},
		{"Block glob", "block=A-*", 2},
		{"Method", "method=GCash", 1},
		{"From date", "fromDate=2024-05-01", 2},
		{"Until date", "untilDate=2024-05-31", 2},
		{"Date range", "fromDate=2024-05-01&untilDate=2024-05-31", 1},
		{"Search notes", "search=late", 1},
		{"Search tenant", "search=ana", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/payments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PaymentListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.count, len(response.Data), "Wrong number of payments for query %q", tt.query)
		})
	}
}

// TestPaymentsSorted verifies that payments are sorted newest first.
func (suite *TestSuiteStandard) TestPaymentsSorted() {
	_ = createTestPayment(suite.T(), v1.PaymentEditable{PaymentDate: types.NewDate(2024, time.January, 5)})
	_ = createTestPayment(suite.T(), v1.PaymentEditable{PaymentDate: types.NewDate(2024, time.March, 5)})
	_ = createTestPayment(suite.T(), v1.PaymentEditable{PaymentDate: types.NewDate(2024, time.February, 5)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payments", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaymentListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "2024-03-05", response.Data[0].PaymentDate.String())
		assert.Equal(suite.T(), "2024-02-05", response.Data[1].PaymentDate.String())
		assert.Equal(suite.T(), "2024-01-05", response.Data[2].PaymentDate.String())
	}
}

func (suite *TestSuiteStandard) TestPaymentsInvalidQueryDate() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payments?fromDate=NotADate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
