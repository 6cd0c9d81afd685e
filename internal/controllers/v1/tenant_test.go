package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/spacerent/backend/internal/controllers/v1"
	"github.com/spacerent/backend/internal/types"
	"github.com/spacerent/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestTenant(t *testing.T, editable v1.TenantEditable, expectedStatus ...int) v1.TenantResponse {
	if editable.Name == "" {
		editable.Name = "Ana Reyes"
	}
	if editable.BlockID == "" {
		editable.BlockID = "A-1"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TenantEditable{editable}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/tenants", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.TenantCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.TenantResponse{}
}

// TestTenantsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTenantsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTenant(t, v1.TenantEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/tenants", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestTenantsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTenantsOptions() {
	tests := []struct {
		name   string
		id     string // path at the tenants endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Tenant with this ID", "812", http.StatusNotFound},
		{"Not a valid ID", "NotANumber", http.StatusBadRequest},
		{"Tenant exists", fmt.Sprint(createTestTenant(suite.T(), v1.TenantEditable{}).Data.ID), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/tenants", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTenantsCreate() {
	created := createTestTenant(suite.T(), v1.TenantEditable{
		Name:        "Ben Cruz",
		BlockID:     "B-2",
		Phone:       "+639171112222",
		LeaseAmount: decimal.NewFromInt(4500),
		DueDay:      5,
	})

	assert.Equal(suite.T(), "Ben Cruz", created.Data.Name)
	assert.Equal(suite.T(), 5, created.Data.DueDay)
	assert.Contains(suite.T(), created.Data.Links.Self, fmt.Sprintf("/v1/tenants/%d", created.Data.ID))
	assert.Contains(suite.T(), created.Data.Links.Payments, "search=Ben+Cruz")
}

func (suite *TestSuiteStandard) TestTenantsCreateInvalidDueDay() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tenants", []v1.TenantEditable{
		{Name: "Broken", BlockID: "A-1", DueDay: 32},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTenantsGetSingle() {
	tenant := createTestTenant(suite.T(), v1.TenantEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Tenant", fmt.Sprint(tenant.Data.ID), http.StatusOK, http.MethodGet},
		{"GET Nonexistent Tenant", "912", http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "Willberforce", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID", "Willberforce", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID", "Willberforce", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/tenants/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTenantsUpdate() {
	tenant := createTestTenant(suite.T(), v1.TenantEditable{Name: "Carla Diaz", DueDay: 1})

	r := test.Request(suite.T(), http.MethodPatch, tenant.Data.Links.Self, map[string]any{
		"dueDay": 15,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TenantResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), 15, updated.Data.DueDay)
	assert.Equal(suite.T(), "Carla Diaz", updated.Data.Name, "Fields not in the request body must be unchanged")
}

func (suite *TestSuiteStandard) TestTenantsUpdateBrokenJSON() {
	tenant := createTestTenant(suite.T(), v1.TenantEditable{})

	r := test.Request(suite.T(), http.MethodPatch, tenant.Data.Links.Self, `{ "name": 2" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTenantsDelete() {
	tenant := createTestTenant(suite.T(), v1.TenantEditable{})

	r := test.Request(suite.T(), http.MethodDelete, tenant.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, tenant.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTenantsGetFiltered() {
	_ = createTestTenant(suite.T(), v1.TenantEditable{
		Name:    "Ana Reyes",
		BlockID: "A-1",
		Phone:   "+639170001111",
		DueDay:  5,
	})
	_ = createTestTenant(suite.T(), v1.TenantEditable{
		Name:    "Ben Cruz",
		BlockID: "A-2",
		Email:   "ben@example.com",
		DueDay:  5,
	})
	_ = createTestTenant(suite.T(), v1.TenantEditable{
		Name:    "Carla Diaz",
		BlockID: "B-1",
		DueDay:  10,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 3},
		{"Block glob", "block=A-*", 2},
		{"Block exact", "block=B-1", 1},
		{"Due day", "dueDay=5", 2},
		{"Search name", "search=carla", 1},
		{"Search email", "search=example.com", 1},
		{"Search no match", "search=zebra", 0},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/tenants?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TenantListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.count, len(response.Data), "Wrong number of tenants for query %q", tt.query)
		})
	}
}

// TestTenantsSorted verifies that tenants are sorted by name.
func (suite *TestSuiteStandard) TestTenantsSorted() {
	for _, name := range []string{"Zeno Uy", "Ana Reyes", "Mia Tan"} {
		_ = createTestTenant(suite.T(), v1.TenantEditable{Name: name})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/tenants", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TenantListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "Ana Reyes", response.Data[0].Name)
		assert.Equal(suite.T(), "Mia Tan", response.Data[1].Name)
		assert.Equal(suite.T(), "Zeno Uy", response.Data[2].Name)
	}
}

func (suite *TestSuiteStandard) TestTenantsPagination() {
	for i := range 10 {
		_ = createTestTenant(suite.T(), v1.TenantEditable{
			Name:          fmt.Sprintf("Tenant %02d", i),
			ContractStart: types.NewDate(2024, time.January, 1),
		})
	}

	tests := []struct {
		name   string
		query  string
		offset uint
		limit  int
		count  int
		total  int64
	}{
		{"All tenants", "", 0, 50, 10, 10},
		{"Second page", "offset=8&limit=4", 8, 4, 2, 10},
		{"Limit disables implicit default", "limit=3", 0, 3, 3, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/tenants?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TenantListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.count, len(response.Data))
			assert.Equal(t, tt.offset, response.Pagination.Offset)
			assert.Equal(t, tt.limit, response.Pagination.Limit)
			assert.Equal(t, tt.count, response.Pagination.Count)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}
