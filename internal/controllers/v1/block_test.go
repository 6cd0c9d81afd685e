package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/spacerent/backend/internal/controllers/v1"
	"github.com/spacerent/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestBlock(t *testing.T, editable v1.BlockEditable, expectedStatus ...int) v1.BlockResponse {
	if editable.BlockID == "" {
		editable.BlockID = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.BlockEditable{editable}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/blocks", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BlockCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BlockResponse{}
}

func (suite *TestSuiteStandard) TestBlocksCreate() {
	block := createTestBlock(suite.T(), v1.BlockEditable{
		BlockID:     "A-1",
		Description: "Corner stall",
		Rate:        decimal.NewFromInt(5000),
	})

	assert.Equal(suite.T(), "A-1", block.Data.BlockID)
	assert.Contains(suite.T(), block.Data.Links.Tenants, "tenants?block=A-1")
}

// TestBlocksDuplicateCode verifies that block codes are unique.
func (suite *TestSuiteStandard) TestBlocksDuplicateCode() {
	_ = createTestBlock(suite.T(), v1.BlockEditable{BlockID: "A-1"})
	_ = createTestBlock(suite.T(), v1.BlockEditable{BlockID: "A-1"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBlocksUpdate() {
	block := createTestBlock(suite.T(), v1.BlockEditable{Description: "Stall"})

	r := test.Request(suite.T(), http.MethodPatch, block.Data.Links.Self, map[string]any{
		"rate": "6000",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BlockResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.True(suite.T(), updated.Data.Rate.Equal(decimal.NewFromInt(6000)))
	assert.Equal(suite.T(), "Stall", updated.Data.Description, "Fields not in the request body must be unchanged")
}

func (suite *TestSuiteStandard) TestBlocksDelete() {
	block := createTestBlock(suite.T(), v1.BlockEditable{})

	r := test.Request(suite.T(), http.MethodDelete, block.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, block.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestBlocksSorted verifies that blocks are sorted by their code.
func (suite *TestSuiteStandard) TestBlocksSorted() {
	for _, id := range []string{"C-1", "A-1", "B-1"} {
		_ = createTestBlock(suite.T(), v1.BlockEditable{BlockID: id})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/blocks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BlockListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "A-1", response.Data[0].BlockID)
		assert.Equal(suite.T(), "B-1", response.Data[1].BlockID)
		assert.Equal(suite.T(), "C-1", response.Data[2].BlockID)
	}
}

func (suite *TestSuiteStandard) TestBlocksSearch() {
	_ = createTestBlock(suite.T(), v1.BlockEditable{BlockID: "A-1", Description: "Corner stall"})
	_ = createTestBlock(suite.T(), v1.BlockEditable{BlockID: "A-2", Description: "Warehouse"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/blocks?search=corner", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BlockListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 1) {
		assert.Equal(suite.T(), "A-1", response.Data[0].BlockID)
	}
}

func (suite *TestSuiteStandard) TestBlocksOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Block with this ID", "812", http.StatusNotFound},
		{"Not a valid ID", "NotANumber", http.StatusBadRequest},
		{"Block exists", fmt.Sprint(createTestBlock(suite.T(), v1.BlockEditable{}).Data.ID), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/blocks", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
