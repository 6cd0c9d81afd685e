package v1_test

import (
	"net/http"

	v1 "github.com/spacerent/backend/internal/controllers/v1"
	"github.com/spacerent/backend/internal/insights"
	"github.com/spacerent/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsightsDisabled verifies that a server without an API key
// rejects insight requests without breaking anything else.
func (suite *TestSuiteStandard) TestInsightsDisabled() {
	v1.SetInsightsService(insights.NewService(""))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)

	var response v1.InsightResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), insights.ErrDisabled.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestInsightsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}
