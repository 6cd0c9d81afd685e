package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/spacerent/backend/internal/controllers/v1"
	"github.com/spacerent/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTestUser(t *testing.T, username, password string) v1.SessionResponse {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", v1.Credentials{
		Username: username,
		Password: password,
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestAuthRegister() {
	response := registerTestUser(suite.T(), "owner", "correct horse battery staple")

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "owner", response.Data.Username)
	assert.NotEmpty(suite.T(), response.Data.Token)
}

// TestAuthRegisterOnce verifies that registration closes after the
// first account.
func (suite *TestSuiteStandard) TestAuthRegisterOnce() {
	_ = registerTestUser(suite.T(), "owner", "correct horse battery staple")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.Credentials{
		Username: "intruder",
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAuthRegisterMissingFields() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", map[string]string{
		"username": "owner",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAuthLogin() {
	_ = registerTestUser(suite.T(), "owner", "correct horse battery staple")

	tests := []struct {
		name     string
		username string
		password string
		status   int
	}{
		{"Correct credentials", "owner", "correct horse battery staple", http.StatusOK},
		{"Wrong password", "owner", "hunter2", http.StatusUnauthorized},
		{"Unknown username", "nobody", "correct horse battery staple", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{
				Username: tt.username,
				Password: tt.password,
			})
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.SessionResponse
				test.DecodeResponse(t, &r, &response)
				assert.NotEmpty(t, response.Data.Token)
			}
		})
	}
}

// TestAuthLoginSameError verifies that a wrong password and an unknown
// username are indistinguishable in the response.
func (suite *TestSuiteStandard) TestAuthLoginSameError() {
	_ = registerTestUser(suite.T(), "owner", "correct horse battery staple")

	wrongPassword := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{
		Username: "owner",
		Password: "hunter2",
	})
	unknownUser := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{
		Username: "nobody",
		Password: "hunter2",
	})

	assert.Equal(suite.T(), wrongPassword.Code, unknownUser.Code)
	assert.Equal(suite.T(), wrongPassword.Body.String(), unknownUser.Body.String())
}
