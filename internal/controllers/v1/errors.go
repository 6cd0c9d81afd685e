package v1

import (
	"errors"
	"net/http"

	"github.com/spacerent/backend/internal/auth"
	"github.com/spacerent/backend/internal/insights"
	"github.com/spacerent/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no tenant matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrInvalidToken) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, insights.ErrDisabled) {
		return http.StatusServiceUnavailable
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Auth errors
var (
	errUserAlreadyRegistered = errors.New("this server already has an account, registration is closed")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types: .json")
)

// Document errors
var (
	errUnknownReportFormat = errors.New("the specified report format is unknown, use 'pdf' or 'xlsx'")
)
