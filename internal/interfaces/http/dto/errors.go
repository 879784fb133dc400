package dto

import (
	"errors"
	"net/http"

	"github.com/govprop/backend/internal/domain/shared"
)

// Transport-level error codes. Domain errors keep the code they were raised with.
const (
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeTokenExpired    = "TOKEN_EXPIRED"
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes that do not answer 400
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:                 http.StatusInternalServerError,
	ErrCodeUnauthorized:             http.StatusUnauthorized,
	ErrCodeTokenExpired:             http.StatusUnauthorized,
	ErrCodeRequestTooLarge:          http.StatusRequestEntityTooLarge,
	shared.CodeNotFound:             http.StatusNotFound,
	shared.CodeForbidden:            http.StatusForbidden,
	shared.CodeDirectoryUnavailable: http.StatusInternalServerError,
	shared.CodeConfigUnavailable:    http.StatusInternalServerError,
}

// GetHTTPStatus returns the status for an error code. Unlisted codes are caller errors.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}

// StatusFor maps any error to a status: domain errors by kind then code, everything else 500
func StatusFor(err error) int {
	var de *shared.DomainError
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	switch de.Kind {
	case shared.KindNotFound:
		return http.StatusNotFound
	case shared.KindInternal:
		return http.StatusInternalServerError
	}
	return GetHTTPStatus(de.Code)
}
