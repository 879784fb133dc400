package shared

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for the request boundary
type ErrorKind int

const (
	// KindBadRequest marks a violated precondition caused by caller input
	KindBadRequest ErrorKind = iota
	// KindNotFound marks a missing or soft-deleted resource
	KindNotFound
	// KindInternal marks a collaborator failure not attributable to the caller
	KindInternal
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInternal:
		return "InternalServerError"
	default:
		return "BadRequest"
	}
}

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind `json:"-"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code, so errors.Is(err, ErrNotFound)
// holds for every not-found error regardless of its message.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new bad-request domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Kind:    KindBadRequest,
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a not-found domain error
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternalError wraps a collaborator failure
func NewInternalError(code, message string, cause error) *DomainError {
	return &DomainError{
		Kind:    KindInternal,
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// KindOf reports the kind of err. Errors that are not domain errors are internal.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// Error codes
const (
	CodeNotFound               = "NOT_FOUND"
	CodeAlreadyExists          = "ALREADY_EXISTS"
	CodeInvalidInput           = "INVALID_INPUT"
	CodeInvalidState           = "INVALID_STATE"
	CodeInsufficientStock      = "INSUFFICIENT_STOCK"
	CodeExceedsInitialQuantity = "EXCEEDS_INITIAL_QUANTITY"
	CodeForbidden              = "FORBIDDEN"
	CodeDirectoryUnavailable   = "DIRECTORY_UNAVAILABLE"
	CodeConfigUnavailable      = "CONFIG_UNAVAILABLE"
)

// Common domain errors
var (
	ErrNotFound          = &DomainError{Kind: KindNotFound, Code: CodeNotFound, Message: "Resource not found"}
	ErrAlreadyExists     = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput      = NewDomainError(CodeInvalidInput, "Invalid input")
	ErrInvalidState      = NewDomainError(CodeInvalidState, "Invalid state transition")
	ErrInsufficientStock = NewDomainError(CodeInsufficientStock, "Insufficient stock")
	ErrForbidden         = NewDomainError(CodeForbidden, "Operation not permitted for this office or role")
)
