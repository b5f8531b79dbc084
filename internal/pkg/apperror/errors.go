package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrNetwork          = errors.New("network error")
	ErrActionNotAllowed = errors.New("action not allowed in the current booking state")
	ErrActionInFlight   = errors.New("another action is already in progress for this booking")
	ErrUnauthenticated  = errors.New("not logged in")
	ErrNotFound         = errors.New("not found")
)

// ValidationError collects field-level input problems caught before any network call
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError starts a validation error with one field
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add records a problem for a field, keeping the first message per field
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// OrNil returns nil when no field was recorded
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// BusinessError is an API-reported failure (success=false); Message is shown verbatim
type BusinessError struct {
	StatusCode int
	Message    string
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}

// CollaboratorError is a geocoding or routing failure
type CollaboratorError struct {
	Op  string
	Err error
}

// NetworkMessage is shown when the API could not be reached or answered garbage
const NetworkMessage = "Network error. Please try again."

// CollaboratorMessage is the single consolidated message shown for routing failures
const CollaboratorMessage = "Could not calculate the route. Please refine the pickup and drop locations."

func (e *CollaboratorError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, CollaboratorMessage)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsBusiness reports whether err is a BusinessError
func IsBusiness(err error) bool {
	var target *BusinessError
	return errors.As(err, &target)
}

// IsCollaborator reports whether err is a CollaboratorError
func IsCollaborator(err error) bool {
	var target *CollaboratorError
	return errors.As(err, &target)
}

// Message is the operator-facing text for err
func Message(err error) string {
	var (
		verr *ValidationError
		berr *BusinessError
		cerr *CollaboratorError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return verr.Error()
	case errors.As(err, &berr):
		return berr.Error()
	case errors.As(err, &cerr):
		return CollaboratorMessage
	case errors.Is(err, ErrNetwork):
		return NetworkMessage
	}
	return err.Error()
}

// StatusCode maps err onto the HTTP status the console answers with
func StatusCode(err error) int {
	var (
		verr *ValidationError
		berr *BusinessError
		cerr *CollaboratorError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &berr):
		if berr.StatusCode == http.StatusUnauthorized || berr.StatusCode == http.StatusForbidden || berr.StatusCode == http.StatusNotFound {
			return berr.StatusCode
		}
		return http.StatusUnprocessableEntity
	case errors.As(err, &cerr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrActionNotAllowed), errors.Is(err, ErrActionInFlight):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNetwork):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
