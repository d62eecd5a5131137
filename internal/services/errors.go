package services

import (
	"errors"
	"fmt"
	"strings"

	"storefront-console/internal/models"
)

var (
	// ErrTransport matches every *TransportError via errors.Is
	ErrTransport = errors.New("directory transport failure")
	// ErrDomain matches every *DomainError via errors.Is
	ErrDomain = errors.New("directory rejected request")
	// ErrValidation matches every *ValidationError via errors.Is
	ErrValidation = errors.New("validation failed")
)

// ValidationError is a client-side rejection. The directory was not contacted.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransportError covers network failures and bodies that are not the JSON
// the endpoint promised. Its detail is logged, never shown.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DomainError carries a message the directory returned in its error field.
// The message is shown to the user verbatim.
type DomainError struct {
	Op      string
	Status  int
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func newTransportError(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

// outcomeOf classifies err for metrics and audit records.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return models.AuditOutcomeSuccess
	case errors.Is(err, ErrValidation):
		return models.AuditOutcomeValidationError
	case errors.Is(err, ErrDomain):
		return models.AuditOutcomeDomainError
	case errors.Is(err, ErrTransport):
		return models.AuditOutcomeTransportError
	default:
		return "error"
	}
}
