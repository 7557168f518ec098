package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes carried in the response envelope so callers can branch on the failure kind
const (
	CodeValidation        = "ValidationError"
	CodeNotFound          = "NotFound"
	CodeIllegalTransition = "IllegalTransition"
	CodeAlreadyConverted  = "AlreadyConverted"
	CodeInvalidConditions = "InvalidConditions"
	CodeUnknownEntity     = "UnknownEntity"
	CodeStore             = "StoreError"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// FieldError describes a single violated field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError represents one or more caller-supplied fields that violate a constraint
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field != "" {
			parts = append(parts, fmt.Sprintf("%s - %s", f.Field, f.Message))
		} else {
			parts = append(parts, f.Message)
		}
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Add appends a violated field
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Addf appends a violated field with a formatted message
func (e *ValidationError) Addf(field, format string, args ...interface{}) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any field was added
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns the error when fields were collected, nil otherwise
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// IllegalTransitionError is returned when a status change is not permitted from the current state
type IllegalTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal %s status transition from %q to %q", e.Entity, e.From, e.To)
}

// AlreadyConvertedError is returned when a converted proposal is converted or modified again
type AlreadyConvertedError struct {
	ProposalID uint
}

func (e *AlreadyConvertedError) Error() string {
	if e.ProposalID == 0 {
		return "proposal has already been converted to a project"
	}
	return fmt.Sprintf("proposal %d has already been converted to a project", e.ProposalID)
}

// InvalidConditionsError is returned when update/delete conditions do not address rows by primary key
type InvalidConditionsError struct {
	Table   string
	Message string
}

func (e *InvalidConditionsError) Error() string {
	return fmt.Sprintf("invalid conditions for %s: %s", e.Table, e.Message)
}

// UnknownEntityError is returned for table names absent from the schema registry
type UnknownEntityError struct {
	Table string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown entity %q", e.Table)
}

// StoreError wraps a backing-store failure with the operation that triggered it
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrClientNotFound          = &NotFoundError{Entity: "client"}
	ErrClientTypeNotFound      = &NotFoundError{Entity: "client type"}
	ErrServiceNotFound         = &NotFoundError{Entity: "service"}
	ErrServiceCategoryNotFound = &NotFoundError{Entity: "service category"}
	ErrProposalNotFound        = &NotFoundError{Entity: "proposal"}
	ErrProposalServiceNotFound = &NotFoundError{Entity: "proposal line item"}
	ErrProjectNotFound         = &NotFoundError{Entity: "project"}
	ErrProjectServiceNotFound  = &NotFoundError{Entity: "project line item"}
	ErrRowNotFound             = &NotFoundError{Entity: "row"}
)

// Business Logic Errors
var (
	ErrProposalAlreadyConverted = &AlreadyConvertedError{}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsIllegalTransition checks if an error is an IllegalTransitionError
func IsIllegalTransition(err error) bool {
	var transitionErr *IllegalTransitionError
	return errors.As(err, &transitionErr)
}

// IsAlreadyConverted checks if an error is an AlreadyConvertedError
func IsAlreadyConverted(err error) bool {
	var convertedErr *AlreadyConvertedError
	return errors.As(err, &convertedErr)
}

// IsInvalidConditions checks if an error is an InvalidConditionsError
func IsInvalidConditions(err error) bool {
	var conditionsErr *InvalidConditionsError
	return errors.As(err, &conditionsErr)
}

// IsUnknownEntity checks if an error is an UnknownEntityError
func IsUnknownEntity(err error) bool {
	var unknownErr *UnknownEntityError
	return errors.As(err, &unknownErr)
}

// IsStore checks if an error is a StoreError
func IsStore(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// Code maps an error to the tag reported in the response envelope.
// Anything unclassified is reported as a store failure.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return CodeValidation
	case IsNotFound(err):
		return CodeNotFound
	case IsIllegalTransition(err):
		return CodeIllegalTransition
	case IsAlreadyConverted(err):
		return CodeAlreadyConverted
	case IsInvalidConditions(err):
		return CodeInvalidConditions
	case IsUnknownEntity(err):
		return CodeUnknownEntity
	default:
		return CodeStore
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError with a single field
func NewValidationError(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NewIllegalTransitionError creates a new IllegalTransitionError
func NewIllegalTransitionError(entity, from, to string) error {
	return &IllegalTransitionError{Entity: entity, From: from, To: to}
}

// NewMissingActorError reports an operation that must be attributed to a user but was not.
// Each call returns a fresh error so callers may add fields to it.
func NewMissingActorError() error {
	return NewValidationError("actor_user_id", "actor user id is required")
}

// NewAlreadyConvertedError creates a new AlreadyConvertedError for a proposal
func NewAlreadyConvertedError(proposalID uint) error {
	return &AlreadyConvertedError{ProposalID: proposalID}
}

// NewInvalidConditionsError creates a new InvalidConditionsError
func NewInvalidConditionsError(table, message string) error {
	return &InvalidConditionsError{Table: table, Message: message}
}

// NewUnknownEntityError creates a new UnknownEntityError
func NewUnknownEntityError(table string) error {
	return &UnknownEntityError{Table: table}
}

// NewStoreError wraps a store failure; nil in, nil out
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
