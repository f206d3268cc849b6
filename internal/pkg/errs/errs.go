package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every structured error
// below unwraps to exactly one of these.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsRequired     = errors.New("value is required")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrStateConflict       = errors.New("state conflict")
	ErrConcurrencyConflict = errors.New("concurrent modification")
	ErrVerificationFailed  = errors.New("external verification failed")
)

// sanitize strips newlines from values interpolated into error messages so a
// single log line cannot be split by attacker-controlled input.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError reports that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// NotAuthorizedError reports a role or ownership mismatch. The message stays
// deliberately terse: callers see that the action was refused, not why.
type NotAuthorizedError struct {
	Action string
	Cause  error
}

func NewNotAuthorizedError(action string) *NotAuthorizedError {
	return &NotAuthorizedError{Action: action}
}

func NewNotAuthorizedErrorWithCause(action string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{Action: action, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrNotAuthorized, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthorized, e.Action)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// StateConflictError reports an operation attempted against an object whose
// current state does not permit it, e.g. advancing a delivered order.
type StateConflictError struct {
	Current  string
	Required string
	Cause    error
}

func NewStateConflictError(current, required string) *StateConflictError {
	return &StateConflictError{Current: current, Required: required}
}

func NewStateConflictErrorWithCause(current, required string, cause error) *StateConflictError {
	return &StateConflictError{Current: current, Required: required, Cause: cause}
}

func (e *StateConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: current state is %s, required state is %s (cause: %s)",
			ErrStateConflict, sanitize(e.Current), e.Required, e.Cause)
	}
	return fmt.Sprintf("%s: current state is %s, required state is %s",
		ErrStateConflict, sanitize(e.Current), e.Required)
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// ConcurrencyConflictError reports that an optimistic version check failed:
// another writer modified the object between read and write.
type ConcurrencyConflictError struct {
	ParamName string
	ID        any
}

func NewConcurrencyConflictError(paramName string, id any) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id}
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("%s: param is: %s, ID is: %s", ErrConcurrencyConflict, e.ParamName, sanitize(e.ID))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// VerificationFailedError reports that an external collaborator could not
// confirm a claim, e.g. the payment gateway disagreed with a callback payload.
type VerificationFailedError struct {
	Reference string
	Cause     error
}

func NewVerificationFailedError(reference string) *VerificationFailedError {
	return &VerificationFailedError{Reference: reference}
}

func NewVerificationFailedErrorWithCause(reference string, cause error) *VerificationFailedError {
	return &VerificationFailedError{Reference: reference, Cause: cause}
}

func (e *VerificationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVerificationFailed, sanitize(e.Reference), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVerificationFailed, sanitize(e.Reference))
}

func (e *VerificationFailedError) Unwrap() error {
	return ErrVerificationFailed
}
