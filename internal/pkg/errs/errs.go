package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrConflict          = errors.New("conflict")
	ErrAccessDenied      = errors.New("access denied")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrPartialFailure    = errors.New("partial failure")
)

// sanitize keeps multi-line values on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// causeIs lets errors.Is see through to the cause while Unwrap keeps
// returning the category sentinel.
func causeIs(cause, target error) bool {
	return cause != nil && errors.Is(cause, target)
}

// ObjectNotFoundError reports a missing aggregate, entity or catalog entry.
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
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

func (e *ObjectNotFoundError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// ValueIsInvalidError reports input that is present but unacceptable.
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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

func (e *ValueIsInvalidError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

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
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConflictError reports a request that is well-formed but not allowed in the
// current state of the target, such as editing a paid order.
type ConflictError struct {
	Reason string
	Cause  error
}

func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.Reason), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func (e *ConflictError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// AccessDeniedError reports an actor whose role lacks a capability.
type AccessDeniedError struct {
	Actor      string
	Capability string
}

func NewAccessDeniedError(actor, capability string) *AccessDeniedError {
	return &AccessDeniedError{Actor: actor, Capability: capability}
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrAccessDenied, e.Actor, e.Capability)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// StoreUnavailableError reports that the data store could not be reached or
// did not answer within the allotted time.
type StoreUnavailableError struct {
	Operation string
	Cause     error
}

func NewStoreUnavailableError(operation string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Operation: operation, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStoreUnavailable, e.Operation), e.Cause)
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}

func (e *StoreUnavailableError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// PartialFailureError reports a multi-row write that stopped after some rows
// were written. RolledBack tells whether the written rows were undone.
type PartialFailureError struct {
	Stage      string
	Written    int
	Expected   int
	RolledBack bool
	Cause      error
}

func NewPartialFailureError(stage string, written, expected int, rolledBack bool, cause error) *PartialFailureError {
	return &PartialFailureError{
		Stage:      stage,
		Written:    written,
		Expected:   expected,
		RolledBack: rolledBack,
		Cause:      cause,
	}
}

func (e *PartialFailureError) Error() string {
	msg := fmt.Sprintf("%s: %s wrote %d of %d rows, rolled back: %t",
		ErrPartialFailure, e.Stage, e.Written, e.Expected, e.RolledBack)
	return withCause(msg, e.Cause)
}

func (e *PartialFailureError) Unwrap() error {
	return ErrPartialFailure
}

func (e *PartialFailureError) Is(target error) bool {
	return causeIs(e.Cause, target)
}
