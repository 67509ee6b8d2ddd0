package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a failure crossing the service boundary. Transports map
// codes to their own status vocabulary.
type Code string

const (
	CodeValidation        Code = "validation_failed"
	CodeInvalidIdentifier Code = "invalid_identifier"
	CodeNotFound          Code = "not_found"
	CodeDuplicateKey      Code = "duplicate_key"
	CodeStoreUnavailable  Code = "store_unavailable"
	CodeInternal          Code = "internal"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Code       Code
	Op         string
	Message    string
	Cause      error
	Violations []Violation
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an error with explicit code and operation.
func New(code Code, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates err with code. Errors that already carry a code are returned
// unchanged so the innermost classification wins.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return New(code, op, err.Error(), err)
}

// Validation carries every violation found for one payload.
func Validation(op string, violations []Violation) error {
	return &Error{
		Code:       CodeValidation,
		Op:         strings.TrimSpace(op),
		Message:    "validation failed",
		Violations: append([]Violation(nil), violations...),
	}
}

func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

func CodeOf(err error) Code {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return ""
	}
	return appErr.Code
}

// MessageOf returns the caller-facing message, falling back to err.Error().
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && strings.TrimSpace(appErr.Message) != "" {
		return appErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// ViolationsOf returns the violations attached to a validation error.
func ViolationsOf(err error) []Violation {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return nil
	}
	return appErr.Violations
}
