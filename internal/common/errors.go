package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error taxonomy sentinels. Validation and authorization abort an
// ingestion before any record exists; operational errors on the
// processing side are recorded as FAILED, then re-raised; integrity
// errors indicate a bug, not a transient fault.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
	ErrIntegrity    = errors.New("data integrity violation")
)

// NewAppError creates an AppError with code, message and wrapped cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError wraps message as a caller-visible validation failure.
func ValidationError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrValidation)
}

func ValidationErrorf(format string, args ...interface{}) error {
	return ValidationError(fmt.Sprintf(format, args...))
}

// AuthorizationError wraps message as an access-denied failure.
func AuthorizationError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrUnauthorized)
}

// OperationalError wraps cause as a server-side operational failure.
func OperationalError(message string, cause error) error {
	return fmt.Errorf("%s: %v: %w", message, cause, ErrInternal)
}

// ToStatus maps the error taxonomy onto gRPC status codes at the
// transport boundary.
func ToStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
