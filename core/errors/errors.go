package errors

import "fmt"

type ErrorCode string

// Generic error codes
const (
	ErrInternalServer             ErrorCode = "internal_server_error"
	ErrNotFound                   ErrorCode = "not_found"
	ErrForbidden                  ErrorCode = "forbidden"
	ErrUnauthorized               ErrorCode = "unauthorized"
	ErrInvalidInput               ErrorCode = "invalid_input"
	ErrInvalidRequestData         ErrorCode = "invalid_request_data"
	ErrAlreadyExists              ErrorCode = "already_exists"
	ErrTokenExpired               ErrorCode = "token_expired"
	ErrInvalidTokenFormat         ErrorCode = "invalid_token_format"
	ErrMissingAuthorizationHeader ErrorCode = "missing_authorization_header"
	ErrGetFailed                  ErrorCode = "get_failed"
	ErrCreateFailed               ErrorCode = "create_failed"
	ErrUpdateFailed               ErrorCode = "update_failed"
	ErrDeleteFailed               ErrorCode = "delete_failed"
)

// Scheduling error codes
const (
	ErrValidationFailed          ErrorCode = "validation_failed"
	ErrNoSlotsAvailable          ErrorCode = "no_slots_available"
	ErrInterviewNotFound         ErrorCode = "interview_not_found"
	ErrCannotReschedule          ErrorCode = "cannot_reschedule"
	ErrSchedulingError           ErrorCode = "scheduling_error"
	ErrAvailabilityGatherTimeout ErrorCode = "availability_gather_timeout"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
