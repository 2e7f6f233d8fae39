package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("student with this email already exists")
	ErrAlreadyAllocated   = errors.New("student already has a room allocated")
	ErrNotAllocated       = errors.New("student has no room allocated")
)

// Room errors
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room with this number and block already exists")
	ErrNoCapacity        = errors.New("no room with spare capacity available")
	ErrCapacityTooSmall  = errors.New("capacity cannot be lower than current occupancy")
)

// Leave errors
var (
	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrInvalidTransition  = errors.New("leave status transition not allowed")
	ErrInvalidDateRange   = errors.New("leave start date must not be after end date")
	ErrInvalidLeaveStatus = errors.New("unknown leave status")
)

// Listing errors
var (
	ErrUnknownCollection = errors.New("unknown collection")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Is returns whether target matches any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
