package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Path set errors
	ErrInvalidPath               ErrorCode = "INVALID_PATH"
	ErrPathConflict              ErrorCode = "PATH_CONFLICT"
	ErrNotPresentInWhole         ErrorCode = "NOT_PRESENT_IN_WHOLE"
	ErrUnrepresentableDifference ErrorCode = "UNREPRESENTABLE_DIFFERENCE"
	ErrDuplicateAddition         ErrorCode = "DUPLICATE_ADDITION"
	ErrMetadataQueryFailed       ErrorCode = "METADATA_QUERY_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Module errors
	ErrModuleNotFound ErrorCode = "MODULE_NOT_FOUND"
	ErrModuleInvalid  ErrorCode = "MODULE_INVALID"
	ErrModuleProduce  ErrorCode = "MODULE_PRODUCE"

	// Query errors
	ErrQueryParse ErrorCode = "QUERY_PARSE"
	ErrQueryCycle ErrorCode = "QUERY_CYCLE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// DetailPath is the detail key holding the offending path of a path set error
const DetailPath = "path"

// FsimageError represents a structured error with code and details
type FsimageError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FsimageError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FsimageError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FsimageError) Is(target error) bool {
	var targetErr *FsimageError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FsimageError with the given code and message
func New(code ErrorCode, message string) *FsimageError {
	return &FsimageError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FsimageError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FsimageError {
	return &FsimageError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FsimageError
func Wrap(err error, code ErrorCode, message string) *FsimageError {
	if err == nil {
		return nil
	}
	return &FsimageError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FsimageError {
	if err == nil {
		return nil
	}
	return &FsimageError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FsimageError) WithDetail(key string, value interface{}) *FsimageError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fsErr *FsimageError
	if errors.As(err, &fsErr) {
		return fsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FsimageError
func GetErrorCode(err error) ErrorCode {
	var fsErr *FsimageError
	if errors.As(err, &fsErr) {
		return fsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FsimageError
func GetErrorDetails(err error) map[string]interface{} {
	var fsErr *FsimageError
	if errors.As(err, &fsErr) {
		return fsErr.Details
	}
	return nil
}

// GetErrorPath returns the path detail of an error, or "" when there is none
func GetErrorPath(err error) string {
	details := GetErrorDetails(err)
	if details == nil {
		return ""
	}
	p, _ := details[DetailPath].(string)
	return p
}
