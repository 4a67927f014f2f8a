package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeParse       = "PARSE_ERROR"
	ErrCodeIllegalMove = "ILLEGAL_MOVE"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeBadRequest  = "BAD_REQUEST"
)

// AppError represents an application error with an HTTP status code and error code.
// Move errors also carry the 1-based ply and the offending token.
type AppError struct {
	Code    string // Error code (e.g., "PARSE_ERROR", "ILLEGAL_MOVE")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Ply     int    // 1-based ply index, 0 when not tied to a move
	Token   string // Offending UCI token
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := e.Message
	if e.Ply > 0 {
		msg = fmt.Sprintf("ply %d: %s", e.Ply, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewParseError creates a PARSE_ERROR for a token that is not a UCI move.
func NewParseError(ply int, token, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf("invalid uci move %q: %s", token, reason),
		Status:  400,
		Ply:     ply,
		Token:   token,
	}
}

// NewIllegalMoveError creates an ILLEGAL_MOVE error for a well-formed token
// that cannot be played in the current position.
func NewIllegalMoveError(ply int, token string) *AppError {
	return &AppError{
		Code:    ErrCodeIllegalMove,
		Message: fmt.Sprintf("illegal move %q", token),
		Status:  400,
		Ply:     ply,
		Token:   token,
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// WithPly returns a copy of a move error re-anchored at the given ply.
func (e *AppError) WithPly(ply int) *AppError {
	cp := *e
	cp.Ply = ply
	return &cp
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsParseError reports whether err is a PARSE_ERROR.
func IsParseError(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == ErrCodeParse
}

// IsIllegalMove reports whether err is an ILLEGAL_MOVE error.
func IsIllegalMove(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == ErrCodeIllegalMove
}
