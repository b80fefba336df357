package xerrors

import (
	"errors"
	"fmt"
)

// Error is a caller-visible application error carrying a stable code and a
// human-readable message. Handlers serialize it into the response envelope;
// internal detail never crosses that boundary.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an application error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Validation builds a field-level validation error.
func Validation(message string) *Error {
	return &Error{Code: "400", Message: message}
}

// Common reusable application errors
var (
	ErrUnsupportedAuthType = New("400", "unsupported authentication type")
	ErrCaptchaExpired      = New("400", "captcha has expired")
	ErrCaptchaIncorrect    = New("400", "captcha is incorrect")
	ErrPasswordDecrypt     = New("400", "password decryption failed")
	ErrInvalidCredentials  = New("400", "incorrect username or password")
	ErrAccountDisabled     = New("400", "this account has been disabled, please contact the administrator")
	ErrUnauthorized        = New("401", "unauthorized, please log in again")
	ErrForbidden           = New("403", "forbidden")
	ErrCannotKickSelf      = New("400", "cannot force logout of your own session")
	ErrNotFound            = New("404", "resource not found")
	ErrInternal            = New("500", "internal server error")
)

// AsAppError extracts an application error from an error chain, or nil.
func AsAppError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
