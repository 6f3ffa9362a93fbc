package common

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// SocketError is a custom error type that wraps an error code (of type ErrCode)
// an error message and an optional underlying cause.
type SocketError struct {
	Code  ErrCode // The error code
	Msg   string  // The error message
	Cause error   // The underlying error, nil if none
}

// Error implements the error interface.
func (e *SocketError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("SocketError (code %s): %s: %v", e.Code, e.Msg, e.Cause)
	}
	return fmt.Sprintf("SocketError (code %s): %s", e.Code, e.Msg)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *SocketError) Unwrap() error {
	return e.Cause
}

// NewError creates a new SocketError with the given code and message.
func NewError(code ErrCode, msg string) *SocketError {
	return &SocketError{
		Code: code,
		Msg:  msg,
	}
}

// WrapError creates a new SocketError with the given code and message that
// wraps an underlying error.
func WrapError(code ErrCode, msg string, cause error) *SocketError {
	return &SocketError{
		Code:  code,
		Msg:   msg,
		Cause: cause,
	}
}

// ErrCodeOf returns the error code of err if it is (or wraps) a SocketError,
// ErrCUnknown otherwise.
func ErrCodeOf(err error) ErrCode {
	var sockErr *SocketError
	if errors.As(err, &sockErr) {
		return sockErr.Code
	}
	return ErrCUnknown
}

// --------------------------------------------------------------------------
// Error Codes
// --------------------------------------------------------------------------

type ErrCode uint64

const (
	ErrCUnknown           ErrCode = iota // 0: Unclassified error.
	ErrCIo                               // 1: Underlying transport failure (connect, read, write).
	ErrCSerialization                    // 2: Malformed envelope during encode or decode.
	ErrCAddressInUse                     // 3: Another live server already owns the socket path.
	ErrCConnectionTimeout                // 4: Connect or read exceeded the configured timeout.
	ErrCHandlerNotFound                  // 5: Command absent from the handler registry.
	ErrCInvalidRequest                   // 6: Bytes could not be interpreted as a valid envelope.
)

// String returns the string representation of an ErrCode.
func (c ErrCode) String() string {
	switch c {
	case ErrCIo:
		return "Io"
	case ErrCSerialization:
		return "Serialization"
	case ErrCAddressInUse:
		return "AddressInUse"
	case ErrCConnectionTimeout:
		return "ConnectionTimeout"
	case ErrCHandlerNotFound:
		return "HandlerNotFound"
	case ErrCInvalidRequest:
		return "InvalidRequest"
	default:
		return "Unknown"
	}
}
