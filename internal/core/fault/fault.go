package fault

import (
	"errors"
	"fmt"
)

// Core homing errors
var (
	// ErrConfiguration reports invalid static input such as a non-positive
	// landmark radius or a malformed sample grid.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrDegenerateGeometry reports an observer that coincides with a landmark,
	// leaving bearing and apparent size undefined.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// Code represents a numeric error code for cheap classification
type Code int

const (
	CodeUnknown Code = iota
	CodeConfiguration
	CodeDegenerateGeometry
)

func (c Code) String() string {
	switch c {
	case CodeConfiguration:
		return "configuration"
	case CodeDegenerateGeometry:
		return "degenerate_geometry"
	default:
		return "unknown"
	}
}

var codeSentinels = map[Code]error{
	CodeConfiguration:      ErrConfiguration,
	CodeDegenerateGeometry: ErrDegenerateGeometry,
}

// Error is a classified error with optional context
type Error struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match an *Error against the sentinel of its code.
func (e *Error) Is(target error) bool {
	if sentinel, ok := codeSentinels[e.Code]; ok && sentinel == target {
		return true
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Code == e.Code && other.Message == e.Message
	}
	return false
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a classified error
func New(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Configuration builds a configuration error with a formatted message.
func Configuration(format string, args ...any) *Error {
	return New(CodeConfiguration, fmt.Sprintf(format, args...), nil)
}

// Degenerate builds a degenerate geometry error with a formatted message.
func Degenerate(format string, args ...any) *Error {
	return New(CodeDegenerateGeometry, fmt.Sprintf(format, args...), nil)
}

// CodeOf returns the code of err, looking through wrapped errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	for code, sentinel := range codeSentinels {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return CodeUnknown
}

// IsDegenerate reports whether err is a degenerate geometry error.
func IsDegenerate(err error) bool {
	return errors.Is(err, ErrDegenerateGeometry)
}
