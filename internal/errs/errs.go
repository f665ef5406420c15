package errs

import (
	"errors"
	"fmt"
)

type ParseError int

const (
	HTTPMethod ParseError = iota
	HTTPVersion
	Headers
)

func (e ParseError) Error() string {
	switch e {
	case HTTPMethod:
		return "parse error: incorrect HTTP method"
	case HTTPVersion:
		return "parse error: incorrect HTTP version"
	case Headers:
		return "parse error: incorrect headers"
	default:
		return fmt.Sprintf("parse error: unknown kind %d", int(e))
	}
}

// ServerError is what the connection handler sees. It holds either a
// ParseError or the I/O error returned by the stream.
type ServerError struct {
	err error
}

func FromIO(err error) *ServerError {
	return &ServerError{err: err}
}

// Wrap turns any error into a ServerError. ParseError values keep their kind,
// everything else is treated as I/O.
func Wrap(err error) *ServerError {
	if err == nil {
		return nil
	}
	var se *ServerError
	if errors.As(err, &se) {
		return se
	}
	return &ServerError{err: err}
}

func (e *ServerError) Error() string {
	if e.err == nil {
		return "server error"
	}
	return e.err.Error()
}

func (e *ServerError) Unwrap() error {
	return e.err
}

func (e *ServerError) IsParse() bool {
	var pe ParseError
	return errors.As(e.err, &pe)
}

// Kind reports the parse kind, ok is false for I/O errors.
func (e *ServerError) Kind() (ParseError, bool) {
	var pe ParseError
	if errors.As(e.err, &pe) {
		return pe, true
	}
	return 0, false
}
