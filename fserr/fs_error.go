package fserr

import "fmt"

// fsError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type fsError struct {
	kind           Kind
	classification Classification
	op             string
	path           string
	message        string
	cause          error
}

// Error returns the string representation of the error.
// Format: "[KIND] op path: message", with the op, path, and cause segments
// present only when recorded.
func (e *fsError) Error() string {
	s := fmt.Sprintf("[%s]", e.kind)
	if e.op != "" {
		s += " " + e.op
	}
	if e.path != "" {
		s += " " + e.path
	}
	if e.message != "" {
		s += ": " + e.message
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// Kind returns the error kind.
func (e *fsError) Kind() Kind {
	return e.kind
}

// Classification returns the error classification.
func (e *fsError) Classification() Classification {
	return e.classification
}

// Op returns the recorded operation name.
func (e *fsError) Op() string {
	return e.op
}

// Path returns the recorded path.
func (e *fsError) Path() string {
	return e.path
}

// Message returns the error message.
func (e *fsError) Message() string {
	return e.message
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *fsError) Unwrap() error {
	return e.cause
}
