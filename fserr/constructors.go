package fserr

import "fmt"

// New creates a new Error with the given kind and message.
// The classification is determined by the kind using default mappings.
//
// Example:
//
//	err := fserr.New(fserr.KindInvalidInput, "seek before start of file")
func New(kind Kind, message string) Error {
	return &fsError{
		kind:           kind,
		classification: defaultClassification(kind),
		message:        message,
	}
}

// Newf creates a new Error with a formatted message.
// The classification is determined by the kind using default mappings.
//
// Example:
//
//	err := fserr.Newf(fserr.KindInvalidInput, "seek offset %d before start", off)
func Newf(kind Kind, format string, args ...interface{}) Error {
	return &fsError{
		kind:           kind,
		classification: defaultClassification(kind),
		message:        fmt.Sprintf(format, args...),
	}
}

// PathError creates a new Error recording the failing operation and path.
// This is the constructor backends use for per-path failures.
//
// Example:
//
//	return fserr.PathError(fserr.KindNotFound, "open", name)
func PathError(kind Kind, op, path string) Error {
	return &fsError{
		kind:           kind,
		classification: defaultClassification(kind),
		op:             op,
		path:           path,
	}
}
