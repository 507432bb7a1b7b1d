package fserr

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a kind and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// If the wrapped error is an Error, its classification is preserved.
// Otherwise, the default classification for the kind is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	n, err := dev.ReadBlock(blk, buf)
//	if err != nil {
//	    return fserr.Wrap(err, fserr.KindIO, "block read failed")
//	}
func Wrap(err error, kind Kind, message string) Error {
	if err == nil {
		return nil
	}

	// Preserve classification if wrapping an Error
	classification := defaultClassification(kind)
	var fsErr Error
	if errors.As(err, &fsErr) {
		classification = fsErr.Classification()
	}

	return &fsError{
		kind:           kind,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the
// original error.
//
// Returns nil if err is nil.
func Wrapf(err error, kind Kind, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, kind, fmt.Sprintf(format, args...))
}

// WrapPath wraps an error recording the failing operation and path.
// The cause's message is carried through Error() and Unwrap().
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := backend.flush(name); err != nil {
//	    return fserr.WrapPath(err, fserr.KindIO, "flush", name)
//	}
func WrapPath(err error, kind Kind, op, path string) Error {
	if err == nil {
		return nil
	}

	classification := defaultClassification(kind)
	var fsErr Error
	if errors.As(err, &fsErr) {
		classification = fsErr.Classification()
	}

	return &fsError{
		kind:           kind,
		classification: classification,
		op:             op,
		path:           path,
		cause:          err,
	}
}
