package fserr

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// KindOf extracts the Kind from an error.
// Returns KindUnknown if the error is nil or nothing in its chain carries a
// kind. Any error implementing Kinder participates, not just this package's
// concrete type.
//
// Example:
//
//	if fserr.KindOf(err) == fserr.KindNotFound {
//	    // Handle missing path
//	}
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var kinder Kinder
	if stderrors.As(err, &kinder) {
		return kinder.Kind()
	}

	return KindUnknown
}

// ClassificationOf extracts the Classification from an error.
// Returns ClassificationPermanent if the error is nil or not an Error.
// This is a safe default that prevents inappropriate retry attempts.
func ClassificationOf(err error) Classification {
	if err == nil {
		return ClassificationPermanent
	}

	var fsErr Error
	if stderrors.As(err, &fsErr) {
		return fsErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not an Error (safe default).
func IsRetryable(err error) bool {
	return ClassificationOf(err).IsRetryable()
}

// IsNotFound reports whether err is classified as KindNotFound.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsPermissionDenied reports whether err is classified as KindPermissionDenied.
func IsPermissionDenied(err error) bool {
	return KindOf(err) == KindPermissionDenied
}

// IsAlreadyExists reports whether err is classified as KindAlreadyExists.
func IsAlreadyExists(err error) bool {
	return KindOf(err) == KindAlreadyExists
}

// IsNotADirectory reports whether err is classified as KindNotADirectory.
func IsNotADirectory(err error) bool {
	return KindOf(err) == KindNotADirectory
}

// IsADirectory reports whether err is classified as KindIsADirectory.
func IsADirectory(err error) bool {
	return KindOf(err) == KindIsADirectory
}

// IsDirectoryNotEmpty reports whether err is classified as KindDirectoryNotEmpty.
func IsDirectoryNotEmpty(err error) bool {
	return KindOf(err) == KindDirectoryNotEmpty
}

// IsCrossesDevices reports whether err is classified as KindCrossesDevices.
func IsCrossesDevices(err error) bool {
	return KindOf(err) == KindCrossesDevices
}

// IsInvalidInput reports whether err is classified as KindInvalidInput.
func IsInvalidInput(err error) bool {
	return KindOf(err) == KindInvalidInput
}

// IsClosed reports whether err is classified as KindClosed.
func IsClosed(err error) bool {
	return KindOf(err) == KindClosed
}

// IsUnsupported reports whether err is classified as KindUnsupported.
func IsUnsupported(err error) bool {
	return KindOf(err) == KindUnsupported
}
