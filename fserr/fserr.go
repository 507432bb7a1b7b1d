package fserr

// Kinder is the minimal hook a backend error implements to participate in
// kind classification. Any error in a chain can carry a Kind; backends are
// never required to use this package's concrete type.
type Kinder interface {
	// Kind returns the error class.
	Kind() Kind
}

// Error extends the standard error interface with structured information
// for consistent filesystem error handling.
//
// Error provides kinds for categorization, classification for retry logic,
// the failing operation and path, and compatibility with standard library
// error handling (errors.Is, errors.As, errors.Unwrap).
type Error interface {
	error
	Kinder

	// Classification returns whether the error is retryable or permanent.
	Classification() Classification

	// Op returns the name of the operation that failed ("open", "rename").
	// Returns the empty string if no operation was recorded.
	Op() string

	// Path returns the path the operation failed on.
	// Returns the empty string if no path was recorded.
	Path() string

	// Message returns the human-readable error message.
	Message() string

	// Unwrap returns the wrapped error for errors.Is and errors.As
	// compatibility. Returns nil if this error does not wrap another error.
	Unwrap() error
}
