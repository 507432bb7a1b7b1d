// Package fserr provides the error taxonomy shared by genfs backends.
// It extends Go's standard error handling with filesystem error kinds,
// retry classification, and operation/path context, while staying
// compatible with errors.Is, errors.As, and errors.Unwrap.
package fserr

// Kind identifies a class of filesystem error.
// Kinds are string-based for debuggability; the contract fixes which
// operations can fail in which kinds, not the concrete error type.
type Kind string

const (
	// Path resolution errors.

	// KindNotFound indicates a path component does not exist.
	KindNotFound Kind = "NOT_FOUND"

	// KindAlreadyExists indicates the target already exists and the
	// operation required it to be absent (create_new, symlink).
	KindAlreadyExists Kind = "ALREADY_EXISTS"

	// KindNotADirectory indicates a non-directory was found where a
	// directory was required (read_dir target, intermediate component).
	KindNotADirectory Kind = "NOT_A_DIRECTORY"

	// KindIsADirectory indicates a directory was found where a file was
	// required (remove_file, copy source).
	KindIsADirectory Kind = "IS_A_DIRECTORY"

	// Access errors.

	// KindPermissionDenied indicates the caller lacks permission for the
	// operation on the path.
	KindPermissionDenied Kind = "PERMISSION_DENIED"

	// Structural errors.

	// KindDirectoryNotEmpty indicates a directory could not be removed or
	// replaced because it still has entries.
	KindDirectoryNotEmpty Kind = "DIRECTORY_NOT_EMPTY"

	// KindCrossesDevices indicates both paths of a rename or hard_link do
	// not share a backing device.
	KindCrossesDevices Kind = "CROSSES_DEVICES"

	// Validation errors.

	// KindInvalidInput indicates a malformed argument: a seek producing a
	// negative position, read_link on a non-symlink, or an inconsistent
	// OpenOptions combination.
	KindInvalidInput Kind = "INVALID_INPUT"

	// Handle errors.

	// KindClosed indicates an operation on a closed file or directory handle.
	KindClosed Kind = "CLOSED"

	// KindUnsupported indicates the backend does not implement the
	// operation (for example symlinks on a flat flash store).
	KindUnsupported Kind = "UNSUPPORTED"

	// Generic errors.

	// KindIO is the catch-all for backend I/O failures outside the
	// taxonomy: device faults, short media, torn reads.
	KindIO Kind = "IO_ERROR"

	// KindUnknown indicates an unclassified error.
	KindUnknown Kind = "UNKNOWN"
)
