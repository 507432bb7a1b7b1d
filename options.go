package genfs

import "github.com/pi-pi3/genfs/fserr"

// OpenOptions describes how a file should be opened and what operations
// are permitted on the open file.
//
// Generally speaking you first call NewOpenOptions, then chain calls to
// setters to configure each option, then pass the value to FS.Open along
// with the path of the file you are opening. Setters perform no validation;
// every interaction between flags is resolved by the consuming Open call.
// The same value may be reused across multiple Open calls.
//
// Permissions is the backend's permission representation; a new file is
// created with the configured mode, which defaults to the zero value of
// Permissions.
type OpenOptions[Permissions any] struct {
	read      bool
	write     bool
	append    bool
	truncate  bool
	create    bool
	createNew bool
	mode      Permissions
	flags     uint32
}

// NewOpenOptions creates a blank new set of options ready for configuration.
// All boolean options are initially false and the mode is the zero
// Permissions value.
func NewOpenOptions[Permissions any]() *OpenOptions[Permissions] {
	return &OpenOptions[Permissions]{}
}

// Read sets the option for read access.
// When true, the opened file can be read.
func (o *OpenOptions[Permissions]) Read(read bool) *OpenOptions[Permissions] {
	o.read = read
	return o
}

// Write sets the option for write access.
// When true, the opened file can be written. If the file already exists,
// writes overwrite its contents without truncating it.
func (o *OpenOptions[Permissions]) Write(write bool) *OpenOptions[Permissions] {
	o.write = write
	return o
}

// Append sets the option for append mode.
// When true, the write position is forced to the end of the file before
// every write, regardless of explicit seeks performed between writes.
// Reads are not required to track the forced position.
//
// Append does not create the file if it does not exist; combine it with
// Create for that.
func (o *OpenOptions[Permissions]) Append(app bool) *OpenOptions[Permissions] {
	o.append = app
	return o
}

// Truncate sets the option for truncating an existing file to length 0 at
// open time. Truncate is only honored together with write access; without
// it the behavior is the backend's documented choice of no-op or error.
func (o *OpenOptions[Permissions]) Truncate(truncate bool) *OpenOptions[Permissions] {
	o.truncate = truncate
	return o
}

// Create sets the option for creating the file if it does not exist, using
// the configured mode. Write or append access is required for creation.
func (o *OpenOptions[Permissions]) Create(create bool) *OpenOptions[Permissions] {
	o.create = create
	return o
}

// CreateNew sets the option to always create a new file, failing with an
// AlreadyExists-class error if anything occupies the target path, including
// a dangling symlink.
//
// The check and the creation are atomic with respect to the backend, which
// closes the window between checking for a file and creating it. When set,
// Create and Truncate are ignored. Write or append access is required.
func (o *OpenOptions[Permissions]) CreateNew(createNew bool) *OpenOptions[Permissions] {
	o.createNew = createNew
	return o
}

// Mode sets the permissions that a newly created file will carry.
func (o *OpenOptions[Permissions]) Mode(mode Permissions) *OpenOptions[Permissions] {
	o.mode = mode
	return o
}

// CustomFlags passes backend-specific open flags. The contract imposes no
// semantics on them beyond pass-through to the backend.
func (o *OpenOptions[Permissions]) CustomFlags(flags uint32) *OpenOptions[Permissions] {
	o.flags = flags
	return o
}

// HasRead reports whether read access was requested.
func (o *OpenOptions[Permissions]) HasRead() bool { return o.read }

// HasWrite reports whether write access was requested.
func (o *OpenOptions[Permissions]) HasWrite() bool { return o.write }

// HasAppend reports whether append mode was requested.
func (o *OpenOptions[Permissions]) HasAppend() bool { return o.append }

// HasTruncate reports whether truncation at open was requested.
func (o *OpenOptions[Permissions]) HasTruncate() bool { return o.truncate }

// HasCreate reports whether creation of a missing file was requested.
func (o *OpenOptions[Permissions]) HasCreate() bool { return o.create }

// HasCreateNew reports whether atomic create-or-fail was requested.
func (o *OpenOptions[Permissions]) HasCreateNew() bool { return o.createNew }

// Permissions returns the mode a newly created file will carry.
func (o *OpenOptions[Permissions]) Permissions() Permissions { return o.mode }

// Flags returns the backend-specific open flags.
func (o *OpenOptions[Permissions]) Flags() uint32 { return o.flags }

// Validate checks the flag combinations every Open implementation must
// reject: creation (Create or CreateNew) without write or append access.
// Backends typically call Validate first and then apply their own
// backend-specific checks.
func (o *OpenOptions[Permissions]) Validate() error {
	if (o.create || o.createNew) && !(o.write || o.append) {
		return fserr.New(fserr.KindInvalidInput, "file creation requires write or append access")
	}
	return nil
}

// DirOptions describes how a directory should be created.
//
// DirOptions follows the same lifecycle as OpenOptions: built once,
// configured through chained setters, consumed read-only by FS.CreateDir,
// and reusable across calls.
type DirOptions[Permissions any] struct {
	recursive bool
	mode      Permissions
	flags     uint32
}

// NewDirOptions creates a new set of options: non-recursive, with the zero
// Permissions value as the mode.
func NewDirOptions[Permissions any]() *DirOptions[Permissions] {
	return &DirOptions[Permissions]{}
}

// Recursive indicates that missing parent directories should be created as
// well, each with the same mode and flags as the target.
//
// This option defaults to false.
func (o *DirOptions[Permissions]) Recursive(recursive bool) *DirOptions[Permissions] {
	o.recursive = recursive
	return o
}

// Mode sets the permissions to create new directories with.
func (o *DirOptions[Permissions]) Mode(mode Permissions) *DirOptions[Permissions] {
	o.mode = mode
	return o
}

// CustomFlags passes backend-specific creation flags. The contract imposes
// no semantics on them beyond pass-through to the backend.
func (o *DirOptions[Permissions]) CustomFlags(flags uint32) *DirOptions[Permissions] {
	o.flags = flags
	return o
}

// IsRecursive reports whether missing parents should be created.
func (o *DirOptions[Permissions]) IsRecursive() bool { return o.recursive }

// Permissions returns the mode new directories will carry.
func (o *DirOptions[Permissions]) Permissions() Permissions { return o.mode }

// Flags returns the backend-specific creation flags.
func (o *DirOptions[Permissions]) Flags() uint32 { return o.flags }
