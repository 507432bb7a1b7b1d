package genfs

// File is a reference to an open file on a filesystem.
//
// A File can be read and/or written depending on the options it was opened
// with. The open file's position, buffering, and handle ownership are
// backend-internal; the contract fixes only the byte-stream behavior below.
//
// A File must be closed when no longer needed, on every exit path
// including early error returns. A File is not safe for concurrent use
// without external synchronization.
type File interface {
	// Read pulls some bytes from the file into p, returning how many bytes
	// were read. If the result is (n, nil) then 0 <= n <= len(p).
	//
	// A zero n indicates either that the file has reached end-of-stream or
	// that p was zero-length; callers cannot distinguish the two from the
	// return value alone and must not assume permanent EOF from a single
	// zero read.
	Read(p []byte) (int, error)

	// Write writes bytes from p to the file, returning how many bytes were
	// consumed. If the result is (n, nil) then 0 <= n <= len(p).
	//
	// A short write is not itself an error; callers must loop until every
	// byte is consumed or an error occurs (see WriteAll). A call to Write
	// represents at most one attempt; there is no implicit retry.
	Write(p []byte) (int, error)

	// Flush delivers all intermediately buffered contents to the backend.
	// It fails if buffered data cannot be fully delivered.
	Flush() error

	// Seek moves the file position to the target described by pos and
	// returns the new absolute position from the start of the file.
	//
	// A target resolving below byte 0 fails with an InvalidInput-class
	// error; Seek never reports a negative position. Seeking beyond the
	// end of the file is legal and backend-defined: commonly a later write
	// extends the file and reads return 0 until data is written.
	Seek(pos SeekFrom) (uint64, error)

	// Close releases the underlying handle. The behavior of Read, Write,
	// Flush, and Seek after Close is a Closed-class error.
	Close() error
}

// DirEntry is one entry observed while listing a directory.
//
// A DirEntry is a snapshot of an already-observed directory slot, not a
// live cursor: Metadata and FileType may still fail if the backend mutates
// underneath it, and succeeding does not re-validate the entry against the
// live directory.
//
// The type parameters must be bound to the same types as the owning FS's
// corresponding parameters; FS's constraints enforce this.
type DirEntry[Path, PathOwned, Metadata, FileType any] interface {
	// Path returns the full path of this entry: the listed directory's
	// path joined with this entry's bare name. Backends that resolve
	// paths while opening the listing may return the canonical form of
	// the directory; either way the returned path addresses this entry
	// when passed back to the owning FS.
	Path() PathOwned

	// Metadata returns the metadata of the file this entry points at,
	// without traversing symlinks: a symlink entry reports the link's own
	// metadata, not the target's.
	Metadata() (Metadata, error)

	// FileType returns the type of the file this entry points at, without
	// traversing symlinks.
	FileType() (FileType, error)

	// FileName returns the bare name of this entry without any leading
	// path components. The returned value borrows from the entry and is
	// valid for the entry's lifetime.
	FileName() Path
}

// Dir is a forward-only cursor over the entries of a directory.
//
// A Dir is consumed by repeated Next calls; there is no rewind. To restart
// a listing, call FS.ReadDir again. Exhausting or closing a Dir releases
// any underlying handle; Close must be called on every exit path.
type Dir[Entry any] interface {
	// Next returns the next directory entry. It returns io.EOF once the
	// listing is exhausted.
	//
	// Any other error reflects an intermittent backend failure for that
	// step of the iteration: a successful ReadDir only means the directory
	// was opened, not that every entry is guaranteed readable.
	Next() (Entry, error)

	// Close releases the listing handle. Next after Close is a
	// Closed-class error.
	Close() error
}

// FS is the root contract: filesystem manipulation operations over generic
// path, metadata, and permission representations.
//
// The type parameters are the backend's associated types:
//
//   - Path: the borrowed path representation operations accept
//   - PathOwned: the owned path representation operations return; the
//     contract does not require it to be heap-backed, so embedded backends
//     can bind fixed-capacity types
//   - Metadata: per-file metadata
//   - FileType: the union of the backend's file types
//   - Permissions: the backend's permission bits, default-constructible
//   - F, Entry, D: the backend's File, DirEntry, and Dir types
//
// The Entry constraint is instantiated from FS's own Path, PathOwned,
// Metadata, and FileType parameters, and D's from Entry, so results from
// ReadDir and Metadata are interchangeable by construction.
//
// Every operation is synchronous and returns a definite outcome. Mutating
// operations (RemoveFile, Rename, Copy, HardLink, Symlink, CreateDir,
// RemoveDir, RemoveDirAll, SetPermissions, and Open when it creates or
// truncates) are not assumed safe to issue concurrently through the same
// value without external synchronization; read-only operations need only
// shared access. Nothing prevents the filesystem from changing between two
// calls; callers needing atomicity must rely on backend-documented
// guarantees such as CreateNew's atomic create-or-fail.
//
// Per-operation documentation lists the error classes (see fserr) a
// conforming backend reports for each failure; conditions outside the
// listed classes surface as the backend's catch-all I/O error.
type FS[
	Path, PathOwned any,
	Metadata, FileType, Permissions any,
	F File,
	Entry DirEntry[Path, PathOwned, Metadata, FileType],
	D Dir[Entry],
] interface {
	// Open opens the file at path with the given options and returns the
	// open handle. Open is solely responsible for validating option
	// combinations; see OpenOptions for the semantics every implementation
	// must honor.
	//
	// Error classes: NotFound, PermissionDenied, AlreadyExists (CreateNew
	// on an occupied path), InvalidInput (inconsistent options).
	Open(path Path, options *OpenOptions[Permissions]) (F, error)

	// RemoveFile removes the file at path. There is no guarantee the file
	// is immediately deleted if open handles to it remain.
	//
	// Error classes: NotFound, PermissionDenied, IsADirectory.
	RemoveFile(path Path) error

	// Metadata returns information about the file at path, traversing
	// symbolic links to query the destination.
	//
	// Error classes: NotFound, PermissionDenied.
	Metadata(path Path) (Metadata, error)

	// SymlinkMetadata returns information about the file at path without
	// following symlinks: a symlink reports its own metadata.
	//
	// Error classes: NotFound, PermissionDenied.
	SymlinkMetadata(path Path) (Metadata, error)

	// Rename moves from to to, replacing to if it already exists. Renaming
	// across mount or device boundaries is not guaranteed to work.
	//
	// Error classes: NotFound, CrossesDevices, PermissionDenied.
	Rename(from, to Path) error

	// Copy copies the contents and the permission bits of the file at from
	// to to, overwriting to. On success the returned byte count equals the
	// resulting length of to as reported by Metadata.
	//
	// If from and to point at the same file the file will likely be
	// truncated by this operation.
	//
	// Error classes: NotFound, PermissionDenied, IsADirectory.
	Copy(from, to Path) (uint64, error)

	// HardLink creates dst as a hard link to src. Backends typically
	// require both paths to share a backing device.
	//
	// Error classes: NotFound, PermissionDenied, CrossesDevices.
	HardLink(src, dst Path) error

	// Symlink creates dst as a symbolic reference to src. The src path is
	// stored as-is without validation; dangling symlinks are legal.
	//
	// Error classes: PermissionDenied, AlreadyExists.
	Symlink(src, dst Path) error

	// ReadLink returns the raw, unresolved target of the symbolic link at
	// path.
	//
	// Error classes: NotFound, InvalidInput (path is not a symlink).
	ReadLink(path Path) (PathOwned, error)

	// Canonicalize returns the canonical form of path with all symbolic
	// links resolved and all "." and ".." components normalized.
	//
	// Error classes: NotFound, NotADirectory (on an intermediate
	// component).
	Canonicalize(path Path) (PathOwned, error)

	// CreateDir creates a new, empty directory at path with the given
	// options. In recursive mode missing ancestors are created with the
	// same options and an existing target is not an error.
	//
	// Error classes: AlreadyExists (unless recursive), PermissionDenied.
	CreateDir(path Path, options *DirOptions[Permissions]) error

	// RemoveDir removes the directory at path, which must be empty.
	//
	// Error classes: NotFound, DirectoryNotEmpty, PermissionDenied.
	RemoveDir(path Path) error

	// RemoveDirAll removes the directory at path after removing all of its
	// contents. Symlinks encountered inside are removed as links and never
	// traversed.
	//
	// The operation is not atomic: a failure leaves already-removed
	// children removed. Error classes: the union of RemoveFile's and
	// RemoveDir's.
	RemoveDirAll(path Path) error

	// ReadDir opens the directory at path for listing. Iteration may
	// surface additional per-entry errors after construction succeeds.
	//
	// Error classes: NotFound, NotADirectory, PermissionDenied.
	ReadDir(path Path) (D, error)

	// SetPermissions changes the permissions of the file or directory at
	// path.
	//
	// Error classes: NotFound, PermissionDenied.
	SetPermissions(path Path, perm Permissions) error
}
