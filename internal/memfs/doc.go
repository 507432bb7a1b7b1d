// Package memfs is an in-memory reference backend for the genfs contracts,
// used exclusively by this module's own tests.
//
// It binds the full associated-type bundle with string paths:
//
//	genfs.FS[string, string, Metadata, FileType, Mode, *File, DirEntry, *Dir]
//
// and implements every operation, including symlinks, hard links, and
// canonicalization, so the conformance harness and the contract-level tests
// have a complete backend to run against.
//
// Documented behavior choices the contract leaves to the backend:
//
//   - Truncate without write access fails with an InvalidInput-class error.
//   - RemoveDirAll aborts on the first failure, leaving already-removed
//     children removed.
//   - Renaming onto a non-empty directory fails with DirectoryNotEmpty.
//   - Opening with Create through a dangling symlink does not create the
//     link's target; it fails with NotFound.
//   - Permission bits are recorded and reported but never enforced.
//   - Seeking past the end of a file and writing zero-fills the gap.
//   - Closing an already-closed handle fails with a Closed-class error.
package memfs
