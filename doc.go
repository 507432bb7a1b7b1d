// Package genfs defines generic contracts for implementing unix-style
// filesystems without relying on an operating system or a heap allocator.
//
// This package contains only interface definitions and the plain value types
// those interfaces consume. Concrete backends (a disk filesystem, an
// in-memory tree, a flash-backed embedded store, an overlay) implement the
// contracts and choose their own path, metadata, file type, and permission
// representations through type parameters.
//
// # Design Philosophy
//
//   - Zero dependencies: the contract package only uses the Go standard library
//   - Errors as values: every fallible operation reports failure through an
//     error return, never a panic
//   - Synchronous: every operation blocks until it completes or fails
//   - Allocation-free contract: no interface requires a heap-backed type;
//     embedded backends can bind fixed-capacity representations
//
// # Contract Graph
//
// FS is the capability root. It manufactures every other entity:
//
//   - File: an open file handle (Read, Write, Flush, Seek, Close)
//   - Dir: a forward-only cursor over directory entries
//   - DirEntry: one observed directory slot (Path, Metadata, FileType, FileName)
//   - SeekFrom: a seek target consumed by File.Seek
//   - OpenOptions / DirOptions: builders describing open and mkdir intent
//
// The type parameters of FS bind a single consistent set of Path, PathOwned,
// Metadata, FileType, and Permissions types across all of the contracts, so
// results from ReadDir and Metadata are interchangeable by construction.
//
// # Usage Example
//
// Code written against the contracts works with any backend:
//
//	func countEntries[
//		Path, PathOwned, Metadata, FileType, Permissions any,
//		F genfs.File,
//		Entry genfs.DirEntry[Path, PathOwned, Metadata, FileType],
//		D genfs.Dir[Entry],
//	](fsys genfs.FS[Path, PathOwned, Metadata, FileType, Permissions, F, Entry, D], dir Path) (int, error) {
//		listing, err := fsys.ReadDir(dir)
//		if err != nil {
//			return 0, err
//		}
//		entries, err := genfs.Collect[Entry](listing)
//		if err != nil {
//			return 0, err
//		}
//		return len(entries), nil
//	}
//
// # Error Classes
//
// The contracts fix which operations can fail and in what classes, not the
// concrete error type. The companion package fserr carries the class
// taxonomy (NotFound, PermissionDenied, AlreadyExists, ...) and helpers for
// classifying backend errors.
//
// # Provider Implementations
//
// This package ships no concrete filesystem. Backends live in their own
// modules; the fstest package provides a conformance harness for validating
// them against these contracts.
package genfs
