// Package fstest provides a conformance test suite for validating backend
// implementations against the genfs contracts.
//
// A backend package builds a Harness binding its concrete associated types
// and a handful of accessor functions for the types the contracts keep
// opaque (metadata size and mode, file type classification), then calls
// Run from one of its own tests:
//
//	func TestConformance(t *testing.T) {
//	    h := &fstest.Harness[Metadata, FileType, Mode, *File, DirEntry, *Dir, *FS]{
//	        New:  func() *FS { return New() },
//	        Size: Metadata.Size,
//	        ...
//	    }
//	    h.Run(t)
//	}
//
// The suite validates the interface contracts, not backend-specific
// behavior: capability flags in Config switch off the groups a backend
// does not support, and SkipTests removes individual cases with documented
// differences. Error classes are asserted through fserr, so a conforming
// backend classifies its errors with fserr kinds somewhere in the chain.
//
// The suite requires string-pathed backends (Path = PathOwned = string);
// every other associated type stays backend-chosen.
package fstest

import (
	"testing"

	genfs "github.com/pi-pi3/genfs"
)

// Config describes backend capabilities and adapts the suite to them.
type Config struct {
	// Symlinks indicates the backend supports Symlink, ReadLink, and
	// SymlinkMetadata with real link semantics.
	Symlinks bool

	// HardLinks indicates the backend supports HardLink.
	HardLinks bool

	// Permissions indicates permission bits survive SetPermissions and
	// Copy and are reported back through metadata.
	Permissions bool

	// Canonicalize indicates the backend resolves "." and ".." components
	// and symlinks into absolute "/"-rooted canonical paths.
	Canonicalize bool

	// SkipTests lists specific test names to skip, in "Group/SubTest"
	// format (e.g. "Tree/CopyCountAndPerms").
	SkipTests []string
}

// POSIXConfig returns the configuration for fully featured POSIX-like
// backends: every capability enabled, nothing skipped.
func POSIXConfig() Config {
	return Config{
		Symlinks:     true,
		HardLinks:    true,
		Permissions:  true,
		Canonicalize: true,
	}
}

// Harness binds a backend's associated types and accessors for the suite.
//
// The type parameters mirror genfs.FS with string paths. Every function
// field is required unless the corresponding capability is disabled in
// Config.
type Harness[
	Metadata, FileType any,
	Permissions comparable,
	F genfs.File,
	Entry genfs.DirEntry[string, string, Metadata, FileType],
	D genfs.Dir[Entry],
	FSys genfs.FS[string, string, Metadata, FileType, Permissions, F, Entry, D],
] struct {
	// New returns a fresh, empty filesystem. Tests create and modify
	// files, so every invocation must start clean.
	New func() FSys

	// Size reports the length in bytes recorded in metadata.
	Size func(Metadata) uint64

	// Mode extracts the permission bits recorded in metadata.
	Mode func(Metadata) Permissions

	// Type extracts the file type recorded in metadata.
	Type func(Metadata) FileType

	// IsFile, IsDir, and IsSymlink classify a file type.
	IsFile    func(FileType) bool
	IsDir     func(FileType) bool
	IsSymlink func(FileType) bool

	// PrimaryMode and AltMode are two distinguishable permission values;
	// PrimaryMode is used when the suite creates files and directories.
	PrimaryMode Permissions
	AltMode     Permissions

	// Config describes the backend's capabilities.
	Config Config
}

// Run executes every applicable conformance group as a subtest.
func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) Run(t *testing.T) {
	groups := []struct {
		name    string
		enabled bool
		run     func(*testing.T)
	}{
		{"OpenOptions", true, h.runOpenOptions},
		{"File", true, h.runFile},
		{"Dir", true, h.runDir},
		{"Tree", true, h.runTree},
		{"Symlinks", h.Config.Symlinks, h.runSymlinks},
		{"HardLinks", h.Config.HardLinks, h.runHardLinks},
		{"Permissions", h.Config.Permissions, h.runPermissions},
		{"Canonicalize", h.Config.Canonicalize, h.runCanonicalize},
	}

	for _, group := range groups {
		t.Run(group.name, func(t *testing.T) {
			if !group.enabled {
				t.Skip("Skipped by backend configuration")
				return
			}
			group.run(t)
		})
	}
}

// run executes one named case unless the harness configuration skips it.
func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) run(t *testing.T, group, name string, fn func(*testing.T)) {
	t.Run(name, func(t *testing.T) {
		for _, skip := range h.Config.SkipTests {
			if skip == group+"/"+name {
				t.Skip("Skipped by backend configuration")
				return
			}
		}
		fn(t)
	})
}
