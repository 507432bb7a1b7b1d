package memfs

import (
	"io"
	"path"

	"github.com/pi-pi3/genfs/fserr"
)

// DirEntry is one observed directory slot. It holds the canonical path of
// the listed directory and the bare name; Metadata and FileType re-query
// the live tree without following symlinks, so they can fail if the entry
// was removed after the listing snapshot was taken.
type DirEntry struct {
	fsys *FS
	dir  string
	name string
}

// Path returns the canonical path of the listed directory joined with this
// entry's name.
func (e DirEntry) Path() string {
	return path.Join(e.dir, e.name)
}

// FileName returns the bare name of the entry.
func (e DirEntry) FileName() string {
	return e.name
}

// Metadata returns the entry's metadata without following symlinks.
func (e DirEntry) Metadata() (Metadata, error) {
	return e.fsys.SymlinkMetadata(e.Path())
}

// FileType returns the entry's type without following symlinks.
func (e DirEntry) FileType() (FileType, error) {
	md, err := e.Metadata()
	if err != nil {
		return TypeFile, err
	}
	return md.FileType(), nil
}

// Dir is a forward-only cursor over a sorted snapshot of a directory
// taken by ReadDir. A fresh ReadDir call is the way to restart.
type Dir struct {
	name    string
	entries []DirEntry
	pos     int
	closed  bool
}

// Next returns the next entry, or io.EOF once the snapshot is exhausted.
func (d *Dir) Next() (DirEntry, error) {
	if d.closed {
		return DirEntry{}, fserr.PathError(fserr.KindClosed, "read_dir", d.name)
	}
	if d.pos >= len(d.entries) {
		return DirEntry{}, io.EOF
	}
	entry := d.entries[d.pos]
	d.pos++
	return entry, nil
}

// Close releases the snapshot. Closing twice is a Closed-class error.
func (d *Dir) Close() error {
	if d.closed {
		return fserr.PathError(fserr.KindClosed, "read_dir", d.name)
	}
	d.closed = true
	d.entries = nil
	return nil
}
