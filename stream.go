package genfs

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/pi-pi3/genfs/fserr"
)

// WriteAll writes all of p to f, looping over short writes as the File
// contract obliges callers to do. A write that consumes zero bytes of a
// non-empty buffer without an error is reported as an IO-class error so
// the loop cannot spin.
func WriteAll(f File, p []byte) error {
	for len(p) > 0 {
		n, err := f.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return fserr.New(fserr.KindIO, "write consumed no bytes")
		}
		p = p[n:]
	}
	return nil
}

// ReadAll reads f until the first zero-length read and returns everything
// read. It treats a zero read as end-of-stream, which the contract permits
// a caller to decide; backends whose zero reads are transient should not be
// drained with ReadAll.
//
// ReadAll allocates; it is a hosted convenience and not part of the
// allocation-free contract.
func ReadAll(f File) ([]byte, error) {
	buf := make([]byte, 0, 512)
	chunk := make([]byte, 512)
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf, nil
			}
			return buf, err
		}
		if n == 0 {
			return buf, nil
		}
	}
}

// Collect drains the directory listing d and returns every entry it
// yielded, closing d on every path. Iteration stops at the first per-entry
// error, which is returned alongside the entries collected so far.
//
// Collect allocates; it is a hosted convenience and not part of the
// allocation-free contract.
func Collect[Entry any](d Dir[Entry]) ([]Entry, error) {
	var entries []Entry
	for {
		entry, err := d.Next()
		if err != nil {
			closeErr := d.Close()
			if errors.Is(err, io.EOF) {
				return entries, closeErr
			}
			return entries, err
		}
		entries = append(entries, entry)
	}
}

// CopyFromFS copies all files from a read-only standard library filesystem
// (typically an embed.FS or a testing/fstest.MapFS) into a writable
// string-pathed backend, preserving the directory structure.
//
// The srcRoot parameter selects the root directory in the source to copy
// from; use "." to copy the entire source. The mode function converts
// standard permission bits into the backend's Permissions representation
// and is applied to each file's permission bits and to 0755 for created
// directories.
//
// Directories are created recursively as needed; only files are copied.
func CopyFromFS[
	Metadata, FileType, Permissions any,
	F File,
	Entry DirEntry[string, string, Metadata, FileType],
	D Dir[Entry],
](src fs.FS, dst FS[string, string, Metadata, FileType, Permissions, F, Entry, D], srcRoot string, mode func(fs.FileMode) Permissions) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Directories are created as needed below each file.
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		dstPath := filePath
		if srcRoot != "." && srcRoot != "" {
			dstPath = strings.TrimPrefix(filePath, srcRoot)
			dstPath = strings.TrimPrefix(dstPath, "/")
		}

		if dir := path.Dir(dstPath); dir != "." && dir != "" {
			opts := NewDirOptions[Permissions]().Recursive(true).Mode(mode(0o755))
			if err := dst.CreateDir(dir, opts); err != nil {
				return err
			}
		}

		opts := NewOpenOptions[Permissions]().
			Write(true).
			Create(true).
			Truncate(true).
			Mode(mode(info.Mode().Perm()))
		f, err := dst.Open(dstPath, opts)
		if err != nil {
			return err
		}
		if err := WriteAll(f, data); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	})
}
