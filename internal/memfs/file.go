package memfs

import (
	"math"

	genfs "github.com/pi-pi3/genfs"
	"github.com/pi-pi3/genfs/fserr"
)

var (
	errNotReadable = fserr.New(fserr.KindInvalidInput, "handle not open for reading")
	errNotWritable = fserr.New(fserr.KindInvalidInput, "handle not open for writing")
	errFileTooBig  = fserr.New(fserr.KindInvalidInput, "write extends past the maximum file size")
)

// File is an open handle on a regular file. The position is per-handle;
// the contents are shared with every other handle and hard link of the
// same inode.
type File struct {
	fsys       *FS
	node       *node
	name       string
	readable   bool
	writable   bool
	appendMode bool
	pos        uint64
	closed     bool
}

// Read fills p from the current position and advances it. At end-of-file
// it returns (0, nil), which is the contract's end-of-stream signal.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, fserr.PathError(fserr.KindClosed, "read", f.name)
	}
	if !f.readable {
		return 0, fserr.WrapPath(errNotReadable, fserr.KindInvalidInput, "read", f.name)
	}
	if len(p) == 0 {
		return 0, nil
	}

	f.fsys.mu.RLock()
	defer f.fsys.mu.RUnlock()

	data := f.node.data
	if f.pos >= uint64(len(data)) {
		return 0, nil
	}
	n := copy(p, data[f.pos:])
	f.pos += uint64(n)
	return n, nil
}

// Write stores p at the current position and advances it, extending the
// file as needed. A position past the end zero-fills the gap. In append
// mode the position is forced to end-of-file before the write. A write
// that cannot fit in the in-memory representation fails with an
// InvalidInput-class error.
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, fserr.PathError(fserr.KindClosed, "write", f.name)
	}
	if !f.writable {
		return 0, fserr.WrapPath(errNotWritable, fserr.KindInvalidInput, "write", f.name)
	}
	if len(p) == 0 {
		return 0, nil
	}

	f.fsys.mu.Lock()
	defer f.fsys.mu.Unlock()

	n := f.node
	if f.appendMode {
		f.pos = uint64(len(n.data))
	}
	end := f.pos + uint64(len(p))
	// Contents live in one slice, so the position plus the write length
	// must stay within the maximum slice length.
	if end < f.pos || end > math.MaxInt {
		return 0, fserr.WrapPath(errFileTooBig, fserr.KindInvalidInput, "write", f.name)
	}
	if end > uint64(len(n.data)) {
		grown := make([]byte, end)
		copy(grown, n.data)
		n.data = grown
	}
	copy(n.data[f.pos:end], p)
	f.pos = end
	return len(p), nil
}

// Flush is a no-op: writes land in the shared buffer immediately.
func (f *File) Flush() error {
	if f.closed {
		return fserr.PathError(fserr.KindClosed, "flush", f.name)
	}
	return nil
}

// Seek moves the handle position to the target described by pos and
// returns the new absolute position.
func (f *File) Seek(pos genfs.SeekFrom) (uint64, error) {
	if f.closed {
		return 0, fserr.PathError(fserr.KindClosed, "seek", f.name)
	}

	f.fsys.mu.RLock()
	size := uint64(len(f.node.data))
	f.fsys.mu.RUnlock()

	newPos, err := pos.Resolve(f.pos, size)
	if err != nil {
		return 0, err
	}
	f.pos = newPos
	return newPos, nil
}

// Close invalidates the handle. Closing twice is a Closed-class error.
func (f *File) Close() error {
	if f.closed {
		return fserr.PathError(fserr.KindClosed, "close", f.name)
	}
	f.closed = true
	return nil
}
