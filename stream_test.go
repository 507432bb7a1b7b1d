package genfs

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pi-pi3/genfs/fserr"
)

// chunkFile is a File stub that accepts at most chunk bytes per write and
// serves reads from its buffer in chunk-sized pieces.
type chunkFile struct {
	data  []byte
	pos   int
	chunk int
	err   error
}

func (f *chunkFile) Read(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.pos >= len(f.data) {
		return 0, nil
	}
	n := len(p)
	if n > f.chunk {
		n = f.chunk
	}
	n = copy(p[:n], f.data[f.pos:])
	f.pos += n
	return n, nil
}

func (f *chunkFile) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := len(p)
	if n > f.chunk {
		n = f.chunk
	}
	f.data = append(f.data, p[:n]...)
	return n, nil
}

func (f *chunkFile) Flush() error { return nil }

func (f *chunkFile) Seek(pos SeekFrom) (uint64, error) { return 0, nil }

func (f *chunkFile) Close() error { return nil }

func TestWriteAllLoopsOverShortWrites(t *testing.T) {
	f := &chunkFile{chunk: 3}

	require.NoError(t, WriteAll(f, []byte("hello world")))
	require.Equal(t, []byte("hello world"), f.data)
}

func TestWriteAllPropagatesErrors(t *testing.T) {
	sentinel := errors.New("disk detached")
	f := &chunkFile{chunk: 3, err: sentinel}

	err := WriteAll(f, []byte("doomed"))
	require.ErrorIs(t, err, sentinel)
}

func TestWriteAllZeroProgress(t *testing.T) {
	f := &chunkFile{chunk: 0}

	err := WriteAll(f, []byte("stuck"))
	require.Error(t, err)
	require.Equal(t, fserr.KindIO, fserr.KindOf(err))
}

func TestWriteAllEmpty(t *testing.T) {
	f := &chunkFile{chunk: 0}
	require.NoError(t, WriteAll(f, nil))
}

func TestReadAllDrainsInChunks(t *testing.T) {
	f := &chunkFile{data: []byte("stream contents"), chunk: 4}

	data, err := ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, []byte("stream contents"), data)
}

func TestReadAllAcceptsEOFError(t *testing.T) {
	// Backends bridged from io.Reader report end-of-stream as io.EOF
	// rather than a zero count.
	f := &chunkFile{data: []byte("x"), chunk: 4}
	data, err := ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, []byte("x"), data)

	f.err = io.EOF
	data, err = ReadAll(f)
	require.NoError(t, err)
	require.Empty(t, data)
}

// sliceDir is a Dir stub yielding canned entries and recording Close calls.
type sliceDir struct {
	entries []string
	pos     int
	err     error
	closed  int
}

func (d *sliceDir) Next() (string, error) {
	if d.err != nil && d.pos >= len(d.entries) {
		return "", d.err
	}
	if d.pos >= len(d.entries) {
		return "", io.EOF
	}
	entry := d.entries[d.pos]
	d.pos++
	return entry, nil
}

func (d *sliceDir) Close() error {
	d.closed++
	return nil
}

func TestCollectDrainsAndCloses(t *testing.T) {
	d := &sliceDir{entries: []string{"a", "b", "c"}}

	entries, err := Collect[string](d)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, entries)
	require.Equal(t, 1, d.closed, "Collect closes the listing exactly once")
}

func TestCollectEmpty(t *testing.T) {
	d := &sliceDir{}

	entries, err := Collect[string](d)
	require.NoError(t, err)
	require.Empty(t, entries)
	require.Equal(t, 1, d.closed)
}

func TestCollectStopsAtFirstError(t *testing.T) {
	sentinel := errors.New("listing went away")
	d := &sliceDir{entries: []string{"a"}, err: sentinel}

	entries, err := Collect[string](d)
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, []string{"a"}, entries, "entries before the failure are kept")
	require.Equal(t, 1, d.closed)
}
