package fstest

import (
	"testing"

	"github.com/stretchr/testify/require"

	genfs "github.com/pi-pi3/genfs"
	"github.com/pi-pi3/genfs/fserr"
)

func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) runFile(t *testing.T) {
	h.run(t, "File", "ZeroLengthRead", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "data", []byte("payload"))

		f, err := fsys.Open("data", genfs.NewOpenOptions[Permissions]().Read(true))
		require.NoError(t, err)
		defer f.Close()

		n, err := f.Read(nil)
		require.NoError(t, err, "zero-length reads must always succeed")
		require.Zero(t, n)
	})

	h.run(t, "File", "ReadAtEnd", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "data", []byte("ab"))

		f, err := fsys.Open("data", genfs.NewOpenOptions[Permissions]().Read(true))
		require.NoError(t, err)
		defer f.Close()

		buf := make([]byte, 8)
		n, err := f.Read(buf)
		require.NoError(t, err)
		require.Equal(t, 2, n)

		n, err = f.Read(buf)
		require.NoError(t, err, "reads at end-of-file signal with a zero count")
		require.Zero(t, n)
	})

	h.run(t, "File", "SeekStart", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "data", []byte("hello"))

		f, err := fsys.Open("data", genfs.NewOpenOptions[Permissions]().Read(true))
		require.NoError(t, err)
		defer f.Close()

		pos, err := f.Seek(genfs.Start(1))
		require.NoError(t, err)
		require.Equal(t, uint64(1), pos)

		data, err := genfs.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, []byte("ello"), data)
	})

	h.run(t, "File", "SeekEnd", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "data", []byte("hello"))

		f, err := fsys.Open("data", genfs.NewOpenOptions[Permissions]().Read(true))
		require.NoError(t, err)
		defer f.Close()

		pos, err := f.Seek(genfs.End(-2))
		require.NoError(t, err)
		require.Equal(t, uint64(3), pos)

		data, err := genfs.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, []byte("lo"), data)
	})

	h.run(t, "File", "SeekNegativeResult", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "data", []byte("abc"))

		f, err := fsys.Open("data", genfs.NewOpenOptions[Permissions]().Read(true))
		require.NoError(t, err)
		defer f.Close()

		_, err = f.Seek(genfs.Current(-1))
		require.Error(t, err)
		require.True(t, fserr.IsInvalidInput(err), "got %v", err)

		// The failed seek must not have moved the position.
		pos, err := f.Seek(genfs.Current(0))
		require.NoError(t, err)
		require.Zero(t, pos)
	})

	h.run(t, "File", "SeekPastEnd", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "data", []byte("abc"))

		f, err := fsys.Open("data", genfs.NewOpenOptions[Permissions]().Read(true))
		require.NoError(t, err)
		defer f.Close()

		pos, err := f.Seek(genfs.Start(100))
		require.NoError(t, err, "seeking past end-of-file is allowed")
		require.Equal(t, uint64(100), pos)

		n, err := f.Read(make([]byte, 4))
		require.NoError(t, err)
		require.Zero(t, n)
	})

	h.run(t, "File", "Flush", func(t *testing.T) {
		fsys := h.New()

		opts := genfs.NewOpenOptions[Permissions]().
			Write(true).
			Create(true).
			Mode(h.PrimaryMode)
		f, err := fsys.Open("data", opts)
		require.NoError(t, err)
		defer f.Close()

		require.NoError(t, genfs.WriteAll(f, []byte("buffered")))
		require.NoError(t, f.Flush())
	})

	h.run(t, "File", "UseAfterClose", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "data", []byte("abc"))

		opts := genfs.NewOpenOptions[Permissions]().Read(true).Write(true)
		f, err := fsys.Open("data", opts)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, err = f.Read(make([]byte, 1))
		require.Error(t, err, "read on a closed handle must fail")

		_, err = f.Write([]byte("x"))
		require.Error(t, err, "write on a closed handle must fail")

		_, err = f.Seek(genfs.Start(0))
		require.Error(t, err, "seek on a closed handle must fail")
	})
}
