package fstest

import (
	"testing"

	"github.com/stretchr/testify/require"

	genfs "github.com/pi-pi3/genfs"
	"github.com/pi-pi3/genfs/fserr"
)

func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) runOpenOptions(t *testing.T) {
	h.run(t, "OpenOptions", "Defaults", func(t *testing.T) {
		opts := genfs.NewOpenOptions[Permissions]()

		require.False(t, opts.HasRead())
		require.False(t, opts.HasWrite())
		require.False(t, opts.HasAppend())
		require.False(t, opts.HasTruncate())
		require.False(t, opts.HasCreate())
		require.False(t, opts.HasCreateNew())
		require.Zero(t, opts.Flags())

		var zero Permissions
		require.Equal(t, zero, opts.Permissions())
	})

	h.run(t, "OpenOptions", "CreateWriteReadBack", func(t *testing.T) {
		fsys := h.New()

		opts := genfs.NewOpenOptions[Permissions]().
			Read(true).
			Write(true).
			Create(true).
			Mode(h.PrimaryMode)
		f, err := fsys.Open("scratch", opts)
		require.NoError(t, err)

		md, err := fsys.Metadata("scratch")
		require.NoError(t, err)
		require.Zero(t, h.Size(md), "newly created file must be empty")

		require.NoError(t, genfs.WriteAll(f, []byte("hello")))

		pos, err := f.Seek(genfs.Start(0))
		require.NoError(t, err)
		require.Zero(t, pos)

		data, err := genfs.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, []byte("hello"), data)
		require.NoError(t, f.Close())
	})

	h.run(t, "OpenOptions", "MissingWithoutCreate", func(t *testing.T) {
		fsys := h.New()

		_, err := fsys.Open("absent", genfs.NewOpenOptions[Permissions]().Read(true))
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})

	h.run(t, "OpenOptions", "CreateRequiresWrite", func(t *testing.T) {
		fsys := h.New()

		opts := genfs.NewOpenOptions[Permissions]().Read(true).Create(true).Mode(h.PrimaryMode)
		_, err := fsys.Open("scratch", opts)
		require.Error(t, err)
		require.True(t, fserr.IsInvalidInput(err), "got %v", err)
	})

	h.run(t, "OpenOptions", "CreateNewExclusive", func(t *testing.T) {
		fsys := h.New()

		opts := genfs.NewOpenOptions[Permissions]().
			Write(true).
			CreateNew(true).
			Mode(h.PrimaryMode)
		f, err := fsys.Open("exclusive", opts)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, err = fsys.Open("exclusive", opts)
		require.Error(t, err)
		require.True(t, fserr.IsAlreadyExists(err), "got %v", err)
	})

	h.run(t, "OpenOptions", "AppendForcesEnd", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "log", []byte("abc"))

		opts := genfs.NewOpenOptions[Permissions]().Read(true).Append(true)
		f, err := fsys.Open("log", opts)
		require.NoError(t, err)

		// The position is moved away from the end on purpose; append mode
		// must still land the write after the existing bytes.
		_, err = f.Seek(genfs.Start(0))
		require.NoError(t, err)
		require.NoError(t, genfs.WriteAll(f, []byte("def")))

		_, err = f.Seek(genfs.Start(0))
		require.NoError(t, err)
		data, err := genfs.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, []byte("abcdef"), data)
		require.NoError(t, f.Close())
	})

	h.run(t, "OpenOptions", "TruncateExisting", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "data", []byte("old contents"))

		opts := genfs.NewOpenOptions[Permissions]().Write(true).Truncate(true)
		f, err := fsys.Open("data", opts)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		md, err := fsys.Metadata("data")
		require.NoError(t, err)
		require.Zero(t, h.Size(md))
	})

	h.run(t, "OpenOptions", "Reusable", func(t *testing.T) {
		fsys := h.New()

		opts := genfs.NewOpenOptions[Permissions]().
			Write(true).
			Create(true).
			Mode(h.PrimaryMode)
		for _, name := range []string{"first", "second"} {
			f, err := fsys.Open(name, opts)
			require.NoError(t, err, "open %q", name)
			require.NoError(t, f.Close())
		}
	})
}
