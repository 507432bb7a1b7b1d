package fstest

import (
	"testing"

	"github.com/stretchr/testify/require"

	genfs "github.com/pi-pi3/genfs"
	"github.com/pi-pi3/genfs/fserr"
)

func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) runTree(t *testing.T) {
	h.run(t, "Tree", "MetadataMissing", func(t *testing.T) {
		fsys := h.New()

		_, err := fsys.Metadata("absent")
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})

	h.run(t, "Tree", "MetadataTypes", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")
		h.writeFile(t, fsys, "f", []byte("abc"))

		md, err := fsys.Metadata("d")
		require.NoError(t, err)
		require.True(t, h.IsDir(h.Type(md)))

		md, err = fsys.Metadata("f")
		require.NoError(t, err)
		require.True(t, h.IsFile(h.Type(md)))
		require.Equal(t, uint64(3), h.Size(md))
	})

	h.run(t, "Tree", "CreateDirExisting", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")

		err := fsys.CreateDir("d", genfs.NewDirOptions[Permissions]().Mode(h.PrimaryMode))
		require.Error(t, err)
		require.True(t, fserr.IsAlreadyExists(err), "got %v", err)

		// Recursive creation treats existing directories as success.
		opts := genfs.NewDirOptions[Permissions]().Recursive(true).Mode(h.PrimaryMode)
		require.NoError(t, fsys.CreateDir("d", opts))
	})

	h.run(t, "Tree", "CreateDirMissingParent", func(t *testing.T) {
		fsys := h.New()

		err := fsys.CreateDir("x/y", genfs.NewDirOptions[Permissions]().Mode(h.PrimaryMode))
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})

	h.run(t, "Tree", "CreateDirRecursive", func(t *testing.T) {
		fsys := h.New()

		opts := genfs.NewDirOptions[Permissions]().Recursive(true).Mode(h.PrimaryMode)
		require.NoError(t, fsys.CreateDir("a/b/c", opts))

		for _, name := range []string{"a", "a/b", "a/b/c"} {
			md, err := fsys.Metadata(name)
			require.NoError(t, err, "metadata %q", name)
			require.True(t, h.IsDir(h.Type(md)), "%q must be a directory", name)
		}
	})

	h.run(t, "Tree", "RemoveFile", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "f", []byte("x"))

		require.NoError(t, fsys.RemoveFile("f"))
		_, err := fsys.Metadata("f")
		require.True(t, fserr.IsNotFound(err), "got %v", err)

		err = fsys.RemoveFile("f")
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})

	h.run(t, "Tree", "RemoveFileOnDirectory", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")

		err := fsys.RemoveFile("d")
		require.Error(t, err)
		require.True(t, fserr.IsADirectory(err), "got %v", err)
	})

	h.run(t, "Tree", "RemoveDirLifecycle", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")
		h.writeFile(t, fsys, "d/f", nil)

		err := fsys.RemoveDir("d")
		require.Error(t, err)
		require.True(t, fserr.IsDirectoryNotEmpty(err), "got %v", err)

		require.NoError(t, fsys.RemoveFile("d/f"))
		require.NoError(t, fsys.RemoveDir("d"))

		err = fsys.RemoveDir("d")
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})

	h.run(t, "Tree", "RemoveDirAll", func(t *testing.T) {
		fsys := h.New()
		opts := genfs.NewDirOptions[Permissions]().Recursive(true).Mode(h.PrimaryMode)
		require.NoError(t, fsys.CreateDir("a/b/c", opts))
		h.writeFile(t, fsys, "a/f", []byte("1"))
		h.writeFile(t, fsys, "a/b/f", []byte("2"))

		require.NoError(t, fsys.RemoveDirAll("a"))
		_, err := fsys.Metadata("a")
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})

	h.run(t, "Tree", "RenameReplacesFile", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "a", []byte("alpha"))
		h.writeFile(t, fsys, "b", []byte("beta"))

		require.NoError(t, fsys.Rename("a", "b"))

		_, err := fsys.Metadata("a")
		require.True(t, fserr.IsNotFound(err), "got %v", err)
		require.Equal(t, []byte("alpha"), h.readFile(t, fsys, "b"))
	})

	h.run(t, "Tree", "RenameMissing", func(t *testing.T) {
		fsys := h.New()

		err := fsys.Rename("absent", "elsewhere")
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})

	h.run(t, "Tree", "RenameDirectory", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")
		h.writeFile(t, fsys, "d/f", []byte("kept"))

		require.NoError(t, fsys.Rename("d", "e"))

		_, err := fsys.Metadata("d")
		require.True(t, fserr.IsNotFound(err), "got %v", err)
		require.Equal(t, []byte("kept"), h.readFile(t, fsys, "e/f"))
	})

	h.run(t, "Tree", "CopyReportsSize", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "src", []byte("copy payload"))

		n, err := fsys.Copy("src", "dst")
		require.NoError(t, err)

		md, err := fsys.Metadata("dst")
		require.NoError(t, err)
		require.Equal(t, h.Size(md), n, "Copy must report the destination size")
		require.Equal(t, []byte("copy payload"), h.readFile(t, fsys, "dst"))
	})

	h.run(t, "Tree", "CopyOverwrites", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "src", []byte("short"))
		h.writeFile(t, fsys, "dst", []byte("much longer previous contents"))

		n, err := fsys.Copy("src", "dst")
		require.NoError(t, err)
		require.Equal(t, uint64(5), n)
		require.Equal(t, []byte("short"), h.readFile(t, fsys, "dst"))
	})

	h.run(t, "Tree", "CopyDirectory", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")

		_, err := fsys.Copy("d", "e")
		require.Error(t, err)
		require.True(t, fserr.IsADirectory(err), "got %v", err)
	})
}

func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) runPermissions(t *testing.T) {
	h.run(t, "Permissions", "SetAndReadBack", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "f", nil)

		require.NoError(t, fsys.SetPermissions("f", h.AltMode))

		md, err := fsys.Metadata("f")
		require.NoError(t, err)
		require.Equal(t, h.AltMode, h.Mode(md))
	})

	h.run(t, "Permissions", "Missing", func(t *testing.T) {
		fsys := h.New()

		err := fsys.SetPermissions("absent", h.AltMode)
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})

	h.run(t, "Permissions", "CopyPreservesMode", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "src", []byte("x"))
		require.NoError(t, fsys.SetPermissions("src", h.AltMode))

		_, err := fsys.Copy("src", "dst")
		require.NoError(t, err)

		md, err := fsys.Metadata("dst")
		require.NoError(t, err)
		require.Equal(t, h.AltMode, h.Mode(md))
	})
}
