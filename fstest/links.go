package fstest

import (
	"testing"

	"github.com/stretchr/testify/require"

	genfs "github.com/pi-pi3/genfs"
	"github.com/pi-pi3/genfs/fserr"
)

func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) runSymlinks(t *testing.T) {
	h.run(t, "Symlinks", "CreateAndReadLink", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "target", []byte("pointed at"))

		require.NoError(t, fsys.Symlink("target", "link"))

		got, err := fsys.ReadLink("link")
		require.NoError(t, err)
		require.Equal(t, "target", got, "ReadLink returns the stored target verbatim")
	})

	h.run(t, "Symlinks", "MetadataFollows", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "target", []byte("pointed at"))
		require.NoError(t, fsys.Symlink("target", "link"))

		md, err := fsys.Metadata("link")
		require.NoError(t, err)
		require.True(t, h.IsFile(h.Type(md)), "Metadata follows the link")
		require.Equal(t, uint64(10), h.Size(md))

		md, err = fsys.SymlinkMetadata("link")
		require.NoError(t, err)
		require.True(t, h.IsSymlink(h.Type(md)), "SymlinkMetadata describes the link itself")
	})

	h.run(t, "Symlinks", "Dangling", func(t *testing.T) {
		fsys := h.New()
		require.NoError(t, fsys.Symlink("missing", "dangling"))

		_, err := fsys.Metadata("dangling")
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)

		md, err := fsys.SymlinkMetadata("dangling")
		require.NoError(t, err, "the link itself exists")
		require.True(t, h.IsSymlink(h.Type(md)))
	})

	h.run(t, "Symlinks", "CreateNewSeesDangling", func(t *testing.T) {
		fsys := h.New()
		require.NoError(t, fsys.Symlink("missing", "dangling"))

		opts := genfs.NewOpenOptions[Permissions]().
			Write(true).
			CreateNew(true).
			Mode(h.PrimaryMode)
		_, err := fsys.Open("dangling", opts)
		require.Error(t, err, "exclusive creation must not follow a dangling link")
		require.True(t, fserr.IsAlreadyExists(err), "got %v", err)
	})

	h.run(t, "Symlinks", "ReadThrough", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "target", []byte("shared"))
		require.NoError(t, fsys.Symlink("target", "link"))

		require.Equal(t, []byte("shared"), h.readFile(t, fsys, "link"))
	})

	h.run(t, "Symlinks", "ReadLinkOnRegularFile", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "plain", nil)

		_, err := fsys.ReadLink("plain")
		require.Error(t, err)
		require.True(t, fserr.IsInvalidInput(err), "got %v", err)
	})

	h.run(t, "Symlinks", "DestinationExists", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "occupied", nil)

		err := fsys.Symlink("anywhere", "occupied")
		require.Error(t, err)
		require.True(t, fserr.IsAlreadyExists(err), "got %v", err)
	})

	h.run(t, "Symlinks", "RemoveDirAllDoesNotTraverse", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "keep")
		h.writeFile(t, fsys, "keep/f", []byte("survivor"))
		h.mkdir(t, fsys, "doomed")
		require.NoError(t, fsys.Symlink("/keep", "doomed/escape"))

		require.NoError(t, fsys.RemoveDirAll("doomed"))
		require.Equal(t, []byte("survivor"), h.readFile(t, fsys, "keep/f"))
	})
}

func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) runHardLinks(t *testing.T) {
	h.run(t, "HardLinks", "SharesContents", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "a", []byte("shared bytes"))

		require.NoError(t, fsys.HardLink("a", "b"))
		require.Equal(t, []byte("shared bytes"), h.readFile(t, fsys, "b"))
	})

	h.run(t, "HardLinks", "SurvivesSourceRemoval", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "a", []byte("kept alive"))
		require.NoError(t, fsys.HardLink("a", "b"))

		require.NoError(t, fsys.RemoveFile("a"))
		require.Equal(t, []byte("kept alive"), h.readFile(t, fsys, "b"))
	})

	h.run(t, "HardLinks", "MissingSource", func(t *testing.T) {
		fsys := h.New()

		err := fsys.HardLink("absent", "b")
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})

	h.run(t, "HardLinks", "DestinationExists", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "a", nil)
		h.writeFile(t, fsys, "b", nil)

		err := fsys.HardLink("a", "b")
		require.Error(t, err)
		require.True(t, fserr.IsAlreadyExists(err), "got %v", err)
	})
}

func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) runCanonicalize(t *testing.T) {
	h.run(t, "Canonicalize", "ResolvesDots", func(t *testing.T) {
		fsys := h.New()
		opts := genfs.NewDirOptions[Permissions]().Recursive(true).Mode(h.PrimaryMode)
		require.NoError(t, fsys.CreateDir("a/b", opts))
		h.writeFile(t, fsys, "a/b/f", nil)

		got, err := fsys.Canonicalize("a/./b/../b/f")
		require.NoError(t, err)
		require.Equal(t, "/a/b/f", got)
	})

	h.run(t, "Canonicalize", "ResolvesSymlinks", func(t *testing.T) {
		if !h.Config.Symlinks {
			t.Skip("Backend does not support symlinks")
			return
		}
		fsys := h.New()
		h.mkdir(t, fsys, "a")
		h.writeFile(t, fsys, "a/f", nil)
		require.NoError(t, fsys.Symlink("/a", "l"))

		got, err := fsys.Canonicalize("l/f")
		require.NoError(t, err)
		require.Equal(t, "/a/f", got)
	})

	h.run(t, "Canonicalize", "Missing", func(t *testing.T) {
		fsys := h.New()

		_, err := fsys.Canonicalize("absent/path")
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})
}
