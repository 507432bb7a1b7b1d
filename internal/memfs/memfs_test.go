package memfs

import (
	"io/fs"
	"math"
	"testing"
	stdfstest "testing/fstest"

	"github.com/stretchr/testify/require"

	genfs "github.com/pi-pi3/genfs"
	"github.com/pi-pi3/genfs/fserr"
)

func writeOpts() *genfs.OpenOptions[Mode] {
	return genfs.NewOpenOptions[Mode]().
		Write(true).
		Create(true).
		Truncate(true).
		Mode(0o644)
}

func readOpts() *genfs.OpenOptions[Mode] {
	return genfs.NewOpenOptions[Mode]().Read(true)
}

func mustWrite(t *testing.T, fsys *FS, name string, data []byte) {
	t.Helper()
	f, err := fsys.Open(name, writeOpts())
	require.NoError(t, err)
	require.NoError(t, genfs.WriteAll(f, data))
	require.NoError(t, f.Close())
}

func mustRead(t *testing.T, fsys *FS, name string) []byte {
	t.Helper()
	f, err := fsys.Open(name, readOpts())
	require.NoError(t, err)
	data, err := genfs.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return data
}

func TestOpenRequiresAccessMode(t *testing.T) {
	fsys := New()

	_, err := fsys.Open("f", genfs.NewOpenOptions[Mode]())
	require.Error(t, err)
	require.True(t, fserr.IsInvalidInput(err), "got %v", err)
}

func TestOpenTruncateWithoutWrite(t *testing.T) {
	fsys := New()
	mustWrite(t, fsys, "f", []byte("data"))

	_, err := fsys.Open("f", genfs.NewOpenOptions[Mode]().Read(true).Truncate(true))
	require.Error(t, err)
	require.True(t, fserr.IsInvalidInput(err), "got %v", err)
}

func TestOpenDirectory(t *testing.T) {
	fsys := New()
	require.NoError(t, fsys.CreateDir("d", nil))

	_, err := fsys.Open("d", readOpts())
	require.Error(t, err)
	require.True(t, fserr.IsADirectory(err), "got %v", err)
}

func TestWriteZeroFillsSeekGap(t *testing.T) {
	fsys := New()

	f, err := fsys.Open("sparse", genfs.NewOpenOptions[Mode]().Read(true).Write(true).Create(true).Mode(0o644))
	require.NoError(t, err)

	_, err = f.Seek(genfs.Start(3))
	require.NoError(t, err)
	require.NoError(t, genfs.WriteAll(f, []byte("x")))

	_, err = f.Seek(genfs.Start(0))
	require.NoError(t, err)
	data, err := genfs.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 'x'}, data)
	require.NoError(t, f.Close())
}

func TestWriteAtMaxOffset(t *testing.T) {
	fsys := New()

	f, err := fsys.Open("huge", genfs.NewOpenOptions[Mode]().Write(true).Create(true).Mode(0o644))
	require.NoError(t, err)

	_, err = f.Seek(genfs.Start(math.MaxUint64))
	require.NoError(t, err, "seeking past the end is legal")

	// The write cannot be represented; it must fail as a value, not panic.
	_, err = f.Write([]byte{1})
	require.Error(t, err)
	require.True(t, fserr.IsInvalidInput(err), "got %v", err)
	require.NoError(t, f.Close())
}

func TestFileDoubleClose(t *testing.T) {
	fsys := New()
	mustWrite(t, fsys, "f", nil)

	f, err := fsys.Open("f", readOpts())
	require.NoError(t, err)
	require.NoError(t, f.Close())

	err = f.Close()
	require.Error(t, err)
	require.True(t, fserr.IsClosed(err), "got %v", err)

	err = f.Flush()
	require.True(t, fserr.IsClosed(err), "got %v", err)
}

func TestDirClosedCursor(t *testing.T) {
	fsys := New()
	require.NoError(t, fsys.CreateDir("d", nil))

	listing, err := fsys.ReadDir("d")
	require.NoError(t, err)
	require.NoError(t, listing.Close())

	_, err = listing.Next()
	require.True(t, fserr.IsClosed(err), "got %v", err)

	err = listing.Close()
	require.True(t, fserr.IsClosed(err), "got %v", err)
}

func TestRenameOntoNonEmptyDirectory(t *testing.T) {
	fsys := New()
	require.NoError(t, fsys.CreateDir("src", nil))
	require.NoError(t, fsys.CreateDir("dst", nil))
	mustWrite(t, fsys, "dst/occupant", nil)

	err := fsys.Rename("src", "dst")
	require.Error(t, err)
	require.True(t, fserr.IsDirectoryNotEmpty(err), "got %v", err)
}

func TestRenameFileOntoDirectory(t *testing.T) {
	fsys := New()
	mustWrite(t, fsys, "f", nil)
	require.NoError(t, fsys.CreateDir("d", nil))

	err := fsys.Rename("f", "d")
	require.Error(t, err)
	require.True(t, fserr.IsADirectory(err), "got %v", err)
}

func TestRenameDirectoryOntoFile(t *testing.T) {
	fsys := New()
	require.NoError(t, fsys.CreateDir("d", nil))
	mustWrite(t, fsys, "f", nil)

	err := fsys.Rename("d", "f")
	require.Error(t, err)
	require.True(t, fserr.IsNotADirectory(err), "got %v", err)
}

func TestRenameIntoOwnSubtree(t *testing.T) {
	fsys := New()
	opts := genfs.NewDirOptions[Mode]().Recursive(true).Mode(0o755)
	require.NoError(t, fsys.CreateDir("a/b", opts))

	err := fsys.Rename("a", "a/b/a")
	require.Error(t, err)
	require.True(t, fserr.IsInvalidInput(err), "got %v", err)
}

func TestRenameBetweenHardLinks(t *testing.T) {
	fsys := New()
	mustWrite(t, fsys, "a", []byte("inode"))
	require.NoError(t, fsys.HardLink("a", "b"))

	// Both names address the same inode; POSIX leaves both in place.
	require.NoError(t, fsys.Rename("a", "b"))
	require.Equal(t, []byte("inode"), mustRead(t, fsys, "a"))
	require.Equal(t, []byte("inode"), mustRead(t, fsys, "b"))
}

func TestHardLinkSharesWrites(t *testing.T) {
	fsys := New()
	mustWrite(t, fsys, "a", []byte("one"))
	require.NoError(t, fsys.HardLink("a", "b"))

	f, err := fsys.Open("b", genfs.NewOpenOptions[Mode]().Append(true))
	require.NoError(t, err)
	require.NoError(t, genfs.WriteAll(f, []byte(" two")))
	require.NoError(t, f.Close())

	require.Equal(t, []byte("one two"), mustRead(t, fsys, "a"))
}

func TestHardLinkCounts(t *testing.T) {
	fsys := New()
	mustWrite(t, fsys, "a", nil)
	require.NoError(t, fsys.HardLink("a", "b"))

	md, err := fsys.Metadata("a")
	require.NoError(t, err)
	require.Equal(t, uint32(2), md.Links())

	require.NoError(t, fsys.RemoveFile("a"))
	md, err = fsys.Metadata("b")
	require.NoError(t, err)
	require.Equal(t, uint32(1), md.Links())
}

func TestHardLinkDirectory(t *testing.T) {
	fsys := New()
	require.NoError(t, fsys.CreateDir("d", nil))

	err := fsys.HardLink("d", "e")
	require.Error(t, err)
	require.True(t, fserr.IsPermissionDenied(err), "got %v", err)
}

func TestSymlinkLoop(t *testing.T) {
	fsys := New()
	require.NoError(t, fsys.Symlink("b", "a"))
	require.NoError(t, fsys.Symlink("a", "b"))

	_, err := fsys.Metadata("a")
	require.Error(t, err)
	require.True(t, fserr.IsInvalidInput(err), "got %v", err)
	require.False(t, fserr.IsRetryable(err), "a resolution cycle cannot succeed on retry")
}

func TestSymlinkRelativeTarget(t *testing.T) {
	fsys := New()
	require.NoError(t, fsys.CreateDir("a", nil))
	mustWrite(t, fsys, "a/f", []byte("relative"))
	require.NoError(t, fsys.Symlink("f", "a/l"))

	require.Equal(t, []byte("relative"), mustRead(t, fsys, "a/l"))
}

func TestDotDotIsStructural(t *testing.T) {
	fsys := New()
	opts := genfs.NewDirOptions[Mode]().Recursive(true).Mode(0o755)
	require.NoError(t, fsys.CreateDir("a/b", opts))
	mustWrite(t, fsys, "a/f", []byte("sibling"))
	require.NoError(t, fsys.Symlink("/a/b", "l"))

	// ".." steps out of the resolved directory, not the lexical path, so
	// l/.. is /a rather than /.
	got, err := fsys.Canonicalize("l/../f")
	require.NoError(t, err)
	require.Equal(t, "/a/f", got)
}

func TestDirEntryPathThroughSymlinkDotDot(t *testing.T) {
	fsys := New()
	opts := genfs.NewDirOptions[Mode]().Recursive(true).Mode(0o755)
	require.NoError(t, fsys.CreateDir("a/b", opts))
	mustWrite(t, fsys, "a/f", []byte("payload"))
	require.NoError(t, fsys.Symlink("/a/b", "l"))

	// "l/.." resolves structurally to /a; the entries must carry that
	// canonical directory, not a lexical collapse of the argument.
	listing, err := fsys.ReadDir("l/..")
	require.NoError(t, err)
	entries, err := genfs.Collect[DirEntry](listing)
	require.NoError(t, err)

	var found bool
	for _, entry := range entries {
		if entry.FileName() != "f" {
			continue
		}
		found = true
		require.Equal(t, "/a/f", entry.Path())

		md, err := entry.Metadata()
		require.NoError(t, err, "the entry path must address the listed file")
		require.Equal(t, uint64(7), md.Size())
	}
	require.True(t, found, "listing of l/.. must contain f")
}

func TestDotDotAtRoot(t *testing.T) {
	fsys := New()
	mustWrite(t, fsys, "f", nil)

	got, err := fsys.Canonicalize("../../f")
	require.NoError(t, err)
	require.Equal(t, "/f", got)
}

func TestRootMetadata(t *testing.T) {
	fsys := New()

	md, err := fsys.Metadata("/")
	require.NoError(t, err)
	require.True(t, md.IsDir())
	require.Equal(t, Mode(0o755), md.Mode())
}

func TestRemoveRoot(t *testing.T) {
	fsys := New()

	err := fsys.RemoveDir("/")
	require.Error(t, err)
	require.True(t, fserr.IsInvalidInput(err), "got %v", err)
}

func TestCopyFromFS(t *testing.T) {
	src := stdfstest.MapFS{
		"top.txt":        &stdfstest.MapFile{Data: []byte("top"), Mode: 0o600},
		"nested/sub.txt": &stdfstest.MapFile{Data: []byte("nested"), Mode: 0o644},
	}
	fsys := New()

	err := genfs.CopyFromFS[Metadata, FileType, Mode, *File, DirEntry, *Dir](
		src, fsys, ".", func(m fs.FileMode) Mode { return Mode(m) })
	require.NoError(t, err)

	require.Equal(t, []byte("top"), mustRead(t, fsys, "top.txt"))
	require.Equal(t, []byte("nested"), mustRead(t, fsys, "nested/sub.txt"))

	md, err := fsys.Metadata("top.txt")
	require.NoError(t, err)
	require.Equal(t, Mode(0o600), md.Mode())

	md, err = fsys.Metadata("nested")
	require.NoError(t, err)
	require.True(t, md.IsDir())
}
