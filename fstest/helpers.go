package fstest

import (
	"testing"

	"github.com/stretchr/testify/require"

	genfs "github.com/pi-pi3/genfs"
)

// writeFile creates or replaces name with data, using PrimaryMode.
func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) writeFile(t *testing.T, fsys FSys, name string, data []byte) {
	t.Helper()

	opts := genfs.NewOpenOptions[Permissions]().
		Write(true).
		Create(true).
		Truncate(true).
		Mode(h.PrimaryMode)
	f, err := fsys.Open(name, opts)
	require.NoError(t, err, "open %q for writing", name)
	require.NoError(t, genfs.WriteAll(f, data), "write %q", name)
	require.NoError(t, f.Close(), "close %q", name)
}

// readFile returns the full contents of name.
func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) readFile(t *testing.T, fsys FSys, name string) []byte {
	t.Helper()

	f, err := fsys.Open(name, genfs.NewOpenOptions[Permissions]().Read(true))
	require.NoError(t, err, "open %q for reading", name)
	data, err := genfs.ReadAll(f)
	require.NoError(t, err, "read %q", name)
	require.NoError(t, f.Close(), "close %q", name)
	return data
}

// mkdir creates a single directory with PrimaryMode.
func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) mkdir(t *testing.T, fsys FSys, name string) {
	t.Helper()

	opts := genfs.NewDirOptions[Permissions]().Mode(h.PrimaryMode)
	require.NoError(t, fsys.CreateDir(name, opts), "create dir %q", name)
}
