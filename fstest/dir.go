package fstest

import (
	"io"
	"path"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	genfs "github.com/pi-pi3/genfs"
	"github.com/pi-pi3/genfs/fserr"
)

func (h *Harness[Metadata, FileType, Permissions, F, Entry, D, FSys]) runDir(t *testing.T) {
	h.run(t, "Dir", "ListsChildren", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")
		h.mkdir(t, fsys, "d/sub")
		h.writeFile(t, fsys, "d/a", []byte("1"))
		h.writeFile(t, fsys, "d/b", []byte("22"))

		listing, err := fsys.ReadDir("d")
		require.NoError(t, err)
		entries, err := genfs.Collect[Entry](listing)
		require.NoError(t, err)

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.FileName())
		}
		sort.Strings(names)
		require.Equal(t, []string{"a", "b", "sub"}, names)
	})

	h.run(t, "Dir", "EntryPathAddressesEntry", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")
		h.writeFile(t, fsys, "d/a", []byte("abc"))

		listing, err := fsys.ReadDir("d")
		require.NoError(t, err)
		entries, err := genfs.Collect[Entry](listing)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		entry := entries[0]
		require.Equal(t, entry.FileName(), path.Base(entry.Path()),
			"entry path ends in the entry's bare name")

		// The full path must address this entry when passed back to the
		// filesystem, whatever directory form the backend chose.
		md, err := fsys.Metadata(entry.Path())
		require.NoError(t, err)
		require.Equal(t, uint64(3), h.Size(md))
	})

	h.run(t, "Dir", "EntryMetadata", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")
		h.mkdir(t, fsys, "d/sub")
		h.writeFile(t, fsys, "d/a", []byte("abc"))

		listing, err := fsys.ReadDir("d")
		require.NoError(t, err)
		entries, err := genfs.Collect[Entry](listing)
		require.NoError(t, err)

		for _, entry := range entries {
			ft, err := entry.FileType()
			require.NoError(t, err)
			switch entry.FileName() {
			case "a":
				require.True(t, h.IsFile(ft))
				md, err := entry.Metadata()
				require.NoError(t, err)
				require.Equal(t, uint64(3), h.Size(md))
			case "sub":
				require.True(t, h.IsDir(ft))
			default:
				t.Fatalf("unexpected entry %q", entry.FileName())
			}
		}
	})

	h.run(t, "Dir", "ExhaustionIsEOF", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")
		h.writeFile(t, fsys, "d/a", nil)

		listing, err := fsys.ReadDir("d")
		require.NoError(t, err)

		_, err = listing.Next()
		require.NoError(t, err)
		_, err = listing.Next()
		require.ErrorIs(t, err, io.EOF)
		_, err = listing.Next()
		require.ErrorIs(t, err, io.EOF, "the cursor must stay exhausted")
		require.NoError(t, listing.Close())
	})

	h.run(t, "Dir", "Empty", func(t *testing.T) {
		fsys := h.New()
		h.mkdir(t, fsys, "d")

		listing, err := fsys.ReadDir("d")
		require.NoError(t, err)
		entries, err := genfs.Collect[Entry](listing)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	h.run(t, "Dir", "OnFile", func(t *testing.T) {
		fsys := h.New()
		h.writeFile(t, fsys, "plain", nil)

		_, err := fsys.ReadDir("plain")
		require.Error(t, err)
		require.True(t, fserr.IsNotADirectory(err), "got %v", err)
	})

	h.run(t, "Dir", "Missing", func(t *testing.T) {
		fsys := h.New()

		_, err := fsys.ReadDir("absent")
		require.Error(t, err)
		require.True(t, fserr.IsNotFound(err), "got %v", err)
	})
}
