package memfs

import (
	"testing"

	"github.com/pi-pi3/genfs/fstest"
)

func TestConformance(t *testing.T) {
	h := &fstest.Harness[Metadata, FileType, Mode, *File, DirEntry, *Dir, *FS]{
		New:         New,
		Size:        Metadata.Size,
		Mode:        Metadata.Mode,
		Type:        Metadata.FileType,
		IsFile:      FileType.IsFile,
		IsDir:       FileType.IsDir,
		IsSymlink:   FileType.IsSymlink,
		PrimaryMode: 0o644,
		AltMode:     0o600,
		Config:      fstest.POSIXConfig(),
	}
	h.Run(t)
}
