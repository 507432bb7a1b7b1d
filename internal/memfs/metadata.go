package memfs

// Mode is the backend's permission representation: plain unix permission
// bits. The zero value (no permissions) is the default mode of the option
// builders.
type Mode uint32

// FileType is the union of the backend's file types.
type FileType uint8

const (
	// TypeFile is a regular file.
	TypeFile FileType = iota
	// TypeDir is a directory.
	TypeDir
	// TypeSymlink is a symbolic link.
	TypeSymlink
)

// String returns a string representation of the FileType.
func (t FileType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "dir"
	case TypeSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// IsFile reports whether the type is a regular file.
func (t FileType) IsFile() bool { return t == TypeFile }

// IsDir reports whether the type is a directory.
func (t FileType) IsDir() bool { return t == TypeDir }

// IsSymlink reports whether the type is a symbolic link.
func (t FileType) IsSymlink() bool { return t == TypeSymlink }

// Metadata is a point-in-time snapshot of a node's attributes.
type Metadata struct {
	size     uint64
	mode     Mode
	fileType FileType
	links    uint32
}

// Size returns the length in bytes: file contents for regular files, the
// target string for symlinks, 0 for directories.
func (m Metadata) Size() uint64 { return m.size }

// Mode returns the recorded permission bits.
func (m Metadata) Mode() Mode { return m.mode }

// FileType returns the node's type.
func (m Metadata) FileType() FileType { return m.fileType }

// Links returns the hard link count.
func (m Metadata) Links() uint32 { return m.links }

// IsDir reports whether the node is a directory.
func (m Metadata) IsDir() bool { return m.fileType.IsDir() }

// IsFile reports whether the node is a regular file.
func (m Metadata) IsFile() bool { return m.fileType.IsFile() }

// IsSymlink reports whether the node is a symbolic link.
func (m Metadata) IsSymlink() bool { return m.fileType.IsSymlink() }
