package memfs

import (
	"sort"
	"strings"
	"sync"

	genfs "github.com/pi-pi3/genfs"
	"github.com/pi-pi3/genfs/fserr"
)

// FS is an in-memory filesystem rooted at "/".
//
// The zero value is not usable; construct with New. A single mutex guards
// the tree: read-only operations take shared access, mutating operations
// exclusive access, which also discharges the contract's external
// synchronization requirement for tests that share one FS across
// goroutines.
type FS struct {
	mu   sync.RWMutex
	root *node
}

// New creates an empty in-memory filesystem whose root directory carries
// mode 0755.
func New() *FS {
	return &FS{root: newDir(0o755)}
}

var (
	errNoAccess        = fserr.New(fserr.KindInvalidInput, "no access mode requested")
	errTruncateNoWrite = fserr.New(fserr.KindInvalidInput, "truncate requires write access")
)

// Open opens the file at name with the given options.
func (fsys *FS) Open(name string, options *genfs.OpenOptions[Mode]) (*File, error) {
	if options == nil {
		options = genfs.NewOpenOptions[Mode]()
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if !options.HasRead() && !options.HasWrite() && !options.HasAppend() {
		return nil, fserr.WrapPath(errNoAccess, fserr.KindInvalidInput, "open", name)
	}
	if options.HasTruncate() && !options.HasWrite() {
		return nil, fserr.WrapPath(errTruncateNoWrite, fserr.KindInvalidInput, "open", name)
	}

	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	parent, _, leaf, err := fsys.resolveParent("open", name)
	if err != nil {
		return nil, err
	}
	existing, exists := parent.children[leaf]

	if options.HasCreateNew() {
		// Anything occupying the slot fails, including a dangling symlink.
		if exists {
			return nil, fserr.PathError(fserr.KindAlreadyExists, "open", name)
		}
		n := newFile(options.Permissions())
		parent.children[leaf] = n
		return fsys.newHandle(n, name, options), nil
	}

	if exists {
		n := existing
		if n.fileType.IsSymlink() {
			n, _, err = fsys.resolve("open", name, true)
			if err != nil {
				return nil, err
			}
		}
		if n.fileType.IsDir() {
			return nil, fserr.PathError(fserr.KindIsADirectory, "open", name)
		}
		if options.HasTruncate() {
			n.data = n.data[:0]
		}
		return fsys.newHandle(n, name, options), nil
	}

	if options.HasCreate() {
		n := newFile(options.Permissions())
		parent.children[leaf] = n
		return fsys.newHandle(n, name, options), nil
	}
	return nil, fserr.PathError(fserr.KindNotFound, "open", name)
}

func (fsys *FS) newHandle(n *node, name string, options *genfs.OpenOptions[Mode]) *File {
	return &File{
		fsys:       fsys,
		node:       n,
		name:       name,
		readable:   options.HasRead(),
		writable:   options.HasWrite() || options.HasAppend(),
		appendMode: options.HasAppend(),
	}
}

// RemoveFile removes the file or symlink at name. A symlink is removed as
// a link; its target is untouched.
func (fsys *FS) RemoveFile(name string) error {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	parent, _, leaf, err := fsys.resolveParent("remove_file", name)
	if err != nil {
		return err
	}
	child, ok := parent.children[leaf]
	if !ok {
		return fserr.PathError(fserr.KindNotFound, "remove_file", name)
	}
	if child.fileType.IsDir() {
		return fserr.PathError(fserr.KindIsADirectory, "remove_file", name)
	}
	delete(parent.children, leaf)
	child.links--
	return nil
}

// Metadata returns metadata for name, following symlinks.
func (fsys *FS) Metadata(name string) (Metadata, error) {
	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	n, _, err := fsys.resolve("metadata", name, true)
	if err != nil {
		return Metadata{}, err
	}
	return n.metadata(), nil
}

// SymlinkMetadata returns metadata for name without following a symlink at
// the final component.
func (fsys *FS) SymlinkMetadata(name string) (Metadata, error) {
	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	n, _, err := fsys.resolve("symlink_metadata", name, false)
	if err != nil {
		return Metadata{}, err
	}
	return n.metadata(), nil
}

// Rename moves from to to, replacing to if it exists. Replacing a
// directory requires to be an empty directory; moving a directory into its
// own subtree fails with InvalidInput.
func (fsys *FS) Rename(from, to string) error {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	fromParent, fromCanon, fromLeaf, err := fsys.resolveParent("rename", from)
	if err != nil {
		return err
	}
	src, ok := fromParent.children[fromLeaf]
	if !ok {
		return fserr.PathError(fserr.KindNotFound, "rename", from)
	}
	toParent, toCanon, toLeaf, err := fsys.resolveParent("rename", to)
	if err != nil {
		return err
	}

	fromPath := canonPath(append(fromCanon, fromLeaf))
	toPath := canonPath(append(toCanon, toLeaf))
	if fromPath == toPath {
		return nil
	}
	if src.fileType.IsDir() && strings.HasPrefix(toPath, fromPath+"/") {
		return fserr.PathError(fserr.KindInvalidInput, "rename", to)
	}

	if dst, exists := toParent.children[toLeaf]; exists {
		if dst == src {
			// Two names for the same inode; POSIX leaves both in place.
			return nil
		}
		if dst.fileType.IsDir() {
			if !src.fileType.IsDir() {
				return fserr.PathError(fserr.KindIsADirectory, "rename", to)
			}
			if len(dst.children) > 0 {
				return fserr.PathError(fserr.KindDirectoryNotEmpty, "rename", to)
			}
		} else if src.fileType.IsDir() {
			return fserr.PathError(fserr.KindNotADirectory, "rename", to)
		}
		dst.links--
	}

	toParent.children[toLeaf] = src
	delete(fromParent.children, fromLeaf)
	return nil
}

// Copy copies the contents and permission bits of the file at from to to,
// overwriting to. Returns the number of bytes copied, which equals the
// resulting length of to.
func (fsys *FS) Copy(from, to string) (uint64, error) {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	src, _, err := fsys.resolve("copy", from, true)
	if err != nil {
		return 0, err
	}
	if src.fileType.IsDir() {
		return 0, fserr.PathError(fserr.KindIsADirectory, "copy", from)
	}
	data := append([]byte(nil), src.data...)

	toParent, _, toLeaf, err := fsys.resolveParent("copy", to)
	if err != nil {
		return 0, err
	}
	dst, exists := toParent.children[toLeaf]
	if exists {
		if dst.fileType.IsSymlink() {
			dst, _, err = fsys.resolve("copy", to, true)
			if err != nil {
				return 0, err
			}
		}
		if dst.fileType.IsDir() {
			return 0, fserr.PathError(fserr.KindIsADirectory, "copy", to)
		}
	} else {
		dst = newFile(src.mode)
		toParent.children[toLeaf] = dst
	}

	dst.data = data
	dst.mode = src.mode
	return uint64(len(data)), nil
}

// HardLink creates dst as another name for the inode at src. Directories
// cannot be hard linked; a symlink at src is linked itself, not followed.
func (fsys *FS) HardLink(src, dst string) error {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	srcNode, _, err := fsys.resolve("hard_link", src, false)
	if err != nil {
		return err
	}
	if srcNode.fileType.IsDir() {
		return fserr.PathError(fserr.KindPermissionDenied, "hard_link", src)
	}
	dstParent, _, dstLeaf, err := fsys.resolveParent("hard_link", dst)
	if err != nil {
		return err
	}
	if _, exists := dstParent.children[dstLeaf]; exists {
		return fserr.PathError(fserr.KindAlreadyExists, "hard_link", dst)
	}
	dstParent.children[dstLeaf] = srcNode
	srcNode.links++
	return nil
}

// Symlink creates dst as a symbolic reference to src. The src string is
// stored as-is; it is not validated and may dangle.
func (fsys *FS) Symlink(src, dst string) error {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	parent, _, leaf, err := fsys.resolveParent("symlink", dst)
	if err != nil {
		return err
	}
	if _, exists := parent.children[leaf]; exists {
		return fserr.PathError(fserr.KindAlreadyExists, "symlink", dst)
	}
	parent.children[leaf] = newSymlink(src)
	return nil
}

// ReadLink returns the raw, unresolved target of the symlink at name.
func (fsys *FS) ReadLink(name string) (string, error) {
	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	n, _, err := fsys.resolve("read_link", name, false)
	if err != nil {
		return "", err
	}
	if !n.fileType.IsSymlink() {
		return "", fserr.PathError(fserr.KindInvalidInput, "read_link", name)
	}
	return n.target, nil
}

// Canonicalize resolves symlinks and "." and ".." components and returns
// the canonical absolute path of name.
func (fsys *FS) Canonicalize(name string) (string, error) {
	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	_, canon, err := fsys.resolve("canonicalize", name, true)
	if err != nil {
		return "", err
	}
	return canonPath(canon), nil
}

// CreateDir creates a directory at name. In recursive mode missing
// ancestors are created with the same mode and an existing directory at
// name is not an error.
func (fsys *FS) CreateDir(name string, options *genfs.DirOptions[Mode]) error {
	if options == nil {
		options = genfs.NewDirOptions[Mode]()
	}

	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	if !options.IsRecursive() {
		parent, _, leaf, err := fsys.resolveParent("create_dir", name)
		if err != nil {
			return err
		}
		if _, exists := parent.children[leaf]; exists {
			return fserr.PathError(fserr.KindAlreadyExists, "create_dir", name)
		}
		parent.children[leaf] = newDir(options.Permissions())
		return nil
	}

	comps := splitPath(name)
	prefix := ""
	for i, c := range comps {
		if c == "" || c == "." || c == ".." {
			// ".." participates in resolution of deeper components but
			// never names a directory to create.
			prefix += c + "/"
			continue
		}
		prefix += c + "/"
		last := i == len(comps)-1

		n, _, err := fsys.resolve("create_dir", prefix, true)
		if err == nil {
			if n.fileType.IsDir() {
				continue
			}
			if last {
				return fserr.PathError(fserr.KindAlreadyExists, "create_dir", name)
			}
			return fserr.PathError(fserr.KindNotADirectory, "create_dir", name)
		}
		if !fserr.IsNotFound(err) {
			return err
		}
		parent, _, leaf, err := fsys.resolveParent("create_dir", prefix)
		if err != nil {
			return err
		}
		parent.children[leaf] = newDir(options.Permissions())
	}
	return nil
}

// RemoveDir removes the empty directory at name.
func (fsys *FS) RemoveDir(name string) error {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	parent, _, leaf, err := fsys.resolveParent("remove_dir", name)
	if err != nil {
		return err
	}
	child, ok := parent.children[leaf]
	if !ok {
		return fserr.PathError(fserr.KindNotFound, "remove_dir", name)
	}
	if !child.fileType.IsDir() {
		return fserr.PathError(fserr.KindNotADirectory, "remove_dir", name)
	}
	if len(child.children) > 0 {
		return fserr.PathError(fserr.KindDirectoryNotEmpty, "remove_dir", name)
	}
	delete(parent.children, leaf)
	child.links--
	return nil
}

// RemoveDirAll removes name and everything below it. Symlinks inside the
// tree are removed as links, never traversed. The sweep aborts on the
// first failure, leaving already-removed children removed.
func (fsys *FS) RemoveDirAll(name string) error {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	parent, _, leaf, err := fsys.resolveParent("remove_dir_all", name)
	if err != nil {
		return err
	}
	child, ok := parent.children[leaf]
	if !ok {
		return fserr.PathError(fserr.KindNotFound, "remove_dir_all", name)
	}
	if child.fileType.IsDir() {
		removeTree(child)
	}
	delete(parent.children, leaf)
	child.links--
	return nil
}

// removeTree detaches every entry below dir, depth first.
func removeTree(dir *node) {
	for name, child := range dir.children {
		if child.fileType.IsDir() {
			removeTree(child)
		}
		delete(dir.children, name)
		child.links--
	}
}

// ReadDir opens the directory at name for listing. The listing is a
// sorted snapshot taken at call time.
func (fsys *FS) ReadDir(name string) (*Dir, error) {
	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	n, canon, err := fsys.resolve("read_dir", name, true)
	if err != nil {
		return nil, err
	}
	if !n.fileType.IsDir() {
		return nil, fserr.PathError(fserr.KindNotADirectory, "read_dir", name)
	}

	names := make([]string, 0, len(n.children))
	for child := range n.children {
		names = append(names, child)
	}
	sort.Strings(names)

	// Entries carry the canonical directory path, not the argument: a raw
	// path like "l/.." would be re-resolved lexically by path.Join while
	// the listing itself was resolved structurally.
	dir := canonPath(canon)
	entries := make([]DirEntry, len(names))
	for i, child := range names {
		entries[i] = DirEntry{fsys: fsys, dir: dir, name: child}
	}
	return &Dir{name: name, entries: entries}, nil
}

// SetPermissions changes the mode of the file or directory at name,
// following symlinks.
func (fsys *FS) SetPermissions(name string, perm Mode) error {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	n, _, err := fsys.resolve("set_permissions", name, true)
	if err != nil {
		return err
	}
	n.mode = perm
	return nil
}

// Compile-time contract checks. These bind the whole associated-type
// bundle at once, so a drift in any one type surfaces here.
var (
	_ genfs.File                                                                = (*File)(nil)
	_ genfs.DirEntry[string, string, Metadata, FileType]                        = DirEntry{}
	_ genfs.Dir[DirEntry]                                                       = (*Dir)(nil)
	_ genfs.FS[string, string, Metadata, FileType, Mode, *File, DirEntry, *Dir] = (*FS)(nil)
)
