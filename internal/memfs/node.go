package memfs

import (
	"strings"

	"github.com/pi-pi3/genfs/fserr"
)

// maxSymlinkDepth bounds symlink traversal during path resolution.
const maxSymlinkDepth = 40

// node is one inode. Hard links alias the same *node from several
// directory slots; the tree structure itself lives in the children maps.
type node struct {
	fileType FileType
	mode     Mode
	data     []byte           // TypeFile
	children map[string]*node // TypeDir
	target   string           // TypeSymlink
	links    uint32           // directory slots referencing this node
}

func newFile(mode Mode) *node {
	return &node{fileType: TypeFile, mode: mode, links: 1}
}

func newDir(mode Mode) *node {
	return &node{fileType: TypeDir, mode: mode, children: make(map[string]*node), links: 1}
}

func newSymlink(target string) *node {
	return &node{fileType: TypeSymlink, mode: 0o777, target: target, links: 1}
}

// metadata snapshots the node's attributes.
func (n *node) metadata() Metadata {
	md := Metadata{mode: n.mode, fileType: n.fileType, links: n.links}
	switch n.fileType {
	case TypeFile:
		md.size = uint64(len(n.data))
	case TypeSymlink:
		md.size = uint64(len(n.target))
	}
	return md
}

// splitPath breaks a path into components. Paths are interpreted from the
// filesystem root; a leading slash is optional and empty components are
// skipped during resolution.
func splitPath(name string) []string {
	return strings.Split(name, "/")
}

// canonPath renders a canonical component stack as an absolute path.
func canonPath(comps []string) string {
	if len(comps) == 0 {
		return "/"
	}
	return "/" + strings.Join(comps, "/")
}

// resolve walks name from the root, following symlinks on intermediate
// components and, when followLast, on the final component too. It returns
// the resolved node and its canonical component stack. The op is recorded
// in errors.
//
// ".." is resolved structurally against the already-resolved stack, so it
// steps out of a symlinked directory physically, not lexically. ".." at the
// root stays at the root. Callers must hold fsys.mu.
func (fsys *FS) resolve(op, name string, followLast bool) (*node, []string, error) {
	type frame struct {
		name string
		n    *node
	}
	var stack []frame
	cur := func() *node {
		if len(stack) == 0 {
			return fsys.root
		}
		return stack[len(stack)-1].n
	}

	comps := splitPath(name)
	depth := 0
	for i := 0; i < len(comps); i++ {
		c := comps[i]
		if c == "" || c == "." {
			continue
		}
		if c == ".." {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		parent := cur()
		if !parent.fileType.IsDir() {
			return nil, nil, fserr.PathError(fserr.KindNotADirectory, op, name)
		}
		child, ok := parent.children[c]
		if !ok {
			return nil, nil, fserr.PathError(fserr.KindNotFound, op, name)
		}

		last := i == len(comps)-1
		if child.fileType.IsSymlink() && (!last || followLast) {
			depth++
			if depth > maxSymlinkDepth {
				return nil, nil, fserr.WrapPath(errTooManyLinks, fserr.KindInvalidInput, op, name)
			}
			rest := comps[i+1:]
			targetComps := splitPath(child.target)
			if strings.HasPrefix(child.target, "/") {
				stack = stack[:0]
			}
			comps = append(append([]string(nil), targetComps...), rest...)
			i = -1
			continue
		}

		stack = append(stack, frame{name: c, n: child})
	}

	canon := make([]string, len(stack))
	for i, f := range stack {
		canon[i] = f.name
	}
	return cur(), canon, nil
}

// errTooManyLinks is the cause recorded when resolution exceeds
// maxSymlinkDepth. A resolution cycle is a property of the tree, not a
// transient fault, so the kind classifies as permanent.
var errTooManyLinks = fserr.New(fserr.KindInvalidInput, "too many levels of symbolic links")

// resolveParent resolves everything but the final component of name and
// returns the containing directory, its canonical component stack, and the
// bare leaf name. Operations that address the root itself ("/") cannot use
// it and fail with InvalidInput. Callers must hold fsys.mu.
func (fsys *FS) resolveParent(op, name string) (*node, []string, string, error) {
	comps := splitPath(name)
	for len(comps) > 0 {
		last := comps[len(comps)-1]
		if last != "" && last != "." {
			break
		}
		comps = comps[:len(comps)-1]
	}
	if len(comps) == 0 || comps[len(comps)-1] == ".." {
		return nil, nil, "", fserr.PathError(fserr.KindInvalidInput, op, name)
	}

	leaf := comps[len(comps)-1]
	parent, canon, err := fsys.resolve(op, "/"+strings.Join(comps[:len(comps)-1], "/"), true)
	if err != nil {
		return nil, nil, "", err
	}
	if !parent.fileType.IsDir() {
		return nil, nil, "", fserr.PathError(fserr.KindNotADirectory, op, name)
	}
	return parent, canon, leaf, nil
}
