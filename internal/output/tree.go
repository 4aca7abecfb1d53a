package output

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
)

const (
	// noteColumn is where file notes start, counted from the left edge.
	noteColumn = 30

	// levelWidth is the width of one nesting level ("├── " or "│   ").
	levelWidth = 4
)

// FileTree lists project files as a directory tree. Entries appear in the
// order they were added; a directory appears where its first file does.
type FileTree struct {
	root *tree.Tree
	dirs map[string]*tree.Tree
}

// NewFileTree starts a tree for the project directory rootName.
func NewFileTree(rootName string) *FileTree {
	return &FileTree{
		root: tree.Root(GetStyles().Bold.Render(rootName + "/")),
		dirs: make(map[string]*tree.Tree),
	}
}

// Add places a slash-separated project path in the tree. A non-empty note is
// aligned after the file name.
func (t *FileTree) Add(p, note string) {
	dir, name := path.Split(p)
	depth := strings.Count(p, "/") + 1
	t.dir(strings.TrimSuffix(dir, "/")).Child(fileLabel(name, note, depth))
}

// dir returns the node for a directory, creating it and its parents.
func (t *FileTree) dir(p string) *tree.Tree {
	if p == "" {
		return t.root
	}
	if node, ok := t.dirs[p]; ok {
		return node
	}

	parent, name := path.Split(p)
	node := tree.Root(name + "/")
	t.dir(strings.TrimSuffix(parent, "/")).Child(node)
	t.dirs[p] = node
	return node
}

func fileLabel(name, note string, depth int) string {
	if note == "" {
		return name
	}
	padding := max(noteColumn-depth*levelWidth-len(name), 2)
	return name + strings.Repeat(" ", padding) + GetStyles().Muted.Render(note)
}

// String renders the tree with a trailing newline, or "" when nothing was
// added.
func (t *FileTree) String() string {
	if t.root.Children().Length() == 0 {
		return ""
	}
	return t.root.String() + "\n"
}
