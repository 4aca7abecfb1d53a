package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTree_KeepsInsertionOrder(t *testing.T) {
	ft := NewFileTree("demo-app")
	ft.Add("package.json", "Package manifest")
	ft.Add("src/app/_layout.tsx", "Root layout")
	ft.Add("src/app/index.tsx", "")
	ft.Add(".gitignore", "")

	lines := strings.Split(strings.TrimSuffix(ft.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "demo-app/")
	assert.True(t, strings.HasPrefix(lines[1], "├── package.json"))
	assert.Contains(t, lines[1], "Package manifest")
	assert.Equal(t, "├── src/", lines[2])
	assert.Equal(t, "│   └── app/", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "│       ├── _layout.tsx"))
	assert.Equal(t, "│       └── index.tsx", lines[5])
	assert.Equal(t, "└── .gitignore", lines[6])
}

func TestFileTree_AlignsNotes(t *testing.T) {
	ft := NewFileTree("x")
	ft.Add("package.json", "Package manifest")
	ft.Add("src/lib/theme.ts", "Theme helper")

	out := ft.String()
	assert.Equal(t, noteColumn, noteStart(out, "Package manifest"))
	assert.Equal(t, noteColumn, noteStart(out, "Theme helper"))
}

func TestFileTree_Empty(t *testing.T) {
	assert.Empty(t, NewFileTree("demo-app").String())
}

// noteStart returns the display column at which note starts on its line.
func noteStart(out, note string) int {
	for _, l := range strings.Split(out, "\n") {
		if i := strings.Index(l, note); i >= 0 {
			return len([]rune(l[:i]))
		}
	}
	return -1
}
