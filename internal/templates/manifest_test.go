package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManifest_LastWriteWins(t *testing.T) {
	m := NewManifest()
	m.Add("a", "1")
	m.Add("b", "2")
	m.Add("a", "3")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"a", "b"}, m.Paths())
	got, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", got)
}

func TestManifest_Merge(t *testing.T) {
	base := NewManifest()
	base.Add("x", "base")
	base.Add("y", "base")

	nav := NewManifest()
	nav.Add("y", "nav")
	nav.Add("z", "nav")

	base.Merge(nav)
	base.Merge(nil)

	assert.Equal(t, []File{
		{Path: "x", Content: "base"},
		{Path: "y", Content: "nav"},
		{Path: "z", Content: "nav"},
	}, base.Files())
	assert.True(t, base.Has("z"))
	assert.False(t, base.Has("w"))
}

func TestManifest_PathsIsCopy(t *testing.T) {
	m := NewManifest()
	m.Add("a", "1")
	paths := m.Paths()
	paths[0] = "changed"
	assert.Equal(t, []string{"a"}, m.Paths())
}
