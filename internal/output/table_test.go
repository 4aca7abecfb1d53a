package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	out := NewTable("NAME", "DESCRIPTION").
		Row("default", "Default - modern app starter").
		Row("minimum", "Minimum - fastest setup").
		String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "Minimum - fastest setup")
}

func TestRenderFileTable(t *testing.T) {
	out := RenderFileTable([]FileEntry{
		{Path: "package.json", Size: 812, Description: "Package manifest"},
	})
	assert.Contains(t, out, "package.json")
	assert.Contains(t, out, "812")
	assert.Contains(t, out, "Package manifest")
}
