package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyleByStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
		wantDim  bool
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "overwritten returns yellow", status: StatusOverwritten, wantFG: ColorYellow},
		{name: "skipped returns faint", status: StatusSkipped, wantDim: true},
		{name: "missing returns bold red", status: StatusMissing, wantBold: true, wantFG: ColorRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantDim, style.GetFaint())
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("package.json", StatusCreated)
	assert.Contains(t, line, "package.json")
	assert.Contains(t, line, "created")
	assert.Less(t, strings.Index(line, "package.json"), strings.Index(line, "created"))
}

func TestFormatFileLine_LongPathKeepsGap(t *testing.T) {
	long := strings.Repeat("a", 60)
	line := FormatFileLine(long, StatusSkipped)
	assert.Contains(t, line, long)
	assert.Contains(t, line, "skipped")
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("Project created"), "✔")
	assert.Contains(t, FormatCheckmark("Project created"), "Project created")
}

func TestNoColorStyles(t *testing.T) {
	s := NoColorStyles()
	assert.Equal(t, "plain", s.Success.Render("plain"))
	assert.Equal(t, "plain", s.Muted.Render("plain"))
}
