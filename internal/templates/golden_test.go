package templates

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/output"
)

var updateGolden = flag.Bool("update", false, "rewrite testdata/golden from the current generators")

// Golden manifests pin every generated byte, so regenerating an unchanged
// project stays a no-op diff.
func TestAssemble_Golden(t *testing.T) {
	tests := []struct {
		name string
		raw  options.RawOptions
	}{
		{"minimum", options.RawOptions{Tier: options.Ptr(options.TierMinimum)}},
		{"default", options.RawOptions{}},
		{"default-stack-eas", options.RawOptions{
			Tier:          options.Ptr(options.TierDefault),
			Navigation:    options.Ptr(options.NavigationStack),
			BuildProvider: options.Ptr(options.BuildEAS),
			Author:        options.Ptr("Ada Lovelace"),
			Description:   options.Ptr("Pinned output"),
		}},
		{"showcase-drawer", options.RawOptions{
			Tier:       options.Ptr(options.TierShowcase),
			Navigation: options.Ptr(options.NavigationDrawer),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.raw
			raw.ProjectName = options.Ptr("golden-app")

			m, err := Assemble(options.Resolve(raw))
			require.NoError(t, err)

			got := make([]output.ManifestFile, 0, m.Len())
			for _, f := range m.Files() {
				got = append(got, output.ManifestFile{Path: f.Path, Content: f.Content})
			}

			path := filepath.Join("testdata", "golden", tt.name+".json")
			if *updateGolden {
				var buf bytes.Buffer
				require.NoError(t, output.WriteManifest(got, output.ManifestOptions{Format: output.FormatJSON, Writer: &buf}))
				require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
			}

			data, err := os.ReadFile(path)
			require.NoError(t, err)

			var want []output.ManifestFile
			require.NoError(t, json.Unmarshal(data, &want))

			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].Path, got[i].Path, "position %d", i)
				assert.Equal(t, want[i].Content, got[i].Content, want[i].Path)
			}
		})
	}
}
