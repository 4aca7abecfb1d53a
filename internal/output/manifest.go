package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ManifestFile is one generated file as written by preview output.
type ManifestFile struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// ManifestOptions controls manifest output formatting.
type ManifestOptions struct {
	// Format is FormatYAML or FormatJSON.
	Format OutputFormat

	// Writer is the output destination.
	Writer io.Writer
}

// WriteManifest writes files in manifest order.
func WriteManifest(files []ManifestFile, opts ManifestOptions) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(files, opts.Writer)
	case FormatYAML:
		return writeYAML(files, opts.Writer)
	case FormatTree, FormatTable:
		return fmt.Errorf("format %s not supported for manifest output", opts.Format)
	}
	return writeYAML(files, opts.Writer)
}

// writeYAML writes one YAML document per file.
func writeYAML(files []ManifestFile, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	for _, f := range files {
		if err := encoder.Encode(f); err != nil {
			return fmt.Errorf("encoding %s: %w", f.Path, err)
		}
	}

	return encoder.Close()
}

// writeJSON writes the files as a JSON array.
func writeJSON(files []ManifestFile, w io.Writer) error {
	if files == nil {
		files = []ManifestFile{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(files); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}
