// Package diff compares an existing project directory with freshly generated
// files.
package diff

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"

	"github.com/magic-expo/cli/internal/templates"
)

// FileSet is an ordered set of generated files.
type FileSet interface {
	Files() []templates.File
}

// Options configures a comparison.
type Options struct {
	// UseColor enables coloured dyff tables.
	UseColor bool
}

// Modified is a file whose on-disk content differs from the generated one.
type Modified struct {
	Path string
	Diff string
}

// Result holds the outcome for every generated path.
type Result struct {
	// Added paths do not exist on disk yet.
	Added []string

	// Modified paths exist with different content.
	Modified []Modified

	// Unchanged paths match byte for byte.
	Unchanged []string
}

// IsEmpty reports whether regenerating would change nothing.
func (r *Result) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Modified) == 0
}

// Summary returns a one-line summary of changes.
func (r *Result) Summary() string {
	if r.IsEmpty() {
		return "No changes"
	}

	parts := make([]string, 0, 2)
	if len(r.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(r.Added)))
	}
	if len(r.Modified) > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", len(r.Modified)))
	}
	return strings.Join(parts, ", ")
}

// Compare classifies each generated file against targetDir.
func Compare(targetDir string, set FileSet, opts Options) (*Result, error) {
	result := &Result{
		Added:     make([]string, 0),
		Modified:  make([]Modified, 0),
		Unchanged: make([]string, 0),
	}

	for _, f := range set.Files() {
		onDisk, err := os.ReadFile(filepath.Join(targetDir, filepath.FromSlash(f.Path)))
		if errors.Is(err, fs.ErrNotExist) {
			result.Added = append(result.Added, f.Path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Path, err)
		}

		generated := []byte(f.Content)
		if bytes.Equal(onDisk, generated) {
			result.Unchanged = append(result.Unchanged, f.Path)
			continue
		}

		result.Modified = append(result.Modified, Modified{
			Path: f.Path,
			Diff: describe(f.Path, onDisk, generated, opts.UseColor),
		})
	}

	return result, nil
}

// describe renders a structural diff for JSON files and a line summary for
// everything else, or when the JSON cannot be parsed.
func describe(name string, onDisk, generated []byte, useColor bool) string {
	if path.Ext(name) == ".json" {
		if d, err := diffJSON(onDisk, generated, useColor); err == nil {
			if d == "" {
				return "formatting differs"
			}
			return d
		}
	}
	return lineSummary(onDisk, generated)
}

func diffJSON(onDisk, generated []byte, useColor bool) (string, error) {
	fromYAML, err := yaml.JSONToYAML(onDisk)
	if err != nil {
		return "", fmt.Errorf("converting on-disk JSON: %w", err)
	}
	toYAML, err := yaml.JSONToYAML(generated)
	if err != nil {
		return "", fmt.Errorf("converting generated JSON: %w", err)
	}

	from, err := parseYAMLInput("on-disk", fromYAML)
	if err != nil {
		return "", fmt.Errorf("parsing on-disk YAML: %w", err)
	}
	to, err := parseYAMLInput("generated", toYAML)
	if err != nil {
		return "", fmt.Errorf("parsing generated YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// lineSummary counts lines present only on disk and only in the generated
// file, treating each side as a multiset of lines.
func lineSummary(onDisk, generated []byte) string {
	counts := make(map[string]int)
	for _, l := range splitLines(onDisk) {
		counts[l]++
	}

	added := 0
	for _, l := range splitLines(generated) {
		if counts[l] > 0 {
			counts[l]--
			continue
		}
		added++
	}

	removed := 0
	for _, n := range counts {
		removed += n
	}

	return fmt.Sprintf("-%d +%d lines", removed, added)
}

func splitLines(b []byte) []string {
	s := strings.TrimSuffix(string(b), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
