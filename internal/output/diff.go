package output

import (
	"strconv"
	"strings"
)

// ModifiedItem is a modified file with its rendered diff.
type ModifiedItem struct {
	Name string
	Diff string
}

// RenderDiff renders the added and modified files of a project diff. It takes
// plain data so the diff package does not need to import output styles.
func RenderDiff(added []string, modified []ModifiedItem, unchanged int, styles *Styles) string {
	var sb strings.Builder

	if len(added) > 0 {
		sb.WriteString(styles.Success.Render("Added:"))
		sb.WriteString("\n")
		for _, name := range added {
			sb.WriteString("  + ")
			sb.WriteString(styles.Success.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(modified) > 0 {
		sb.WriteString(styles.Warning.Render("Modified:"))
		sb.WriteString("\n")
		for _, mod := range modified {
			sb.WriteString("  ~ ")
			sb.WriteString(styles.Warning.Render(mod.Name))
			sb.WriteString("\n")
			sb.WriteString(indentDiff(mod.Diff, "    "))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Summary: ")
	sb.WriteString(diffSummary(len(added), len(modified), unchanged))
	sb.WriteString("\n")

	return sb.String()
}

// indentDiff indents every non-empty line of diff.
func indentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func diffSummary(added, modified, unchanged int) string {
	parts := make([]string, 0, 3)
	if added > 0 {
		parts = append(parts, pluralize(added, "added"))
	}
	if modified > 0 {
		parts = append(parts, pluralize(modified, "modified"))
	}
	if unchanged > 0 {
		parts = append(parts, pluralize(unchanged, "unchanged"))
	}
	if len(parts) == 0 {
		return "No changes"
	}
	return strings.Join(parts, ", ")
}

func pluralize(count int, label string) string {
	return strconv.Itoa(count) + " " + label
}
