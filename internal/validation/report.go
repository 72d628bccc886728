package validation

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ScopedErrors groups accumulated errors under the scope that produced them,
// e.g. "2019/english".
type ScopedErrors struct {
	Scope   string
	Entries []string
}

// FormatReport renders the consolidated failure report, one line per error,
// with the scope column aligned by display width.
func FormatReport(sections []ScopedErrors) string {
	width := 0
	for _, section := range sections {
		if w := runewidth.StringWidth(section.Scope); w > width {
			width = w
		}
	}

	var builder strings.Builder
	for _, section := range sections {
		scope := runewidth.FillRight(section.Scope, width)
		for _, entry := range section.Entries {
			builder.WriteString(scope)
			builder.WriteString("  ")
			builder.WriteString(entry)
			builder.WriteString("\n")
		}
	}
	return strings.TrimRight(builder.String(), "\n")
}
