package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	report := FormatReport([]ScopedErrors{
		{Scope: "2019/english", Entries: []string{"missing file a", "missing file b"}},
		{Scope: "2019/surprise", Entries: []string{"bad format c"}},
	})

	lines := strings.Split(report, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "2019/english")
	assert.Contains(t, lines[0], "missing file a")
	assert.Contains(t, lines[2], "2019/surprise")
	assert.Contains(t, lines[2], "bad format c")

	// the scope column is padded to a single width
	assert.Equal(t,
		strings.Index(lines[0], "missing file a"),
		strings.Index(lines[2], "bad format c"))
}

func TestFormatReportEmpty(t *testing.T) {
	assert.Equal(t, "", FormatReport(nil))
}
