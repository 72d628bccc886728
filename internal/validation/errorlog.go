package validation

import "fmt"

// ErrorLog accumulates content-level validation errors in discovery order.
// Per-file problems are recorded here instead of aborting, so a single run
// reports every offending file. A log belongs to one Validate call and must
// not be shared across overlapping calls.
type ErrorLog struct {
	entries []string
}

// NewErrorLog returns an empty log.
func NewErrorLog() *ErrorLog {
	return &ErrorLog{}
}

// Append records one error message.
func (l *ErrorLog) Append(msg string) {
	l.entries = append(l.entries, msg)
}

// Appendf records one formatted error message.
func (l *ErrorLog) Appendf(format string, args ...interface{}) {
	l.Append(fmt.Sprintf(format, args...))
}

// Entries returns the recorded messages in discovery order.
func (l *ErrorLog) Entries() []string {
	return l.entries
}

// Len returns the number of recorded messages.
func (l *ErrorLog) Len() int {
	return len(l.entries)
}

// Empty reports whether no errors were recorded.
func (l *ErrorLog) Empty() bool {
	return len(l.entries) == 0
}
