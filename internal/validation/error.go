package validation

import "strings"

// Error aggregates the reasons of every rule that failed during a single
// validation run. Callers can fix the input and retry; nothing is committed
// when an Error is returned.
type Error struct {
	Reasons []string
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

func (e *Error) add(reason string) {
	e.Reasons = append(e.Reasons, reason)
}

func (e *Error) failed() bool {
	return len(e.Reasons) > 0
}
