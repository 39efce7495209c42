package clr

/*
ident.go

Random-identifier helpers. Not part of the styling/logging pipeline — an
unrelated convenience bundled with the package for callers that want to tag
log lines or loggers with unique ids.
*/

import (
	"strings"

	"github.com/google/uuid"
)

// NewIdent returns a random identifier in canonical UUIDv4 form.
func NewIdent() string {
	return uuid.NewString()
}

// ShortIdent returns a random identifier of n hexadecimal characters
// (8 for n <= 0). Longer requests are served by concatenating UUIDs.
func ShortIdent(n int) string {
	if n <= 0 {
		n = 8
	}
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	return b.String()[:n]
}
