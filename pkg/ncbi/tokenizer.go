package ncbi

import (
	"regexp"
	"strings"
)

var splitter = regexp.MustCompile(`\s*\|\s*`)

// Row is a tokenized dump line.
type Row []string

// Tokenize splits a dump line into trimmed fields. Fields are separated by
// a pipe with optional whitespace around it. A blank line returns nil.
func Tokenize(line string) Row {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	res := splitter.Split(line, -1)
	for i := range res {
		res[i] = strings.TrimSpace(res[i])
	}
	return res
}

// Field returns the field at index i, or an empty string if the row is
// shorter than that.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Has reports if the row has a field at index i.
func (r Row) Has(i int) bool {
	return i >= 0 && i < len(r)
}

// String joins fields back the way they are shown in diagnostics.
func (r Row) String() string {
	return strings.Join(r, " | ")
}
