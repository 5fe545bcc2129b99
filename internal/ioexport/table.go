package ioexport

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gnames/gnlib"
)

// table is one tab-separated output file.
type table struct {
	name string
	path string
	f    *os.File
	w    *bufio.Writer
	rows int
}

func createTable(dir, name string) (*table, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, CreateFileError(path, err)
	}
	res := &table{
		name: name,
		path: path,
		f:    f,
		w:    bufio.NewWriterSize(f, 1024*1024),
	}
	return res, nil
}

// write appends one row. bufio.Writer keeps the first write error, it is
// reported by close.
func (t *table) write(fields ...string) {
	for i, v := range fields {
		if i > 0 {
			_ = t.w.WriteByte('\t')
		}
		_, _ = t.w.WriteString(clean(v))
	}
	_ = t.w.WriteByte('\n')
	t.rows++
}

func (t *table) close() error {
	if err := t.w.Flush(); err != nil {
		_ = t.f.Close()
		return WriteError(t.path, err)
	}
	if err := t.f.Close(); err != nil {
		return WriteError(t.path, err)
	}
	return nil
}

var separators = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// clean makes a value safe for a tab-separated row.
func clean(s string) string {
	if !utf8.ValidString(s) {
		s = gnlib.FixUtf8(s)
	}
	if strings.ContainsAny(s, "\t\r\n") {
		s = separators.Replace(s)
	}
	return s
}
