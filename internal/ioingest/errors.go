package ioingest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxdump/pkg/errcode"
)

// KeyError is returned when a mandatory taxon id is not an integer.
func KeyError(file string, line int, val string, err error) error {
	msg := `Cannot parse taxon id '<em>%s</em>'

<em>File:</em> %s
<em>Line:</em> %d`
	vars := []any{val, file, line}

	return &gn.Error{
		Code: errcode.IngestKeyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%s:%d: bad taxon id %q: %w",
			file, line, val, err),
	}
}

// ParentKeyError is returned when a parent id in nodes.dmp is not an
// integer.
func ParentKeyError(file string, line int, val string, err error) error {
	msg := `Cannot parse parent taxon id '<em>%s</em>'

<em>File:</em> %s
<em>Line:</em> %d`
	vars := []any{val, file, line}

	return &gn.Error{
		Code: errcode.IngestParentKeyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%s:%d: bad parent taxon id %q: %w",
			file, line, val, err),
	}
}

// HiddenFlagError is returned when the hidden flag in nodes.dmp is not an
// integer.
func HiddenFlagError(file string, line int, val string, err error) error {
	msg := `Cannot parse hidden flag '<em>%s</em>'

<em>File:</em> %s
<em>Line:</em> %d`
	vars := []any{val, file, line}

	return &gn.Error{
		Code: errcode.IngestHiddenFlagError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%s:%d: bad hidden flag %q: %w",
			file, line, val, err),
	}
}

// ReadError is returned when a dump file cannot be read.
func ReadError(file string, line int, err error) error {
	msg := "Cannot read dump file <em>%s</em> after line %d"
	vars := []any{file, line}

	return &gn.Error{
		Code: errcode.IngestReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s after line %d: %w", file, line, err),
	}
}

// CancelledError is returned when ingestion is interrupted.
func CancelledError(err error) error {
	msg := "Ingestion was cancelled"

	return &gn.Error{
		Code: errcode.IngestCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("ingestion cancelled: %w", err),
	}
}
