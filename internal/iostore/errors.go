package iostore

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxdump/pkg/errcode"
)

// OpenError is returned when the store file cannot be opened or
// initialized.
func OpenError(path string, err error) error {
	msg := "Cannot open record store <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open store %s: %w", path, err),
	}
}

// ReadError is returned when records cannot be read from disk.
func ReadError(path string, err error) error {
	msg := "Cannot read from record store <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.StoreReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read store %s: %w", path, err),
	}
}

// WriteError is returned when records cannot be written to disk.
func WriteError(path string, err error) error {
	msg := "Cannot write to record store <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.StoreWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write store %s: %w", path, err),
	}
}

// DecodeError is returned when a stored record is corrupted.
func DecodeError(err error) error {
	msg := "Record store contains a corrupted record"

	return &gn.Error{
		Code: errcode.StoreDecodeError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot decode record: %w", err),
	}
}

// ClosedError is returned when a closed store is used.
func ClosedError() error {
	msg := "Record store is closed"

	return &gn.Error{
		Code: errcode.StoreClosedError,
		Msg:  msg,
		Err:  errors.New("store is closed"),
	}
}
