package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxdump/pkg/errcode"
)

func CreateFileError(path string, err error) error {
	msg := "Cannot create export file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportCreateFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create %s: %w", path, err),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write export file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}

func MetaError(path string, err error) error {
	msg := "Cannot write archive descriptor <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportMetaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}
