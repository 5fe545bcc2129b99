package ioarchive

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxdump/pkg/errcode"
)

func FetchError(source string, err error) error {
	msg := "Cannot get dump archive from <em>%s</em>"
	vars := []any{source}

	return &gn.Error{
		Code: errcode.ArchiveFetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot fetch %s: %w", source, err),
	}
}

func OpenError(path string, err error) error {
	msg := "Cannot open dump archive <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ArchiveOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open zip %s: %w", path, err),
	}
}

func MemberError(name string, err error) error {
	msg := "Cannot read archive member <em>%s</em>"
	vars := []any{name}

	return &gn.Error{
		Code: errcode.ArchiveMemberError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open member %s: %w", name, err),
	}
}

func PackError(path string, err error) error {
	msg := "Cannot create output archive <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ArchivePackError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot pack %s: %w", path, err),
	}
}
