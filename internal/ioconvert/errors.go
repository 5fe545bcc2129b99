package ioconvert

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxdump/pkg/errcode"
)

// ClassesError is returned when name classification overrides are invalid.
func ClassesError(err error) error {
	msg := "Invalid name classes configuration"

	return &gn.Error{
		Code: errcode.ClassesError,
		Msg:  msg,
		Err:  fmt.Errorf("invalid classes: %w", err),
	}
}
