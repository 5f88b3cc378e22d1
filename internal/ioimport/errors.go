package ioimport

import (
	"fmt"
	"runtime"

	"github.com/apinae/taxflor/pkg/errcode"
	"github.com/gnames/gn"
)

func NoFileError(dir, pattern string, err error) error {
	msg := `No file matching <em>%s</em> found in <em>%s</em>

<em>How to fix:</em>
  1. Check the source directory in config.yaml or --source-dir
  2. Check the file name pattern`
	vars := []any{pattern, dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	if err == nil {
		err = fmt.Errorf("no match for pattern %q", pattern)
	}
	return &gn.Error{
		Code: errcode.ImportNoFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot locate input file: %w",
			fn, err),
	}
}

func ReadError(path string, err error) error {
	msg := "Cannot read table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read table: %w",
			fn, err),
	}
}

// EmptyObservationsError and EmptyTaxonomyError are deliberately
// distinct so the operator can tell at a glance which of the two source
// tables failed to load.

func EmptyObservationsError(path string) error {
	msg := "Observation export <em>%s</em> loaded to an empty table"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportEmptyObservationsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: empty observation table: %s",
			fn, path),
	}
}

func EmptyTaxonomyError(path string) error {
	msg := "Reference taxonomy <em>%s</em> loaded to an empty table"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportEmptyTaxonomyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: empty taxonomy table: %s",
			fn, path),
	}
}

func MissingColumnError(path, col string) error {
	msg := "Table <em>%s</em> is missing required column <em>%s</em>"
	vars := []any{path, col}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportMissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing column %s in %s",
			fn, col, path),
	}
}
