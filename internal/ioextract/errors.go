package ioextract

import (
	"fmt"
	"runtime"

	"github.com/apinae/taxflor/pkg/errcode"
	"github.com/gnames/gn"
)

func ColumnError(col string) error {
	msg := `Observation table has no <em>%s</em> column

<em>How to fix:</em>
  1. Check that the export is a GeoNature synthesis export
  2. Check the observation file pattern in config.yaml`
	vars := []any{col}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExtractColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing observation column %s",
			fn, col),
	}
}
