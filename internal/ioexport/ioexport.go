// Package ioexport writes the enriched observation table to disk as a
// semicolon-separated CSV file or an xlsx spreadsheet.
package ioexport

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/apinae/taxflor/pkg/config"
	"github.com/apinae/taxflor/pkg/frame"
	"github.com/xuri/excelize/v2"
)

// Write saves the table according to the export configuration and
// returns the path of the written file.
func Write(cfg *config.ExportConfig, f *frame.Frame) (string, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return "", CreateDirError(cfg.Dir, err)
	}
	path := filepath.Join(cfg.Dir, cfg.File)

	var err error
	switch cfg.Format {
	case "xlsx":
		err = writeXLSX(path, f)
	default:
		err = writeCSV(path, f)
	}
	if err != nil {
		return "", err
	}

	slog.Info("table written",
		"file", path, "rows", f.Len(), "format", cfg.Format)
	return path, nil
}

func writeCSV(path string, f *frame.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	w.Comma = ';'

	if err := w.Write(f.Cols); err != nil {
		return WriteError(path, err)
	}
	for _, row := range f.Rows {
		if err := w.Write(row); err != nil {
			return WriteError(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return WriteError(path, err)
	}

	return nil
}

func writeXLSX(path string, f *frame.Frame) error {
	x := excelize.NewFile()
	defer x.Close()

	sheet := x.GetSheetName(0)
	if err := setRow(x, sheet, 1, f.Cols); err != nil {
		return WriteError(path, err)
	}
	for i, row := range f.Rows {
		if err := setRow(x, sheet, i+2, row); err != nil {
			return WriteError(path, err)
		}
	}

	if err := x.SaveAs(path); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func setRow(x *excelize.File, sheet string, row int, vals []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(vals))
	for i, v := range vals {
		cells[i] = v
	}
	return x.SetSheetRow(sheet, cell, &cells)
}
