// Package ioimport locates and loads the two source tables of a run:
// the observation export (semicolon-separated) and the reference
// taxonomy (comma-separated).
//
// Both tables are materialized in memory for the duration of the run;
// there is no streaming. Loading a table to zero rows is fatal: the
// pipeline halts instead of running later stages against empty data.
package ioimport

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/apinae/taxflor/pkg/config"
	"github.com/apinae/taxflor/pkg/frame"
	"github.com/apinae/taxflor/pkg/taxon"
)

// Reference taxonomy column names (matched case-insensitively).
const (
	colName    = "LB_NOM"
	colRank    = "RANG"
	colFamily  = "FAMILLE"
	colKingdom = "REGNE"
	colCdRef   = "CD_REF"
)

// NewestFile returns the path of the newest file (by modification time)
// in dir whose base name matches the glob pattern. When several files
// match, the choice is logged.
func NewestFile(dir, pattern string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", NoFileError(dir, pattern, err)
	}

	var (
		matches []string
		newest  string
		modTime int64
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return "", NoFileError(dir, pattern, err)
		}
		if !ok {
			continue
		}
		matches = append(matches, entry.Name())

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().UnixNano() > modTime {
			newest = entry.Name()
			modTime = info.ModTime().UnixNano()
		}
	}

	if newest == "" {
		return "", NoFileError(dir, pattern, nil)
	}
	if len(matches) > 1 {
		slog.Info("several files match pattern, using newest",
			"pattern", pattern, "matches", matches, "selected", newest)
	}

	return filepath.Join(dir, newest), nil
}

// ReadTable reads a delimited file into a Frame. The first row is the
// header. Rows may have uneven width; short rows are padded.
func ReadTable(path string, comma rune) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, ReadError(path, err)
	}
	if len(records) == 0 {
		return frame.New(nil, nil), nil
	}

	return frame.New(records[0], records[1:]), nil
}

// Observations locates and loads the newest observation export.
func Observations(cfg *config.ImportConfig) (*frame.Frame, error) {
	path, err := NewestFile(cfg.SourceDir, cfg.ObsPattern)
	if err != nil {
		return nil, err
	}
	slog.Info("loading observations", "file", path)

	obs, err := ReadTable(path, ';')
	if err != nil {
		return nil, err
	}
	if obs.Empty() {
		return nil, EmptyObservationsError(path)
	}

	return obs, nil
}

// Taxonomy locates and loads the newest reference taxonomy file and
// builds the lookup index over it.
func Taxonomy(cfg *config.ImportConfig) (*taxon.Index, error) {
	path, err := NewestFile(cfg.SourceDir, cfg.TaxrefPattern)
	if err != nil {
		return nil, err
	}
	slog.Info("loading reference taxonomy", "file", path)

	tbl, err := ReadTable(path, ',')
	if err != nil {
		return nil, err
	}
	if tbl.Empty() {
		return nil, EmptyTaxonomyError(path)
	}

	cols := make(map[string]int, 5)
	for _, name := range []string{
		colName, colRank, colFamily, colKingdom, colCdRef,
	} {
		idx, ok := tbl.Col(name)
		if !ok {
			return nil, MissingColumnError(path, name)
		}
		cols[name] = idx
	}

	entries := make([]taxon.Entry, 0, tbl.Len())
	for _, row := range tbl.Rows {
		entries = append(entries, taxon.Entry{
			Name:    row[cols[colName]],
			Rank:    row[cols[colRank]],
			Family:  row[cols[colFamily]],
			Kingdom: row[cols[colKingdom]],
			CdRef:   row[cols[colCdRef]],
		})
	}

	return taxon.New(entries), nil
}
