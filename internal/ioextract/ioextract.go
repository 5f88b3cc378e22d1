// Package ioextract runs the enrichment stage: it derives the requested
// columns from each observation's embedded-fields blob, resolves plant
// mentions through the rank cascade and applies the optional precision
// filter.
package ioextract

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/apinae/taxflor/pkg/cascade"
	"github.com/apinae/taxflor/pkg/config"
	"github.com/apinae/taxflor/pkg/fields"
	"github.com/apinae/taxflor/pkg/frame"
	"github.com/apinae/taxflor/pkg/nameclean"
	"github.com/apinae/taxflor/pkg/taxon"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
)

// Observation table columns the extractor depends on.
const (
	colID   = "id_synthese"
	colBlob = "champs_additionnels"
)

// Extractor enriches an observation table. It owns no I/O; inputs and
// outputs are in-memory tables handed over by the pipeline.
type Extractor struct {
	cfg      *config.Config
	corr     nameclean.Corrections
	excluded cascade.Excluded
}

// New creates an Extractor with the loaded correction table and hybrid
// exclusion set.
func New(
	cfg *config.Config,
	corr nameclean.Corrections,
	excluded map[string]struct{},
) *Extractor {
	return &Extractor{cfg: cfg, corr: corr, excluded: excluded}
}

// Extract returns a new table: the original columns plus the requested
// derived ones, in the original row order. When a precision filter is
// configured (and the plant column was requested), rows below the
// requested resolution are dropped.
func (e *Extractor) Extract(
	obs *frame.Frame,
	idx *taxon.Index,
) (*frame.Frame, error) {
	if _, ok := obs.Col(colID); !ok {
		return nil, ColumnError(colID)
	}
	blobs, ok := obs.Column(colBlob)
	if !ok {
		return nil, ColumnError(colBlob)
	}

	// deep copy: derived columns must never leak into the source table
	rows := make([][]string, len(obs.Rows))
	for i, row := range obs.Rows {
		rows[i] = slices.Clone(row)
	}
	res := frame.New(slices.Clone(obs.Cols), rows)
	cols := e.cfg.Extract.Columns

	if slices.Contains(cols, "caste") {
		res.AddColumn("caste", valuesOf(blobs, fields.KeyCaste))
	}
	if slices.Contains(cols, "station") {
		res.AddColumn("station", valuesOf(blobs, fields.KeyStation))
	}
	if slices.Contains(cols, "annee_determination") {
		res.AddColumn("annee_determination", valuesOf(blobs, fields.KeyYear))
	}
	if slices.Contains(cols, "methode_capture") {
		res.AddColumn("methode_capture", methodsOf(blobs))
	}

	plantRequested := slices.Contains(cols, "plante")
	var results []cascade.Result
	if plantRequested {
		results = e.matchPlants(res, blobs, idx)
	}

	min := cascade.Precision(e.cfg.Extract.Precision)
	if min == cascade.PrecisionNone {
		return res, nil
	}
	if !plantRequested {
		// usage error: filtering needs the plant columns; continue
		// with unfiltered data
		gn.Warn(
			"Precision filter '%s' requested without the 'plante' "+
				"column; skipping the filter",
			string(min),
		)
		slog.Warn("precision filter skipped: plant column not requested",
			"precision", string(min))
		return res, nil
	}

	keep := cascade.Filter(results, idx, min)
	filtered := res.Filter(keep)
	slog.Info("precision filter applied",
		"precision", string(min),
		"kept", filtered.Len(), "dropped", res.Len()-filtered.Len())

	return filtered, nil
}

// matchPlants normalizes each observation's plant mention, runs the
// rank cascade and attaches the four plant columns.
func (e *Extractor) matchPlants(
	res *frame.Frame,
	blobs []string,
	idx *taxon.Index,
) []cascade.Result {
	ids, _ := res.Column(colID)

	recs := make([]cascade.Record, len(blobs))
	bar := newProgressBar(len(blobs), "normalizing names ")
	for i, blob := range blobs {
		raw, _ := fields.Value(blob, fields.KeyPlant)
		secondary, _ := fields.Value(blob, fields.KeyPlantName)
		cand := nameclean.Normalize(
			raw, secondary, e.corr, idx.IsPlantFamily,
		)
		id, _ := strconv.Atoi(ids[i])
		recs[i] = cascade.Record{
			ID:      id,
			Species: cand.Species,
			Genus:   cand.Genus,
		}
		bar.Increment()
	}
	bar.Finish()

	results := cascade.Match(recs, idx, e.excluded)

	sp := make([]string, len(results))
	genus := make([]string, len(results))
	family := make([]string, len(results))
	cdRef := make([]string, len(results))
	var stats [4]int
	for i, r := range results {
		sp[i] = r.Species
		genus[i] = r.Genus
		family[i] = r.Family
		cdRef[i] = r.CdRef
		stats[r.Rank]++
	}
	res.AddColumn("plante_sp", sp)
	res.AddColumn("plante_genre", genus)
	res.AddColumn("plante_famille", family)
	res.AddColumn("plante_cd_ref", cdRef)

	gn.Info(
		"Plant matching: <em>%s</em> at species, <em>%s</em> at genus, "+
			"<em>%s</em> at family, <em>%s</em> unmatched",
		humanize.Comma(int64(stats[cascade.ResolvedSpecies])),
		humanize.Comma(int64(stats[cascade.ResolvedGenus])),
		humanize.Comma(int64(stats[cascade.ResolvedFamily])),
		humanize.Comma(int64(stats[cascade.ResolvedNone])),
	)
	slog.Info("plant matching done",
		"species", stats[cascade.ResolvedSpecies],
		"genus", stats[cascade.ResolvedGenus],
		"family", stats[cascade.ResolvedFamily],
		"unmatched", stats[cascade.ResolvedNone],
	)

	return results
}

func valuesOf(blobs []string, key string) []string {
	res := make([]string, len(blobs))
	for i, blob := range blobs {
		// absence yields an empty cell, never an error
		res[i], _ = fields.Value(blob, key)
	}
	return res
}

func methodsOf(blobs []string) []string {
	res := make([]string, len(blobs))
	for i, blob := range blobs {
		res[i], _ = fields.Method(blob)
	}
	return res
}
