// Package cascade resolves normalized plant mentions against the
// reference taxonomy at the best available rank.
//
// Matching runs in three fixed passes - species, then genus, then
// family - and the order must not change: a species-rank match always
// takes precedence over anything a later pass could produce for the
// same record. One-to-many joins against the reference table never fan
// a record out; among duplicate join rows the last one in
// reference-table order wins. Last-wins is a documented determinism
// choice, not a quality judgment between the candidate rows.
package cascade

import (
	"github.com/apinae/taxflor/pkg/taxon"
)

// Resolution is the rank at which a record's plant mention resolved.
type Resolution int

const (
	// ResolvedNone means no pass matched; the record keeps empty
	// taxonomy fields, which is an expected outcome, not an error.
	ResolvedNone Resolution = iota
	ResolvedFamily
	ResolvedGenus
	ResolvedSpecies
)

// Record is one observation's normalized plant candidate.
type Record struct {
	// ID is the observation key (id_synthese).
	ID int
	// Species is the normalized full-name candidate.
	Species string
	// Genus is the genus candidate derived by the normalizer.
	Genus string
}

// Result is the plant-match outcome for one record. Fields left empty
// stay empty in the output.
type Result struct {
	Species string
	Genus   string
	Family  string
	CdRef   string
	Rank    Resolution
}

// Excluded is the fixed set of hybrid and cultivar names that cannot be
// automated; records carrying one never enter the genus pass.
type Excluded map[string]struct{}

// Match resolves every record against the taxonomy index. The returned
// slice is parallel to recs: results keep input order regardless of
// which pass matched which record, and exactly one result exists per
// record.
func Match(recs []Record, idx *taxon.Index, excluded Excluded) []Result {
	res := make([]Result, len(recs))
	for i, rec := range recs {
		res[i] = Result{Species: rec.Species, Genus: rec.Genus}
	}

	// Pass 1: species-rank names, joined on the full normalized name.
	for i, rec := range recs {
		if rec.Species == "" || !idx.IsSpeciesName(rec.Species) {
			continue
		}
		if ref, ok := lastRef(idx.Lookup(rec.Species)); ok {
			res[i].Family = ref.Family
			res[i].CdRef = ref.CdRef
			res[i].Rank = ResolvedSpecies
		}
	}

	// Pass 2: genus-rank names, joined on the genus candidate. Records
	// already resolved keep their species-pass result untouched.
	for i, rec := range recs {
		if res[i].Rank != ResolvedNone {
			continue
		}
		if _, ok := excluded[rec.Species]; ok {
			continue
		}
		if idx.IsSpeciesName(rec.Species) {
			continue
		}
		if idx.ContainedFamily(rec.Species) != "" {
			continue
		}
		if rec.Genus == "" || !idx.IsGenusName(rec.Genus) {
			continue
		}
		if ref, ok := lastRef(idx.Lookup(rec.Genus)); ok {
			res[i].Family = ref.Family
			res[i].CdRef = ref.CdRef
			res[i].Rank = ResolvedGenus
		}
	}

	// Pass 3: family names detected as substrings of the full mention,
	// joined on the family column of the reference table.
	for i, rec := range recs {
		if res[i].Rank != ResolvedNone {
			continue
		}
		fam := idx.ContainedFamily(rec.Species)
		if fam == "" {
			continue
		}
		res[i].Family = fam
		res[i].Rank = ResolvedFamily
		if ref, ok := lastRef(idx.LookupByFamily(fam)); ok {
			res[i].CdRef = ref.CdRef
		}
	}

	return res
}

// lastRef collapses one-to-many join fan-out: among all reference rows
// matching a record, only the last in reference-table order is kept.
func lastRef(refs []taxon.Ref) (taxon.Ref, bool) {
	if len(refs) == 0 {
		return taxon.Ref{}, false
	}
	return refs[len(refs)-1], true
}
