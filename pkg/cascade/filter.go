package cascade

import (
	"github.com/apinae/taxflor/pkg/taxon"
)

// Precision is the minimal rank a record's plant match must reach for
// the record to survive filtering.
type Precision string

const (
	PrecisionNone    Precision = ""
	PrecisionFamily  Precision = "family"
	PrecisionGenus   Precision = "genus"
	PrecisionSpecies Precision = "species"
)

// Filter reports, record for record, whether a match result satisfies
// the requested precision. The returned slice is parallel to results.
//
// The family condition is looser than its name suggests: it keeps any
// record with a reference code or a genus candidate, whether or not a
// family was actually resolved. Downstream consumers rely on this exact
// condition, so it must not be tightened.
func Filter(
	results []Result,
	idx *taxon.Index,
	min Precision,
) []bool {
	keep := make([]bool, len(results))
	for i, r := range results {
		switch min {
		case PrecisionNone:
			keep[i] = true
		case PrecisionFamily:
			keep[i] = r.CdRef != "" || r.Genus != ""
		case PrecisionGenus:
			keep[i] = r.CdRef != "" && taxon.IsGenusOrFiner(idx.RankOf(r.CdRef))
		case PrecisionSpecies:
			keep[i] = r.Species != "" && idx.IsSpeciesName(r.Species)
		}
	}
	return keep
}
