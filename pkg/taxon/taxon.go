// Package taxon indexes a TAXREF-style reference taxonomy for name
// resolution. The index is built once per run and never mutated.
package taxon

import (
	"sort"
	"strings"
)

// KingdomPlantae is the kingdom whose family names feed plant matching.
const KingdomPlantae = "Plantae"

// Entry is one row of the reference taxonomy.
type Entry struct {
	// Name is the canonical taxon name (LB_NOM). Not unique: the same
	// name may appear at several ranks or with several reference codes.
	Name string
	// Rank is the TAXREF rank code (RANG).
	Rank string
	// Family is the family name (FAMILLE), possibly empty.
	Family string
	// Kingdom is the kingdom name (REGNE).
	Kingdom string
	// CdRef is the stable reference identifier (CD_REF).
	CdRef string
}

// Ref is a resolved reference row returned by lookups.
type Ref struct {
	Family string
	CdRef  string
}

// Index answers rank-membership and name lookup queries over the
// reference taxonomy.
type Index struct {
	entries []Entry

	byName   map[string][]int
	byFamily map[string][]int

	speciesNames map[string]struct{}
	genusNames   map[string]struct{}

	// plantFamilies is sorted ascending so substring detection has a
	// deterministic "first match" across runs.
	plantFamilies []string

	rankByRef map[string]string
}

// New builds an Index from reference taxonomy entries. Lookup results
// preserve the input order of entries, which makes the cascade's
// last-wins tie-break reproducible.
func New(entries []Entry) *Index {
	x := &Index{
		entries:      entries,
		byName:       make(map[string][]int),
		byFamily:     make(map[string][]int),
		speciesNames: make(map[string]struct{}),
		genusNames:   make(map[string]struct{}),
		rankByRef:    make(map[string]string),
	}

	famSet := make(map[string]struct{})
	for i, e := range entries {
		x.byName[e.Name] = append(x.byName[e.Name], i)
		if e.Family != "" {
			x.byFamily[e.Family] = append(x.byFamily[e.Family], i)
			if e.Kingdom == KingdomPlantae {
				famSet[e.Family] = struct{}{}
			}
		}
		if IsSpeciesRank(e.Rank) {
			x.speciesNames[e.Name] = struct{}{}
		}
		if IsGenusRank(e.Rank) {
			x.genusNames[e.Name] = struct{}{}
		}
		if _, ok := x.rankByRef[e.CdRef]; !ok && e.CdRef != "" {
			x.rankByRef[e.CdRef] = e.Rank
		}
	}

	x.plantFamilies = make([]string, 0, len(famSet))
	for f := range famSet {
		x.plantFamilies = append(x.plantFamilies, f)
	}
	sort.Strings(x.plantFamilies)

	return x
}

// Len returns the number of indexed entries.
func (x *Index) Len() int {
	return len(x.entries)
}

// NamesAtRanks returns all canonical names whose rank code is in ranks.
func (x *Index) NamesAtRanks(ranks map[string]struct{}) map[string]struct{} {
	res := make(map[string]struct{})
	for _, e := range x.entries {
		if _, ok := ranks[e.Rank]; ok {
			res[e.Name] = struct{}{}
		}
	}
	return res
}

// IsSpeciesName reports whether name exists at a species-level rank.
func (x *Index) IsSpeciesName(name string) bool {
	_, ok := x.speciesNames[name]
	return ok
}

// IsGenusName reports whether name exists at a genus-level rank.
func (x *Index) IsGenusName(name string) bool {
	_, ok := x.genusNames[name]
	return ok
}

// PlantFamilies returns the family names of kingdom Plantae, sorted
// ascending. Empty family cells are excluded.
func (x *Index) PlantFamilies() []string {
	return x.plantFamilies
}

// IsPlantFamily reports whether name is a known Plantae family name.
func (x *Index) IsPlantFamily(name string) bool {
	i := sort.SearchStrings(x.plantFamilies, name)
	return i < len(x.plantFamilies) && x.plantFamilies[i] == name
}

// ContainedFamily returns the first Plantae family name (in sorted
// order) that occurs as a substring of s, or "" when none does.
func (x *Index) ContainedFamily(s string) string {
	for _, fam := range x.plantFamilies {
		if strings.Contains(s, fam) {
			return fam
		}
	}
	return ""
}

// Lookup returns all reference rows whose taxon name equals name, in
// reference-table order. May return zero, one or many rows; collapsing
// the many case is the caller's concern.
func (x *Index) Lookup(name string) []Ref {
	idxs := x.byName[name]
	res := make([]Ref, 0, len(idxs))
	for _, i := range idxs {
		e := x.entries[i]
		res = append(res, Ref{Family: e.Family, CdRef: e.CdRef})
	}
	return res
}

// LookupByFamily returns all reference rows whose family column equals
// family, in reference-table order.
func (x *Index) LookupByFamily(family string) []Ref {
	idxs := x.byFamily[family]
	res := make([]Ref, 0, len(idxs))
	for _, i := range idxs {
		e := x.entries[i]
		res = append(res, Ref{Family: e.Family, CdRef: e.CdRef})
	}
	return res
}

// RankOf returns the rank code recorded for a reference identifier,
// or "" when the identifier is unknown.
func (x *Index) RankOf(cdRef string) string {
	return x.rankByRef[cdRef]
}
