// Package nameclean normalizes free-text plant mentions before they are
// matched against the reference taxonomy.
//
// Normalization is deterministic and idempotent: a canonical name runs
// through Normalize unchanged, so re-matching an already enriched table
// yields the same result.
package nameclean

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Corrections maps raw or misspelled plant-name strings to corrected
// canonical names. Keys are compared by case-sensitive exact equality
// after cleaning. It is data, not behavior: the table is loaded from
// the corrections.yaml asset, never written in code.
type Corrections map[string]string

// noiseTokens are qualifier fragments observers append to plant names
// that the reference taxonomy never carries. They are removed before
// the correction table is consulted.
var noiseTokens = []string{
	"(Groupe)",
	"(groupe)",
	"(s.l.)",
	"(S.L.)",
	"(indéterminé)",
	"subsp.",
	"ssp.",
	"cf.",
	"aff.",
	"agg.",
}

// accessionRe matches accession-style numeric fragments that sometimes
// leak into the plant field instead of a name.
var accessionRe = regexp.MustCompile(`^[0-9][0-9 ._/-]*$`)

var spacesRe = regexp.MustCompile(`\s{2,}`)

// Candidate is the normalized output of one raw plant mention.
type Candidate struct {
	// Species is the cleaned, corrected full name. Empty when the raw
	// mention held nothing usable.
	Species string
	// Genus is the first whitespace-delimited token of Species, blank
	// when Species is itself a family name or an accession fragment.
	Genus string
}

// Normalize cleans a raw plant mention plus its optional secondary name
// field into a match candidate. isFamily tests whether a full name is a
// known plant family (see taxon.Index.IsPlantFamily).
func Normalize(
	raw, secondary string,
	corr Corrections,
	isFamily func(string) bool,
) Candidate {
	s := Clean(raw + secondary)
	if fixed, ok := corr[s]; ok {
		s = fixed
	}

	var genus string
	if s != "" && !isFamily(s) && !accessionRe.MatchString(s) {
		genus, _, _ = strings.Cut(s, " ")
	}

	// values that survived cleaning as the literal NA are still noise
	if s == "NA" {
		s = ""
	}
	if genus == "NA" {
		genus = ""
	}

	return Candidate{Species: s, Genus: genus}
}

// Clean applies the formatting rules that precede the correction table:
// capitalize the first letter, strip the literal NA, remove known noise
// tokens and a trailing Linnaeus abbreviation, collapse whitespace.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = capitalize(s)
	if s == "NA" {
		return ""
	}
	for _, tok := range noiseTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	s = spacesRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, " L.")
	return strings.TrimSpace(s)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
