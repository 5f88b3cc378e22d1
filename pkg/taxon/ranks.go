package taxon

// TAXREF rank codes grouped by the resolution level the cascade cares
// about. The vocabulary is TAXREF's, not a general taxonomy.
var (
	// SpeciesRanks are rank codes at species level or below.
	SpeciesRanks = map[string]struct{}{
		"ES": {}, "SMES": {}, "MES": {}, "SSES": {}, "NAT": {},
		"VAR": {}, "SVAR": {}, "FO": {}, "SSFO": {}, "FOES": {},
		"LIN": {}, "CLO": {}, "RACE": {}, "CAR": {}, "MO": {},
	}

	// GenusRanks are rank codes between family and species.
	GenusRanks = map[string]struct{}{
		"GN": {}, "SSGN": {}, "SC": {}, "SBSC": {},
		"SER": {}, "SSER": {}, "AGES": {},
	}

	// FamilyRank is the TAXREF family rank code.
	FamilyRank = "FM"
)

// IsSpeciesRank reports whether a rank code is at species level or finer.
func IsSpeciesRank(code string) bool {
	_, ok := SpeciesRanks[code]
	return ok
}

// IsGenusRank reports whether a rank code is at genus level.
func IsGenusRank(code string) bool {
	_, ok := GenusRanks[code]
	return ok
}

// IsGenusOrFiner reports whether a rank code resolves to at least genus.
func IsGenusOrFiner(code string) bool {
	return IsGenusRank(code) || IsSpeciesRank(code)
}
