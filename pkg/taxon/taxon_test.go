package taxon_test

import (
	"testing"

	"github.com/apinae/taxflor/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []taxon.Entry {
	return []taxon.Entry{
		{Name: "Trifolium repens", Rank: "ES", Family: "Fabaceae", Kingdom: "Plantae", CdRef: "84736"},
		{Name: "Trifolium repens", Rank: "NAT", Family: "Fabaceae", Kingdom: "Plantae", CdRef: "620718"},
		{Name: "Trifolium", Rank: "GN", Family: "Fabaceae", Kingdom: "Plantae", CdRef: "100212"},
		{Name: "Centaurea", Rank: "GN", Family: "Asteraceae", Kingdom: "Plantae", CdRef: "191148"},
		{Name: "Asteraceae", Rank: "FM", Family: "Asteraceae", Kingdom: "Plantae", CdRef: "187180"},
		{Name: "Apiaceae", Rank: "FM", Family: "Apiaceae", Kingdom: "Plantae", CdRef: "187233"},
		{Name: "Apis mellifera", Rank: "ES", Family: "Apidae", Kingdom: "Animalia", CdRef: "211044"},
		{Name: "", Rank: "FM", Family: "", Kingdom: "Plantae", CdRef: ""},
	}
}

func TestRankSets(t *testing.T) {
	assert.True(t, taxon.IsSpeciesRank("ES"))
	assert.True(t, taxon.IsSpeciesRank("SSES"))
	assert.True(t, taxon.IsSpeciesRank("VAR"))
	assert.False(t, taxon.IsSpeciesRank("GN"))

	assert.True(t, taxon.IsGenusRank("GN"))
	assert.True(t, taxon.IsGenusRank("AGES"))
	assert.False(t, taxon.IsGenusRank("ES"))

	assert.True(t, taxon.IsGenusOrFiner("GN"))
	assert.True(t, taxon.IsGenusOrFiner("ES"))
	assert.False(t, taxon.IsGenusOrFiner("FM"))
}

func TestNameMembership(t *testing.T) {
	x := taxon.New(testEntries())

	assert.True(t, x.IsSpeciesName("Trifolium repens"))
	assert.False(t, x.IsSpeciesName("Trifolium"))
	assert.True(t, x.IsGenusName("Trifolium"))
	assert.True(t, x.IsGenusName("Centaurea"))
	assert.False(t, x.IsGenusName("Trifolium repens"))
}

func TestNamesAtRanks(t *testing.T) {
	x := taxon.New(testEntries())

	names := x.NamesAtRanks(taxon.SpeciesRanks)
	assert.Contains(t, names, "Trifolium repens")
	assert.Contains(t, names, "Apis mellifera")
	assert.NotContains(t, names, "Trifolium")
}

// Family detection only uses Plantae rows, excludes empty family cells,
// and scans in sorted order so "first match" is deterministic.
func TestPlantFamilies(t *testing.T) {
	x := taxon.New(testEntries())

	fams := x.PlantFamilies()
	assert.Equal(t, []string{"Apiaceae", "Asteraceae", "Fabaceae"}, fams)

	assert.True(t, x.IsPlantFamily("Fabaceae"))
	assert.False(t, x.IsPlantFamily("Apidae"))
	assert.False(t, x.IsPlantFamily(""))

	assert.Equal(t, "Asteraceae", x.ContainedFamily("Asteraceae indéterminée"))
	assert.Equal(t, "", x.ContainedFamily("Trifolium repens"))
}

// Lookup preserves reference-table order so the cascade's last-wins
// tie-break is reproducible.
func TestLookup(t *testing.T) {
	x := taxon.New(testEntries())

	refs := x.Lookup("Trifolium repens")
	require.Len(t, refs, 2)
	assert.Equal(t, "84736", refs[0].CdRef)
	assert.Equal(t, "620718", refs[1].CdRef)

	assert.Empty(t, x.Lookup("Rosa canina"))

	byFam := x.LookupByFamily("Fabaceae")
	require.Len(t, byFam, 3)
	assert.Equal(t, "100212", byFam[2].CdRef)
}

func TestRankOf(t *testing.T) {
	x := taxon.New(testEntries())

	assert.Equal(t, "ES", x.RankOf("84736"))
	assert.Equal(t, "GN", x.RankOf("191148"))
	assert.Equal(t, "", x.RankOf("999999"))
}
