package ioimport_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apinae/taxflor/internal/ioimport"
	"github.com/apinae/taxflor/pkg/config"
	"github.com/apinae/taxflor/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestNewestFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	writeFile(t, dir, "export_synthese_2024.csv", "old", now.Add(-48*time.Hour))
	newest := writeFile(t, dir, "export_synthese_2025.csv", "new", now)
	writeFile(t, dir, "TAXREF_v17.csv", "tax", now.Add(-time.Hour))

	t.Run("picks newest by modification time", func(t *testing.T) {
		got, err := ioimport.NewestFile(dir, "export_synthese*.csv")
		require.NoError(t, err)
		assert.Equal(t, newest, got)
	})

	t.Run("single match", func(t *testing.T) {
		got, err := ioimport.NewestFile(dir, "TAXREF*.csv")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "TAXREF_v17.csv"), got)
	})

	t.Run("no match is an error", func(t *testing.T) {
		_, err := ioimport.NewestFile(dir, "no_such*.csv")
		require.Error(t, err)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr))
		assert.Equal(t, errcode.ImportNoFileError, gnErr.Code)
	})
}

func TestReadTable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.csv",
		"id_synthese;champs_additionnels\n1;\"'caste': 'mâle'\"\n2;\n",
		time.Now())

	f, err := ioimport.ReadTable(path, ';')
	require.NoError(t, err)
	require.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"id_synthese", "champs_additionnels"}, f.Cols)
	assert.Equal(t, "'caste': 'mâle'", f.Rows[0][1])
}

func TestObservations(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.ImportConfig{
		SourceDir:     dir,
		ObsPattern:    "export_synthese*.csv",
		TaxrefPattern: "TAXREF*.csv",
	}

	t.Run("empty table halts with a distinct error", func(t *testing.T) {
		writeFile(t, dir, "export_synthese_empty.csv",
			"id_synthese;champs_additionnels\n", time.Now())
		_, err := ioimport.Observations(cfg)
		require.Error(t, err)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr))
		assert.Equal(t, errcode.ImportEmptyObservationsError, gnErr.Code)
	})

	t.Run("loads rows", func(t *testing.T) {
		writeFile(t, dir, "export_synthese_full.csv",
			"id_synthese;champs_additionnels\n1;x\n", time.Now().Add(time.Hour))
		obs, err := ioimport.Observations(cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, obs.Len())
	})
}

const taxrefCSV = `REGNE,FAMILLE,RANG,LB_NOM,CD_REF
Plantae,Fabaceae,ES,Trifolium repens,84736
Plantae,Fabaceae,GN,Trifolium,100212
Plantae,Apiaceae,FM,Apiaceae,187233
Animalia,Apidae,ES,Apis mellifera,211044
`

func TestTaxonomy(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.ImportConfig{
		SourceDir:     dir,
		TaxrefPattern: "TAXREF*.csv",
	}

	t.Run("empty table halts with a distinct error", func(t *testing.T) {
		writeFile(t, dir, "TAXREF_empty.csv",
			"REGNE,FAMILLE,RANG,LB_NOM,CD_REF\n", time.Now())
		_, err := ioimport.Taxonomy(cfg)
		require.Error(t, err)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr))
		assert.Equal(t, errcode.ImportEmptyTaxonomyError, gnErr.Code)
	})

	t.Run("missing column", func(t *testing.T) {
		writeFile(t, dir, "TAXREF_nocol.csv",
			"REGNE,FAMILLE,LB_NOM\nPlantae,Fabaceae,Trifolium\n",
			time.Now().Add(time.Minute))
		_, err := ioimport.Taxonomy(cfg)
		require.Error(t, err)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr))
		assert.Equal(t, errcode.ImportMissingColumnError, gnErr.Code)
	})

	t.Run("builds the index", func(t *testing.T) {
		writeFile(t, dir, "TAXREF_v17.csv", taxrefCSV,
			time.Now().Add(time.Hour))
		idx, err := ioimport.Taxonomy(cfg)
		require.NoError(t, err)
		assert.Equal(t, 4, idx.Len())
		assert.True(t, idx.IsSpeciesName("Trifolium repens"))
		assert.True(t, idx.IsGenusName("Trifolium"))
		// kingdom filter keeps Apidae out of the plant family set
		assert.Equal(t, []string{"Apiaceae", "Fabaceae"}, idx.PlantFamilies())
	})
}
