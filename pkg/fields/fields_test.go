package fields_test

import (
	"testing"

	"github.com/apinae/taxflor/pkg/fields"
	"github.com/stretchr/testify/assert"
)

const blob = `'caste': 'ouvrière', 'station': 'Prairie du Lac', ` +
	`'annee_determination': 2021, 'meth_collecte': 'Filet', ` +
	`'plante': 'Trifolium repens', 'lb_nom': ''`

func TestValue(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		key     string
		want    string
		present bool
	}{
		{
			name:    "quoted value",
			blob:    blob,
			key:     fields.KeyCaste,
			want:    "ouvrière",
			present: true,
		},
		{
			name:    "quoted value with spaces",
			blob:    blob,
			key:     fields.KeyStation,
			want:    "Prairie du Lac",
			present: true,
		},
		{
			name:    "bare numeric value",
			blob:    blob,
			key:     fields.KeyYear,
			want:    "2021",
			present: true,
		},
		{
			name:    "bare None is missing",
			blob:    `'annee_determination': None, 'caste': 'mâle'`,
			key:     fields.KeyYear,
			present: false,
		},
		{
			name:    "quoted empty string is missing",
			blob:    blob,
			key:     fields.KeyPlantName,
			present: false,
		},
		{
			name:    "absent key is missing, not an error",
			blob:    blob,
			key:     fields.KeyTrapType,
			present: false,
		},
		{
			name:    "empty blob",
			blob:    "",
			key:     fields.KeyCaste,
			present: false,
		},
		{
			name:    "unknown key",
			blob:    blob,
			key:     "no_such_key",
			present: false,
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			got, ok := fields.Value(v.blob, v.key)
			assert.Equal(t, v.present, ok)
			assert.Equal(t, v.want, got)
		})
	}
}

// every supported key must tolerate absence from the blob
func TestValueMissingFieldTolerance(t *testing.T) {
	keys := []string{
		fields.KeyCaste, fields.KeyStation, fields.KeyYear,
		fields.KeyMethod, fields.KeyTrapType, fields.KeyTrappingType,
		fields.KeyPlant, fields.KeyPlantName,
	}
	for _, key := range keys {
		got, ok := fields.Value(`'autre_champ': 'x'`, key)
		assert.False(t, ok, key)
		assert.Empty(t, got, key)
	}
}

func TestMethod(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		want    string
		present bool
	}{
		{
			name:    "no trapping uses meth_collecte verbatim",
			blob:    `'meth_collecte': 'Vue'`,
			want:    "Vue",
			present: true,
		},
		{
			name: "trapping without trapping_type trusts type_piegeage",
			blob: `'meth_collecte': 'Piégeage', ` +
				`'type_piegeage': 'Coupelle jaune'`,
			want:    "Coupelle jaune",
			present: true,
		},
		{
			name: "pan trap corroborated exactly",
			blob: `'meth_collecte': 'Piégeage', ` +
				`'type_piegeage': 'Coupelle', 'trapping_type': 'Coupelle'`,
			want:    "Coupelle",
			present: true,
		},
		{
			name: "contradicted trap type is missing",
			blob: `'meth_collecte': 'Piégeage', ` +
				`'type_piegeage': 'Filet', 'trapping_type': 'Coupelle'`,
			present: false,
		},
		{
			name: "pan trap with mismatched corroboration is missing",
			blob: `'meth_collecte': 'Piégeage', ` +
				`'type_piegeage': 'Coupelle', 'trapping_type': 'Coupelle bleue'`,
			present: false,
		},
		{
			name:    "trapping with both trap keys absent is missing",
			blob:    `'meth_collecte': 'Piégeage'`,
			present: false,
		},
		{
			name:    "meth_collecte absent is missing",
			blob:    `'caste': 'reine'`,
			present: false,
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			got, ok := fields.Method(v.blob)
			assert.Equal(t, v.present, ok)
			assert.Equal(t, v.want, got)
		})
	}
}
