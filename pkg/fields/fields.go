// Package fields extracts typed sub-values from the serialized
// champs_additionnels blob of a GeoNature observation.
//
// The blob is a flat set of quoted key/value pairs in the source
// system's convention:
//
//	'caste': 'ouvrière', 'station': 'Prairie du Lac', 'annee_determination': 2021
//
// A key absent from a blob is an expected condition, not a fault: every
// accessor returns ok=false for it.
package fields

import (
	"regexp"
	"strings"
)

// Supported embedded keys.
const (
	KeyCaste        = "caste"
	KeyStation      = "station"
	KeyYear         = "annee_determination"
	KeyMethod       = "meth_collecte"
	KeyTrapType     = "type_piegeage"
	KeyTrappingType = "trapping_type"
	KeyPlant        = "plante"
	KeyPlantName    = "lb_nom"
)

// trapping is the substring of meth_collecte marking that a trap was
// used; only then do the trap-type keys matter.
const trapping = "Piégeage"

// panTrap marks pan-trap values of type_piegeage, the one trap type
// trusted when corroborated by trapping_type.
const panTrap = "Coupelle"

var (
	quotedRe = make(map[string]*regexp.Regexp)
	bareRe   = make(map[string]*regexp.Regexp)
)

func init() {
	keys := []string{
		KeyCaste, KeyStation, KeyYear, KeyMethod,
		KeyTrapType, KeyTrappingType, KeyPlant, KeyPlantName,
	}
	for _, k := range keys {
		quotedRe[k] = regexp.MustCompile(`'` + k + `':\s*'([^']*)'`)
		bareRe[k] = regexp.MustCompile(`'` + k + `':\s*([^,'}]+)`)
	}
}

// Value extracts the value of key from a blob. The second return value
// is false when the key is absent or the literal None (the source
// system's encoding of a missing value).
func Value(blob, key string) (string, bool) {
	qre, ok := quotedRe[key]
	if !ok {
		return "", false
	}
	if m := qre.FindStringSubmatch(blob); m != nil {
		return missingAware(m[1])
	}
	if m := bareRe[key].FindStringSubmatch(blob); m != nil {
		return missingAware(strings.TrimSpace(m[1]))
	}
	return "", false
}

func missingAware(v string) (string, bool) {
	if v == "" || v == "None" {
		return "", false
	}
	return v, true
}

// Method derives the capture method from a blob.
//
// When meth_collecte does not mention trapping, it is the method
// verbatim. When trapping was used, type_piegeage is trusted only when
// there is nothing to corroborate it against (trapping_type missing) or
// when it is a pan trap corroborated exactly by trapping_type. Every
// other trapping combination yields a missing value.
func Method(blob string) (string, bool) {
	meth, ok := Value(blob, KeyMethod)
	if !ok {
		return "", false
	}
	if !strings.Contains(meth, trapping) {
		return meth, true
	}

	trapType, hasTrapType := Value(blob, KeyTrapType)
	trappingType, hasTrappingType := Value(blob, KeyTrappingType)

	if !hasTrappingType {
		return missingAware(trapType)
	}
	if hasTrapType && strings.Contains(trapType, panTrap) &&
		trapType == trappingType {
		return trapType, true
	}
	return "", false
}
