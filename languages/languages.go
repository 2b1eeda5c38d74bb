// Package languages holds the closed registry of languages the toolkit can
// analyze, keyed by ISO 639-3 code.
package languages

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownLanguage reports a language tag with no registry entry.
var ErrUnknownLanguage = errors.New("unknown language")

// Language describes one registered language.
type Language struct {
	// ISO is the ISO 639-3 code used as lookup key everywhere in the toolkit.
	ISO string
	// Name is the common English name.
	Name string
	// GlottologID identifies the language in the Glottolog catalogue.
	GlottologID string
	// FamilyID is the Glottolog ID of the top-level family.
	FamilyID string
	// LegacyName is the long-form name older model releases were keyed by,
	// if any ("latin" for "lat"). Kept only so installed data predating the
	// ISO-code rename can still be found.
	LegacyName string
}

// registry is the closed set of supported languages. Codes and catalogue IDs
// follow Glottolog.
var registry = map[string]Language{
	"lat": {ISO: "lat", Name: "Latin", GlottologID: "lati1261", FamilyID: "indo1319", LegacyName: "latin"},
	"grc": {ISO: "grc", Name: "Ancient Greek", GlottologID: "anci1242", FamilyID: "indo1319", LegacyName: "greek"},
	"san": {ISO: "san", Name: "Sanskrit", GlottologID: "sans1269", FamilyID: "indo1319", LegacyName: "sanskrit"},
	"ben": {ISO: "ben", Name: "Bengali", GlottologID: "beng1280", FamilyID: "indo1319", LegacyName: "bengali"},
	"hin": {ISO: "hin", Name: "Hindi", GlottologID: "hind1269", FamilyID: "indo1319", LegacyName: "hindi"},
	"mar": {ISO: "mar", Name: "Marathi", GlottologID: "mara1378", FamilyID: "indo1319", LegacyName: "marathi"},
	"tel": {ISO: "tel", Name: "Telugu", GlottologID: "telu1262", FamilyID: "drav1251", LegacyName: "telugu"},
	"chu": {ISO: "chu", Name: "Church Slavic", GlottologID: "chur1257", FamilyID: "indo1319"},
	"fro": {ISO: "fro", Name: "Old French", GlottologID: "oldf1239", FamilyID: "indo1319"},
	"got": {ISO: "got", Name: "Gothic", GlottologID: "goth1244", FamilyID: "indo1319"},
	"ang": {ISO: "ang", Name: "Old English", GlottologID: "olde1238", FamilyID: "indo1319"},
	"non": {ISO: "non", Name: "Old Norse", GlottologID: "oldn1244", FamilyID: "indo1319"},
	"pli": {ISO: "pli", Name: "Pali", GlottologID: "pali1273", FamilyID: "indo1319"},
	"arb": {ISO: "arb", Name: "Standard Arabic", GlottologID: "stan1318", FamilyID: "afro1255"},
}

// Indic lists the registered languages written in Indic scripts; they share
// danda-based sentence punctuation.
var Indic = []string{"ben", "hin", "mar", "san", "tel"}

// Get returns the registered Language for an ISO 639-3 code. The lookup is
// case-insensitive. It fails with ErrUnknownLanguage for unregistered tags.
func Get(iso string) (Language, error) {
	lang, ok := registry[strings.ToLower(iso)]
	if !ok {
		return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, iso)
	}
	return lang, nil
}

// IsRegistered reports whether the ISO code has a registry entry.
func IsRegistered(iso string) bool {
	_, ok := registry[strings.ToLower(iso)]
	return ok
}

// IsIndic reports whether the ISO code belongs to the Indic script group.
func IsIndic(iso string) bool {
	iso = strings.ToLower(iso)
	for _, code := range Indic {
		if code == iso {
			return true
		}
	}
	return false
}

// All returns every registered ISO code, sorted.
func All() []string {
	codes := make([]string, 0, len(registry))
	for iso := range registry {
		codes = append(codes, iso)
	}
	sort.Strings(codes)
	return codes
}
