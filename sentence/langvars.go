package sentence

// LanguageVars carries the per-language punctuation table a detector splits
// on. The trained variant accepts one per call to re-segment its output on
// alternate terminators without reloading the model.
type LanguageVars struct {
	// SentEndChars are the sentence-terminator characters.
	SentEndChars []string
}

// LatinVars returns the Latin terminator set. Strict adds the mid-strength
// punctuation some editions use as sentence-final.
func LatinVars(strict bool) LanguageVars {
	chars := []string{".", "?", "!"}
	if strict {
		chars = append(chars, ";", ":", "—")
	}
	return LanguageVars{SentEndChars: chars}
}

// GreekVars returns the Ancient Greek terminator set. The semicolon is the
// Greek question mark; the ano teleia marks a strong stop.
func GreekVars() LanguageVars {
	return LanguageVars{SentEndChars: []string{".", ";", "·"}}
}

// IndicVars returns the terminator set shared by the Indic-script languages:
// danda, double danda, and the western marks found in modern editions.
func IndicVars() LanguageVars {
	return LanguageVars{SentEndChars: []string{"।", "॥", "!", "?", "."}}
}
