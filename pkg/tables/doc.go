// Package tables holds the substitution data consulted by the text
// normalization pipeline: HTML entity replacements, smart punctuation,
// vulgar fractions, symbol vocabularies, and their per-locale overrides.
//
// Tables are data, not code. The built-in set is embedded as YAML files
// (one file per locale) and loaded once; callers can layer additional
// locale overrides on top without touching the built-in data:
//
//	t := tables.Default()
//	t.Register("fr", tables.Characters, map[string]string{
//		"and": "et",
//		"at":  "arobase",
//	})
//
// Lookups fall back to the default locale when the requested locale has
// no entry, so an unknown locale never fails:
//
//	word, ok := t.Lookup(tables.Characters, "and", "pt") // "and", true
//
// # Categories
//
// Two keying conventions coexist. Literal categories (SmartPunctuation,
// AccentedEntities, HTMLEntities, VulgarFractions, Apostrophes) map the
// exact token found in text to its replacement and feed the translator's
// single-pass substitution. Vocabulary categories (Characters, Currencies,
// Digits, Ellipses) map symbolic keys ("and", "dollars", "9", "ellipsis")
// to locale-specific words and are consulted by context-sensitive pipeline
// rules. UnreadableControlCharacters and Abbreviations each carry a single
// "pattern" entry with the regular expression the pipeline applies.
//
// Registration is expected to happen at startup; it is guarded by a
// read-write mutex so late registration blocks new lookups rather than
// racing them.
package tables
