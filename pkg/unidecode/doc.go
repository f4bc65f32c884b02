// Package unidecode maps non-ASCII Unicode to its closest ASCII
// rendering, targeting Latin-script text.
//
// Characters with a known ASCII spelling (ligatures, crossed letters,
// typographic punctuation, vulgar fractions) are resolved through a
// code-point table. Everything else is NFD-decomposed and stripped of
// combining marks, which covers the long tail of accented Latin letters
// without enumerating them:
//
//	unidecode.Unidecode("Café crème")  // "Cafe creme"
//	unidecode.Unidecode("œuvre")       // "oeuvre"
//	unidecode.Unidecode("½⁄2")         // "1/2/2"
//
// Runes that survive neither path (CJK, Cyrillic, emoji) are dropped.
// The function is pure and total: any input, including the empty string,
// produces a result without error.
package unidecode
