package urlify

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/urlify/pkg/tables"
	"github.com/dmitrymomot/urlify/pkg/translator"
	"github.com/dmitrymomot/urlify/pkg/unidecode"
)

var (
	// StrictPolicy strips all tags and keeps the text content.
	// Safe for concurrent use once built.
	htmlPolicy = bluemonday.StrictPolicy()

	whitespaceRun = regexp.MustCompile(`\s+`)

	// &eacute; &Agrave; &ntilde; ... - a single base letter plus an
	// accent suffix resolves to the bare letter. Digraph entities
	// (&aelig; &szlig; ...) come from the accented_entities table.
	accentedEntityPattern = regexp.MustCompile(`&([A-Za-z])(?:grave|acute|circ|tilde|uml|ring|cedil|slash|caron|breve|macr|ogon|horn);`)

	numericEntityPattern = regexp.MustCompile(`&#(?:[0-9]{1,7}|[xX][0-9A-Fa-f]{1,6});`)

	ellipsisPattern   = regexp.MustCompile(`\.{3,}`)
	numberSignPattern = regexp.MustCompile(`#[ \t]*([0-9]+)`)
	dotPattern        = regexp.MustCompile(`(\w)\.(\w)`)
	apostrophePattern = regexp.MustCompile(`(\w)'(\w)`)

	// Fallbacks for the pattern-carrying table categories, used when a
	// registered override fails to compile.
	defaultControlPattern = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	defaultAbbrevPattern  = regexp.MustCompile(`(^|\s)((?:[A-Za-z]\.)+[A-Za-z]\.?)($|\s)`)
)

// currencyAmounts recognizes a currency symbol adjacent to digits and
// rewrites the amount as "<number> <unit>". Subunit forms must come
// before the plain forms so "$10.50" is not consumed as "$10".
var currencyAmounts = []struct {
	re            *regexp.Regexp
	unit, subunit string
}{
	{regexp.MustCompile(`\$([0-9]+)\.([0-9]+)`), "dollars", "cents"},
	{regexp.MustCompile(`£([0-9]+)\.([0-9]+)`), "pounds", "pence"},
	{regexp.MustCompile(`€([0-9]+)\.([0-9]+)`), "euros", "cents"},
	{regexp.MustCompile(`\$([0-9]+)`), "dollars", ""},
	{regexp.MustCompile(`£([0-9]+)`), "pounds", ""},
	{regexp.MustCompile(`€([0-9]+)`), "euros", ""},
	{regexp.MustCompile(`¥([0-9]+)`), "yen", ""},
}

// bareCurrencySymbols handles currency signs not adjacent to a number,
// after the amount rules above have consumed their matches.
var bareCurrencySymbols = []struct{ symbol, key string }{
	{"$", "dollars"},
	{"£", "pounds"},
	{"€", "euros"},
	{"¥", "yen"},
	{"¢", "cents"},
}

// symbolWords expands the remaining literal symbols; "." and "'" are
// context-sensitive and handled separately.
var symbolWords = []struct{ symbol, key string }{
	{"&", "and"},
	{"@", "at"},
	{"#", "number"},
	{"%", "percent"},
	{"*", "star"},
	{"/", "slash"},
	{"=", "equals"},
	{"+", "plus"},
	{"°", "degrees"},
	{"÷", "divide"},
}

// strippableASCII is every ASCII punctuation mark except the hyphen,
// which survives into slugs.
const strippableASCII = "!\"#$%&'()*+,./:;<=>?@[\\]^_`{|}~"

// RemoveFormatting runs the full normalization pipeline and returns
// readable ASCII text: tags stripped, entities decoded, symbols spelled
// out, accents folded, whitespace collapsed. Case is preserved.
func RemoveFormatting(text string, opts ...Option) string {
	return removeFormatting(text, resolveOptions(opts))
}

// removeFormatting composes the stages in their required order. The
// second ConvertMiscellaneousCharacters pass picks up characters that
// transliteration exposes, e.g. the Unicode fraction slash becoming "/".
func removeFormatting(text string, o Options) string {
	s := StripHTMLTags(text)
	s = convertSmartPunctuation(s, o)
	s = convertAccentedHTMLEntities(s, o)
	s = convertVulgarFractions(s, o)
	s = convertUnreadableControlCharacters(s, o)
	s = convertMiscellaneousHTMLEntities(s, o)
	s = convertMiscellaneousCharacters(s, o)
	s = unidecode.Unidecode(s)
	s = convertMiscellaneousCharacters(s, o)
	return Collapse(s)
}

// StripHTMLTags removes tag markup, keeping text content. Unless
// leaveWhitespace is true, whitespace runs collapse to single spaces so
// removed block tags do not leave gaps.
func StripHTMLTags(text string, leaveWhitespace ...bool) string {
	s := htmlPolicy.Sanitize(text)
	if len(leaveWhitespace) == 0 || !leaveWhitespace[0] {
		s = whitespaceRun.ReplaceAllString(s, " ")
	}
	return s
}

// ConvertSmartPunctuation maps typographic quotes, dashes, and ellipsis
// characters (and their entities) to ASCII equivalents.
func ConvertSmartPunctuation(text string, opts ...Option) string {
	return convertSmartPunctuation(text, resolveOptions(opts))
}

// ConvertAccentedHTMLEntities decodes named entities for accented Latin
// letters to their unaccented ASCII letter: "&eacute;" becomes "e".
func ConvertAccentedHTMLEntities(text string, opts ...Option) string {
	return convertAccentedHTMLEntities(text, resolveOptions(opts))
}

// ConvertVulgarFractions spells out vulgar-fraction characters and
// entities: "½" becomes "half".
func ConvertVulgarFractions(text string, opts ...Option) string {
	return Collapse(convertVulgarFractions(text, resolveOptions(opts)))
}

// ConvertUnreadableControlCharacters strips non-printable control
// characters.
func ConvertUnreadableControlCharacters(text string, opts ...Option) string {
	return convertUnreadableControlCharacters(text, resolveOptions(opts))
}

// ConvertMiscellaneousHTMLEntities decodes the remaining named and
// numeric HTML entities to plain text. Malformed or unrecognized
// entities are left as-is.
func ConvertMiscellaneousHTMLEntities(text string, opts ...Option) string {
	return convertMiscellaneousHTMLEntities(text, resolveOptions(opts))
}

// ConvertMiscellaneousCharacters expands symbols to words: currency
// amounts, ellipses, abbreviations, "#" with numbers, literal symbols,
// and apostrophes, in that order. Remaining ASCII punctuation other
// than the hyphen becomes whitespace.
func ConvertMiscellaneousCharacters(text string, opts ...Option) string {
	return Collapse(convertMiscellaneousCharacters(text, resolveOptions(opts)))
}

// Transliterate converts remaining non-ASCII letters to their closest
// ASCII equivalent: raw "é" becomes "e".
func Transliterate(text string) string {
	return unidecode.Unidecode(text)
}

// Collapse trims leading and trailing runs of char (default " ") and
// squeezes internal runs to a single occurrence.
func Collapse(text string, char ...string) string {
	token := " "
	if len(char) > 0 && char[0] != "" {
		token = char[0]
	}

	double := token + token
	for strings.Contains(text, double) {
		text = strings.ReplaceAll(text, double, token)
	}
	for strings.HasPrefix(text, token) {
		text = strings.TrimPrefix(text, token)
	}
	for strings.HasSuffix(text, token) {
		text = strings.TrimSuffix(text, token)
	}
	return text
}

func convertSmartPunctuation(s string, o Options) string {
	return o.translate().Translate(s, o.Locale, tables.SmartPunctuation)
}

func convertAccentedHTMLEntities(s string, o Options) string {
	s = o.translate().Translate(s, o.Locale, tables.AccentedEntities)
	return accentedEntityPattern.ReplaceAllString(s, "${1}")
}

func convertVulgarFractions(s string, o Options) string {
	return o.translate().Translate(s, o.Locale, tables.VulgarFractions)
}

func convertUnreadableControlCharacters(s string, o Options) string {
	return tablePattern(o, tables.UnreadableControlCharacters, defaultControlPattern).ReplaceAllString(s, "")
}

func convertMiscellaneousHTMLEntities(s string, o Options) string {
	s = o.translate().Translate(s, o.Locale, tables.HTMLEntities)
	return numericEntityPattern.ReplaceAllStringFunc(s, decodeNumericEntity)
}

func convertMiscellaneousCharacters(s string, o Options) string {
	if s == "" {
		return s
	}
	tr := o.translate()
	locale := o.Locale

	// Currency amounts before anything else: a symbol adjacent to
	// digits reads as an amount, not as the generic symbol word.
	for _, rule := range currencyAmounts {
		if !rule.re.MatchString(s) {
			continue
		}
		unit := tr.Word(tables.Currencies, rule.unit, locale)
		if rule.subunit != "" {
			subunit := tr.Word(tables.Currencies, rule.subunit, locale)
			s = rule.re.ReplaceAllString(s, " ${1} "+unit+" ${2} "+subunit+" ")
		} else {
			s = rule.re.ReplaceAllString(s, " ${1} "+unit+" ")
		}
	}

	if strings.Contains(s, "...") {
		s = ellipsisPattern.ReplaceAllString(s, " "+tr.Word(tables.Ellipses, "ellipsis", locale)+" ")
	}

	for _, c := range bareCurrencySymbols {
		if strings.Contains(s, c.symbol) {
			s = strings.ReplaceAll(s, c.symbol, " "+tr.Word(tables.Currencies, c.key, locale)+" ")
		}
	}

	s = collapseAbbreviations(s, o)
	s = convertNumberSigns(s, tr, locale)

	if strings.Contains(s, ".") {
		dotWord := tr.Word(tables.Characters, "dot", locale)
		s = replaceLooped(s, dotPattern, "${1} "+dotWord+" ${2}")
	}

	for _, c := range symbolWords {
		if strings.Contains(s, c.symbol) {
			s = strings.ReplaceAll(s, c.symbol, " "+tr.Word(tables.Characters, c.key, locale)+" ")
		}
	}

	s = tr.Translate(s, locale, tables.Apostrophes)
	if strings.Contains(s, "'") {
		s = replaceLooped(s, apostrophePattern, "${1}${2}")
	}

	return stripRemainingSymbols(s)
}

// convertNumberSigns rewrites "#" followed by a number as the number
// word plus the value, spelling out single digits: "#9" reads "number
// nine", "#42" reads "number 42".
func convertNumberSigns(s string, tr *translator.Translator, locale string) string {
	if !strings.Contains(s, "#") {
		return s
	}
	word := tr.Word(tables.Characters, "number", locale)
	return numberSignPattern.ReplaceAllStringFunc(s, func(m string) string {
		digits := strings.TrimLeft(m, "# \t")
		if len(digits) == 1 {
			if spelled, ok := tr.Lookup(tables.Digits, digits, locale); ok {
				return " " + word + " " + spelled + " "
			}
		}
		return " " + word + " " + digits + " "
	})
}

func collapseAbbreviations(s string, o Options) string {
	if !strings.Contains(s, ".") {
		return s
	}
	re := tablePattern(o, tables.Abbreviations, defaultAbbrevPattern)
	// Loop: adjacent abbreviations share their boundary whitespace, so
	// one non-overlapping sweep can miss the second of a pair.
	for {
		replaced := re.ReplaceAllStringFunc(s, func(m string) string {
			return strings.ReplaceAll(m, ".", "")
		})
		if replaced == s {
			return s
		}
		s = replaced
	}
}

// replaceLooped reapplies a single-character context rule until it stops
// matching: "(\w)X(\w)" cannot see overlapping matches like "a.b.c" in
// one sweep. Each round consumes at least one occurrence, so it is
// bounded by the input length.
func replaceLooped(s string, re *regexp.Regexp, replacement string) string {
	for {
		replaced := re.ReplaceAllString(s, replacement)
		if replaced == s {
			return s
		}
		s = replaced
	}
}

func decodeNumericEntity(entity string) string {
	body := entity[2 : len(entity)-1]
	var (
		n   int64
		err error
	)
	if body[0] == 'x' || body[0] == 'X' {
		n, err = strconv.ParseInt(body[1:], 16, 32)
	} else {
		n, err = strconv.ParseInt(body, 10, 32)
	}
	if err != nil || n <= 0 || !utf8.ValidRune(rune(n)) {
		return entity // best effort: malformed entities stay as-is
	}
	return string(rune(n))
}

func stripRemainingSymbols(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf && strings.ContainsRune(strippableASCII, r) {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var (
	patternCacheMu sync.RWMutex
	patternCache   = make(map[string]*regexp.Regexp)
)

// tablePattern resolves a pattern-carrying table entry to a compiled
// regexp, caching compilations. An override that fails to compile falls
// back to the built-in pattern rather than breaking the pipeline.
func tablePattern(o Options, category tables.Category, fallback *regexp.Regexp) *regexp.Regexp {
	p, ok := o.translate().Lookup(category, "pattern", o.Locale)
	if !ok {
		return fallback
	}

	patternCacheMu.RLock()
	re, cached := patternCache[p]
	patternCacheMu.RUnlock()
	if cached {
		return re
	}

	compiled, err := regexp.Compile(p)
	if err != nil {
		compiled = fallback
	}
	patternCacheMu.Lock()
	patternCache[p] = compiled
	patternCacheMu.Unlock()
	return compiled
}
