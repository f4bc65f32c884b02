package urlify

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// ToURL converts text into a URL-safe slug: the normalization pipeline,
// whitespace replaced by the separator token, optional length limiting,
// optional random suffix, and lowercasing.
//
// The result is idempotent for a fixed set of options (without
// WithSuffix): feeding a slug back through ToURL returns it unchanged.
func ToURL(text string, opts ...Option) string {
	o := resolveOptions(opts)

	if slices.Contains(o.Exclude, text) {
		return text
	}

	s := removeFormatting(text, o)
	s = whitespaceRun.ReplaceAllString(s, o.Separator)
	s = Collapse(s, o.Separator)

	if o.MaxLength > 0 {
		s = Limit(s, o.MaxLength, o.TruncateWords, o.Separator)
	}

	if o.SuffixLength > 0 {
		suffix := Random(o.SuffixLength)
		if s == "" {
			s = suffix
		} else {
			s = s + o.Separator + suffix
		}
	}

	if o.Lowercase {
		s = strings.ToLower(s)
	}
	return s
}

// Limit truncates text to at most max runes. With truncateWords, whole
// separator-joined tokens are kept while they fit: each accepted token
// spends its length plus one unit for the joining separator, and the
// first token that does not fit stops the scan. A first token longer
// than max yields "". max <= 0 always yields "".
func Limit(text string, max int, truncateWords bool, separator string) string {
	if max <= 0 || text == "" {
		return ""
	}

	if !truncateWords {
		runes := []rune(text)
		if len(runes) <= max {
			return text
		}
		return string(runes[:max])
	}

	if separator == "" {
		separator = "-"
	}

	var kept []string
	budget := max
	for _, token := range strings.Split(text, separator) {
		n := utf8.RuneCountInString(token)
		if n > budget {
			break
		}
		kept = append(kept, token)
		budget -= n + 1
	}
	return strings.Join(kept, separator)
}
