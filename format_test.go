package urlify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/urlify"
)

func TestStripHTMLTags(t *testing.T) {
	t.Parallel()

	t.Run("removes markup", func(t *testing.T) {
		t.Parallel()
		got := urlify.StripHTMLTags("<p>Hello <strong>World</strong></p>")
		assert.Equal(t, "Hello World", got)
	})

	t.Run("collapses whitespace by default", func(t *testing.T) {
		t.Parallel()
		got := urlify.StripHTMLTags("line one\n\n\tline two")
		assert.Equal(t, "line one line two", got)
	})

	t.Run("keeps whitespace on request", func(t *testing.T) {
		t.Parallel()
		got := urlify.StripHTMLTags("line one\nline two", true)
		assert.Equal(t, "line one\nline two", got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, urlify.StripHTMLTags(""))
	})
}

func TestConvertSmartPunctuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"curly quotes", "“Hello” ‘World’", `"Hello" 'World'`},
		{"dashes", "pages 1–2 — see below", "pages 1-2 -- see below"},
		{"ellipsis character", "wait…", "wait..."},
		{"quote entities", "&ldquo;Hi&rdquo;", `"Hi"`},
		{"numeric smart quote entity", "&#8220;Hi&#8221;", `"Hi"`},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, urlify.ConvertSmartPunctuation(tc.input))
		})
	}
}

func TestConvertAccentedHTMLEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"acute", "&eacute;", "e"},
		{"in word", "caf&eacute;", "cafe"},
		{"uppercase grave", "&Agrave;", "A"},
		{"tilde", "&ntilde;", "n"},
		{"slash", "&oslash;", "o"},
		{"digraph ligature", "&aelig;", "ae"},
		{"sharp s", "&szlig;", "ss"},
		{"unrecognized entity is kept", "&bogus;", "&bogus;"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, urlify.ConvertAccentedHTMLEntities(tc.input))
		})
	}
}

func TestConvertVulgarFractions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"half entity", "&frac12;", "half"},
		{"half character", "½ cup", "half cup"},
		{"quarter", "¼ done", "one fourth done"},
		{"numeric entity", "&#190; done", "three fourths done"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, urlify.ConvertVulgarFractions(tc.input))
		})
	}
}

func TestConvertUnreadableControlCharacters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", urlify.ConvertUnreadableControlCharacters("a\x00\x01b"))
	assert.Equal(t, "a\tb", urlify.ConvertUnreadableControlCharacters("a\tb"))
	assert.Empty(t, urlify.ConvertUnreadableControlCharacters(""))
}

func TestConvertMiscellaneousHTMLEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ampersand", "A &amp; B", "A & B"},
		{"nbsp", "A&nbsp;B", "A B"},
		{"copyright", "&copy; 2024", "(c) 2024"},
		{"numeric decimal", "A&#39;B", "A'B"},
		{"numeric hex", "A&#x27;B", "A'B"},
		{"malformed numeric entity is kept", "A&#;B", "A&#;B"},
		{"unknown named entity is kept", "A&bogus;B", "A&bogus;B"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, urlify.ConvertMiscellaneousHTMLEntities(tc.input))
		})
	}
}

func TestConvertMiscellaneousCharacters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"number sign with digit", "Chanel #9", "Chanel number nine"},
		{"number sign with larger number", "Gate #42", "Gate number 42"},
		{"percent", "100%", "100 percent"},
		{"dollar amount", "$10", "10 dollars"},
		{"dollar amount with cents", "$10.50", "10 dollars 50 cents"},
		{"pound amount", "£20", "20 pounds"},
		{"bare dollar sign", "save some $", "save some dollars"},
		{"at sign", "user@host", "user at host"},
		{"ampersand", "Fish & Chips", "Fish and Chips"},
		{"dot between words", "example.com", "example dot com"},
		{"slash", "and/or", "and slash or"},
		{"star", "5 * rating", "5 star rating"},
		{"ellipsis", "to be...", "to be dot dot dot"},
		{"abbreviation keeps letters", "N.Y.C. subway", "NYC subway"},
		{"apostrophe dropped in contraction", "it's Bob's", "its Bobs"},
		{"parentheses stripped", "(note)", "note"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, urlify.ConvertMiscellaneousCharacters(tc.input))
		})
	}

	t.Run("german locale", func(t *testing.T) {
		t.Parallel()
		got := urlify.ConvertMiscellaneousCharacters("Fisch & Pommes", urlify.Locale("de"))
		assert.Equal(t, "Fisch und Pommes", got)
	})
}

func TestTransliterate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "e", urlify.Transliterate("é"))
	assert.Equal(t, "Munchen", urlify.Transliterate("München"))
	assert.Empty(t, urlify.Transliterate(""))
}

func TestCollapse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		char     []string
		expected string
	}{
		{"spaces", "  a   b  ", nil, "a b"},
		{"dashes", "--a--b--", []string{"-"}, "a-b"},
		{"nothing to do", "a b", nil, "a b"},
		{"only separators", "   ", nil, ""},
		{"empty", "", nil, ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, urlify.Collapse(tc.input, tc.char...))
		})
	}
}

func TestRemoveFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "markup entities and accents",
			input:    "<p>caf&eacute; &amp; cr&egrave;me</p>",
			expected: "cafe and creme",
		},
		{
			name:     "symbols",
			input:    "Chanel #9 & user@host (100%)",
			expected: "Chanel number nine and user at host 100 percent",
		},
		{
			name:     "raw unicode",
			input:    "Über “Smart” – Punkte…",
			expected: "Uber Smart - Punkte dot dot dot",
		},
		{
			name:     "case is preserved",
			input:    "Hello World",
			expected: "Hello World",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \t\n  ",
			expected: "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, urlify.RemoveFormatting(tc.input))
		})
	}
}
