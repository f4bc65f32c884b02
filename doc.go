// Package urlify converts arbitrary human-authored text - HTML markup,
// entities, accented characters, smart punctuation, symbols - into clean
// ASCII and URL-safe slugs.
//
// The primary entry point is ToURL, which runs the full normalization
// pipeline and produces a stable, readable slug:
//
//	urlify.ToURL("Chanel #9 & user@host (100%)")
//	// Output: "chanel-number-nine-and-user-at-host-100-percent"
//
// RemoveFormatting runs the same pipeline but stops at readable ASCII
// text instead of a slug:
//
//	urlify.RemoveFormatting("<p>café &amp; crème</p>")
//	// Output: "cafe and creme"
//
// # Options
//
// Every operation accepts functional options; unspecified fields come
// from the process-wide defaults:
//
//	urlify.ToURL("Long Article Title", urlify.MaxLength(12))
//	// Output: "long-article"
//
//	urlify.ToURL("Product Name", urlify.Separator("_"))
//	// Output: "product_name"
//
//	urlify.ToURL("Keep Me", urlify.Exclude("Keep Me"))
//	// Output: "Keep Me" (verbatim bypass)
//
// MaxLength truncation is word-aware by default: it drops whole tokens
// rather than cutting mid-word. Pass TruncateWords(false) for a hard cut.
// WithSuffix appends a random suffix for collision resistance:
//
//	urlify.ToURL("Article Title", urlify.WithSuffix(6))
//	// Output: "article-title-k3hx7f"
//
// Process-wide defaults are set once at startup:
//
//	if err := urlify.Configure(urlify.Separator("_"), urlify.Locale("de")); err != nil {
//		log.Fatal(err)
//	}
//
// # Localization
//
// Symbol expansion is table-driven and locale-aware. The built-in tables
// cover "en" (default) and "de"; unknown locales fall back to the
// default, and callers can register overrides or plug in an external
// locale source via pkg/tables and pkg/translator:
//
//	urlify.ToURL("Fish & Chips", urlify.Locale("de"))
//	// Output: "fish-und-chips"
//
// # Pipeline
//
// RemoveFormatting composes the individual transforms in a fixed order:
// tag stripping, smart punctuation, accented entities, vulgar fractions,
// control characters, remaining entities, symbol expansion,
// transliteration, a second symbol pass (transliteration can expose
// characters such as the fraction slash), and whitespace collapsing.
// Each stage is a pure, total string transform - exported individually
// for callers that need just one of them - and the composed result is
// idempotent: feeding a slug back through ToURL returns it unchanged.
package urlify
