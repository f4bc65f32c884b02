// Package translator applies table-driven substitutions to text with
// locale fallback. It is the bridge between the character tables and the
// normalization pipeline: the pipeline decides which categories apply in
// which order, the translator performs the actual replacement sweeps.
package translator

import (
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/urlify/pkg/tables"
)

// Source resolves a table entry for a locale. It is the pluggable
// locale-data collaborator: the built-in tables satisfy it, and callers
// can layer an external backend on top. A Source is expected to be
// immutable once the translator is in use.
type Source interface {
	Lookup(category tables.Category, key, locale string) (string, bool)
}

// Translator performs single-pass category substitutions. Safe for
// concurrent use; the replacer cache is invalidated when the underlying
// tables register new entries.
type Translator struct {
	tables   *tables.Tables
	source   Source
	replacer map[replacerKey]*cachedReplacer
	mu       sync.RWMutex
}

type replacerKey struct {
	category tables.Category
	locale   string
}

type cachedReplacer struct {
	r          *strings.Replacer
	generation uint64
}

// Option configures a Translator during construction.
type Option func(*Translator)

// WithTables sets the table store backing the translator.
// Defaults to tables.Default().
func WithTables(t *tables.Tables) Option {
	return func(tr *Translator) {
		if t != nil {
			tr.tables = t
		}
	}
}

// WithSource installs an external locale-data backend consulted before
// the built-in tables. The source can override values for known table
// keys but cannot introduce new ones.
func WithSource(s Source) Option {
	return func(tr *Translator) {
		tr.source = s
	}
}

// New creates a Translator backed by the built-in tables unless
// configured otherwise.
func New(opts ...Option) *Translator {
	tr := &Translator{
		tables:   tables.Default(),
		replacer: make(map[replacerKey]*cachedReplacer),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(tr)
		}
	}
	return tr
}

// Translate replaces every table key of each category found in text with
// its locale-resolved value, applying the categories in the given order.
// Each category is a single left-to-right sweep, so substituted output is
// never re-scanned within that sweep. Unknown locales fall back to the
// default locale; categories with no matches leave the text unchanged.
func (t *Translator) Translate(text, locale string, categories ...tables.Category) string {
	if text == "" {
		return ""
	}
	for _, category := range categories {
		text = t.replacerFor(category, locale).Replace(text)
	}
	return text
}

// Word resolves a vocabulary entry (e.g. the word for "and" or for the
// digit "9"). A missing entry resolves to the key itself so that callers
// never have to handle a lookup failure mid-pipeline.
func (t *Translator) Word(category tables.Category, key, locale string) string {
	if t.source != nil {
		if v, ok := t.source.Lookup(category, key, locale); ok {
			return v
		}
	}
	if v, ok := t.tables.Lookup(category, key, locale); ok {
		return v
	}
	return key
}

// Lookup resolves a table entry through the external source first, then
// the built-in tables.
func (t *Translator) Lookup(category tables.Category, key, locale string) (string, bool) {
	if t.source != nil {
		if v, ok := t.source.Lookup(category, key, locale); ok {
			return v, true
		}
	}
	return t.tables.Lookup(category, key, locale)
}

// Tables exposes the underlying table store, mainly so callers can
// register overrides on the same instance the translator consults.
func (t *Translator) Tables() *tables.Tables {
	return t.tables
}

func (t *Translator) replacerFor(category tables.Category, locale string) *strings.Replacer {
	key := replacerKey{category: category, locale: locale}
	generation := t.tables.Generation()

	t.mu.RLock()
	cached, ok := t.replacer[key]
	t.mu.RUnlock()
	if ok && cached.generation == generation {
		return cached.r
	}

	entries := t.tables.Entries(category, locale)

	// Longest keys first so "&#8230;" wins over a hypothetical "&#8"
	// prefix entry; ties broken lexicographically for determinism.
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		value := entries[k]
		if t.source != nil {
			if v, ok := t.source.Lookup(category, k, locale); ok {
				value = v
			}
		}
		pairs = append(pairs, k, value)
	}
	replacer := strings.NewReplacer(pairs...)

	t.mu.Lock()
	t.replacer[key] = &cachedReplacer{r: replacer, generation: generation}
	t.mu.Unlock()

	return replacer
}
