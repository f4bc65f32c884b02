package tables

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category identifies one substitution table.
type Category string

const (
	AccentedEntities            Category = "accented_entities"
	HTMLEntities                Category = "html_entities"
	SmartPunctuation            Category = "smart_punctuation"
	VulgarFractions             Category = "vulgar_fractions"
	Currencies                  Category = "currencies"
	Abbreviations               Category = "abbreviations"
	Characters                  Category = "characters"
	Apostrophes                 Category = "apostrophes"
	Ellipses                    Category = "ellipses"
	UnreadableControlCharacters Category = "unreadable_control_characters"
	Digits                      Category = "digits"
)

// DefaultLocale is the locale every lookup falls back to.
const DefaultLocale = "en"

//go:embed locales/*.yml
var localeFS embed.FS

// Tables is an immutable-by-convention store of per-locale substitution
// maps. Reads are guarded against concurrent Register calls, but callers
// are expected to finish registration before handing the instance to the
// pipeline.
type Tables struct {
	data          map[string]map[Category]map[string]string
	defaultLocale string
	generation    uint64
	mu            sync.RWMutex
}

var (
	defaultTables *Tables
	defaultOnce   sync.Once
)

// Default returns the shared instance backed by the embedded locale files.
// The embedded data is validated at build time by the test suite, so a
// load failure here is a programming error and panics.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Load(localeFS)
		if err != nil {
			panic(fmt.Sprintf("tables: embedded locale data is broken: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// Load reads every .yml/.yaml file in fsys into a new Tables instance.
// The locale is taken from the file name ("en.yml" provides "en"); each
// file holds a mapping of category name to key/value entries.
func Load(fsys fs.FS) (*Tables, error) {
	t := &Tables{
		data:          make(map[string]map[Category]map[string]string),
		defaultLocale: DefaultLocale,
	}

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}

		locale := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		if locale == "" {
			return fmt.Errorf("%w: %q has no locale name", ErrInvalidLocaleFile, filePath)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var categories map[string]map[string]string
		if err := yaml.Unmarshal(data, &categories); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidLocaleFile, filePath, err)
		}

		for name, entries := range categories {
			t.register(locale, Category(name), entries)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Register layers entries for a locale over whatever was loaded before.
// Existing keys are overwritten, unknown categories are accepted so that
// callers can introduce their own.
func (t *Tables) Register(locale string, category Category, entries map[string]string) error {
	if locale == "" {
		return ErrEmptyLocale
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.register(locale, category, entries)
	t.generation++
	return nil
}

// register assumes t.mu is held (or the instance is not yet shared).
func (t *Tables) register(locale string, category Category, entries map[string]string) {
	byCategory, ok := t.data[locale]
	if !ok {
		byCategory = make(map[Category]map[string]string)
		t.data[locale] = byCategory
	}
	table, ok := byCategory[category]
	if !ok {
		table = make(map[string]string, len(entries))
		byCategory[category] = table
	}
	maps.Copy(table, entries)
}

// Lookup resolves key within category for the given locale, falling back
// to the default locale. The second return reports whether any entry was
// found.
func (t *Tables) Lookup(category Category, key, locale string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if locale != "" {
		if v, ok := t.data[locale][category][key]; ok {
			return v, true
		}
	}
	if locale != t.defaultLocale {
		if v, ok := t.data[t.defaultLocale][category][key]; ok {
			return v, true
		}
	}
	return "", false
}

// Entries returns the merged view of a category for a locale: the default
// locale's entries overlaid with the locale's own. The returned map is a
// copy and safe to mutate.
func (t *Tables) Entries(category Category, locale string) map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	merged := make(map[string]string, len(t.data[t.defaultLocale][category]))
	maps.Copy(merged, t.data[t.defaultLocale][category])
	if locale != "" && locale != t.defaultLocale {
		maps.Copy(merged, t.data[locale][category])
	}
	return merged
}

// Generation increments on every Register call. Consumers that cache
// derived structures (e.g. compiled replacers) compare generations to
// decide whether their cache is still valid.
func (t *Tables) Generation() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.generation
}

// Locales lists every locale that has at least one table loaded.
func (t *Tables) Locales() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	locales := make([]string, 0, len(t.data))
	for locale := range t.data {
		locales = append(locales, locale)
	}
	return locales
}
