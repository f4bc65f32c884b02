package urlify

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/urlify/pkg/render"
	"github.com/dmitrymomot/urlify/pkg/translator"
)

// Options controls the normalization pipeline and slug building.
// The zero value is not usable directly; defaults come from
// defaultOptions and are merged with per-call options.
type Options struct {
	// Exclude lists strings that bypass processing entirely. The match
	// is exact and case-sensitive.
	Exclude []string

	// Separator joins words in the final slug. Defaults to "-".
	Separator string

	// Locale selects the substitution tables ("en", "de", ...).
	// Unknown locales fall back to the default tables.
	Locale string

	// MaxLength limits the slug length in runes; 0 means unlimited.
	MaxLength int

	// SuffixLength appends a random suffix of that many characters
	// after limiting; 0 means no suffix.
	SuffixLength int

	// Lowercase lowercases the final slug. Defaults to true.
	Lowercase bool

	// TruncateWords makes MaxLength drop whole tokens instead of
	// cutting mid-word. Defaults to true.
	TruncateWords bool

	translator  *translator.Translator
	renderer    render.Renderer
	rendererSet bool
	logger      *slog.Logger
}

func defaultOptions() Options {
	return Options{
		Separator:     "-",
		Locale:        "en",
		Lowercase:     true,
		TruncateWords: true,
	}
}

func (o Options) clone() Options {
	c := o
	c.Exclude = slices.Clone(o.Exclude)
	return c
}

// Option configures a single call or, through Configure, the
// process-wide defaults. Options validate their input; Configure
// surfaces the error, per-call use keeps the previous value instead of
// failing mid-pipeline.
type Option func(*Options) error

// Exclude adds strings that bypass processing entirely.
func Exclude(values ...string) Option {
	return func(o *Options) error {
		o.Exclude = append(o.Exclude, values...)
		return nil
	}
}

// Separator sets the token that joins words in the slug.
func Separator(s string) Option {
	return func(o *Options) error {
		if s == "" {
			return ErrEmptySeparator
		}
		o.Separator = s
		return nil
	}
}

// Locale selects the substitution tables.
func Locale(code string) Option {
	return func(o *Options) error {
		if code == "" {
			return ErrEmptyLocale
		}
		o.Locale = code
		return nil
	}
}

// MaxLength limits the slug length in runes. 0 means unlimited.
func MaxLength(n int) Option {
	return func(o *Options) error {
		if n < 0 {
			return ErrInvalidLength
		}
		o.MaxLength = n
		return nil
	}
}

// Lowercase controls case folding of the final slug.
func Lowercase(enabled bool) Option {
	return func(o *Options) error {
		o.Lowercase = enabled
		return nil
	}
}

// TruncateWords controls whether MaxLength drops whole tokens (true,
// the default) or hard-cuts at the limit.
func TruncateWords(enabled bool) Option {
	return func(o *Options) error {
		o.TruncateWords = enabled
		return nil
	}
}

// WithSuffix appends a random alphanumeric suffix of n characters,
// separated by the separator token. Useful for de-duplicating slugs.
func WithSuffix(n int) Option {
	return func(o *Options) error {
		if n < 0 {
			return ErrInvalidLength
		}
		o.SuffixLength = n
		return nil
	}
}

// WithTranslator replaces the shared translator, e.g. to consult an
// external locale source or caller-registered tables.
func WithTranslator(t *translator.Translator) Option {
	return func(o *Options) error {
		if t != nil {
			o.translator = t
		}
		return nil
	}
}

// WithRenderer sets the rich-text renderer used by ToHTML. Passing nil
// marks rendering as unavailable: ToHTML then returns the original text
// and logs a warning instead of failing.
func WithRenderer(r render.Renderer) Option {
	return func(o *Options) error {
		o.renderer = r
		o.rendererSet = true
		return nil
	}
}

// WithLogger sets the logger used for non-fatal advisories.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) error {
		if l != nil {
			o.logger = l
		}
		return nil
	}
}

func (o Options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}
