package urlify

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/urlify/pkg/render"
	"github.com/dmitrymomot/urlify/pkg/translator"
)

var (
	defaultsMu sync.RWMutex
	defaults   = defaultOptions()

	sharedTranslator     *translator.Translator
	sharedTranslatorOnce sync.Once

	sharedRenderer     render.Renderer
	sharedRendererOnce sync.Once
)

// Configure mutates the process-wide default options. Invalid settings
// are reported here rather than surfacing later inside the pipeline;
// on error no change is applied. Expected to be called during startup,
// before concurrent use of the library.
func Configure(opts ...Option) error {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	next := defaults.clone()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&next); err != nil {
			return fmt.Errorf("configure: %w", err)
		}
	}
	defaults = next
	return nil
}

// ResetConfiguration restores the built-in defaults.
func ResetConfiguration() {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = defaultOptions()
}

// resolveOptions merges per-call options over the process defaults.
// Caller values win; an invalid per-call option keeps the default so the
// pipeline stays total (misconfiguration is Configure's concern).
func resolveOptions(opts []Option) Options {
	defaultsMu.RLock()
	o := defaults.clone()
	defaultsMu.RUnlock()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		_ = opt(&o)
	}
	return o
}

func (o Options) translate() *translator.Translator {
	if o.translator != nil {
		return o.translator
	}
	sharedTranslatorOnce.Do(func() {
		sharedTranslator = translator.New()
	})
	return sharedTranslator
}

func (o Options) render() (render.Renderer, bool) {
	if o.rendererSet {
		return o.renderer, o.renderer != nil
	}
	sharedRendererOnce.Do(func() {
		sharedRenderer = render.Markdown()
	})
	return sharedRenderer, true
}
