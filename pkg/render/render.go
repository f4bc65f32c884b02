// Package render defines the rich-text rendering collaborator consumed
// by the library's ToHTML helper. The default implementation converts
// markdown with goldmark; callers can plug in any renderer that
// satisfies the one-method interface.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// Renderer converts lightweight markup to HTML.
type Renderer interface {
	Render(markup string) (string, error)
}

// Func adapts a plain function to the Renderer interface.
type Func func(markup string) (string, error)

// Render calls f.
func (f Func) Render(markup string) (string, error) {
	return f(markup)
}

type markdownRenderer struct {
	md goldmark.Markdown
}

// Markdown returns a Renderer backed by goldmark with the given
// extensions. The underlying processor is built once and is safe for
// concurrent use.
func Markdown(extensions ...goldmark.Extender) Renderer {
	return &markdownRenderer{
		md: goldmark.New(goldmark.WithExtensions(extensions...)),
	}
}

func (r *markdownRenderer) Render(markup string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markup), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
