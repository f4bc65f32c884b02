package urlify

import "log/slog"

// ToHTML renders lightweight markup to HTML using the configured
// renderer (markdown by default). When rendering is unavailable -
// WithRenderer(nil) or a renderer error - the original text comes back
// unchanged with a logged warning; the call never fails.
func ToHTML(markup string, opts ...Option) string {
	o := resolveOptions(opts)

	r, ok := o.render()
	if !ok {
		o.log().Warn("rich-text renderer unavailable, returning original text")
		return markup
	}

	html, err := r.Render(markup)
	if err != nil {
		o.log().Warn("rich-text rendering failed, returning original text",
			slog.String("error", err.Error()))
		return markup
	}
	return html
}
