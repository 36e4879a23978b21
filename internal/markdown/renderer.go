// Package markdown converts user submitted markdown into html that is safe
// to embed into a page.
package markdown

import (
	"bytes"
	"html"
	"strings"

	"github.com/itchan-dev/threadfeed/internal/logger"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmark_html "github.com/yuin/goldmark/renderer/html"
)

// Renderer is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		// raw html in input is omitted since WithUnsafe is not set
		goldmark.WithRendererOptions(goldmark_html.WithHardWraps()),
	)
	return &Renderer{md: md, policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowRelativeURLs(true)
	p.RequireNoFollowOnLinks(true)
	return p
}

// Render never fails. Input that cannot be converted is returned escaped.
func (r *Renderer) Render(markup string) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Error("markdown render panicked", "panic", rec)
			out = fallback(markup)
		}
	}()

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markup), &buf); err != nil {
		logger.Log.Warn("markdown conversion failed", "error", err)
		return fallback(markup)
	}
	return r.policy.Sanitize(buf.String())
}

func fallback(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	return "<p>" + html.EscapeString(markup) + "</p>"
}
