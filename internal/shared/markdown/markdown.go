// Package markdown renders untrusted markdown (switch comments) into
// sanitized HTML for the admin detail views.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer interface {
	RenderSanitized(source string) (string, error)
}

type renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			// Raw HTML must reach the sanitizer intact; the default
			// renderer replaces it, together with adjacent text, by an
			// omission comment.
			html.WithUnsafe(),
		),
	)
	return &renderer{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

// RenderSanitized converts markdown to HTML and strips anything outside the
// UGC policy. Comments come from admin users but still pass through the
// policy so stored markup cannot reach other admins' browsers.
func (r *renderer) RenderSanitized(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
