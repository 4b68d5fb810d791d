package transcript

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown converts chat markdown to sanitised HTML fragments.
type markdown struct {
	md      goldmark.Markdown
	content *bluemonday.Policy
	plain   *bluemonday.Policy
}

func newMarkdown() *markdown {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	content := bluemonday.UGCPolicy()
	content.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")
	content.RequireNoFollowOnLinks(true)
	content.AddTargetBlankToFullyQualifiedLinks(true)

	return &markdown{
		md:      md,
		content: content,
		plain:   bluemonday.StrictPolicy(),
	}
}

func (m *markdown) toHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return m.content.Sanitize(buf.String()), nil
}

// escape strips every tag and escapes the rest.
func (m *markdown) escape(s string) string {
	return m.plain.Sanitize(s)
}
