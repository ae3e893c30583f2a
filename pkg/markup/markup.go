// Package markup normalizes the inline markup allowed in content text.
//
// Content text may mix inline Markdown (**bold**, *italic*, `code`, [links](url))
// with the small inline HTML subset of the original format (<b>, <br/>, <a>).
// Both are rendered to HTML. Block-level Markdown (lists, headings) is not part
// of the content format; such text is passed through unchanged.
package markup

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

//nolint:gochecknoglobals // goldmark instances are safe for concurrent use
var md = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithUnsafe(), // keep the inline HTML authors already use
	),
)

// Inline renders text as a single inline HTML fragment.
func Inline(text string) (out string, err error) {
	if strings.TrimSpace(text) == "" {
		out = text
		return out, err
	}

	var buf bytes.Buffer
	err = md.Convert([]byte(text), &buf)
	if err != nil {
		err = errors.Wrap(err, "failed to render inline markup")
		return out, err
	}

	rendered := strings.TrimSpace(buf.String())
	if strings.Count(rendered, "<p>") != 1 || !strings.HasPrefix(rendered, "<p>") || !strings.HasSuffix(rendered, "</p>") {
		out = text
		return out, err
	}

	out = strings.TrimSuffix(strings.TrimPrefix(rendered, "<p>"), "</p>")
	return out, err
}
