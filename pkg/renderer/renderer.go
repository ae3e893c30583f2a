// Package renderer lays out one audience's CV and writes it as a document.
//
// Rendering happens in three steps: Layout selects and formats the content,
// HTML executes the print stylesheet template, and an Engine converts that HTML
// into the output format. Output files are written atomically, so a failed
// render never leaves a partial file behind.
package renderer

import (
	"context"

	"github.com/nikogura/cvgen/pkg/content"
	"github.com/nikogura/cvgen/pkg/emphasis"
	"github.com/nikogura/cvgen/pkg/fileutil"
	"github.com/pkg/errors"
)

// Renderer renders documents through an Engine.
type Renderer struct {
	Engine     Engine
	Emphasizer *emphasis.Emphasizer
	// Markdown renders inline Markdown in summary, intro and bullet text.
	Markdown   bool
}

// Output describes a written document.
type Output struct {
	Path    string
	Bytes   int
	// Pages is zero when the output is not a PDF or PageErr is set.
	Pages   int
	PageErr error
}

// New returns a Renderer. A nil emph uses the default vocabulary.
func New(engine Engine, emph *emphasis.Emphasizer) (r *Renderer) {
	if emph == nil {
		emph = emphasis.Default()
	}
	r = &Renderer{Engine: engine, Emphasizer: emph}
	return r
}

// Extension is the file extension of the engine's output.
func (r *Renderer) Extension() (ext string) {
	ext = r.Engine.Extension()
	return ext
}

// Render lays out doc for audience and writes the result to outPath.
func (r *Renderer) Render(ctx context.Context, doc content.Document, audience, outPath string) (out Output, err error) {
	out.Path = outPath

	page, err := layout(doc, audience, r.Emphasizer, r.Markdown)
	if err != nil {
		err = renderError(errors.Wrapf(err, "failed to lay out CV for %s", audience))
		return out, err
	}

	html, err := HTML(page)
	if err != nil {
		err = renderError(err)
		return out, err
	}

	data, err := r.Engine.Convert(ctx, html)
	if err != nil {
		err = renderError(errors.Wrapf(err, "%s engine failed for %s", r.Engine.Name(), audience))
		return out, err
	}

	err = fileutil.WriteAtomic(outPath, data, 0644)
	if err != nil {
		return out, err
	}
	out.Bytes = len(data)

	if r.Engine.Extension() == ".pdf" {
		out.Pages, out.PageErr = CountPages(data)
	}

	return out, err
}
