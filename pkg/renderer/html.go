package renderer

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/pkg/errors"
)

//go:embed templates/cv.html.tmpl
var templateFS embed.FS

//nolint:gochecknoglobals // parsed once, templates are safe for concurrent execution
var cvTemplate = template.Must(template.ParseFS(templateFS, "templates/cv.html.tmpl"))

// HTML renders page as a standalone, print-ready HTML document.
func HTML(page Page) (doc []byte, err error) {
	var buf bytes.Buffer
	err = cvTemplate.ExecuteTemplate(&buf, "cv.html.tmpl", page)
	if err != nil {
		err = errors.Wrap(err, "failed to execute CV template")
		return doc, err
	}

	doc = buf.Bytes()
	return doc, err
}
