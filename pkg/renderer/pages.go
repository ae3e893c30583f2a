package renderer

import (
	"bytes"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// CountPages reports the page count of a PDF document.
func CountPages(data []byte) (pages int, err error) {
	defer func() {
		// the PDF reader panics on some malformed cross-reference tables
		if rec := recover(); rec != nil {
			err = errors.Errorf("failed to read PDF: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		err = errors.Wrap(err, "failed to read PDF")
		return pages, err
	}

	pages = reader.NumPage()
	return pages, err
}
