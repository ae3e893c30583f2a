package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// Pandoc defaults. Pandoc cannot typeset HTML itself, so it hands off to an HTML-capable PDF engine.
const (
	DefaultPandocBinary    = "pandoc"
	DefaultPandocPDFEngine = "weasyprint"
)

// PandocEngine renders through an external pandoc installation.
type PandocEngine struct {
	Binary    string
	PDFEngine string
}

// NewPandocEngine returns a PandocEngine, filling in defaults for blank settings.
func NewPandocEngine(binary, pdfEngine string) (p *PandocEngine) {
	if binary == "" {
		binary = DefaultPandocBinary
	}
	if pdfEngine == "" {
		pdfEngine = DefaultPandocPDFEngine
	}
	p = &PandocEngine{Binary: binary, PDFEngine: pdfEngine}
	return p
}

// Name implements Engine.
func (p *PandocEngine) Name() (name string) {
	name = EnginePandoc
	return name
}

// Extension implements Engine.
func (p *PandocEngine) Extension() (ext string) {
	ext = ".pdf"
	return ext
}

// Convert implements Engine. The HTML is staged in a private temp directory
// because pandoc reads and writes files.
func (p *PandocEngine) Convert(ctx context.Context, html []byte) (pdf []byte, err error) {
	err = p.checkPandocExists(ctx)
	if err != nil {
		return pdf, err
	}

	var workDir string
	workDir, err = os.MkdirTemp("", "cvgen-pandoc-*")
	if err != nil {
		err = errors.Wrap(err, "failed to create pandoc work directory")
		return pdf, err
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, "cv.html")
	outputPath := filepath.Join(workDir, "cv.pdf")

	err = os.WriteFile(inputPath, html, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to stage pandoc input: %s", inputPath)
		return pdf, err
	}

	err = validateFiles(inputPath)
	if err != nil {
		return pdf, err
	}

	//nolint:gosec // binary and engine come from the user's own configuration
	cmd := exec.CommandContext(ctx,
		p.Binary,
		"-f", "html",
		"-t", "pdf",
		"--pdf-engine="+p.PDFEngine,
		"-o", outputPath,
		inputPath,
	)

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return pdf, err
	}

	pdf, err = os.ReadFile(outputPath)
	if err != nil {
		err = errors.Wrapf(err, "pandoc produced no output: %s", outputPath)
		return pdf, err
	}

	return pdf, err
}

// Close implements Engine.
func (p *PandocEngine) Close() (err error) {
	return err
}

// checkPandocExists verifies the pandoc binary runs.
func (p *PandocEngine) checkPandocExists(ctx context.Context) (err error) {
	//nolint:gosec // binary comes from the user's own configuration
	cmd := exec.CommandContext(ctx, p.Binary, "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.Errorf("%s not found in PATH (install pandoc or use another engine)", p.Binary)
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}
