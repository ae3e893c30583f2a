package renderer

import (
	"context"
	"strings"

	"github.com/nikogura/cvgen/pkg/fileutil"
	"github.com/pkg/errors"
)

// Engine names accepted by NewEngine.
const (
	EngineChrome = "pdf"
	EnginePandoc = "pandoc"
	EngineHTML   = "html"
)

var (
	// ErrUnknownEngine is returned by NewEngine for names it does not know.
	ErrUnknownEngine = errors.New("unknown render engine")

	// ErrRender marks failures while turning a laid-out page into document bytes.
	ErrRender = errors.New("render failed")

	// ErrWriteOutput marks failures while writing a rendered document to disk.
	ErrWriteOutput = fileutil.ErrWrite
)

// Engine converts a print-ready HTML document into the output format.
type Engine interface {
	Name() string
	// Extension is the output file extension, including the dot.
	Extension() string
	Convert(ctx context.Context, html []byte) ([]byte, error)
	Close() error
}

// EngineOptions carries engine-specific settings.
type EngineOptions struct {
	ChromePath      string
	PandocBinary    string
	PandocPDFEngine string
}

// NewEngine constructs the engine registered under name.
func NewEngine(name string, opts EngineOptions) (engine Engine, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case EngineChrome:
		engine = NewChromeEngine(opts.ChromePath)
	case EnginePandoc:
		engine = NewPandocEngine(opts.PandocBinary, opts.PandocPDFEngine)
	case EngineHTML:
		engine = HTMLEngine{}
	default:
		err = errors.Wrapf(ErrUnknownEngine, "%q (want one of %s, %s, %s)", name, EngineChrome, EnginePandoc, EngineHTML)
	}
	return engine, err
}

// HTMLEngine writes the print-ready HTML as is. It needs no external tools.
type HTMLEngine struct{}

// Name implements Engine.
func (HTMLEngine) Name() (name string) {
	name = EngineHTML
	return name
}

// Extension implements Engine.
func (HTMLEngine) Extension() (ext string) {
	ext = ".html"
	return ext
}

// Convert implements Engine.
func (HTMLEngine) Convert(ctx context.Context, html []byte) (out []byte, err error) {
	err = ctx.Err()
	if err != nil {
		return out, err
	}
	out = html
	return out, err
}

// Close implements Engine.
func (HTMLEngine) Close() (err error) {
	return err
}

// sentinelError tags cause with a sentinel for errors.Is while keeping cause's message.
type sentinelError struct {
	sentinel error
	cause    error
}

func (e *sentinelError) Error() string {
	return e.cause.Error()
}

func (e *sentinelError) Is(target error) bool {
	return target == e.sentinel
}

func (e *sentinelError) Unwrap() error {
	return e.cause
}

func renderError(cause error) (err error) {
	err = &sentinelError{sentinel: ErrRender, cause: cause}
	return err
}
