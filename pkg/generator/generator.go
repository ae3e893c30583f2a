// Package generator runs a full CV generation pass: load the content file,
// resolve the audience set and render one document per audience.
package generator

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikogura/cvgen/pkg/audience"
	"github.com/nikogura/cvgen/pkg/content"
	"github.com/nikogura/cvgen/pkg/emphasis"
	"github.com/nikogura/cvgen/pkg/renderer"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DateLayout is the date stamp used in output filenames, e.g. 2024_Mar_05.
const DateLayout = "2006_Jan_02"

// DefaultName replaces a blank document name in filenames.
const DefaultName = "Resume"

// ErrNoEngine is returned when Options has no render engine.
var ErrNoEngine = errors.New("no render engine configured")

// ErrOutputCollision is returned when two audiences map to the same output file.
var ErrOutputCollision = errors.New("audiences share an output file")

// Options configures a Run.
type Options struct {
	ContentPath string
	OutputDir   string
	Engine      renderer.Engine
	Emphasizer  *emphasis.Emphasizer
	// Markdown renders inline Markdown in summary, intro and bullet text.
	Markdown    bool
	// Concurrency caps parallel renders. Values below 1 mean sequential.
	Concurrency int
	Now         func() time.Time
	Out         io.Writer
	Verbose     bool
}

// Result describes a completed run. Audiences and Files are index-aligned.
type Result struct {
	RunID     uuid.UUID
	Created   bool
	Audiences []string
	Files     []string
}

// Run loads the content file and writes one CV per audience into OutputDir.
// The first failed render cancels the others and is returned.
func Run(ctx context.Context, opts Options) (result Result, err error) {
	if opts.Engine == nil {
		err = ErrNoEngine
		return result, err
	}
	opts = withDefaults(opts)

	result.RunID = uuid.New()
	p := &progress{out: opts.Out, verbose: opts.Verbose}
	p.detail("Run %s using the %s engine", result.RunID, opts.Engine.Name())

	loaded, err := content.LoadContext(ctx, opts.ContentPath)
	if err != nil {
		return result, err
	}
	result.Created = loaded.Created

	if loaded.Created {
		p.say("⚠ %s not found. Created template file.", loaded.Path)
	} else {
		p.say("✓ Loaded %s.", loaded.Path)
	}
	p.say("✓ Data validation passed.")

	audiences, fallback := audience.Resolve(loaded.Document)
	if fallback {
		p.say("⚠ No specific audiences found (e.g. 'fullstack', 'backend'). Generating a generic '%s' resume.", audience.Fallback)
	} else {
		p.say("✓ Found target audiences: %s", strings.Join(audiences, ", "))
	}
	result.Audiences = audiences

	now := opts.Now()
	r := renderer.New(opts.Engine, opts.Emphasizer)
	r.Markdown = opts.Markdown
	files := make([]string, len(audiences))
	// keyed case-insensitively, output directories may live on such filesystems
	owners := make(map[string]string, len(audiences))
	for i, aud := range audiences {
		files[i] = filepath.Join(opts.OutputDir, Filename(loaded.Document.Name, aud, now, r.Extension()))
		key := strings.ToLower(files[i])
		if other, taken := owners[key]; taken {
			err = errors.Wrapf(ErrOutputCollision, "audiences %q and %q both write %s; rename one of the tags", other, aud, files[i])
			return result, err
		}
		owners[key] = aud
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, aud := range audiences {
		outPath := files[i]
		g.Go(func() (renderErr error) {
			renderErr = gctx.Err()
			if renderErr != nil {
				return renderErr
			}

			var out renderer.Output
			out, renderErr = r.Render(gctx, loaded.Document, aud, outPath)
			if renderErr != nil {
				renderErr = errors.Wrapf(renderErr, "failed to generate %s CV at %s", aud, outPath)
				return renderErr
			}

			p.say("✓ Generated: %s", outPath)
			switch {
			case out.PageErr != nil:
				p.detail("  could not count pages of %s: %v", outPath, out.PageErr)
			case out.Pages > 0:
				p.detail("  %d page(s), %d bytes", out.Pages, out.Bytes)
			default:
				p.detail("  %d bytes", out.Bytes)
			}
			return renderErr
		})
	}

	err = g.Wait()
	if err != nil {
		return result, err
	}

	result.Files = files
	p.say("✓ All resumes generated successfully!")
	return result, err
}

// Filename builds "<Name>_CV_<Audience>_<YYYY_Mon_DD><ext>". Spaces become
// underscores and path separators are replaced so the file stays in the output directory.
func Filename(name, aud string, now time.Time, ext string) (filename string) {
	base := strings.TrimSpace(name)
	if base == "" {
		base = DefaultName
	}

	filename = fmt.Sprintf("%s_CV_%s_%s", base, audience.Label(aud), now.Format(DateLayout))
	filename = unsafeChars.Replace(filename) + ext
	return filename
}

//nolint:gochecknoglobals // immutable replacer
var unsafeChars = strings.NewReplacer(" ", "_", "/", "_", "\\", "_")

func withDefaults(opts Options) (out Options) {
	out = opts
	if out.ContentPath == "" {
		out.ContentPath = content.DefaultPath
	}
	if out.OutputDir == "" {
		out.OutputDir = "."
	}
	if out.Concurrency < 1 {
		out.Concurrency = 1
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	if out.Out == nil {
		out.Out = io.Discard
	}
	return out
}

// progress serializes status lines from concurrent render passes.
type progress struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

func (p *progress) say(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *progress) detail(format string, args ...interface{}) {
	if !p.verbose {
		return
	}
	p.say(format, args...)
}
