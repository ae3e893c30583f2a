package renderer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikogura/cvgen/pkg/content"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	ext  string
	out  []byte
	err  error
	seen [][]byte
}

func (f *fakeEngine) Name() string      { return "fake" }
func (f *fakeEngine) Extension() string { return f.ext }
func (f *fakeEngine) Close() error      { return nil }

func (f *fakeEngine) Convert(_ context.Context, html []byte) ([]byte, error) {
	f.seen = append(f.seen, html)
	return f.out, f.err
}

func TestRenderHTMLEngine(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out", "John_Doe_CV_Devops.html")

	r := New(HTMLEngine{}, nil)
	out, err := r.Render(context.Background(), content.Seed(), "devops", outPath)
	require.NoError(t, err)

	assert.Equal(t, outPath, out.Path)
	assert.Zero(t, out.Pages)
	assert.NoError(t, out.PageErr)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, len(data), out.Bytes)
	assert.True(t, bytes.HasPrefix(data, []byte("<!DOCTYPE html>")))
	assert.Contains(t, string(data), "<b>Kubernetes</b>")
}

func TestRenderPassesLayoutToEngine(t *testing.T) {
	engine := &fakeEngine{ext: ".bin", out: []byte("rendered")}
	outPath := filepath.Join(t.TempDir(), "cv.bin")

	_, err := New(engine, nil).Render(context.Background(), content.Seed(), "frontend", outPath)
	require.NoError(t, err)

	require.Len(t, engine.seen, 1)
	assert.Contains(t, string(engine.seen[0]), `content="frontend"`)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "rendered", string(data))
}

func TestRenderEngineFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "cv.pdf")
	engine := &fakeEngine{ext: ".pdf", err: errors.New("printer on fire")}

	_, err := New(engine, nil).Render(context.Background(), content.Seed(), "backend", outPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRender)
	assert.Contains(t, err.Error(), "printer on fire")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	engine := &fakeEngine{ext: ".bin", out: []byte("rendered")}
	_, err := New(engine, nil).Render(context.Background(), content.Seed(), "backend", filepath.Join(blocker, "cv.bin"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteOutput)
	assert.NotErrorIs(t, err, ErrRender)
}

func TestRenderCountsPDFPages(t *testing.T) {
	engine := &fakeEngine{ext: ".pdf", out: minimalPDF(2)}
	outPath := filepath.Join(t.TempDir(), "cv.pdf")

	out, err := New(engine, nil).Render(context.Background(), content.Seed(), "backend", outPath)
	require.NoError(t, err)
	require.NoError(t, out.PageErr)
	assert.Equal(t, 2, out.Pages)
}

func TestRenderReportsUnreadablePDF(t *testing.T) {
	engine := &fakeEngine{ext: ".pdf", out: []byte("not a pdf")}
	outPath := filepath.Join(t.TempDir(), "cv.pdf")

	out, err := New(engine, nil).Render(context.Background(), content.Seed(), "backend", outPath)
	require.NoError(t, err)
	assert.Error(t, out.PageErr)
	assert.FileExists(t, outPath)
}

func TestCountPages(t *testing.T) {
	pages, err := CountPages(minimalPDF(1))
	require.NoError(t, err)
	assert.Equal(t, 1, pages)

	_, err = CountPages([]byte("%PDF-1.4 truncated"))
	assert.Error(t, err)

	_, err = CountPages(nil)
	assert.Error(t, err)
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		ext     string
		wantErr bool
	}{
		{name: "pdf", want: EngineChrome, ext: ".pdf"},
		{name: "PDF", want: EngineChrome, ext: ".pdf"},
		{name: "pandoc", want: EnginePandoc, ext: ".pdf"},
		{name: "html", want: EngineHTML, ext: ".html"},
		{name: "docx", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEngine(tt.name, EngineOptions{})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownEngine)
				return
			}
			require.NoError(t, err)
			defer engine.Close()

			assert.Equal(t, tt.want, engine.Name())
			assert.Equal(t, tt.ext, engine.Extension())
		})
	}
}

func TestHTMLEngineHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := HTMLEngine{}.Convert(ctx, []byte("<html></html>"))
	assert.ErrorIs(t, err, context.Canceled)
}

// minimalPDF builds a valid PDF with n empty Letter pages and a correct xref table.
func minimalPDF(n int) []byte {
	var buf bytes.Buffer
	offsets := []int{}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, n)
	for i := range n {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n),
	}
	for range n {
		objects = append(objects, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	}

	for i, obj := range objects {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}
