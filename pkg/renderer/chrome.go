package renderer

import (
	"context"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

// US Letter in inches, margins as in the stylesheet.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginTopBottom   = 0.4
	marginLeftRight   = 0.5
)

// ChromeEngine prints HTML to PDF with headless Chrome. The browser starts on the
// first Convert and is shared by later calls; each call prints in its own tab.
type ChromeEngine struct {
	ExecPath string

	mu         sync.Mutex
	browserCtx context.Context
	cancel     context.CancelFunc
}

// NewChromeEngine returns a ChromeEngine. An empty execPath lets chromedp find Chrome.
func NewChromeEngine(execPath string) (c *ChromeEngine) {
	c = &ChromeEngine{ExecPath: execPath}
	return c
}

// Name implements Engine.
func (c *ChromeEngine) Name() (name string) {
	name = EngineChrome
	return name
}

// Extension implements Engine.
func (c *ChromeEngine) Extension() (ext string) {
	ext = ".pdf"
	return ext
}

// ensureBrowser lazily launches the shared browser.
func (c *ChromeEngine) ensureBrowser() (browserCtx context.Context, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browserCtx != nil {
		browserCtx = c.browserCtx
		return browserCtx, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	// The browser outlives any single Convert call, so it is not tied to a caller's context.
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	err = chromedp.Run(browserCtx)
	if err != nil {
		browserCancel()
		allocCancel()
		err = errors.Wrap(err, "failed to start headless Chrome")
		return browserCtx, err
	}

	c.browserCtx = browserCtx
	c.cancel = func() {
		browserCancel()
		allocCancel()
	}
	return browserCtx, err
}

// Convert implements Engine.
func (c *ChromeEngine) Convert(ctx context.Context, html []byte) (pdf []byte, err error) {
	err = ctx.Err()
	if err != nil {
		return pdf, err
	}

	var browserCtx context.Context
	browserCtx, err = c.ensureBrowser()
	if err != nil {
		return pdf, err
	}

	tabCtx, tabCancel := chromedp.NewContext(browserCtx)
	defer tabCancel()
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, treeErr := page.GetFrameTree().Do(ctx)
			if treeErr != nil {
				return treeErr
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, printErr := page.PrintToPDF().
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginTopBottom).
				WithMarginBottom(marginTopBottom).
				WithMarginLeft(marginLeftRight).
				WithMarginRight(marginLeftRight).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if printErr != nil {
				return printErr
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
			return pdf, err
		}
		err = errors.Wrap(err, "chrome failed to print PDF")
		return pdf, err
	}

	return pdf, err
}

// Close shuts down the browser, if one was started.
func (c *ChromeEngine) Close() (err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
		c.browserCtx = nil
	}
	return err
}
