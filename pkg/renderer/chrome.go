package renderer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/layout"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// A4 in inches with 1.5cm margins.
const (
	a4Width    = 8.27
	a4Height   = 11.69
	pageMargin = 0.59
)

// Chrome renders documents as HTML and prints them with headless Chrome.
type Chrome struct {
	cfg config.ChromeConfig
}

// NewChrome creates a Chrome engine.
func NewChrome(cfg config.ChromeConfig) (c *Chrome) {
	c = &Chrome{cfg: cfg}
	return c
}

// Name returns the engine name.
func (c *Chrome) Name() (name string) {
	name = "chrome"
	return name
}

// RenderPDF converts the document to PDF bytes.
func (c *Chrome) RenderPDF(ctx context.Context, doc layout.Document) (pdf []byte, err error) {
	var html string
	html, err = HTML(doc)
	if err != nil {
		return pdf, err
	}

	var workDir string
	workDir, err = os.MkdirTemp("", "resume-builder-*")
	if err != nil {
		err = errors.Wrap(err, "failed to create work directory")
		return pdf, err
	}
	defer os.RemoveAll(workDir)

	htmlPath := filepath.Join(workDir, "resume.html")
	err = os.WriteFile(htmlPath, []byte(html), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write html file: %s", htmlPath)
		return pdf, err
	}

	var allocOpts []chromedp.ExecAllocatorOption
	allocOpts, err = c.allocatorOptions()
	if err != nil {
		return pdf, err
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	log.Debug().Str("html", htmlPath).Msg("printing with chrome")

	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				WithMarginTop(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				WithMarginRight(pageMargin).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		err = errors.Wrap(err, "chrome failed to print pdf")
		return pdf, err
	}

	return pdf, err
}

func (c *Chrome) allocatorOptions() (opts []chromedp.ExecAllocatorOption, err error) {
	opts = append(opts, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
	)

	execPath := c.cfg.Path
	if execPath == "" && c.cfg.AutoDownload {
		execPath, err = launcher.NewBrowser().Get()
		if err != nil {
			err = errors.Wrap(err, "failed to download chromium")
			return opts, err
		}
	}
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}

	if c.cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	return opts, err
}
