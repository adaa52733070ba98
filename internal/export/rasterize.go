package export

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Capture is an image capture of a rendered surface.
type Capture struct {
	PNG    []byte
	Width  int
	Height int
}

// Rasterizer turns rendered HTML into an image capture.
type Rasterizer interface {
	Capture(ctx context.Context, html string, scale float64) (*Capture, error)
}

// viewportWidth matches the preview page width so the capture has print
// proportions.
const viewportWidth = 827

// ChromeRasterizer captures rendered HTML with a headless browser.
type ChromeRasterizer struct {
	execPath string
	timeout  time.Duration
}

// NewChromeRasterizer creates a rasterizer. execPath may be empty to use
// the browser found on PATH.
func NewChromeRasterizer(execPath string) *ChromeRasterizer {
	return &ChromeRasterizer{execPath: execPath, timeout: 60 * time.Second}
}

// Capture writes html to a temporary file, loads it in a headless browser
// and takes a full-page screenshot at the given device scale factor.
func (r *ChromeRasterizer) Capture(ctx context.Context, html string, scale float64) (*Capture, error) {
	tmpDir, err := os.MkdirTemp("", "cv-export-")
	if err != nil {
		return nil, &EncodingError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &EncodingError{Message: "failed to write render surface", Cause: err}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.timeout)
	defer cancelRun()

	var shot []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(viewportWidth, 1, chromedp.EmulateScale(scale)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var captureErr error
			shot, captureErr = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			return captureErr
		}),
	)
	if err != nil {
		return nil, &EncodingError{Message: "screenshot capture failed", Cause: err}
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return nil, &EncodingError{Message: "capture is not a valid PNG", Cause: err}
	}

	return &Capture{PNG: shot, Width: cfg.Width, Height: cfg.Height}, nil
}
