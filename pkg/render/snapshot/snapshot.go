// Package snapshot rasterizes SVG drawing sheets to PNG with headless
// Chrome.
package snapshot

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single render.
const DefaultTimeout = 30 * time.Second

// DataURI wraps an SVG document as a base64 data URI.
func DataURI(svg []byte) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)
}

// PNG loads svg into a headless browser and screenshots the root <svg>
// element.
func PNG(ctx context.Context, svg []byte) ([]byte, error) {
	if len(svg) == 0 {
		return nil, fmt.Errorf("empty svg document")
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, DefaultTimeout)
	defer cancelTimeout()

	var buf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(DataURI(svg)),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp: %w", err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("screenshot buffer is empty")
	}
	return buf, nil
}

// WriteFile renders svg and writes the PNG to path.
func WriteFile(ctx context.Context, path string, svg []byte) error {
	png, err := PNG(ctx, svg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
