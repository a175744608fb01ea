package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/career-advisor/internal/types"
)

// renderTimeout bounds one Chrome print run, including browser startup.
const renderTimeout = 60 * time.Second

// PDFRenderer prints career-path report pages to PDF with headless Chrome.
type PDFRenderer struct {
	// ChromePath overrides the browser binary; empty uses chromedp's default.
	ChromePath string
}

// NewPDFRenderer creates a renderer, honoring the CHROME_PATH environment
// variable when set.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{ChromePath: os.Getenv("CHROME_PATH")}
}

// RenderCareerPath renders one career path to PDF bytes.
func (r *PDFRenderer) RenderCareerPath(ctx context.Context, cp types.CareerPath) ([]byte, error) {
	html, err := RenderHTML(cp)
	if err != nil {
		return nil, err
	}
	return r.printHTML(ctx, html)
}

// printHTML serves the page from a temp file and prints it A4.
func (r *PDFRenderer) printHTML(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, renderTimeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "career-report-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "report.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage report page: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm in inches
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return pdfBuf, nil
}

// WritePDF renders one career path into dir, named from the sanitized path
// name. Uses the same temp-then-rename staging as the JSON export.
func (r *PDFRenderer) WritePDF(ctx context.Context, dir string, cp types.CareerPath) (string, error) {
	data, err := r.RenderCareerPath(ctx, cp)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	target := filepath.Join(dir, SanitizePathName(cp.Name)+".pdf")
	if err := writeAtomic(target, data); err != nil {
		return "", err
	}
	return target, nil
}
