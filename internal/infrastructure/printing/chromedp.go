package printing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	nutritionapp "github.com/nutritrack/backend/internal/application/nutrition"
	"github.com/nutritrack/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const defaultRenderTimeout = 30 * time.Second

// A4 portrait with 12mm margins, in inches
const (
	paperWidth  = 210 / 25.4
	paperHeight = 297 / 25.4
	pageMargin  = 12 / 25.4
)

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeInvalidInput  = "INVALID_INPUT"
)

// RenderError describes a failed render
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

func newRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}

// ChromeRenderer prints HTML to PDF through a shared Chrome allocator.
// Every render opens its own tab.
type ChromeRenderer struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
	report      *ReportTemplate
	logger      *zap.Logger
}

// NewChromeRenderer starts an allocator for the configured Chrome binary.
// Chrome itself is launched lazily on the first render.
func NewChromeRenderer(cfg config.PrintingConfig, logger *zap.Logger) (*ChromeRenderer, error) {
	tmpl, err := NewReportTemplate(cfg.Locale)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoFirstRun,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}
	if cfg.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}

	r := &ChromeRenderer{
		timeout: timeout,
		report:  tmpl,
		logger:  logger.Named("printing"),
	}
	if cfg.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
	} else {
		r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}
	return r, nil
}

// RenderReport renders a nutrition report to PDF
func (r *ChromeRenderer) RenderReport(ctx context.Context, report *nutritionapp.ReportResponse) ([]byte, error) {
	html, err := r.report.Execute(report)
	if err != nil {
		return nil, newRenderError(ErrCodeInvalidInput, "failed to build report HTML", err)
	}
	return r.RenderHTML(ctx, html)
}

// RenderHTML prints a complete HTML document to PDF
func (r *ChromeRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, newRenderError(ErrCodeInvalidInput, "HTML content is empty", nil)
	}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tabCtx, tabCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer tabCancel()

	// chromedp contexts do not inherit the request deadline
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := printParams().Do(ctx)
			pdf = data
			return err
		}),
	)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return nil, newRenderError(ErrCodeRenderTimeout, fmt.Sprintf("rendering timed out after %v", r.timeout), err)
		case errors.Is(ctx.Err(), context.Canceled):
			return nil, newRenderError(ErrCodeRenderTimeout, "rendering was cancelled", err)
		}
		r.logger.Error("Chrome rendering failed", zap.Error(err))
		return nil, newRenderError(ErrCodeRenderFailed, "chrome rendering failed", err)
	}
	if len(pdf) == 0 {
		return nil, newRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	r.logger.Info("PDF rendered",
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(start)))
	return pdf, nil
}

func printParams() *page.PrintToPDFParams {
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(paperWidth).
		WithPaperHeight(paperHeight).
		WithMarginTop(pageMargin).
		WithMarginBottom(pageMargin).
		WithMarginLeft(pageMargin).
		WithMarginRight(pageMargin).
		WithPreferCSSPageSize(false)
}

var _ nutritionapp.ReportRenderer = (*ChromeRenderer)(nil)

// Close shuts down the browser
func (r *ChromeRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}
