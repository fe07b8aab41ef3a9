// Package printing renders nutrition reports to PDF with headless Chrome.
//
// The report is first rendered to HTML from an embedded template, with
// numbers formatted for the configured locale, then printed by Chrome over
// the DevTools protocol:
//
//	renderer, err := printing.NewChromeRenderer(cfg.Printing, logger)
//	if err != nil {
//	    return err
//	}
//	defer renderer.Close()
//
//	pdf, err := renderer.RenderReport(ctx, report)
package printing
