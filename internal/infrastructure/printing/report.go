package printing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	nutritionapp "github.com/nutritrack/backend/internal/application/nutrition"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/report.html
var templateFS embed.FS

// ReportTemplate renders a nutrition report to a standalone HTML document
type ReportTemplate struct {
	tmpl *template.Template
	lang language.Tag
}

// NewReportTemplate parses the report template for a BCP 47 locale.
// An empty locale means en-US.
func NewReportTemplate(locale string) (*ReportTemplate, error) {
	lang := language.AmericanEnglish
	if locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid printing locale %q: %w", locale, err)
		}
		lang = tag
	}

	p := message.NewPrinter(lang)
	title := cases.Title(lang)
	funcs := template.FuncMap{
		"num": func(v float64) string { return p.Sprintf("%.1f", v) },
		"int": func(v any) string { return p.Sprintf("%d", v) },
		"pct": func(v int) string { return p.Sprintf("%d%%", v) },
		"meal": func(m nutrition.MealType) string {
			return title.String(string(m))
		},
		"date": func(t time.Time) string { return t.Format(time.DateOnly) },
	}

	tmpl, err := template.New("report.html").Funcs(funcs).ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &ReportTemplate{tmpl: tmpl, lang: lang}, nil
}

// Execute renders report
func (t *ReportTemplate) Execute(report *nutritionapp.ReportResponse) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report is nil")
	}
	var buf bytes.Buffer
	err := t.tmpl.Execute(&buf, struct {
		Lang   string
		Report *nutritionapp.ReportResponse
	}{Lang: t.lang.String(), Report: report})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
