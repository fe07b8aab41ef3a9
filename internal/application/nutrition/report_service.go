package nutrition

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/shopspring/decimal"
)

// Stats overview defaults and the longest report or chart window
const (
	DefaultStatsDays = 7
	MaxStatsDays     = 365
	MaxReportDays    = 366
)

// ReportRenderer turns a report into a printable document
type ReportRenderer interface {
	RenderReport(ctx context.Context, report *ReportResponse) ([]byte, error)
}

// ReportService builds read-only views over summaries and entries
type ReportService struct {
	entries   nutrition.EntryRepository
	summaries nutrition.SummaryRepository
	engine    *RollupEngine
	renderer  ReportRenderer
	now       func() time.Time
}

// NewReportService creates a new ReportService. renderer may be nil, in which
// case ReportPDF is unavailable.
func NewReportService(
	entries nutrition.EntryRepository,
	summaries nutrition.SummaryRepository,
	engine *RollupEngine,
	renderer ReportRenderer,
) *ReportService {
	return &ReportService{
		entries:   entries,
		summaries: summaries,
		engine:    engine,
		renderer:  renderer,
		now:       time.Now,
	}
}

// DailySummary returns the summary of one day, materializing it if needed.
// An empty date means today.
func (s *ReportService) DailySummary(ctx context.Context, userID uuid.UUID, date string) (*SummaryResponse, error) {
	d, err := s.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	summary, err := s.engine.GetOrCompute(ctx, userID, d)
	if err != nil {
		return nil, err
	}
	resp := ToSummaryResponse(summary, s.engine.Location())
	return &resp, nil
}

// RecomputeDaily forces a rebuild of one day's summary
func (s *ReportService) RecomputeDaily(ctx context.Context, userID uuid.UUID, date string) (*SummaryResponse, error) {
	d, err := s.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	summary, err := s.engine.Recompute(ctx, userID, d)
	if err != nil {
		return nil, err
	}
	resp := ToSummaryResponse(summary, s.engine.Location())
	return &resp, nil
}

// GoalsProgress returns the progress view of one day
func (s *ReportService) GoalsProgress(ctx context.Context, userID uuid.UUID, date string) (*ProgressResponse, error) {
	d, err := s.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	view, err := s.engine.GoalsProgress(ctx, userID, d)
	if err != nil {
		return nil, err
	}
	resp := ToProgressResponse(view, s.engine.Location())
	return &resp, nil
}

// Report collects the stored summaries and the entries of an inclusive
// window. Averages divide the totals by the calendar length of the window.
func (s *ReportService) Report(ctx context.Context, userID uuid.UUID, q ReportQuery) (*ReportResponse, error) {
	start, end, err := s.window(q)
	if err != nil {
		return nil, err
	}

	summaries, err := s.summaries.FindByUserAndRange(ctx, userID, start.Start, end.Start)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.FindByUserAndRange(ctx, userID, start.Start, end.End)
	if err != nil {
		return nil, err
	}
	totals, err := s.entries.SumByUserAndRange(ctx, userID, start.Start, end.End)
	if err != nil {
		return nil, err
	}

	slices.Reverse(entries)
	loc := s.engine.Location()
	dayCount := spanDays(start, end)

	resp := &ReportResponse{
		Period: ReportPeriod{
			StartDate: start.Start.Format(time.DateOnly),
			EndDate:   end.Start.Format(time.DateOnly),
			DayCount:  dayCount,
		},
		Summaries:   make([]SummaryResponse, len(summaries)),
		Entries:     ToEntryResponses(entries),
		Totals:      totals.Totals,
		Averages:    average(totals.Totals, dayCount),
		EntryCount:  totals.EntryCount,
		GeneratedAt: s.now().UTC(),
	}
	for i, sum := range summaries {
		resp.Summaries[i] = ToSummaryResponse(sum, loc)
	}
	return resp, nil
}

// ReportPDF renders Report as a PDF document
func (s *ReportService) ReportPDF(ctx context.Context, userID uuid.UUID, q ReportQuery) ([]byte, error) {
	if s.renderer == nil {
		return nil, ErrRendererUnavailable
	}
	report, err := s.Report(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	pdf, err := s.renderer.RenderReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return pdf, nil
}

// Chart buckets the entries of a window by day, ISO week or month
func (s *ReportService) Chart(ctx context.Context, userID uuid.UUID, q ChartQuery) (*ChartResponse, error) {
	granularity := nutrition.Granularity(q.Granularity)
	if granularity == "" {
		granularity = nutrition.GranularityDaily
	}
	if !granularity.IsValid() {
		return nil, ErrInvalidGranularity
	}
	start, end, err := s.window(q.ReportQuery)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.FindByUserAndRange(ctx, userID, start.Start, end.End)
	if err != nil {
		return nil, err
	}

	loc := s.engine.Location()
	buckets := map[string]*ChartPoint{}
	for _, e := range entries {
		key := bucketKey(e.Date.In(loc), granularity)
		p, ok := buckets[key]
		if !ok {
			p = &ChartPoint{Period: key}
			buckets[key] = p
		}
		p.Nutrients = p.Nutrients.Add(e.Nutrients)
		p.EntryCount++
	}

	points := make([]ChartPoint, 0, len(buckets))
	for _, p := range buckets {
		p.Nutrients = round2(p.Nutrients)
		points = append(points, *p)
	}
	slices.SortFunc(points, func(a, b ChartPoint) int {
		switch {
		case a.Period < b.Period:
			return -1
		case a.Period > b.Period:
			return 1
		}
		return 0
	})
	return &ChartResponse{Granularity: granularity, Points: points}, nil
}

// StatsOverview summarizes the trailing window of q.Days days ending at q.Date
func (s *ReportService) StatsOverview(ctx context.Context, userID uuid.UUID, q StatsQuery) (*StatsOverview, error) {
	d, err := s.dateOrToday(q.Date)
	if err != nil {
		return nil, err
	}
	days := q.Days
	if days <= 0 {
		days = DefaultStatsDays
	}
	days = min(days, MaxStatsDays)

	loc := s.engine.Location()
	end := nutrition.DayKey(d, loc)
	start := nutrition.DayKey(end.Start.AddDate(0, 0, -(days - 1)), loc)

	summaries, err := s.summaries.FindByUserAndRange(ctx, userID, start.Start, end.Start)
	if err != nil {
		return nil, err
	}

	out := &StatsOverview{
		StartDate: start.Start.Format(time.DateOnly),
		EndDate:   end.Start.Format(time.DateOnly),
		Days:      days,
	}
	logged := map[string]bool{}
	var totals nutrition.Nutrients
	completion := 0
	for _, sum := range summaries {
		if sum.TotalEntries == 0 {
			continue
		}
		logged[sum.Date.In(loc).Format(time.DateOnly)] = true
		out.DaysLogged++
		out.TotalEntries += sum.TotalEntries
		totals = totals.Add(sum.Totals)
		completion += sum.OverallCompletion()
	}
	if out.DaysLogged > 0 {
		out.Averages = average(totals, out.DaysLogged)
		out.AverageCompletion = nutrition.Percent(float64(completion), float64(out.DaysLogged*100))
	}
	for day := end.Start; !day.Before(start.Start); day = nutrition.DayKey(day.AddDate(0, 0, -1), loc).Start {
		if !logged[day.Format(time.DateOnly)] {
			break
		}
		out.CurrentStreak++
	}
	return out, nil
}

func (s *ReportService) dateOrToday(date string) (time.Time, error) {
	if date == "" {
		return s.now(), nil
	}
	return nutrition.ParseDate(date, s.engine.Location())
}

// window parses an inclusive date window into its first and last day
func (s *ReportService) window(q ReportQuery) (nutrition.DayRange, nutrition.DayRange, error) {
	loc := s.engine.Location()
	from, err := nutrition.ParseDate(q.StartDate, loc)
	if err != nil {
		return nutrition.DayRange{}, nutrition.DayRange{}, err
	}
	to, err := nutrition.ParseDate(q.EndDate, loc)
	if err != nil {
		return nutrition.DayRange{}, nutrition.DayRange{}, err
	}
	start, end := nutrition.DayKey(from, loc), nutrition.DayKey(to, loc)
	if start.Start.After(end.Start) {
		return nutrition.DayRange{}, nutrition.DayRange{}, nutrition.ErrInvalidRange
	}
	if spanDays(start, end) > MaxReportDays {
		return nutrition.DayRange{}, nutrition.DayRange{}, ErrWindowTooLong
	}
	return start, end, nil
}

// spanDays counts calendar days from start to end inclusive; rounded, so 23
// and 25 hour DST days still count once
func spanDays(start, end nutrition.DayRange) int {
	return int(math.Round(end.Start.Sub(start.Start).Hours()/24)) + 1
}

func bucketKey(t time.Time, g nutrition.Granularity) string {
	switch g {
	case nutrition.GranularityWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case nutrition.GranularityMonthly:
		return t.Format("2006-01")
	default:
		return t.Format(time.DateOnly)
	}
}

// average divides every nutrient by n, rounded to 2 decimals
func average(total nutrition.Nutrients, n int) nutrition.Nutrients {
	var out nutrition.Nutrients
	if n <= 0 {
		return out
	}
	div := decimal.NewFromInt(int64(n))
	for _, k := range nutrition.AllNutrients {
		v := decimal.NewFromFloat(total.Get(k)).Div(div).Round(2)
		out = out.Set(k, v.InexactFloat64())
	}
	return out
}

func round2(n nutrition.Nutrients) nutrition.Nutrients {
	return average(n, 1)
}
