package nutrition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	got *ReportResponse
	err error
}

func (r *stubRenderer) RenderReport(_ context.Context, report *ReportResponse) ([]byte, error) {
	r.got = report
	return []byte("%PDF-1.4"), r.err
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReportService_Report(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	f := newEngineFixture()
	svc := NewReportService(f.entries, f.summaries, f.engine, nil)
	svc.now = func() time.Time { return day(2025, 3, 20) }

	start, end := day(2025, 3, 1), day(2025, 3, 3)
	endOfDay := nutrition.DayKey(end, time.UTC).End
	older := entryAt(t, userID, day(2025, 3, 1).Add(8*time.Hour), "breakfast", nutrition.Nutrients{Calories: 500})
	newer := entryAt(t, userID, day(2025, 3, 3).Add(8*time.Hour), "lunch", nutrition.Nutrients{Calories: 700})

	f.summaries.On("FindByUserAndRange", ctx, userID, start, end).Return([]*nutrition.Summary{
		{UserID: userID, Date: start, TotalEntries: 1},
		{UserID: userID, Date: end, TotalEntries: 1},
	}, nil)
	f.entries.On("FindByUserAndRange", ctx, userID, start, endOfDay).Return([]*nutrition.Entry{older, newer}, nil)
	f.entries.On("SumByUserAndRange", ctx, userID, start, endOfDay).Return(nutrition.PeriodTotals{
		Totals:     nutrition.Nutrients{Calories: 1200, Protein: 10},
		EntryCount: 2,
	}, nil)

	report, err := svc.Report(ctx, userID, ReportQuery{StartDate: "2025-03-01", EndDate: "2025-03-03"})

	require.NoError(t, err)
	assert.Equal(t, 3, report.Period.DayCount)
	assert.Equal(t, 400.0, report.Averages.Calories)
	assert.Equal(t, 3.33, report.Averages.Protein)
	assert.Equal(t, int64(2), report.EntryCount)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, newer.ID, report.Entries[0].ID)
	require.Len(t, report.Summaries, 2)
	assert.Equal(t, "2025-03-01", report.Summaries[0].Date)
	assert.Equal(t, day(2025, 3, 20), report.GeneratedAt)

	t.Run("rejects reversed window", func(t *testing.T) {
		_, err := svc.Report(ctx, userID, ReportQuery{StartDate: "2025-03-05", EndDate: "2025-03-01"})
		assert.ErrorIs(t, err, nutrition.ErrInvalidRange)
	})

	t.Run("rejects windows longer than a leap year", func(t *testing.T) {
		_, err := svc.Report(ctx, userID, ReportQuery{StartDate: "2020-01-01", EndDate: "2021-01-01"})
		assert.ErrorIs(t, err, ErrWindowTooLong)
		assert.ErrorIs(t, err, nutrition.ErrInvalidRange)

		_, err = svc.Report(ctx, userID, ReportQuery{StartDate: "0001-01-01", EndDate: "9999-12-31"})
		assert.ErrorIs(t, err, ErrWindowTooLong)
	})

	t.Run("pdf needs a renderer", func(t *testing.T) {
		_, err := svc.ReportPDF(ctx, userID, ReportQuery{StartDate: "2025-03-01", EndDate: "2025-03-03"})
		assert.ErrorIs(t, err, ErrRendererUnavailable)
	})

	t.Run("pdf renders the report", func(t *testing.T) {
		r := &stubRenderer{}
		withPDF := NewReportService(f.entries, f.summaries, f.engine, r)

		pdf, err := withPDF.ReportPDF(ctx, userID, ReportQuery{StartDate: "2025-03-01", EndDate: "2025-03-03"})

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), pdf)
		require.NotNil(t, r.got)
		assert.Equal(t, 3, r.got.Period.DayCount)
	})

	t.Run("renderer failure is wrapped", func(t *testing.T) {
		boom := errors.New("chrome crashed")
		withPDF := NewReportService(f.entries, f.summaries, f.engine, &stubRenderer{err: boom})

		_, err := withPDF.ReportPDF(ctx, userID, ReportQuery{StartDate: "2025-03-01", EndDate: "2025-03-03"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestReportService_Chart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	f := newEngineFixture()
	svc := NewReportService(f.entries, f.summaries, f.engine, nil)

	entries := []*nutrition.Entry{
		entryAt(t, userID, day(2024, 12, 30).Add(time.Hour), "breakfast", nutrition.Nutrients{Calories: 100.1}),
		entryAt(t, userID, day(2024, 12, 31).Add(time.Hour), "lunch", nutrition.Nutrients{Calories: 200.2}),
		entryAt(t, userID, day(2025, 1, 6).Add(time.Hour), "dinner", nutrition.Nutrients{Calories: 300}),
	}
	f.entries.On("FindByUserAndRange", ctx, userID, mock.Anything, mock.Anything).Return(entries, nil)

	tests := []struct {
		granularity string
		want        []string
		counts      []int
	}{
		{"", []string{"2024-12-30", "2024-12-31", "2025-01-06"}, []int{1, 1, 1}},
		{"weekly", []string{"2025-W01", "2025-W02"}, []int{2, 1}},
		{"monthly", []string{"2024-12", "2025-01"}, []int{2, 1}},
	}
	for _, tt := range tests {
		t.Run("granularity "+tt.granularity, func(t *testing.T) {
			chart, err := svc.Chart(ctx, userID, ChartQuery{
				ReportQuery: ReportQuery{StartDate: "2024-12-01", EndDate: "2025-01-31"},
				Granularity: tt.granularity,
			})
			require.NoError(t, err)

			var periods []string
			var counts []int
			for _, p := range chart.Points {
				periods = append(periods, p.Period)
				counts = append(counts, p.EntryCount)
			}
			assert.Equal(t, tt.want, periods)
			assert.Equal(t, tt.counts, counts)
		})
	}

	t.Run("weekly sums are rounded", func(t *testing.T) {
		chart, err := svc.Chart(ctx, userID, ChartQuery{
			ReportQuery: ReportQuery{StartDate: "2024-12-01", EndDate: "2025-01-31"},
			Granularity: "weekly",
		})
		require.NoError(t, err)
		assert.Equal(t, 300.3, chart.Points[0].Calories)
	})

	t.Run("window cap", func(t *testing.T) {
		chart, err := svc.Chart(ctx, userID, ChartQuery{
			ReportQuery: ReportQuery{StartDate: "2024-01-01", EndDate: "2024-12-31"},
			Granularity: "monthly",
		})
		require.NoError(t, err, "a full leap year fits")
		assert.NotEmpty(t, chart.Points)

		_, err = svc.Chart(ctx, userID, ChartQuery{
			ReportQuery: ReportQuery{StartDate: "2024-01-01", EndDate: "2025-01-01"},
			Granularity: "monthly",
		})
		assert.ErrorIs(t, err, ErrWindowTooLong)
	})

		t.Run("unknown granularity", func(t *testing.T) {
		_, err := svc.Chart(ctx, userID, ChartQuery{
			ReportQuery: ReportQuery{StartDate: "2025-01-01", EndDate: "2025-01-31"},
			Granularity: "hourly",
		})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestReportService_StatsOverview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	f := newEngineFixture()
	svc := NewReportService(f.entries, f.summaries, f.engine, nil)
	svc.now = func() time.Time { return day(2025, 3, 10).Add(15 * time.Hour) }

	logged := func(d time.Time, calories float64, completion int) *nutrition.Summary {
		return &nutrition.Summary{
			UserID:       userID,
			Date:         d,
			Totals:       nutrition.Nutrients{Calories: calories},
			TotalEntries: 2,
			Completion:   nutrition.MacroPercents{Calories: completion, Protein: completion, Carbs: completion, Fat: completion},
		}
	}
	f.summaries.On("FindByUserAndRange", ctx, userID, day(2025, 3, 4), day(2025, 3, 10)).Return([]*nutrition.Summary{
		logged(day(2025, 3, 5), 1500, 60),
		{UserID: userID, Date: day(2025, 3, 8)},
		logged(day(2025, 3, 9), 2000, 80),
		logged(day(2025, 3, 10), 2500, 100),
	}, nil)

	stats, err := svc.StatsOverview(ctx, userID, StatsQuery{})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-04", stats.StartDate)
	assert.Equal(t, "2025-03-10", stats.EndDate)
	assert.Equal(t, 7, stats.Days)
	assert.Equal(t, 3, stats.DaysLogged)
	assert.Equal(t, 6, stats.TotalEntries)
	assert.Equal(t, 2000.0, stats.Averages.Calories)
	assert.Equal(t, 80, stats.AverageCompletion)
	assert.Equal(t, 2, stats.CurrentStreak)
}
