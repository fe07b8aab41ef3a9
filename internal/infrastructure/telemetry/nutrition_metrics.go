package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// NutritionMetrics holds the domain instruments of the service.
type NutritionMetrics struct {
	entriesLogged   *Counter
	recomputes      *Counter
	recomputeTiming *Histogram
}

// NewNutritionMetrics creates the instruments on meter.
func NewNutritionMetrics(meter metric.Meter) (*NutritionMetrics, error) {
	entries, err := NewCounter(meter, "nutrition_entries_logged_total", "Nutrition entries created", "{entry}")
	if err != nil {
		return nil, err
	}
	recomputes, err := NewCounter(meter, "nutrition_summary_recompute_total", "Daily summary recomputations", "{recompute}")
	if err != nil {
		return nil, err
	}
	timing, err := NewHistogram(meter, "nutrition_summary_recompute_duration_seconds",
		"Daily summary recomputation latency", "s", RollupDurationBuckets...)
	if err != nil {
		return nil, err
	}
	return &NutritionMetrics{entriesLogged: entries, recomputes: recomputes, recomputeTiming: timing}, nil
}

// EntryLogged counts a new entry for mealType.
func (m *NutritionMetrics) EntryLogged(ctx context.Context, mealType string) {
	m.entriesLogged.Inc(ctx, AttrMealType.String(mealType))
}

// Recomputed records one recompute; failed marks the outcome attribute.
func (m *NutritionMetrics) Recomputed(ctx context.Context, d time.Duration, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	m.recomputes.Inc(ctx, AttrOutcome.String(outcome))
	m.recomputeTiming.RecordDuration(ctx, d, AttrOutcome.String(outcome))
}
