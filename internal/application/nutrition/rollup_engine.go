// Package nutrition hosts the use cases around the food log: the roll-up
// engine that keeps daily summaries authoritative, entry and goal management,
// and the reports built on top of summaries.
package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/nutritrack/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Metrics receives the domain measurements of this package
type Metrics interface {
	EntryLogged(ctx context.Context, mealType string)
	Recomputed(ctx context.Context, d time.Duration, failed bool)
}

type nopMetrics struct{}

func (nopMetrics) EntryLogged(context.Context, string) {}
func (nopMetrics) Recomputed(context.Context, time.Duration, bool) {}

// RollupEngine is the only writer of daily summaries. Every call rebuilds
// the whole summary from the current entry set; it never increments.
type RollupEngine struct {
	entries   nutrition.EntryRepository
	goals     nutrition.GoalRepository
	summaries nutrition.SummaryRepository
	publisher shared.EventPublisher
	metrics   Metrics
	loc       *time.Location
	logger    *zap.Logger
}

// RollupOption configures a RollupEngine
type RollupOption func(*RollupEngine)

// WithPublisher publishes SummaryRecomputed after each upsert
func WithPublisher(p shared.EventPublisher) RollupOption {
	return func(e *RollupEngine) { e.publisher = p }
}

// WithMetrics records recompute latency
func WithMetrics(m Metrics) RollupOption {
	return func(e *RollupEngine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithLocation sets the zone whose midnights delimit days. Default UTC.
func WithLocation(loc *time.Location) RollupOption {
	return func(e *RollupEngine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// NewRollupEngine creates a RollupEngine over the three stores
func NewRollupEngine(
	entries nutrition.EntryRepository,
	goals nutrition.GoalRepository,
	summaries nutrition.SummaryRepository,
	logger *zap.Logger,
	opts ...RollupOption,
) *RollupEngine {
	e := &RollupEngine{
		entries:   entries,
		goals:     goals,
		summaries: summaries,
		metrics:   nopMetrics{},
		loc:       time.UTC,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Location returns the day-boundary zone
func (e *RollupEngine) Location() *time.Location {
	return e.loc
}

// Day returns the day range containing t in the engine's zone
func (e *RollupEngine) Day(t time.Time) nutrition.DayRange {
	return nutrition.DayKey(t, e.loc)
}

// Recompute rebuilds and stores the summary of the day containing date.
// Nothing is written unless every read succeeded.
func (e *RollupEngine) Recompute(ctx context.Context, userID uuid.UUID, date time.Time) (_ *nutrition.Summary, err error) {
	if err := validateKey(userID, date); err != nil {
		return nil, err
	}
	day := e.Day(date)

	ctx, span := telemetry.StartServiceSpan(ctx, "rollup", "Recompute",
		telemetry.AttrUserID.String(userID.String()),
		telemetry.AttrDate.String(day.Start.Format(time.DateOnly)),
	)
	started := time.Now()
	defer func() {
		e.metrics.Recomputed(ctx, time.Since(started), err != nil)
		telemetry.EndSpan(span, err)
	}()

	entries, err := e.entries.FindByUserAndRange(ctx, userID, day.Start, day.End)
	if err != nil {
		return nil, fmt.Errorf("recompute: load entries: %w", err)
	}
	goal, err := e.activeGoal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recompute: load goal: %w", err)
	}

	saved, err := e.summaries.Upsert(ctx, nutrition.Rollup(userID, day, entries, goal))
	if err != nil {
		return nil, fmt.Errorf("recompute: upsert summary: %w", err)
	}

	e.logger.Debug("Daily summary recomputed",
		zap.String("user_id", userID.String()),
		zap.Time("date", day.Start),
		zap.Int("entries", saved.TotalEntries),
	)
	e.publish(ctx, nutrition.NewSummaryRecomputedEvent(saved))
	return saved, nil
}

// GetOrCompute returns the stored summary of the day, materializing it on
// first read
func (e *RollupEngine) GetOrCompute(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.Summary, error) {
	if err := validateKey(userID, date); err != nil {
		return nil, err
	}
	day := e.Day(date)
	summary, err := e.summaries.FindByUserAndDate(ctx, userID, day.Start)
	switch {
	case err == nil:
		return summary, nil
	case errors.Is(err, shared.ErrNotFound):
		return e.Recompute(ctx, userID, date)
	default:
		return nil, fmt.Errorf("load summary: %w", err)
	}
}

// GoalsProgress compares the day's consumption with every goal target.
// It reads only and never triggers a recompute; a missing summary counts
// as nothing consumed.
func (e *RollupEngine) GoalsProgress(ctx context.Context, userID uuid.UUID, date time.Time) (nutrition.ProgressView, error) {
	if err := validateKey(userID, date); err != nil {
		return nutrition.ProgressView{}, err
	}
	day := e.Day(date)

	goal, err := e.activeGoal(ctx, userID)
	if err != nil {
		return nutrition.ProgressView{}, fmt.Errorf("load goal: %w", err)
	}
	summary, err := e.summaries.FindByUserAndDate(ctx, userID, day.Start)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nutrition.ProgressView{}, fmt.Errorf("load summary: %w", err)
		}
		summary = nil
	}
	return nutrition.BuildProgress(day.Start, goal, summary), nil
}

// activeGoal returns nil without error when the user has no active goal
func (e *RollupEngine) activeGoal(ctx context.Context, userID uuid.UUID) (*nutrition.Goal, error) {
	goal, err := e.goals.FindActiveByUser(ctx, userID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return goal, err
}

func (e *RollupEngine) publish(ctx context.Context, evt shared.DomainEvent) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, evt); err != nil {
		e.logger.Warn("Failed to publish event", zap.String("event_type", evt.EventType()), zap.Error(err))
	}
}

func validateKey(userID uuid.UUID, date time.Time) error {
	if userID == uuid.Nil {
		return nutrition.ErrMissingUser
	}
	if date.IsZero() {
		return nutrition.ErrMissingDate
	}
	return nil
}
