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
	"go.uber.org/zap"
)

var errStoreDown = errors.New("connection refused")

type engineFixture struct {
	entries   *MockEntryRepository
	goals     *MockGoalRepository
	summaries *MockSummaryRepository
	publisher *MockPublisher
	engine    *RollupEngine
}

func newEngineFixture(opts ...RollupOption) *engineFixture {
	f := &engineFixture{
		entries:   new(MockEntryRepository),
		goals:     new(MockGoalRepository),
		summaries: new(MockSummaryRepository),
		publisher: new(MockPublisher),
	}
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	opts = append([]RollupOption{WithPublisher(f.publisher)}, opts...)
	f.engine = NewRollupEngine(f.entries, f.goals, f.summaries, zap.NewNop(), opts...)
	return f
}

func entryAt(t *testing.T, userID uuid.UUID, date time.Time, meal string, n nutrition.Nutrients) *nutrition.Entry {
	t.Helper()
	e, err := nutrition.NewEntry(userID, nutrition.EntryInput{
		FoodItem: "food", Quantity: "1", Date: date, Nutrients: n, MealType: meal,
	})
	require.NoError(t, err)
	return e
}

func goalFor(t *testing.T, userID uuid.UUID, calories, protein, carbs, fat float64) *nutrition.Goal {
	t.Helper()
	g, err := nutrition.NewGoal(userID, nutrition.GoalInput{
		Targets: nutrition.Nutrients{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat},
	}, nutrition.GoalSetByUser)
	require.NoError(t, err)
	return g
}

func TestRollupEngine_Recompute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	noon := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
	day := nutrition.DayKey(noon, time.UTC)

	t.Run("three meal day", func(t *testing.T) {
		f := newEngineFixture()
		entries := []*nutrition.Entry{
			entryAt(t, userID, noon, "breakfast", nutrition.Nutrients{Calories: 400, Protein: 20, Carbs: 50, Fat: 10}),
			entryAt(t, userID, noon, "lunch", nutrition.Nutrients{Calories: 600, Protein: 40, Carbs: 70, Fat: 20}),
			entryAt(t, userID, noon, "dinner", nutrition.Nutrients{Calories: 700, Protein: 50, Carbs: 80, Fat: 25}),
		}
		f.entries.On("FindByUserAndRange", ctx, userID, day.Start, day.End).Return(entries, nil)
		f.goals.On("FindActiveByUser", ctx, userID).Return(goalFor(t, userID, 2000, 150, 250, 65), nil)
		f.summaries.On("Upsert", ctx, mock.AnythingOfType("*nutrition.Summary")).Return(nil, nil)

		s, err := f.engine.Recompute(ctx, userID, noon)

		require.NoError(t, err)
		assert.Equal(t, day.Start, s.Date)
		assert.Equal(t, nutrition.Macros{Calories: 1700, Protein: 110, Carbs: 200, Fat: 55}, s.Primary())
		assert.Equal(t, nutrition.MacroPercents{Calories: 85, Protein: 73, Carbs: 80, Fat: 85}, s.Completion)
		assert.Equal(t, nutrition.Macros{Calories: -300, Protein: -40, Carbs: -50, Fat: -10}, s.Balance)
		assert.Equal(t, 3, s.TotalEntries)
		assert.Equal(t, nutrition.MealTotals{}, s.MealBreakdown.Snack)
		assert.Equal(t, []string{nutrition.EventTypeSummaryRecomputed}, publishedTypes(f.publisher))
	})

	t.Run("no goal yields zero completion", func(t *testing.T) {
		f := newEngineFixture()
		f.entries.On("FindByUserAndRange", ctx, userID, day.Start, day.End).Return([]*nutrition.Entry{
			entryAt(t, userID, noon, "", nutrition.Nutrients{Calories: 250}),
		}, nil)
		f.goals.On("FindActiveByUser", ctx, userID).Return(nil, nutrition.ErrGoalNotFound)
		f.summaries.On("Upsert", ctx, mock.Anything).Return(nil, nil)

		s, err := f.engine.Recompute(ctx, userID, noon)

		require.NoError(t, err)
		assert.Equal(t, nutrition.MacroPercents{}, s.Completion)
		assert.Equal(t, nutrition.Macros{}, s.Goal)
		assert.Equal(t, 250.0, s.Balance.Calories)
		assert.Equal(t, 1, s.MealBreakdown.Snack.EntryCount)
	})

	t.Run("empty day still writes a zero summary", func(t *testing.T) {
		f := newEngineFixture()
		f.entries.On("FindByUserAndRange", ctx, userID, day.Start, day.End).Return([]*nutrition.Entry{}, nil)
		f.goals.On("FindActiveByUser", ctx, userID).Return(goalFor(t, userID, 2000, 150, 250, 65), nil)
		f.summaries.On("Upsert", ctx, mock.Anything).Return(nil, nil)

		s, err := f.engine.Recompute(ctx, userID, noon)

		require.NoError(t, err)
		assert.Zero(t, s.TotalEntries)
		assert.Equal(t, nutrition.Nutrients{}, s.Totals)
		f.summaries.AssertNumberOfCalls(t, "Upsert", 1)
	})

	t.Run("repeated recompute is identical", func(t *testing.T) {
		f := newEngineFixture()
		f.entries.On("FindByUserAndRange", ctx, userID, day.Start, day.End).Return([]*nutrition.Entry{
			entryAt(t, userID, noon, "lunch", nutrition.Nutrients{Calories: 333.3, Protein: 0.1}),
			entryAt(t, userID, noon, "lunch", nutrition.Nutrients{Calories: 0.2, Protein: 0.2}),
		}, nil)
		f.goals.On("FindActiveByUser", ctx, userID).Return(goalFor(t, userID, 1800, 120, 200, 60), nil)
		f.summaries.On("Upsert", ctx, mock.Anything).Return(nil, nil)

		first, err := f.engine.Recompute(ctx, userID, noon)
		require.NoError(t, err)
		second, err := f.engine.Recompute(ctx, userID, noon.Add(3*time.Hour))
		require.NoError(t, err)

		assert.True(t, first.SameContent(second))
		assert.InDelta(t, 0.3, first.Totals.Protein, 1e-9)
	})

	t.Run("store failure writes nothing", func(t *testing.T) {
		metrics := new(MockMetrics)
		metrics.On("Recomputed", mock.Anything, mock.Anything, true).Once()
		f := newEngineFixture(WithMetrics(metrics))
		f.entries.On("FindByUserAndRange", ctx, userID, day.Start, day.End).Return(nil, errStoreDown)

		_, err := f.engine.Recompute(ctx, userID, noon)

		require.Error(t, err)
		assert.ErrorIs(t, err, errStoreDown)
		f.goals.AssertNotCalled(t, "FindActiveByUser", mock.Anything, mock.Anything)
		f.summaries.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		metrics.AssertExpectations(t)
	})

	t.Run("goal store failure writes nothing", func(t *testing.T) {
		f := newEngineFixture()
		f.entries.On("FindByUserAndRange", ctx, userID, day.Start, day.End).Return([]*nutrition.Entry{}, nil)
		f.goals.On("FindActiveByUser", ctx, userID).Return(nil, errStoreDown)

		_, err := f.engine.Recompute(ctx, userID, noon)

		assert.ErrorIs(t, err, errStoreDown)
		f.summaries.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("invalid key is rejected before any store access", func(t *testing.T) {
		f := newEngineFixture()

		_, err := f.engine.Recompute(ctx, uuid.Nil, noon)
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		_, err = f.engine.Recompute(ctx, userID, time.Time{})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)

		f.entries.AssertNotCalled(t, "FindByUserAndRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRollupEngine_DayBoundaryInLocation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	f := newEngineFixture(WithLocation(tokyo))
	// 2025-03-14 20:00 UTC is already 2025-03-15 in Tokyo
	late := time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)
	day := nutrition.DayKey(late, tokyo)
	require.Equal(t, 15, day.Start.Day())

	f.entries.On("FindByUserAndRange", ctx, userID, day.Start, day.End).Return([]*nutrition.Entry{}, nil)
	f.goals.On("FindActiveByUser", ctx, userID).Return(nil, nutrition.ErrGoalNotFound)
	f.summaries.On("Upsert", ctx, mock.Anything).Return(nil, nil)

	s, err := f.engine.Recompute(ctx, userID, late)

	require.NoError(t, err)
	assert.True(t, s.Date.Equal(day.Start))
	f.entries.AssertExpectations(t)
}

func TestRollupEngine_GetOrCompute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	day := nutrition.DayKey(date, time.UTC)

	t.Run("returns the stored summary", func(t *testing.T) {
		f := newEngineFixture()
		stored := &nutrition.Summary{UserID: userID, Date: day.Start, TotalEntries: 2}
		f.summaries.On("FindByUserAndDate", ctx, userID, day.Start).Return(stored, nil)

		s, err := f.engine.GetOrCompute(ctx, userID, date)

		require.NoError(t, err)
		assert.Same(t, stored, s)
		f.entries.AssertNotCalled(t, "FindByUserAndRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("materializes a missing summary", func(t *testing.T) {
		f := newEngineFixture()
		f.summaries.On("FindByUserAndDate", ctx, userID, day.Start).Return(nil, shared.NotFound("Daily summary"))
		f.entries.On("FindByUserAndRange", ctx, userID, day.Start, day.End).Return([]*nutrition.Entry{
			entryAt(t, userID, date, "breakfast", nutrition.Nutrients{Calories: 300}),
		}, nil)
		f.goals.On("FindActiveByUser", ctx, userID).Return(nil, nutrition.ErrGoalNotFound)
		f.summaries.On("Upsert", ctx, mock.Anything).Return(nil, nil)

		s, err := f.engine.GetOrCompute(ctx, userID, date)

		require.NoError(t, err)
		assert.Equal(t, 300.0, s.Totals.Calories)
		f.summaries.AssertNumberOfCalls(t, "Upsert", 1)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		f := newEngineFixture()
		f.summaries.On("FindByUserAndDate", ctx, userID, day.Start).Return(nil, errStoreDown)

		_, err := f.engine.GetOrCompute(ctx, userID, date)

		assert.ErrorIs(t, err, errStoreDown)
		f.summaries.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestRollupEngine_GoalsProgress(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	day := nutrition.DayKey(date, time.UTC)

	t.Run("no summary yet reports the full goal as remaining", func(t *testing.T) {
		f := newEngineFixture()
		goal := goalFor(t, userID, 2000, 150, 250, 65)
		f.goals.On("FindActiveByUser", ctx, userID).Return(goal, nil)
		f.summaries.On("FindByUserAndDate", ctx, userID, day.Start).Return(nil, shared.NotFound("Daily summary"))

		v, err := f.engine.GoalsProgress(ctx, userID, date)

		require.NoError(t, err)
		assert.True(t, v.HasGoal)
		assert.Equal(t, nutrition.Nutrients{}, v.Consumed)
		assert.Equal(t, goal.Targets, v.Remaining)
		assert.Equal(t, nutrition.NutrientPercents{}, v.Progress)
		f.summaries.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("over target floors remaining and keeps progress unclamped", func(t *testing.T) {
		f := newEngineFixture()
		f.goals.On("FindActiveByUser", ctx, userID).Return(goalFor(t, userID, 1000, 100, 100, 50), nil)
		f.summaries.On("FindByUserAndDate", ctx, userID, day.Start).Return(&nutrition.Summary{
			UserID: userID,
			Date:   day.Start,
			Totals: nutrition.Nutrients{Calories: 2500, Protein: 50, Sodium: 4600},
		}, nil)

		v, err := f.engine.GoalsProgress(ctx, userID, date)

		require.NoError(t, err)
		assert.Equal(t, 250, v.Progress.Calories)
		assert.Equal(t, 200, v.Progress.Sodium)
		assert.Zero(t, v.Remaining.Calories)
		assert.Zero(t, v.Remaining.Sodium)
		assert.Equal(t, 50.0, v.Remaining.Protein)
	})

	t.Run("no goal is a zero view", func(t *testing.T) {
		f := newEngineFixture()
		f.goals.On("FindActiveByUser", ctx, userID).Return(nil, nutrition.ErrGoalNotFound)
		f.summaries.On("FindByUserAndDate", ctx, userID, day.Start).Return(&nutrition.Summary{
			Totals: nutrition.Nutrients{Calories: 900},
		}, nil)

		v, err := f.engine.GoalsProgress(ctx, userID, date)

		require.NoError(t, err)
		assert.False(t, v.HasGoal)
		assert.Equal(t, 900.0, v.Consumed.Calories)
		assert.Zero(t, v.Progress.Calories)
		assert.Zero(t, v.Remaining.Calories)
	})
}
