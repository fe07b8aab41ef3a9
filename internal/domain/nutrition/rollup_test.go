package nutrition

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntry(t *testing.T, userID uuid.UUID, date time.Time, meal string, n Nutrients) *Entry {
	t.Helper()
	e, err := NewEntry(userID, EntryInput{
		FoodItem:  "item",
		Quantity:  "1 serving",
		Date:      date,
		Nutrients: n,
		MealType:  meal,
	})
	require.NoError(t, err)
	return e
}

func mustGoal(t *testing.T, userID uuid.UUID, targets Nutrients) *Goal {
	t.Helper()
	g, err := NewGoal(userID, GoalInput{Targets: targets}, GoalSetByUser)
	require.NoError(t, err)
	return g
}

func TestRollup_ThreeMealDay(t *testing.T) {
	userID := uuid.New()
	day := DayKey(time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC), time.UTC)
	goal := mustGoal(t, userID, Nutrients{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65})
	entries := []*Entry{
		mustEntry(t, userID, day.Start.Add(8*time.Hour), "breakfast", Nutrients{Calories: 400, Protein: 20, Carbs: 50, Fat: 10}),
		mustEntry(t, userID, day.Start.Add(13*time.Hour), "lunch", Nutrients{Calories: 600, Protein: 40, Carbs: 70, Fat: 20}),
		mustEntry(t, userID, day.Start.Add(19*time.Hour), "dinner", Nutrients{Calories: 700, Protein: 50, Carbs: 80, Fat: 25}),
	}

	s := Rollup(userID, day, entries, goal)

	assert.Equal(t, day.Start, s.Date)
	assert.Equal(t, Macros{Calories: 1700, Protein: 110, Carbs: 200, Fat: 55}, s.Primary())
	assert.Equal(t, MacroPercents{Calories: 85, Protein: 73, Carbs: 80, Fat: 85}, s.Completion)
	assert.Equal(t, Macros{Calories: -300, Protein: -40, Carbs: -50, Fat: -10}, s.Balance)
	assert.Equal(t, Macros{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65}, s.Goal)
	assert.Equal(t, 3, s.TotalEntries)
	assert.Equal(t, MealTotals{}, s.MealBreakdown.Snack)
	assert.Equal(t, 1, s.MealBreakdown.Breakfast.EntryCount)
	assert.Equal(t, 700.0, s.MealBreakdown.Dinner.Calories)
	assert.Equal(t, 81, s.OverallCompletion())

	view := BuildProgress(day.Start, goal, s)
	assert.Equal(t, 300.0, view.Remaining.Calories)
	assert.Equal(t, 40.0, view.Remaining.Protein)
	assert.Equal(t, 50.0, view.Remaining.Carbs)
	assert.Equal(t, 10.0, view.Remaining.Fat)
}

func TestRollup_Invariants(t *testing.T) {
	userID := uuid.New()
	day := DayKey(time.Now(), time.UTC)
	entries := []*Entry{
		mustEntry(t, userID, day.Start, "breakfast", Nutrients{Calories: 310.5, Protein: 12.2, Carbs: 40.1, Fat: 9.9, Fiber: 4, Sugar: 11, Sodium: 320}),
		mustEntry(t, userID, day.Start, "snack", Nutrients{Calories: 0.1, Protein: 0.2, Fiber: 0.3}),
		mustEntry(t, userID, day.Start, "", Nutrients{Calories: 0.2, Sodium: 15}),
		mustEntry(t, userID, day.Start, "dinner", Nutrients{Calories: 820, Protein: 61, Carbs: 70, Fat: 33, Sugar: 8, Sodium: 1100}),
	}

	s := Rollup(userID, day, entries, nil)

	t.Run("totals equal entry sums", func(t *testing.T) {
		assert.InDelta(t, 1130.8, s.Totals.Calories, 1e-9)
		assert.InDelta(t, 73.4, s.Totals.Protein, 1e-9)
		assert.InDelta(t, 4.3, s.Totals.Fiber, 1e-9)
		assert.InDelta(t, 1435.0, s.Totals.Sodium, 1e-9)
		assert.Equal(t, 0.3, s.MealBreakdown.Snack.Calories)
	})

	t.Run("meal buckets partition totals", func(t *testing.T) {
		b := s.MealBreakdown
		assert.InDelta(t, s.Totals.Calories, b.Breakfast.Calories+b.Lunch.Calories+b.Dinner.Calories+b.Snack.Calories, 1e-9)
		assert.InDelta(t, s.Totals.Protein, b.Breakfast.Protein+b.Lunch.Protein+b.Dinner.Protein+b.Snack.Protein, 1e-9)
		assert.InDelta(t, s.Totals.Carbs, b.Breakfast.Carbs+b.Lunch.Carbs+b.Dinner.Carbs+b.Snack.Carbs, 1e-9)
		assert.InDelta(t, s.Totals.Fat, b.Breakfast.Fat+b.Lunch.Fat+b.Dinner.Fat+b.Snack.Fat, 1e-9)
		assert.Equal(t, s.TotalEntries, b.Breakfast.EntryCount+b.Lunch.EntryCount+b.Dinner.EntryCount+b.Snack.EntryCount)
		assert.Equal(t, 2, b.Snack.EntryCount)
	})

	t.Run("missing goal yields zero completion", func(t *testing.T) {
		assert.Equal(t, MacroPercents{}, s.Completion)
		assert.Equal(t, Macros{}, s.Goal)
		assert.Equal(t, s.Primary(), s.Balance)
	})

	t.Run("rollup is deterministic", func(t *testing.T) {
		again := Rollup(userID, day, entries, nil)
		assert.True(t, s.SameContent(again))
	})
}

func TestRollup_NoEntries(t *testing.T) {
	userID := uuid.New()
	day := DayKey(time.Now(), time.UTC)
	goal := mustGoal(t, userID, Nutrients{Calories: 1800, Protein: 100, Carbs: 200, Fat: 60})

	s := Rollup(userID, day, nil, goal)

	assert.Equal(t, Nutrients{}, s.Totals)
	assert.Equal(t, 0, s.TotalEntries)
	assert.Equal(t, MealBreakdown{}, s.MealBreakdown)
	assert.Equal(t, Macros{Calories: -1800, Protein: -100, Carbs: -200, Fat: -60}, s.Balance)
	assert.Equal(t, MacroPercents{}, s.Completion)
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name     string
		consumed float64
		goal     float64
		want     int
	}{
		{"zero goal", 500, 0, 0},
		{"negative goal", 500, -10, 0},
		{"exact", 1000, 2000, 50},
		{"rounds down", 110, 150, 73},
		{"half rounds up", 1, 8, 13},
		{"clamped at 200", 5000, 800, 200},
		{"exactly 200", 1600, 800, 200},
		{"zero consumed", 0, 2000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionPercent(tt.consumed, tt.goal))
		})
	}
}

func TestPercent_NotClamped(t *testing.T) {
	assert.Equal(t, 625, Percent(5000, 800))
}
