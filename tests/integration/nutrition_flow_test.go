package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	activityapp "github.com/nutritrack/backend/internal/application/activity"
	nutritionapp "github.com/nutritrack/backend/internal/application/nutrition"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	day1 = "2026-03-10"
	day2 = "2026-03-11"
)

func dailySummary(t *testing.T, sess session, date string) nutritionapp.SummaryResponse {
	t.Helper()
	env := sess.Client.JSON(http.MethodGet, "/api/v1/nutrition/summary/daily?date="+date, nil, http.StatusOK)
	return testutil.DecodeData[nutritionapp.SummaryResponse](t, env)
}

func createEntry(t *testing.T, sess session, body map[string]any) nutritionapp.EntryResponse {
	t.Helper()
	env := sess.Client.JSON(http.MethodPost, "/api/v1/nutrition", body, http.StatusCreated)
	return testutil.DecodeData[nutritionapp.EntryResponse](t, env)
}

func TestNutritionFlow_SummaryFollowsEntries(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")

	alice.Client.JSON(http.MethodPut, "/api/v1/goals", map[string]any{
		"daily_calories": 2000,
		"daily_protein":  100,
		"daily_carbs":    250,
		"daily_fat":      70,
	}, http.StatusOK)

	breakfast := createEntry(t, alice, map[string]any{
		"food_item": "Oatmeal", "quantity": "1 bowl", "date": day1, "meal_type": "breakfast",
		"calories": 350, "protein": 12, "carbs": 60, "fat": 7,
	})
	lunch := createEntry(t, alice, map[string]any{
		"food_item": "Chicken salad", "quantity": "1 plate", "date": day1, "meal_type": "LUNCH",
		"calories": 650, "protein": 45, "carbs": 50, "fat": 25,
	})
	assert.Equal(t, nutrition.MealLunch, lunch.MealType)

	summary := dailySummary(t, alice, day1)
	assert.Equal(t, day1, summary.Date)
	assert.Equal(t, 2, summary.TotalEntries)
	assert.InDelta(t, 1000, summary.Totals.Calories, 1e-9)
	assert.InDelta(t, 57, summary.Totals.Protein, 1e-9)
	assert.Equal(t, 1, summary.MealBreakdown.Breakfast.EntryCount)
	assert.Equal(t, 1, summary.MealBreakdown.Lunch.EntryCount)
	assert.InDelta(t, 2000, summary.Goals.Calories, 1e-9)
	assert.InDelta(t, -1000, summary.Balance.Calories, 1e-9)
	assert.Equal(t, 50, summary.Completion.Calories)

	t.Run("update recomputes", func(t *testing.T) {
		alice.Client.JSON(http.MethodPut, "/api/v1/nutrition/"+lunch.ID.String(), map[string]any{"calories": 850}, http.StatusOK)
		assert.InDelta(t, 1200, dailySummary(t, alice, day1).Totals.Calories, 1e-9)
	})

	t.Run("delete recomputes", func(t *testing.T) {
		w := alice.Client.Do(http.MethodDelete, "/api/v1/nutrition/"+breakfast.ID.String(), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		after := dailySummary(t, alice, day1)
		assert.Equal(t, 1, after.TotalEntries)
		assert.Zero(t, after.MealBreakdown.Breakfast.EntryCount)
		assert.InDelta(t, 850, after.Totals.Calories, 1e-9)
	})

	t.Run("moving an entry recomputes both days", func(t *testing.T) {
		alice.Client.JSON(http.MethodPut, "/api/v1/nutrition/"+lunch.ID.String(), map[string]any{"date": day2}, http.StatusOK)

		old := dailySummary(t, alice, day1)
		assert.Zero(t, old.TotalEntries)
		assert.Zero(t, old.Totals.Calories)

		moved := dailySummary(t, alice, day2)
		assert.Equal(t, 1, moved.TotalEntries)
		assert.InDelta(t, 850, moved.Totals.Calories, 1e-9)
	})

	t.Run("progress reads the stored summary", func(t *testing.T) {
		env := alice.Client.JSON(http.MethodGet, "/api/v1/nutrition/goals/progress?date="+day2, nil, http.StatusOK)
		progress := testutil.DecodeData[nutritionapp.ProgressResponse](t, env)
		assert.True(t, progress.HasGoal)
		assert.InDelta(t, 850, progress.Consumed.Calories, 1e-9)
		assert.Equal(t, 43, progress.Progress.Calories)
		assert.InDelta(t, 1150, progress.Remaining.Calories, 1e-9)
	})

	// create x2, update, delete and the move (two days) each recompute
	assert.GreaterOrEqual(t, s.Events.Count(nutrition.EventTypeSummaryRecomputed), 6)
	assert.Equal(t, 2, s.Events.Count(nutrition.EventTypeEntryAdded))
	assert.Equal(t, 1, s.Events.Count(nutrition.EventTypeEntryDeleted))

	t.Run("activity feed records the log", func(t *testing.T) {
		env := alice.Client.JSON(http.MethodGet, "/api/v1/activities?type=nutrition_entry_added", nil, http.StatusOK)
		items := testutil.DecodeData[[]activityapp.Response](t, env)
		require.Len(t, items, 2)
		require.NotNil(t, env.Meta)
		assert.EqualValues(t, 2, env.Meta.Total)
	})
}

func TestNutritionFlow_EntriesAreScopedToOwner(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")

	entry := createEntry(t, alice, map[string]any{
		"food_item": "Apple", "quantity": "1", "date": day1, "calories": 95,
	})
	assert.Equal(t, nutrition.MealSnack, entry.MealType)

	env := bob.Client.JSON(http.MethodGet, "/api/v1/nutrition/"+entry.ID.String(), nil, http.StatusNotFound)
	assert.Equal(t, "ERR_NOT_FOUND", env.ErrorCode())
	bob.Client.JSON(http.MethodDelete, "/api/v1/nutrition/"+entry.ID.String(), nil, http.StatusNotFound)

	assert.Zero(t, dailySummary(t, bob, day1).TotalEntries)
	assert.Equal(t, 1, dailySummary(t, alice, day1).TotalEntries)
}

func TestNutritionFlow_SummaryWithoutGoal(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")

	createEntry(t, alice, map[string]any{
		"food_item": "Toast", "quantity": "2 slices", "date": day1, "meal_type": "breakfast",
		"calories": 160.1, "protein": 0.1, "carbs": 0.2,
	})

	summary := dailySummary(t, alice, day1)
	assert.Zero(t, summary.Goals.Calories)
	assert.Zero(t, summary.Completion.Calories)
	assert.InDelta(t, 160.1, summary.Balance.Calories, 1e-9)

	env := alice.Client.JSON(http.MethodGet, "/api/v1/nutrition/goals/progress?date="+day1, nil, http.StatusOK)
	progress := testutil.DecodeData[nutritionapp.ProgressResponse](t, env)
	assert.False(t, progress.HasGoal)
}

func TestNutritionFlow_EmptyDayIsMaterialized(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")

	summary := dailySummary(t, alice, day2)
	assert.Zero(t, summary.TotalEntries)
	assert.NotEqual(t, uuid.Nil, summary.ID)

	userID := uuid.MustParse(alice.UserID)
	stored, err := s.Summaries.FindByUserAndDate(testutil.ContextWithTimeout(t, 5*time.Second), userID,
		time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, summary.ID, stored.ID)
}

func TestRollupEngine_ConcurrentRecomputeKeepsOneRow(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")
	createEntry(t, alice, map[string]any{
		"food_item": "Rice", "quantity": "1 cup", "date": day1, "calories": 200,
	})

	userID := uuid.MustParse(alice.UserID)
	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ctx := testutil.ContextWithTimeout(t, 30*time.Second)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Engine.Recompute(ctx, userID, date)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var rows int64
	require.NoError(t, s.DB.DB.Table("daily_summaries").Where("user_id = ?", userID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
	assert.InDelta(t, 200, dailySummary(t, alice, day1).Totals.Calories, 1e-9)
}

func TestNutritionFlow_ReportAndChart(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")
	createEntry(t, alice, map[string]any{"food_item": "Eggs", "quantity": "2", "date": day1, "calories": 150, "protein": 12})
	createEntry(t, alice, map[string]any{"food_item": "Pasta", "quantity": "1 plate", "date": day2, "calories": 650, "protein": 20})

	env := alice.Client.JSON(http.MethodGet, "/api/v1/nutrition/reports?start_date="+day1+"&end_date="+day2, nil, http.StatusOK)
	report := testutil.DecodeData[nutritionapp.ReportResponse](t, env)
	assert.Equal(t, 2, report.Period.DayCount)
	assert.EqualValues(t, 2, report.EntryCount)
	assert.InDelta(t, 800, report.Totals.Calories, 1e-9)
	assert.InDelta(t, 400, report.Averages.Calories, 1e-9)

	env = alice.Client.JSON(http.MethodGet, "/api/v1/nutrition/charts?granularity=daily&start_date="+day1+"&end_date="+day2, nil, http.StatusOK)
	chart := testutil.DecodeData[nutritionapp.ChartResponse](t, env)
	require.Len(t, chart.Points, 2)
	assert.Equal(t, day1, chart.Points[0].Period)

	// No renderer is configured in this stack
	alice.Client.JSON(http.MethodGet, "/api/v1/nutrition/reports/pdf?start_date="+day1+"&end_date="+day2, nil, http.StatusServiceUnavailable)
}
