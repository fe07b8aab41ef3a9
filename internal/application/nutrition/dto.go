package nutrition

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
)

// CreateEntryRequest represents a request to log a food entry.
// Date accepts YYYY-MM-DD or RFC 3339 and defaults to now.
type CreateEntryRequest struct {
	FoodItem string     `json:"food_item" binding:"required,min=1,max=100"`
	Quantity string     `json:"quantity" binding:"required,min=1,max=20"`
	Date     string     `json:"date" binding:"omitempty,date"`
	Calories float64    `json:"calories" binding:"gte=0,lte=5000"`
	Protein  float64    `json:"protein" binding:"gte=0,lte=500"`
	Carbs    float64    `json:"carbs" binding:"gte=0,lte=800"`
	Fat      float64    `json:"fat" binding:"gte=0,lte=300"`
	Fiber    float64    `json:"fiber" binding:"gte=0,lte=100"`
	Sugar    float64    `json:"sugar" binding:"gte=0,lte=200"`
	Sodium   float64    `json:"sodium" binding:"gte=0,lte=10000"`
	MealType string     `json:"meal_type" binding:"omitempty,mealtype"`
	FoodID   *uuid.UUID `json:"food_id"`
	Notes    string     `json:"notes" binding:"max=500"`
}

func (r CreateEntryRequest) nutrients() nutrition.Nutrients {
	return nutrition.Nutrients{
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
		Fiber:    r.Fiber,
		Sugar:    r.Sugar,
		Sodium:   r.Sodium,
	}
}

// UpdateEntryRequest represents a partial edit of an entry
type UpdateEntryRequest struct {
	FoodItem *string    `json:"food_item" binding:"omitempty,min=1,max=100"`
	Quantity *string    `json:"quantity" binding:"omitempty,min=1,max=20"`
	Date     *string    `json:"date" binding:"omitempty,date"`
	Calories *float64   `json:"calories" binding:"omitempty,gte=0,lte=5000"`
	Protein  *float64   `json:"protein" binding:"omitempty,gte=0,lte=500"`
	Carbs    *float64   `json:"carbs" binding:"omitempty,gte=0,lte=800"`
	Fat      *float64   `json:"fat" binding:"omitempty,gte=0,lte=300"`
	Fiber    *float64   `json:"fiber" binding:"omitempty,gte=0,lte=100"`
	Sugar    *float64   `json:"sugar" binding:"omitempty,gte=0,lte=200"`
	Sodium   *float64   `json:"sodium" binding:"omitempty,gte=0,lte=10000"`
	MealType *string    `json:"meal_type" binding:"omitempty,mealtype"`
	FoodID   *uuid.UUID `json:"food_id"`
	Notes    *string    `json:"notes" binding:"omitempty,max=500"`
}

// nutrients overlays the set fields onto current, or returns nil when no
// nutrient was given
func (r UpdateEntryRequest) nutrients(current nutrition.Nutrients) *nutrition.Nutrients {
	fields := []struct {
		key nutrition.Nutrient
		val *float64
	}{
		{nutrition.NutrientCalories, r.Calories},
		{nutrition.NutrientProtein, r.Protein},
		{nutrition.NutrientCarbs, r.Carbs},
		{nutrition.NutrientFat, r.Fat},
		{nutrition.NutrientFiber, r.Fiber},
		{nutrition.NutrientSugar, r.Sugar},
		{nutrition.NutrientSodium, r.Sodium},
	}
	changed := false
	next := current
	for _, f := range fields {
		if f.val != nil {
			next = next.Set(f.key, *f.val)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return &next
}

// ListEntriesQuery filters the entry listing. Date selects one whole day and
// wins over StartDate/EndDate.
type ListEntriesQuery struct {
	Date      string `form:"date" binding:"omitempty,date"`
	StartDate string `form:"start_date" binding:"omitempty,date"`
	EndDate   string `form:"end_date" binding:"omitempty,date"`
	MealType  string `form:"meal_type" binding:"omitempty,mealtype"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// EntryResponse represents an entry in API responses
type EntryResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	FoodItem string    `json:"food_item"`
	Quantity string    `json:"quantity"`
	Date     time.Time `json:"date"`
	nutrition.Nutrients
	MealType  nutrition.MealType `json:"meal_type"`
	FoodID    *uuid.UUID         `json:"food_id,omitempty"`
	Notes     string             `json:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ToEntryResponse converts a domain entry
func ToEntryResponse(e *nutrition.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		FoodItem:  e.FoodItem,
		Quantity:  e.Quantity,
		Date:      e.Date,
		Nutrients: e.Nutrients,
		MealType:  e.MealType,
		FoodID:    e.FoodID,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToEntryResponses converts a slice of domain entries
func ToEntryResponses(entries []*nutrition.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToEntryResponse(e)
	}
	return out
}

// SummaryResponse represents a daily summary in API responses
type SummaryResponse struct {
	ID                uuid.UUID               `json:"id"`
	UserID            uuid.UUID               `json:"user_id"`
	Date              string                  `json:"date"`
	Totals            nutrition.Nutrients     `json:"totals"`
	MealBreakdown     nutrition.MealBreakdown `json:"meal_breakdown"`
	Goals             nutrition.Macros        `json:"goals"`
	Balance           nutrition.Macros        `json:"balance"`
	Completion        nutrition.MacroPercents `json:"completion"`
	OverallCompletion int                     `json:"overall_completion"`
	TotalEntries      int                     `json:"total_entries"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// ToSummaryResponse converts a domain summary; the date is rendered in loc
func ToSummaryResponse(s *nutrition.Summary, loc *time.Location) SummaryResponse {
	if loc == nil {
		loc = time.UTC
	}
	return SummaryResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		Date:              s.Date.In(loc).Format(time.DateOnly),
		Totals:            s.Totals,
		MealBreakdown:     s.MealBreakdown,
		Goals:             s.Goal,
		Balance:           s.Balance,
		Completion:        s.Completion,
		OverallCompletion: s.OverallCompletion(),
		TotalEntries:      s.TotalEntries,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ProgressResponse is the goal progress view of one day
type ProgressResponse struct {
	Date      string                     `json:"date"`
	HasGoal   bool                       `json:"has_goal"`
	Goals     nutrition.Nutrients        `json:"goals"`
	Consumed  nutrition.Nutrients        `json:"consumed"`
	Progress  nutrition.NutrientPercents `json:"progress"`
	Remaining nutrition.Nutrients        `json:"remaining"`
}

// ToProgressResponse converts a domain progress view
func ToProgressResponse(v nutrition.ProgressView, loc *time.Location) ProgressResponse {
	if loc == nil {
		loc = time.UTC
	}
	return ProgressResponse{
		Date:      v.Date.In(loc).Format(time.DateOnly),
		HasGoal:   v.HasGoal,
		Goals:     v.Goals,
		Consumed:  v.Consumed,
		Progress:  v.Progress,
		Remaining: v.Remaining,
	}
}

// SetGoalRequest replaces the caller's goal. With Calculate set, calories
// and macros are derived from the profile and the given values are ignored.
type SetGoalRequest struct {
	DailyCalories    float64  `json:"daily_calories" binding:"omitempty,gte=800,lte=5000"`
	DailyProtein     float64  `json:"daily_protein" binding:"omitempty,gte=10,lte=500"`
	DailyCarbs       float64  `json:"daily_carbs" binding:"omitempty,gte=20,lte=800"`
	DailyFat         float64  `json:"daily_fat" binding:"omitempty,gte=10,lte=300"`
	DailyFiber       *float64 `json:"daily_fiber" binding:"omitempty,gte=0,lte=100"`
	DailySugar       *float64 `json:"daily_sugar" binding:"omitempty,gte=0,lte=200"`
	DailySodium      *float64 `json:"daily_sodium" binding:"omitempty,gte=0,lte=10000"`
	Age              *int     `json:"age" binding:"omitempty,gte=13,lte=120"`
	Gender           string   `json:"gender" binding:"omitempty,oneof=male female other"`
	Weight           *float64 `json:"weight" binding:"omitempty,gte=30,lte=500"`
	Height           *float64 `json:"height" binding:"omitempty,gte=100,lte=250"`
	ActivityLevel    string   `json:"activity_level" binding:"omitempty,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
	Objective        string   `json:"goal_type" binding:"omitempty,oneof=lose_weight maintain_weight gain_weight gain_muscle"`
	WeeklyWeightGoal float64  `json:"weekly_weight_goal" binding:"gte=-2,lte=2"`
	Notes            string   `json:"notes" binding:"max=500"`
	Calculate        bool     `json:"calculate"`
}

func (r SetGoalRequest) input() nutrition.GoalInput {
	in := nutrition.GoalInput{
		Targets: nutrition.Nutrients{
			Calories: r.DailyCalories,
			Protein:  r.DailyProtein,
			Carbs:    r.DailyCarbs,
			Fat:      r.DailyFat,
		},
		Profile: nutrition.Profile{
			Age:              r.Age,
			Gender:           nutrition.Gender(r.Gender),
			Weight:           r.Weight,
			Height:           r.Height,
			ActivityLevel:    nutrition.ActivityLevel(r.ActivityLevel),
			Objective:        nutrition.Objective(r.Objective),
			WeeklyWeightGoal: r.WeeklyWeightGoal,
		},
		Notes: r.Notes,
	}
	if r.DailyFiber != nil {
		in.Targets.Fiber, in.HasFiber = *r.DailyFiber, true
	}
	if r.DailySugar != nil {
		in.Targets.Sugar, in.HasSugar = *r.DailySugar, true
	}
	if r.DailySodium != nil {
		in.Targets.Sodium, in.HasSodium = *r.DailySodium, true
	}
	return in
}

// GoalResponse represents a goal in API responses
type GoalResponse struct {
	ID               uuid.UUID               `json:"id"`
	UserID           uuid.UUID               `json:"user_id"`
	DailyCalories    float64                 `json:"daily_calories"`
	DailyProtein     float64                 `json:"daily_protein"`
	DailyCarbs       float64                 `json:"daily_carbs"`
	DailyFat         float64                 `json:"daily_fat"`
	DailyFiber       float64                 `json:"daily_fiber"`
	DailySugar       float64                 `json:"daily_sugar"`
	DailySodium      float64                 `json:"daily_sodium"`
	Age              *int                    `json:"age,omitempty"`
	Gender           nutrition.Gender        `json:"gender,omitempty"`
	Weight           *float64                `json:"weight,omitempty"`
	Height           *float64                `json:"height,omitempty"`
	ActivityLevel    nutrition.ActivityLevel `json:"activity_level"`
	Objective        nutrition.Objective     `json:"goal_type"`
	WeeklyWeightGoal float64                 `json:"weekly_weight_goal"`
	BMR              *float64                `json:"bmr,omitempty"`
	TDEE             *float64                `json:"tdee,omitempty"`
	SetBy            nutrition.GoalSource    `json:"set_by"`
	IsActive         bool                    `json:"is_active"`
	Notes            string                  `json:"notes,omitempty"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// ToGoalResponse converts a domain goal
func ToGoalResponse(g *nutrition.Goal) GoalResponse {
	resp := GoalResponse{
		ID:               g.ID,
		UserID:           g.UserID,
		DailyCalories:    g.Targets.Calories,
		DailyProtein:     g.Targets.Protein,
		DailyCarbs:       g.Targets.Carbs,
		DailyFat:         g.Targets.Fat,
		DailyFiber:       g.Targets.Fiber,
		DailySugar:       g.Targets.Sugar,
		DailySodium:      g.Targets.Sodium,
		Age:              g.Profile.Age,
		Gender:           g.Profile.Gender,
		Weight:           g.Profile.Weight,
		Height:           g.Profile.Height,
		ActivityLevel:    g.Profile.ActivityLevel,
		Objective:        g.Profile.Objective,
		WeeklyWeightGoal: g.Profile.WeeklyWeightGoal,
		SetBy:            g.SetBy,
		IsActive:         g.IsActive,
		Notes:            g.Notes,
		UpdatedAt:        g.UpdatedAt,
	}
	if bmr, ok := g.BMR(); ok {
		resp.BMR = &bmr
	}
	if tdee, ok := g.TDEE(); ok {
		resp.TDEE = &tdee
	}
	return resp
}

// ReportQuery selects an inclusive date window
type ReportQuery struct {
	StartDate string `form:"start_date" binding:"required,date"`
	EndDate   string `form:"end_date" binding:"required,date"`
}

// ChartQuery selects a window and bucket size
type ChartQuery struct {
	ReportQuery
	Granularity string `form:"granularity" binding:"omitempty,oneof=daily weekly monthly"`
}

// StatsQuery selects the trailing window of the overview
type StatsQuery struct {
	Date string `form:"date" binding:"omitempty,date"`
	Days int    `form:"days" binding:"omitempty,min=1,max=365"`
}

// ReportPeriod describes the window of a report
type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	DayCount  int    `json:"day_count"`
}

// ReportResponse is the nutrition report of a window
type ReportResponse struct {
	Period      ReportPeriod        `json:"period"`
	Summaries   []SummaryResponse   `json:"summaries"`
	Entries     []EntryResponse     `json:"entries"`
	Totals      nutrition.Nutrients `json:"totals"`
	Averages    nutrition.Nutrients `json:"averages"`
	EntryCount  int64               `json:"entry_count"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// ChartPoint is one bucket of a chart series
type ChartPoint struct {
	Period string `json:"period"`
	nutrition.Nutrients
	EntryCount int `json:"entry_count"`
}

// ChartResponse is a chart series sorted by period
type ChartResponse struct {
	Granularity nutrition.Granularity `json:"granularity"`
	Points      []ChartPoint          `json:"points"`
}

// StatsOverview summarizes a trailing window of days
type StatsOverview struct {
	StartDate         string              `json:"start_date"`
	EndDate           string              `json:"end_date"`
	Days              int                 `json:"days"`
	DaysLogged        int                 `json:"days_logged"`
	TotalEntries      int                 `json:"total_entries"`
	Averages          nutrition.Nutrients `json:"averages"`
	AverageCompletion int                 `json:"average_completion"`
	CurrentStreak     int                 `json:"current_streak"`
}
