// Package report holds the read models behind admin analytics.
package report

import (
	"context"
	"time"
)

// DailyCount is a per-day tally
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DailyNutrition aggregates every user's entries for one day
type DailyNutrition struct {
	Date          string  `json:"date"`
	EntryCount    int64   `json:"entry_count"`
	UserCount     int64   `json:"user_count"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
}

// Range bounds an analytics query. A zero bound is open.
type Range struct {
	From time.Time
	To   time.Time
}

// AnalyticsRepository runs cross-user aggregate queries
type AnalyticsRepository interface {
	// SignupsPerDay counts users by creation day, oldest first
	SignupsPerDay(ctx context.Context, r Range) ([]DailyCount, error)
	// NutritionPerDay sums entries by entry day, oldest first
	NutritionPerDay(ctx context.Context, r Range) ([]DailyNutrition, error)
	// CountEntries counts entries whose date falls in r
	CountEntries(ctx context.Context, r Range) (int64, error)
}
