package nutrition

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// Completion percentages are clamped to this display range
const (
	MinCompletion = 0
	MaxCompletion = 200
)

// Macros holds the four primary nutrients
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MacroPercents holds integer percentages for the four primary nutrients
type MacroPercents struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// MealTotals is the per-meal slice of a summary
type MealTotals struct {
	Macros
	EntryCount int `json:"entry_count"`
}

// MealBreakdown partitions a day's macros by meal
type MealBreakdown struct {
	Breakfast MealTotals `json:"breakfast"`
	Lunch     MealTotals `json:"lunch"`
	Dinner    MealTotals `json:"dinner"`
	Snack     MealTotals `json:"snack"`
}

// Bucket returns a pointer to the totals for meal m; unknown meals map to snack
func (b *MealBreakdown) Bucket(m MealType) *MealTotals {
	switch m {
	case MealBreakfast:
		return &b.Breakfast
	case MealLunch:
		return &b.Lunch
	case MealDinner:
		return &b.Dinner
	default:
		return &b.Snack
	}
}

// Summary is the authoritative roll-up of one user's entries for one day.
// Only the roll-up engine writes it.
type Summary struct {
	shared.BaseEntity
	UserID        uuid.UUID
	Date          time.Time
	Totals        Nutrients
	MealBreakdown MealBreakdown
	Goal          Macros
	Balance       Macros
	Completion    MacroPercents
	TotalEntries  int
}

// OverallCompletion averages the four completion percentages
func (s *Summary) OverallCompletion() int {
	c := s.Completion
	return roundPercent(float64(c.Calories+c.Protein+c.Carbs+c.Fat) / 4)
}

// Primary returns the summary totals restricted to the four primary nutrients
func (s *Summary) Primary() Macros {
	return Macros{
		Calories: s.Totals.Calories,
		Protein:  s.Totals.Protein,
		Carbs:    s.Totals.Carbs,
		Fat:      s.Totals.Fat,
	}
}

// SameContent reports whether two summaries carry identical computed fields,
// ignoring identity and timestamps.
func (s *Summary) SameContent(o *Summary) bool {
	return s.UserID == o.UserID &&
		s.Date.Equal(o.Date) &&
		s.Totals == o.Totals &&
		s.MealBreakdown == o.MealBreakdown &&
		s.Goal == o.Goal &&
		s.Balance == o.Balance &&
		s.Completion == o.Completion &&
		s.TotalEntries == o.TotalEntries
}
