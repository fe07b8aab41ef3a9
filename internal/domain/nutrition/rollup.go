package nutrition

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Rollup reduces the entries of one day into a fresh Summary.
// Entries outside day are the caller's concern; every given entry is counted.
// A nil goal yields a zero goal snapshot and zero completions.
func Rollup(userID uuid.UUID, day DayRange, entries []*Entry, goal *Goal) *Summary {
	var totals nutrientSum
	meals := map[MealType]*macroSum{}
	for _, m := range MealTypes {
		meals[m] = &macroSum{}
	}

	for _, e := range entries {
		totals.add(e.Nutrients)
		meal := e.MealType
		if !meal.IsValid() {
			meal = MealSnack
		}
		meals[meal].add(e.Nutrients)
	}

	s := &Summary{
		UserID:       userID,
		Date:         day.Start,
		Totals:       totals.value(),
		TotalEntries: len(entries),
	}
	for _, m := range MealTypes {
		*s.MealBreakdown.Bucket(m) = meals[m].value()
	}

	if goal != nil {
		s.Goal = Macros{
			Calories: goal.Targets.Calories,
			Protein:  goal.Targets.Protein,
			Carbs:    goal.Targets.Carbs,
			Fat:      goal.Targets.Fat,
		}
	}

	s.Balance = Macros{
		Calories: difference(s.Totals.Calories, s.Goal.Calories),
		Protein:  difference(s.Totals.Protein, s.Goal.Protein),
		Carbs:    difference(s.Totals.Carbs, s.Goal.Carbs),
		Fat:      difference(s.Totals.Fat, s.Goal.Fat),
	}
	s.Completion = MacroPercents{
		Calories: CompletionPercent(s.Totals.Calories, s.Goal.Calories),
		Protein:  CompletionPercent(s.Totals.Protein, s.Goal.Protein),
		Carbs:    CompletionPercent(s.Totals.Carbs, s.Goal.Carbs),
		Fat:      CompletionPercent(s.Totals.Fat, s.Goal.Fat),
	}
	return s
}

// Percent returns consumed/goal*100 rounded to the nearest integer,
// halves rounded away from zero. A non-positive goal yields 0.
func Percent(consumed, goal float64) int {
	if goal <= 0 {
		return 0
	}
	p := decimal.NewFromFloat(consumed).
		Div(decimal.NewFromFloat(goal)).
		Mul(hundred).
		Round(0)
	return int(p.IntPart())
}

// CompletionPercent is Percent clamped to [MinCompletion, MaxCompletion]
func CompletionPercent(consumed, goal float64) int {
	p := Percent(consumed, goal)
	if p < MinCompletion {
		return MinCompletion
	}
	if p > MaxCompletion {
		return MaxCompletion
	}
	return p
}

func roundPercent(v float64) int {
	return int(decimal.NewFromFloat(v).Round(0).IntPart())
}

// difference computes a-b without binary float drift
func difference(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}

// nutrientSum accumulates Nutrients in decimal so that totals of values
// like 0.1 + 0.2 come out as written.
type nutrientSum [7]decimal.Decimal

func (s *nutrientSum) add(n Nutrients) {
	for i, k := range AllNutrients {
		s[i] = s[i].Add(decimal.NewFromFloat(n.Get(k)))
	}
}

func (s *nutrientSum) value() Nutrients {
	var n Nutrients
	for i, k := range AllNutrients {
		n = n.Set(k, s[i].InexactFloat64())
	}
	return n
}

type macroSum struct {
	calories, protein, carbs, fat decimal.Decimal
	count                         int
}

func (s *macroSum) add(n Nutrients) {
	s.calories = s.calories.Add(decimal.NewFromFloat(n.Calories))
	s.protein = s.protein.Add(decimal.NewFromFloat(n.Protein))
	s.carbs = s.carbs.Add(decimal.NewFromFloat(n.Carbs))
	s.fat = s.fat.Add(decimal.NewFromFloat(n.Fat))
	s.count++
}

func (s *macroSum) value() MealTotals {
	return MealTotals{
		Macros: Macros{
			Calories: s.calories.InexactFloat64(),
			Protein:  s.protein.InexactFloat64(),
			Carbs:    s.carbs.InexactFloat64(),
			Fat:      s.fat.InexactFloat64(),
		},
		EntryCount: s.count,
	}
}
