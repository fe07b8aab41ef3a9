package nutrition

import (
	"time"

	"github.com/shopspring/decimal"
)

// NutrientPercents holds integer percentages for all seven nutrients
type NutrientPercents struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Sugar    int `json:"sugar"`
	Sodium   int `json:"sodium"`
}

// ProgressView compares a day's consumption against the full goal.
// Progress is not clamped, values above 100 mean over target.
type ProgressView struct {
	Date      time.Time        `json:"date"`
	HasGoal   bool             `json:"has_goal"`
	Goals     Nutrients        `json:"goals"`
	Consumed  Nutrients        `json:"consumed"`
	Progress  NutrientPercents `json:"progress"`
	Remaining Nutrients        `json:"remaining"`
}

// BuildProgress combines goal and summary; either may be nil
func BuildProgress(date time.Time, goal *Goal, summary *Summary) ProgressView {
	v := ProgressView{Date: date}
	if goal != nil {
		v.HasGoal = true
		v.Goals = goal.Targets
	}
	if summary != nil {
		v.Consumed = summary.Totals
	}

	percents := make(map[Nutrient]int, len(AllNutrients))
	for _, k := range AllNutrients {
		target := v.Goals.Get(k)
		consumed := v.Consumed.Get(k)
		percents[k] = Percent(consumed, target)
		v.Remaining = v.Remaining.Set(k, remaining(target, consumed))
	}
	v.Progress = NutrientPercents{
		Calories: percents[NutrientCalories],
		Protein:  percents[NutrientProtein],
		Carbs:    percents[NutrientCarbs],
		Fat:      percents[NutrientFat],
		Fiber:    percents[NutrientFiber],
		Sugar:    percents[NutrientSugar],
		Sodium:   percents[NutrientSodium],
	}
	return v
}

// remaining is max(0, target-consumed)
func remaining(target, consumed float64) float64 {
	r := decimal.NewFromFloat(target).Sub(decimal.NewFromFloat(consumed))
	if r.IsNegative() {
		return 0
	}
	return r.InexactFloat64()
}
