// Package nutrition holds the food log, goal and daily summary model together
// with the pure roll-up rules that derive summaries from entries.
package nutrition

import (
	"fmt"
	"math"
)

// Nutrients is the fixed set of tracked nutrient amounts.
// Energy is in kcal, sodium in mg, everything else in grams.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// Nutrient names a single field of Nutrients
type Nutrient string

const (
	NutrientCalories Nutrient = "calories"
	NutrientProtein  Nutrient = "protein"
	NutrientCarbs    Nutrient = "carbs"
	NutrientFat      Nutrient = "fat"
	NutrientFiber    Nutrient = "fiber"
	NutrientSugar    Nutrient = "sugar"
	NutrientSodium   Nutrient = "sodium"
)

// AllNutrients lists every tracked nutrient in display order
var AllNutrients = []Nutrient{
	NutrientCalories, NutrientProtein, NutrientCarbs, NutrientFat,
	NutrientFiber, NutrientSugar, NutrientSodium,
}

// PrimaryNutrients are the four nutrients with a persisted goal snapshot
var PrimaryNutrients = []Nutrient{NutrientCalories, NutrientProtein, NutrientCarbs, NutrientFat}

// entryCaps bounds a single logged entry
var entryCaps = Nutrients{
	Calories: 5000,
	Protein:  500,
	Carbs:    800,
	Fat:      300,
	Fiber:    100,
	Sugar:    200,
	Sodium:   10000,
}

// Add returns the field-wise sum of n and o
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fiber:    n.Fiber + o.Fiber,
		Sugar:    n.Sugar + o.Sugar,
		Sodium:   n.Sodium + o.Sodium,
	}
}

// Get returns the amount for a nutrient
func (n Nutrients) Get(k Nutrient) float64 {
	switch k {
	case NutrientCalories:
		return n.Calories
	case NutrientProtein:
		return n.Protein
	case NutrientCarbs:
		return n.Carbs
	case NutrientFat:
		return n.Fat
	case NutrientFiber:
		return n.Fiber
	case NutrientSugar:
		return n.Sugar
	case NutrientSodium:
		return n.Sodium
	}
	return 0
}

// Set returns a copy of n with nutrient k replaced by v
func (n Nutrients) Set(k Nutrient, v float64) Nutrients {
	switch k {
	case NutrientCalories:
		n.Calories = v
	case NutrientProtein:
		n.Protein = v
	case NutrientCarbs:
		n.Carbs = v
	case NutrientFat:
		n.Fat = v
	case NutrientFiber:
		n.Fiber = v
	case NutrientSugar:
		n.Sugar = v
	case NutrientSodium:
		n.Sodium = v
	}
	return n
}

// validateWithin checks every field is finite and in [0, caps]
func (n Nutrients) validateWithin(caps Nutrients) error {
	for _, k := range AllNutrients {
		v := n.Get(k)
		if !finite(v) {
			return invalidNutrient(fmt.Sprintf("%s must be a finite number", k))
		}
		if v < 0 {
			return invalidNutrient(fmt.Sprintf("%s cannot be negative", k))
		}
		if v > caps.Get(k) {
			return invalidNutrient(fmt.Sprintf("%s cannot exceed %g", k, caps.Get(k)))
		}
	}
	return nil
}

// finite rejects NaN and the infinities, which comparisons alone let through
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
