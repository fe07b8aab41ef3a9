package nutrition

import "strings"

// MealType buckets an entry into one of the four daily meals
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists meals in the order they appear in a summary
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValid reports whether m is one of the four known meals
func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// ParseMealType normalizes s, falling back to snack for empty or unknown input
func ParseMealType(s string) MealType {
	m := MealType(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return MealSnack
	}
	return m
}
