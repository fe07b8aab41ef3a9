package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
)

// NutrientColumns stores the seven tracked nutrients
type NutrientColumns struct {
	Calories float64 `gorm:"not null;default:0"`
	Protein  float64 `gorm:"not null;default:0"`
	Carbs    float64 `gorm:"not null;default:0"`
	Fat      float64 `gorm:"not null;default:0"`
	Fiber    float64 `gorm:"not null;default:0"`
	Sugar    float64 `gorm:"not null;default:0"`
	Sodium   float64 `gorm:"not null;default:0"`
}

func nutrientColumnsFrom(n nutrition.Nutrients) NutrientColumns {
	return NutrientColumns(n)
}

func (c NutrientColumns) toDomain() nutrition.Nutrients {
	return nutrition.Nutrients(c)
}

// MacroColumns stores the four primary nutrients
type MacroColumns struct {
	Calories float64 `gorm:"not null;default:0"`
	Protein  float64 `gorm:"not null;default:0"`
	Carbs    float64 `gorm:"not null;default:0"`
	Fat      float64 `gorm:"not null;default:0"`
}

// MealColumns stores one meal slice of a summary
type MealColumns struct {
	Calories float64 `gorm:"not null;default:0"`
	Protein  float64 `gorm:"not null;default:0"`
	Carbs    float64 `gorm:"not null;default:0"`
	Fat      float64 `gorm:"not null;default:0"`
	Entries  int     `gorm:"not null;default:0"`
}

// PercentColumns stores integer completion percentages
type PercentColumns struct {
	Calories int `gorm:"not null;default:0"`
	Protein  int `gorm:"not null;default:0"`
	Carbs    int `gorm:"not null;default:0"`
	Fat      int `gorm:"not null;default:0"`
}

// EntryModel maps the nutrition_entries table
type EntryModel struct {
	AggregateModel
	UserID   uuid.UUID          `gorm:"type:uuid;not null;index:idx_nutrition_entries_user_date,priority:1"`
	FoodItem string             `gorm:"type:varchar(100);not null"`
	Quantity string             `gorm:"type:varchar(20);not null"`
	Date     time.Time          `gorm:"not null;index:idx_nutrition_entries_user_date,priority:2"`
	MealType nutrition.MealType `gorm:"type:varchar(20);not null;default:'snack'"`
	FoodID   *uuid.UUID         `gorm:"type:uuid;index"`
	Notes    string             `gorm:"type:varchar(500)"`
	NutrientColumns
}

// TableName returns the table name for GORM
func (EntryModel) TableName() string {
	return "nutrition_entries"
}

// EntryModelFromDomain converts a domain entry
func EntryModelFromDomain(e *nutrition.Entry) *EntryModel {
	m := &EntryModel{
		UserID:          e.UserID,
		FoodItem:        e.FoodItem,
		Quantity:        e.Quantity,
		Date:            e.Date,
		MealType:        e.MealType,
		FoodID:          e.FoodID,
		Notes:           e.Notes,
		NutrientColumns: nutrientColumnsFrom(e.Nutrients),
	}
	m.fromAggregate(e.BaseAggregateRoot)
	return m
}

// ToDomain converts back to a domain entry
func (m *EntryModel) ToDomain() *nutrition.Entry {
	return &nutrition.Entry{
		BaseAggregateRoot: m.toAggregate(),
		UserID:            m.UserID,
		FoodItem:          m.FoodItem,
		Quantity:          m.Quantity,
		Date:              m.Date,
		Nutrients:         m.NutrientColumns.toDomain(),
		MealType:          m.MealType,
		FoodID:            m.FoodID,
		Notes:             m.Notes,
	}
}

// GoalModel maps the nutrition_goals table; one row per user
type GoalModel struct {
	AggregateModel
	UserID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Targets          NutrientColumns `gorm:"embedded;embeddedPrefix:target_"`
	Age              *int
	Gender           nutrition.Gender        `gorm:"type:varchar(10)"`
	Weight           *float64
	Height           *float64
	ActivityLevel    nutrition.ActivityLevel `gorm:"type:varchar(30);not null;default:'moderately_active'"`
	Objective        nutrition.Objective     `gorm:"type:varchar(30);not null;default:'maintain_weight'"`
	WeeklyWeightGoal float64                 `gorm:"not null;default:0"`
	SetBy            nutrition.GoalSource    `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive         bool                    `gorm:"not null;default:true"`
	Notes            string                  `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (GoalModel) TableName() string {
	return "nutrition_goals"
}

// GoalModelFromDomain converts a domain goal
func GoalModelFromDomain(g *nutrition.Goal) *GoalModel {
	p := g.Profile
	m := &GoalModel{
		UserID:           g.UserID,
		Targets:          nutrientColumnsFrom(g.Targets),
		Age:              p.Age,
		Gender:           p.Gender,
		Weight:           p.Weight,
		Height:           p.Height,
		ActivityLevel:    p.ActivityLevel,
		Objective:        p.Objective,
		WeeklyWeightGoal: p.WeeklyWeightGoal,
		SetBy:            g.SetBy,
		IsActive:         g.IsActive,
		Notes:            g.Notes,
	}
	m.fromAggregate(g.BaseAggregateRoot)
	return m
}

// ToDomain converts back to a domain goal
func (m *GoalModel) ToDomain() *nutrition.Goal {
	return &nutrition.Goal{
		BaseAggregateRoot: m.toAggregate(),
		UserID:            m.UserID,
		Targets:           m.Targets.toDomain(),
		Profile: nutrition.Profile{
			Age:              m.Age,
			Gender:           m.Gender,
			Weight:           m.Weight,
			Height:           m.Height,
			ActivityLevel:    m.ActivityLevel,
			Objective:        m.Objective,
			WeeklyWeightGoal: m.WeeklyWeightGoal,
		},
		SetBy:    m.SetBy,
		IsActive: m.IsActive,
		Notes:    m.Notes,
	}
}

// SummaryModel maps the daily_summaries table
type SummaryModel struct {
	BaseModel
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_summaries_user_date,priority:1"`
	Date         time.Time       `gorm:"not null;uniqueIndex:idx_daily_summaries_user_date,priority:2"`
	Totals       NutrientColumns `gorm:"embedded;embeddedPrefix:total_"`
	Breakfast    MealColumns     `gorm:"embedded;embeddedPrefix:breakfast_"`
	Lunch        MealColumns     `gorm:"embedded;embeddedPrefix:lunch_"`
	Dinner       MealColumns     `gorm:"embedded;embeddedPrefix:dinner_"`
	Snack        MealColumns     `gorm:"embedded;embeddedPrefix:snack_"`
	Goal         MacroColumns    `gorm:"embedded;embeddedPrefix:goal_"`
	Balance      MacroColumns    `gorm:"embedded;embeddedPrefix:balance_"`
	Completion   PercentColumns  `gorm:"embedded;embeddedPrefix:completion_"`
	TotalEntries int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (SummaryModel) TableName() string {
	return "daily_summaries"
}

// SummaryComputedColumns lists every column the roll-up derives. An upsert
// overwrites exactly these plus updated_at.
func SummaryComputedColumns() []string {
	cols := make([]string, 0, 40)
	for _, n := range nutrition.AllNutrients {
		cols = append(cols, "total_"+string(n))
	}
	for _, meal := range nutrition.MealTypes {
		for _, n := range nutrition.PrimaryNutrients {
			cols = append(cols, string(meal)+"_"+string(n))
		}
		cols = append(cols, string(meal)+"_entries")
	}
	for _, prefix := range []string{"goal_", "balance_", "completion_"} {
		for _, n := range nutrition.PrimaryNutrients {
			cols = append(cols, prefix+string(n))
		}
	}
	return append(cols, "total_entries", "updated_at")
}

func mealColumnsFrom(t nutrition.MealTotals) MealColumns {
	return MealColumns{
		Calories: t.Calories,
		Protein:  t.Protein,
		Carbs:    t.Carbs,
		Fat:      t.Fat,
		Entries:  t.EntryCount,
	}
}

func (c MealColumns) toDomain() nutrition.MealTotals {
	return nutrition.MealTotals{
		Macros:     nutrition.Macros{Calories: c.Calories, Protein: c.Protein, Carbs: c.Carbs, Fat: c.Fat},
		EntryCount: c.Entries,
	}
}

// SummaryModelFromDomain converts a domain summary
func SummaryModelFromDomain(s *nutrition.Summary) *SummaryModel {
	m := &SummaryModel{
		UserID:       s.UserID,
		Date:         s.Date,
		Totals:       nutrientColumnsFrom(s.Totals),
		Breakfast:    mealColumnsFrom(s.MealBreakdown.Breakfast),
		Lunch:        mealColumnsFrom(s.MealBreakdown.Lunch),
		Dinner:       mealColumnsFrom(s.MealBreakdown.Dinner),
		Snack:        mealColumnsFrom(s.MealBreakdown.Snack),
		Goal:         MacroColumns(s.Goal),
		Balance:      MacroColumns(s.Balance),
		Completion:   PercentColumns(s.Completion),
		TotalEntries: s.TotalEntries,
	}
	m.fromEntity(s.BaseEntity)
	return m
}

// ToDomain converts back to a domain summary
func (m *SummaryModel) ToDomain() *nutrition.Summary {
	return &nutrition.Summary{
		BaseEntity: m.toEntity(),
		UserID:     m.UserID,
		Date:       m.Date,
		Totals:     m.Totals.toDomain(),
		MealBreakdown: nutrition.MealBreakdown{
			Breakfast: m.Breakfast.toDomain(),
			Lunch:     m.Lunch.toDomain(),
			Dinner:    m.Dinner.toDomain(),
			Snack:     m.Snack.toDomain(),
		},
		Goal:         nutrition.Macros(m.Goal),
		Balance:      nutrition.Macros(m.Balance),
		Completion:   nutrition.MacroPercents(m.Completion),
		TotalEntries: m.TotalEntries,
	}
}
