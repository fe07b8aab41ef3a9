package nutrition

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// Gender is used by the BMR estimate
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel scales BMR into daily energy expenditure
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

// Objective is what the user is trying to achieve with the goal
type Objective string

const (
	ObjectiveLoseWeight     Objective = "lose_weight"
	ObjectiveMaintainWeight Objective = "maintain_weight"
	ObjectiveGainWeight     Objective = "gain_weight"
	ObjectiveGainMuscle     Objective = "gain_muscle"
)

// GoalSource records who produced the targets
type GoalSource string

const (
	GoalSetByUser       GoalSource = "user"
	GoalSetByAdmin      GoalSource = "admin"
	GoalSetByCalculated GoalSource = "calculated"
)

// Default targets for the optional nutrients
const (
	DefaultFiberTarget  = 25
	DefaultSugarTarget  = 50
	DefaultSodiumTarget = 2300
)

type bound struct{ min, max float64 }

var targetBounds = map[Nutrient]bound{
	NutrientCalories: {800, 5000},
	NutrientProtein:  {10, 500},
	NutrientCarbs:    {20, 800},
	NutrientFat:      {10, 300},
	NutrientFiber:    {0, 100},
	NutrientSugar:    {0, 200},
	NutrientSodium:   {0, 10000},
}

// Profile holds the body attributes used to calculate targets
type Profile struct {
	Age              *int
	Gender           Gender
	Weight           *float64 // kg
	Height           *float64 // cm
	ActivityLevel    ActivityLevel
	Objective        Objective
	WeeklyWeightGoal float64 // kg per week, negative means loss
}

// Goal is the single active set of daily targets for a user
type Goal struct {
	shared.BaseAggregateRoot
	UserID   uuid.UUID
	Targets  Nutrients
	Profile  Profile
	SetBy    GoalSource
	IsActive bool
	Notes    string
}

// GoalInput is the user supplied content of a goal
type GoalInput struct {
	Targets   Nutrients
	HasFiber  bool
	HasSugar  bool
	HasSodium bool
	Profile   Profile
	Notes     string
}

// NewGoal creates an active goal for userID
func NewGoal(userID uuid.UUID, in GoalInput, setBy GoalSource) (*Goal, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	g := &Goal{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		IsActive:          true,
	}
	if err := g.assign(in, setBy); err != nil {
		return nil, err
	}
	return g, nil
}

// Replace overwrites targets and profile wholesale
func (g *Goal) Replace(in GoalInput, setBy GoalSource) error {
	if err := g.assign(in, setBy); err != nil {
		return err
	}
	g.IsActive = true
	g.IncrementVersion()
	return nil
}

func (g *Goal) assign(in GoalInput, setBy GoalSource) error {
	targets := in.Targets
	if !in.HasFiber {
		targets.Fiber = DefaultFiberTarget
	}
	if !in.HasSugar {
		targets.Sugar = DefaultSugarTarget
	}
	if !in.HasSodium {
		targets.Sodium = DefaultSodiumTarget
	}
	profile, err := normalizeProfile(in.Profile)
	if err != nil {
		return err
	}
	notes := strings.TrimSpace(in.Notes)
	if utf8.RuneCountInString(notes) > maxNotesLength {
		return shared.InvalidInput("Notes cannot exceed 500 characters")
	}
	if setBy == "" {
		setBy = GoalSetByUser
	}

	g.Targets = targets
	g.Profile = profile
	g.Notes = notes
	g.SetBy = setBy

	if setBy == GoalSetByCalculated {
		if err := g.CalculateTargets(); err != nil {
			return err
		}
	}
	if err := validateTargets(g.Targets); err != nil {
		return err
	}
	g.AddDomainEvent(NewGoalUpdatedEvent(g))
	return nil
}

// BMR estimates basal metabolic rate with the Mifflin-St Jeor equation.
// ok is false when the profile is incomplete.
func (g *Goal) BMR() (bmr float64, ok bool) {
	p := g.Profile
	if p.Weight == nil || p.Height == nil || p.Age == nil || p.Gender == "" {
		return 0, false
	}
	base := 10*(*p.Weight) + 6.25*(*p.Height) - 5*float64(*p.Age)
	if p.Gender == GenderMale {
		return math.Round(base + 5), true
	}
	return math.Round(base - 161), true
}

// TDEE is BMR scaled by the activity multiplier
func (g *Goal) TDEE() (float64, bool) {
	bmr, ok := g.BMR()
	if !ok {
		return 0, false
	}
	m, found := activityMultipliers[g.Profile.ActivityLevel]
	if !found {
		m = activityMultipliers[ActivityModeratelyActive]
	}
	return math.Round(bmr * m), true
}

// CalculateTargets derives calories and macros from the profile.
// Weekly weight change shifts calories by 500 kcal/day per kg, in the
// direction given by the objective.
func (g *Goal) CalculateTargets() error {
	tdee, ok := g.TDEE()
	if !ok {
		return ErrInvalidProfile
	}
	delta := math.Abs(g.Profile.WeeklyWeightGoal) * 500
	target := tdee
	switch g.Profile.Objective {
	case ObjectiveLoseWeight:
		target = tdee - delta
	case ObjectiveGainWeight, ObjectiveGainMuscle:
		target = tdee + delta
	}

	proteinShare, carbShare := 0.25, 0.45
	if g.Profile.Objective == ObjectiveGainMuscle {
		proteinShare, carbShare = 0.30, 0.40
	}

	g.Targets.Calories = math.Round(target)
	g.Targets.Protein = math.Round(target * proteinShare / 4)
	g.Targets.Carbs = math.Round(target * carbShare / 4)
	g.Targets.Fat = math.Round(target * 0.30 / 9)
	g.SetBy = GoalSetByCalculated
	return nil
}

func validateTargets(t Nutrients) error {
	for _, k := range AllNutrients {
		b := targetBounds[k]
		v := t.Get(k)
		if !finite(v) || v < b.min || v > b.max {
			return shared.InvalidInput(fmt.Sprintf("Daily %s must be between %g and %g", k, b.min, b.max))
		}
	}
	return nil
}

func normalizeProfile(p Profile) (Profile, error) {
	if p.Age != nil && (*p.Age < 13 || *p.Age > 120) {
		return p, shared.InvalidInput("Age must be between 13 and 120")
	}
	if p.Weight != nil && (!finite(*p.Weight) || *p.Weight < 30 || *p.Weight > 500) {
		return p, shared.InvalidInput("Weight must be between 30 and 500 kg")
	}
	if p.Height != nil && (!finite(*p.Height) || *p.Height < 100 || *p.Height > 250) {
		return p, shared.InvalidInput("Height must be between 100 and 250 cm")
	}
	switch p.Gender {
	case "", GenderMale, GenderFemale, GenderOther:
	default:
		return p, shared.InvalidInput("Gender must be male, female or other")
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = ActivityModeratelyActive
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return p, shared.InvalidInput("Unknown activity level")
	}
	switch p.Objective {
	case "":
		p.Objective = ObjectiveMaintainWeight
	case ObjectiveLoseWeight, ObjectiveMaintainWeight, ObjectiveGainWeight, ObjectiveGainMuscle:
	default:
		return p, shared.InvalidInput("Unknown goal objective")
	}
	if !finite(p.WeeklyWeightGoal) || p.WeeklyWeightGoal < -2 || p.WeeklyWeightGoal > 2 {
		return p, shared.InvalidInput("Weekly weight goal must be between -2 and 2 kg")
	}
	return p, nil
}
