package nutrition

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewGoal(t *testing.T) {
	userID := uuid.New()
	base := Nutrients{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65}

	t.Run("applies defaults for optional targets", func(t *testing.T) {
		g, err := NewGoal(userID, GoalInput{Targets: base}, "")
		require.NoError(t, err)

		assert.Equal(t, 25.0, g.Targets.Fiber)
		assert.Equal(t, 50.0, g.Targets.Sugar)
		assert.Equal(t, 2300.0, g.Targets.Sodium)
		assert.Equal(t, GoalSetByUser, g.SetBy)
		assert.True(t, g.IsActive)
		assert.Equal(t, ActivityModeratelyActive, g.Profile.ActivityLevel)
		assert.Equal(t, ObjectiveMaintainWeight, g.Profile.Objective)
	})

	t.Run("keeps explicit optional targets", func(t *testing.T) {
		in := GoalInput{Targets: base, HasFiber: true, HasSodium: true}
		in.Targets.Fiber = 0
		in.Targets.Sodium = 1500
		g, err := NewGoal(userID, in, GoalSetByAdmin)
		require.NoError(t, err)

		assert.Equal(t, 0.0, g.Targets.Fiber)
		assert.Equal(t, 1500.0, g.Targets.Sodium)
		assert.Equal(t, GoalSetByAdmin, g.SetBy)
	})

	t.Run("publishes NutritionGoalUpdated", func(t *testing.T) {
		g, err := NewGoal(userID, GoalInput{Targets: base}, GoalSetByUser)
		require.NoError(t, err)
		events := g.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeGoalUpdated, events[0].EventType())
	})

	bad := []struct {
		name    string
		targets Nutrients
		msg     string
	}{
		{"calories below floor", Nutrients{Calories: 799, Protein: 150, Carbs: 250, Fat: 65}, "calories must be between 800 and 5000"},
		{"calories above cap", Nutrients{Calories: 5001, Protein: 150, Carbs: 250, Fat: 65}, "calories must be between 800 and 5000"},
		{"protein below floor", Nutrients{Calories: 2000, Protein: 5, Carbs: 250, Fat: 65}, "protein must be between 10 and 500"},
		{"fat above cap", Nutrients{Calories: 2000, Protein: 150, Carbs: 250, Fat: 301}, "fat must be between 10 and 300"},
		{"NaN calories", Nutrients{Calories: math.NaN(), Protein: 150, Carbs: 250, Fat: 65}, "calories must be between 800 and 5000"},
		{"infinite carbs", Nutrients{Calories: 2000, Protein: 150, Carbs: math.Inf(1), Fat: 65}, "carbs must be between"},
	}
	for _, tt := range bad {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := NewGoal(userID, GoalInput{Targets: tt.targets}, GoalSetByUser)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	t.Run("rejects nil user", func(t *testing.T) {
		_, err := NewGoal(uuid.Nil, GoalInput{Targets: base}, GoalSetByUser)
		assert.ErrorIs(t, err, ErrMissingUser)
	})

	t.Run("rejects out of range profile", func(t *testing.T) {
		_, err := NewGoal(userID, GoalInput{Targets: base, Profile: Profile{Age: ptr(9)}}, GoalSetByUser)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Age must be between 13 and 120")
	})

	t.Run("rejects NaN weight", func(t *testing.T) {
		_, err := NewGoal(userID, GoalInput{Targets: base, Profile: Profile{Weight: ptr(math.NaN())}}, GoalSetByUser)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Weight must be between 30 and 500 kg")
	})
}

func TestGoal_BMRAndTDEE(t *testing.T) {
	g := &Goal{Profile: Profile{
		Age:           ptr(30),
		Gender:        GenderMale,
		Weight:        ptr(80.0),
		Height:        ptr(180.0),
		ActivityLevel: ActivityModeratelyActive,
	}}

	bmr, ok := g.BMR()
	require.True(t, ok)
	assert.Equal(t, 1780.0, bmr)

	tdee, ok := g.TDEE()
	require.True(t, ok)
	assert.Equal(t, 2759.0, tdee)

	g.Profile.Gender = GenderFemale
	bmr, ok = g.BMR()
	require.True(t, ok)
	assert.Equal(t, 1614.0, bmr)

	_, ok = (&Goal{}).BMR()
	assert.False(t, ok)
}

func TestGoal_CalculateTargets(t *testing.T) {
	userID := uuid.New()
	profile := Profile{
		Age:           ptr(30),
		Gender:        GenderMale,
		Weight:        ptr(80.0),
		Height:        ptr(180.0),
		ActivityLevel: ActivityModeratelyActive,
	}

	t.Run("maintenance split", func(t *testing.T) {
		g, err := NewGoal(userID, GoalInput{Profile: profile}, GoalSetByCalculated)
		require.NoError(t, err)

		assert.Equal(t, 2759.0, g.Targets.Calories)
		assert.Equal(t, 172.0, g.Targets.Protein)
		assert.Equal(t, 310.0, g.Targets.Carbs)
		assert.Equal(t, 92.0, g.Targets.Fat)
		assert.Equal(t, GoalSetByCalculated, g.SetBy)
	})

	t.Run("weight loss subtracts 500 kcal per kg", func(t *testing.T) {
		p := profile
		p.Objective = ObjectiveLoseWeight
		p.WeeklyWeightGoal = -0.5
		g, err := NewGoal(userID, GoalInput{Profile: p}, GoalSetByCalculated)
		require.NoError(t, err)
		assert.Equal(t, 2509.0, g.Targets.Calories)
	})

	t.Run("muscle gain uses a protein heavy split", func(t *testing.T) {
		p := profile
		p.Objective = ObjectiveGainMuscle
		p.WeeklyWeightGoal = 0.5
		g, err := NewGoal(userID, GoalInput{Profile: p}, GoalSetByCalculated)
		require.NoError(t, err)
		assert.Equal(t, 3009.0, g.Targets.Calories)
		assert.Equal(t, 226.0, g.Targets.Protein)
		assert.Equal(t, 301.0, g.Targets.Carbs)
		assert.Equal(t, 100.0, g.Targets.Fat)
	})

	t.Run("incomplete profile fails", func(t *testing.T) {
		_, err := NewGoal(userID, GoalInput{Profile: Profile{Age: ptr(30)}}, GoalSetByCalculated)
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})
}
