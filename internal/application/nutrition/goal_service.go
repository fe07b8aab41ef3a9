package nutrition

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// GoalService manages the single active goal of each user
type GoalService struct {
	goals     nutrition.GoalRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewGoalService creates a new GoalService
func NewGoalService(goals nutrition.GoalRepository, publisher shared.EventPublisher, logger *zap.Logger) *GoalService {
	return &GoalService{goals: goals, publisher: publisher, logger: logger}
}

// Get returns the user's active goal
func (s *GoalService) Get(ctx context.Context, userID uuid.UUID) (*GoalResponse, error) {
	goal, err := s.goals.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToGoalResponse(goal)
	return &resp, nil
}

// Set creates or replaces the user's goal. setBy is GoalSetByAdmin when an
// administrator acts on the user's behalf; Calculate overrides it.
func (s *GoalService) Set(ctx context.Context, userID uuid.UUID, req SetGoalRequest, setBy nutrition.GoalSource) (*GoalResponse, error) {
	if req.Calculate {
		setBy = nutrition.GoalSetByCalculated
	}

	goal, err := s.goals.FindByUser(ctx, userID)
	switch {
	case err == nil:
		if err := goal.Replace(req.input(), setBy); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		goal, err = nutrition.NewGoal(userID, req.input(), setBy)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.goals.Save(ctx, goal); err != nil {
		return nil, err
	}

	events := goal.PullDomainEvents()
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("Failed to publish goal events", zap.Error(err))
		}
	}

	s.logger.Info("Nutrition goal set",
		zap.String("user_id", userID.String()),
		zap.String("set_by", string(goal.SetBy)),
	)
	resp := ToGoalResponse(goal)
	return &resp, nil
}
