package nutrition

import (
	"fmt"

	"github.com/nutritrack/backend/internal/domain/shared"
)

var (
	ErrEntryNotFound  = shared.NewDomainError("NOT_FOUND", "Nutrition entry not found")
	ErrGoalNotFound   = shared.NewDomainError("NOT_FOUND", "No active nutrition goal found")
	ErrMissingUser    = shared.NewDomainError("INVALID_INPUT", "User ID is required")
	ErrMissingDate    = shared.NewDomainError("INVALID_INPUT", "Date is required")
	ErrInvalidRange   = shared.NewDomainError("INVALID_INPUT", "Start date cannot be after end date")
	ErrInvalidProfile = shared.NewDomainError("INVALID_INPUT", "Weight, height, age and gender are required to calculate goals")
)

func invalidNutrient(msg string) error {
	return shared.InvalidInput(msg)
}

func invalidDate(s string) error {
	return shared.InvalidInput(fmt.Sprintf("Invalid date: %q", s))
}
