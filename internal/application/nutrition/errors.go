package nutrition

import "github.com/nutritrack/backend/internal/domain/shared"

var (
	ErrInvalidGranularity  = shared.InvalidInput("Granularity must be daily, weekly or monthly")
	ErrRendererUnavailable = shared.NewDomainError("SERVICE_UNAVAILABLE", "PDF rendering is not configured")
	// ErrWindowTooLong shares ErrInvalidRange's code, so errors.Is matches both
	ErrWindowTooLong       = shared.InvalidInput("Report window cannot exceed 366 days")
)
