package nutrition

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// MessageSummaryRecomputed is the realtime message type carrying a SummaryResponse
const MessageSummaryRecomputed = "summary.recomputed"

// Broadcaster delivers a message to a user's live connections
type Broadcaster interface {
	SendToUser(userID uuid.UUID, msgType string, data any) int
}

// SummaryNotifier pushes every recomputed summary to its owner
type SummaryNotifier struct {
	broadcaster Broadcaster
	loc         *time.Location
}

// NewSummaryNotifier creates a new SummaryNotifier
func NewSummaryNotifier(broadcaster Broadcaster, loc *time.Location) *SummaryNotifier {
	return &SummaryNotifier{broadcaster: broadcaster, loc: loc}
}

// EventTypes implements shared.EventHandler
func (n *SummaryNotifier) EventTypes() []string {
	return []string{nutrition.EventTypeSummaryRecomputed}
}

// Handle implements shared.EventHandler
func (n *SummaryNotifier) Handle(_ context.Context, evt shared.DomainEvent) error {
	e, ok := evt.(*nutrition.SummaryRecomputedEvent)
	if !ok || e.Summary == nil {
		return nil
	}
	n.broadcaster.SendToUser(e.Summary.UserID, MessageSummaryRecomputed, ToSummaryResponse(e.Summary, n.loc))
	return nil
}

var _ shared.EventHandler = (*SummaryNotifier)(nil)
