package nutrition

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// EntryFilter narrows an entry listing
type EntryFilter struct {
	shared.Filter
	From     *time.Time
	To       *time.Time
	MealType MealType
}

// PeriodTotals aggregates entries over an arbitrary window
type PeriodTotals struct {
	Totals     Nutrients
	EntryCount int64
}

// Granularity selects chart bucket size
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// IsValid reports whether g is a supported chart granularity
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

// EntryRepository persists entries
type EntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	// FindByUserAndRange returns entries with date in [from, to], oldest first
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*Entry, error)
	// List returns one page of entries, newest first, plus the total count
	List(ctx context.Context, userID uuid.UUID, filter EntryFilter) ([]*Entry, int64, error)
	SumByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (PeriodTotals, error)
	Save(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalRepository persists the single active goal of a user
type GoalRepository interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*Goal, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*Goal, error)
	Save(ctx context.Context, goal *Goal) error
}

// SummaryRepository persists daily summaries. Upsert replaces every computed
// field of the (user, date) record in one statement, last writer wins.
type SummaryRepository interface {
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*Summary, error)
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*Summary, error)
	Upsert(ctx context.Context, summary *Summary) (*Summary, error)
}
