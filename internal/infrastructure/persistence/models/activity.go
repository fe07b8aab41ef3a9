package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/activity"
)

// ActivityModel maps the user_activities table
type ActivityModel struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index:idx_user_activities_user_created,priority:1"`
	Type        activity.Type `gorm:"type:varchar(40);not null;index"`
	Description string        `gorm:"type:varchar(500);not null"`
	Metadata    string        `gorm:"type:jsonb;not null;default:'{}'"`
	IPAddress   string        `gorm:"type:varchar(45)"`
	UserAgent   string        `gorm:"type:varchar(500)"`
	CreatedAt   time.Time     `gorm:"not null;index:idx_user_activities_user_created,priority:2,sort:desc"`
}

// TableName returns the table name for GORM
func (ActivityModel) TableName() string {
	return "user_activities"
}

// ActivityModelFromDomain converts a domain activity
func ActivityModelFromDomain(a *activity.Activity) (*ActivityModel, error) {
	meta, err := json.Marshal(a.Metadata)
	if err != nil {
		return nil, err
	}
	return &ActivityModel{
		ID:          a.ID,
		UserID:      a.UserID,
		Type:        a.Type,
		Description: a.Description,
		Metadata:    string(meta),
		IPAddress:   a.IPAddress,
		UserAgent:   a.UserAgent,
		CreatedAt:   a.CreatedAt,
	}, nil
}

// ToDomain converts back to a domain activity. Undecodable metadata is
// returned as an empty map.
func (m *ActivityModel) ToDomain() *activity.Activity {
	meta := map[string]any{}
	if m.Metadata != "" {
		_ = json.Unmarshal([]byte(m.Metadata), &meta)
	}
	return &activity.Activity{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        m.Type,
		Description: m.Description,
		Metadata:    meta,
		IPAddress:   m.IPAddress,
		UserAgent:   m.UserAgent,
		CreatedAt:   m.CreatedAt,
	}
}
