package admin

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/catalog"
	"github.com/nutritrack/backend/internal/domain/identity"
	"github.com/nutritrack/backend/internal/domain/report"
)

// Export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// RangeQuery bounds an analytics request; both dates are optional and inclusive
type RangeQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,date"`
	EndDate   string `form:"end_date" binding:"omitempty,date"`
}

// ExportQuery selects the user export format
type ExportQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=json csv xlsx"`
}

// SystemStats is the admin dashboard headline
type SystemStats struct {
	TotalUsers        int64     `json:"total_users"`
	TotalFoods        int64     `json:"total_foods"`
	TotalEntries      int64     `json:"total_nutrition_entries"`
	NewUsersThisMonth int64     `json:"new_users_this_month"`
	ActiveUsersToday  int64     `json:"active_users_today"`
	LoggedInToday     int64     `json:"logged_in_today"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// UserAnalytics lists signups per day
type UserAnalytics struct {
	Signups []report.DailyCount `json:"signups"`
	Total   int64               `json:"total"`
}

// NutritionAnalytics lists cross-user nutrition totals per day
type NutritionAnalytics struct {
	Days []report.DailyNutrition `json:"days"`
}

// PopularFood is a top-used catalog food
type PopularFood struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Brand      string           `json:"brand,omitempty"`
	Category   catalog.Category `json:"category"`
	UsageCount int64            `json:"usage_count"`
}

// FoodAnalytics describes the shape of the catalog
type FoodAnalytics struct {
	Categories   []catalog.CategoryStat     `json:"category_stats"`
	Popular      []PopularFood              `json:"popular_foods"`
	Verification catalog.VerificationCounts `json:"verification_stats"`
}

// UserExportRow is one exported account. The password hash is never exported.
type UserExportRow struct {
	ID        uuid.UUID     `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Role      identity.Role `json:"role"`
	Active    bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
}

// ExportResult carries either a file body or a download link. JSON exports
// fill Users instead.
type ExportResult struct {
	Format      string          `json:"format"`
	Filename    string          `json:"filename"`
	ContentType string          `json:"-"`
	Data        []byte          `json:"-"`
	Users       []UserExportRow `json:"users,omitempty"`
	Count       int             `json:"count"`
	DownloadURL string          `json:"download_url,omitempty"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
}

// Uploaded reports whether the export was stored remotely
func (r *ExportResult) Uploaded() bool {
	return r.DownloadURL != ""
}
