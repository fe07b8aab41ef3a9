package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/application/nutrition"
)

// ReportUseCases is what ReportHandler needs from the read side
type ReportUseCases interface {
	DailySummary(ctx context.Context, userID uuid.UUID, date string) (*nutrition.SummaryResponse, error)
	RecomputeDaily(ctx context.Context, userID uuid.UUID, date string) (*nutrition.SummaryResponse, error)
	GoalsProgress(ctx context.Context, userID uuid.UUID, date string) (*nutrition.ProgressResponse, error)
	Report(ctx context.Context, userID uuid.UUID, q nutrition.ReportQuery) (*nutrition.ReportResponse, error)
	ReportPDF(ctx context.Context, userID uuid.UUID, q nutrition.ReportQuery) ([]byte, error)
	Chart(ctx context.Context, userID uuid.UUID, q nutrition.ChartQuery) (*nutrition.ChartResponse, error)
	StatsOverview(ctx context.Context, userID uuid.UUID, q nutrition.StatsQuery) (*nutrition.StatsOverview, error)
}

// DayQuery selects one calendar day; empty means today
type DayQuery struct {
	Date string `form:"date" binding:"omitempty,date"`
}

// ReportHandler serves daily summaries, progress, reports and charts
type ReportHandler struct {
	BaseHandler
	reports ReportUseCases
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports ReportUseCases) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// DailySummary godoc
// @Summary      Daily summary
// @Description  Returns the stored summary of the day, computing it first when none exists
// @Tags         summaries
// @Produce      json
// @Param        date query string false "Day, YYYY-MM-DD; today when empty"
// @Success      200 {object} APIResponse[nutrition.SummaryResponse]
// @Security     BearerAuth
// @Router       /nutrition/summary/daily [get]
func (h *ReportHandler) DailySummary(c *gin.Context) {
	h.day(c, h.reports.DailySummary)
}

// RecomputeDaily godoc
// @Summary      Rebuild a daily summary
// @Tags         summaries
// @Produce      json
// @Param        date query string false "Day, YYYY-MM-DD; today when empty"
// @Success      200 {object} APIResponse[nutrition.SummaryResponse]
// @Security     BearerAuth
// @Router       /nutrition/summary/daily/recompute [post]
func (h *ReportHandler) RecomputeDaily(c *gin.Context) {
	h.day(c, h.reports.RecomputeDaily)
}

func (h *ReportHandler) day(c *gin.Context, fn func(context.Context, uuid.UUID, string) (*nutrition.SummaryResponse, error)) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var q DayQuery
	if !h.BindQuery(c, &q) {
		return
	}
	summary, err := fn(c.Request.Context(), userID, q.Date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// GoalsProgress godoc
// @Summary      Progress against the active goal
// @Tags         summaries
// @Produce      json
// @Param        date query string false "Day, YYYY-MM-DD; today when empty"
// @Success      200 {object} APIResponse[nutrition.ProgressResponse]
// @Security     BearerAuth
// @Router       /nutrition/goals/progress [get]
func (h *ReportHandler) GoalsProgress(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var q DayQuery
	if !h.BindQuery(c, &q) {
		return
	}
	progress, err := h.reports.GoalsProgress(c.Request.Context(), userID, q.Date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, progress)
}

// Report godoc
// @Summary      Nutrition report over a window
// @Tags         reports
// @Produce      json
// @Param        start_date query string true "Window start"
// @Param        end_date   query string true "Window end"
// @Success      200 {object} APIResponse[nutrition.ReportResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /nutrition/reports [get]
func (h *ReportHandler) Report(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var q nutrition.ReportQuery
	if !h.BindQuery(c, &q) {
		return
	}
	report, err := h.reports.Report(c.Request.Context(), userID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// ReportPDF godoc
// @Summary      Nutrition report as PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        start_date query string true "Window start"
// @Param        end_date   query string true "Window end"
// @Success      200 {file} binary
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /nutrition/reports/pdf [get]
func (h *ReportHandler) ReportPDF(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var q nutrition.ReportQuery
	if !h.BindQuery(c, &q) {
		return
	}
	pdf, err := h.reports.ReportPDF(c.Request.Context(), userID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	filename := fmt.Sprintf("nutrition-report-%s-%s.pdf", q.StartDate, q.EndDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Chart godoc
// @Summary      Chart series bucketed by day, ISO week or month
// @Tags         reports
// @Produce      json
// @Param        start_date  query string true  "Window start"
// @Param        end_date    query string true  "Window end"
// @Param        granularity query string false "daily, weekly or monthly" default(daily)
// @Success      200 {object} APIResponse[nutrition.ChartResponse]
// @Security     BearerAuth
// @Router       /nutrition/charts [get]
func (h *ReportHandler) Chart(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var q nutrition.ChartQuery
	if !h.BindQuery(c, &q) {
		return
	}
	chart, err := h.reports.Chart(c.Request.Context(), userID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, chart)
}

// StatsOverview godoc
// @Summary      Trailing window statistics
// @Tags         reports
// @Produce      json
// @Param        date query string false "Last day of the window"
// @Param        days query int    false "Window length" default(7)
// @Success      200 {object} APIResponse[nutrition.StatsOverview]
// @Security     BearerAuth
// @Router       /nutrition/stats/overview [get]
func (h *ReportHandler) StatsOverview(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var q nutrition.StatsQuery
	if !h.BindQuery(c, &q) {
		return
	}
	stats, err := h.reports.StatsOverview(c.Request.Context(), userID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
