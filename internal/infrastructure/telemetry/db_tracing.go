package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig controls database spans.
type DBTracingConfig struct {
	Enabled            bool
	LogFullSQL         bool
	SlowQueryThreshold time.Duration
}

type queryStartKey struct{}

// RegisterDBTracing installs otelgorm plus callbacks that annotate each span
// with rows affected and a slow_query flag.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName("postgresql")}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	threshold := cfg.SlowQueryThreshold
	if threshold <= 0 {
		threshold = 200 * time.Millisecond
	}
	before := func(tx *gorm.DB) {
		if tx.Statement.Context != nil {
			tx.Statement.Context = context.WithValue(tx.Statement.Context, queryStartKey{}, time.Now())
		}
	}
	after := func(tx *gorm.DB) { annotateQuerySpan(tx, threshold) }

	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register("nutri_trace:before_create", before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("nutri_trace:after_create", after); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("nutri_trace:before_query", before); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("nutri_trace:after_query", after); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("nutri_trace:before_update", before); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("nutri_trace:after_update", after); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("nutri_trace:before_delete", before); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("nutri_trace:after_delete", after); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("nutri_trace:before_raw", before); err != nil {
		return err
	}
	if err := cb.Raw().After("gorm:raw").Register("nutri_trace:after_raw", after); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", threshold),
	)
	return nil
}

func annotateQuerySpan(tx *gorm.DB, threshold time.Duration) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", tx.Statement.RowsAffected))
	if tx.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", tx.Statement.Table))
	}
	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, tx.Error.Error())
		span.RecordError(tx.Error)
	}
	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		if elapsed := time.Since(start); elapsed > threshold {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
