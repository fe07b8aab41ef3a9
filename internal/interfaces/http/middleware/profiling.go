package middleware

import (
	"context"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nutritrack/backend/internal/infrastructure/telemetry"
)

// Profiling runs each request under pyroscope labels for its route, method
// and handler so CPU profiles can be sliced per endpoint.
func Profiling(enabled bool, skipPaths ...string) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" || slices.Contains(skipPaths, route) {
			c.Next()
			return
		}
		labels := map[string]string{
			telemetry.ProfilingLabelRoute:   route,
			telemetry.ProfilingLabelMethod:  c.Request.Method,
			telemetry.ProfilingLabelHandler: handlerName(c),
		}
		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

// handlerName shortens "github.com/x/handler.(*FoodHandler).List-fm" to "FoodHandler.List"
func handlerName(c *gin.Context) string {
	name := c.HandlerName()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if _, rest, ok := strings.Cut(name, "."); ok {
		name = rest
	}
	name = strings.NewReplacer("(", "", ")", "", "*", "").Replace(name)
	return strings.TrimSuffix(name, "-fm")
}
