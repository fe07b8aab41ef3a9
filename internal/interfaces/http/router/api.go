package router

import (
	"github.com/gin-gonic/gin"
	"github.com/nutritrack/backend/internal/infrastructure/auth"
	"github.com/nutritrack/backend/internal/infrastructure/config"
	"github.com/nutritrack/backend/internal/infrastructure/logger"
	"github.com/nutritrack/backend/internal/interfaces/http/handler"
	"github.com/nutritrack/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const wsPath = "/ws"

// Handlers are the endpoint groups mounted by New
type Handlers struct {
	Auth       *handler.AuthHandler
	Nutrition  *handler.NutritionHandler
	Reports    *handler.ReportHandler
	Goals      *handler.GoalHandler
	Foods      *handler.FoodHandler
	Activities *handler.ActivityHandler
	Admin      *handler.AdminHandler
	WebSocket  *handler.WebSocketHandler
	Health     *handler.HealthHandler
}

// Options configure the middleware chain. Zero values disable the optional
// parts: no limiter means no rate limiting, no meter means no HTTP metrics.
type Options struct {
	Logger           *zap.Logger
	ServiceName      string
	TracingEnabled   bool
	ProfilingEnabled bool
	Meter            metric.Meter
	CORS             middleware.CORSConfig
	Security         middleware.SecurityConfig
	MaxBodyBytes     int64
	RateLimiter      *middleware.RateLimiter
	Tokens           middleware.AccessTokenValidator
	Blacklist        auth.TokenBlacklist
	Swagger          config.SwaggerConfig
}

// New builds the engine with the full middleware chain and every route.
// Access is decided per group: public groups run the rate limiter only,
// member groups authenticate first, admin groups also require the admin role.
func New(h Handlers, opts Options) (*gin.Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	metrics, err := middleware.HTTPMetrics(opts.Meter)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.Tracing(opts.ServiceName, opts.TracingEnabled),
		metrics,
		middleware.Secure(opts.Security),
		middleware.CORS(opts.CORS),
		middleware.BodyLimit(opts.MaxBodyBytes),
	)

	r := NewRouter(engine, WithAPIVersion("v1"))
	authenticate := middleware.JWTAuth(middleware.JWTConfig{
		Tokens:          opts.Tokens,
		Blacklist:       opts.Blacklist,
		QueryTokenPaths: []string{r.Prefix() + wsPath},
		Logger:          log,
	})

	limit := func(c *gin.Context) { c.Next() }
	if opts.RateLimiter != nil {
		limit = middleware.RateLimit(opts.RateLimiter)
	}
	profile := middleware.Profiling(opts.ProfilingEnabled)

	public := []gin.HandlerFunc{limit, profile}
	member := []gin.HandlerFunc{authenticate, middleware.SpanEnricher(), limit, profile}
	admin := append(append([]gin.HandlerFunc{}, member...), middleware.RequireRole("admin"))

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(opts.Swagger, authenticate),
		ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Register(
		systemRoutes(h, public),
		authRoutes(h, public, member),
		nutritionRoutes(h, member),
		goalRoutes(h, member),
		foodRoutes(h, public, member, admin),
		activityRoutes(h, member),
		adminRoutes(h, admin),
		realtimeRoutes(h, member),
	)
	r.Setup()
	return engine, nil
}

func systemRoutes(h Handlers, public []gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("system", "")
	g.Group("public", "").Use(public...).
		GET("/health", h.Health.Health).
		GET("/ping", h.Health.Ping)
	return g
}

func authRoutes(h Handlers, public, member []gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("auth", "/auth")
	g.Group("public", "").Use(public...).
		POST("/register", h.Auth.Register).
		POST("/login", h.Auth.Login).
		POST("/refresh", h.Auth.Refresh)
	g.Group("member", "").Use(member...).
		POST("/logout", h.Auth.Logout).
		GET("/me", h.Auth.Me)
	return g
}

func nutritionRoutes(h Handlers, member []gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("nutrition", "/nutrition").Use(member...)
	g.GET("", h.Nutrition.List).
		POST("", h.Nutrition.Create).
		GET("/:id", h.Nutrition.Get).
		PUT("/:id", h.Nutrition.Update).
		DELETE("/:id", h.Nutrition.Delete)
	g.GET("/summary/daily", h.Reports.DailySummary).
		POST("/summary/daily/recompute", h.Reports.RecomputeDaily).
		GET("/goals/progress", h.Reports.GoalsProgress).
		GET("/stats/overview", h.Reports.StatsOverview).
		GET("/reports", h.Reports.Report).
		GET("/reports/pdf", h.Reports.ReportPDF).
		GET("/charts", h.Reports.Chart)
	return g
}

func goalRoutes(h Handlers, member []gin.HandlerFunc) *DomainGroup {
	return NewDomainGroup("goals", "/goals").Use(member...).
		GET("", h.Goals.Get).
		PUT("", h.Goals.Set)
}

func foodRoutes(h Handlers, public, member, admin []gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("foods", "/foods")
	g.Group("public", "").Use(public...).
		GET("/search", h.Foods.Search).
		GET("/popular", h.Foods.Popular).
		GET("/categories", h.Foods.Categories).
		GET("/:id", h.Foods.Get)
	g.Group("member", "").Use(member...).
		GET("", h.Foods.List)
	g.Group("admin", "").Use(admin...).
		POST("", h.Foods.Create).
		PUT("/:id", h.Foods.Update).
		DELETE("/:id", h.Foods.Delete).
		PATCH("/:id/verify", h.Foods.Verify)
	return g
}

func activityRoutes(h Handlers, member []gin.HandlerFunc) *DomainGroup {
	return NewDomainGroup("activities", "/activities").Use(member...).
		GET("", h.Activities.List)
}

func adminRoutes(h Handlers, admin []gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("admin", "/admin").Use(admin...)
	g.Group("users", "/users").
		GET("", h.Admin.ListUsers).
		GET("/:id", h.Admin.GetUser).
		PUT("/:id", h.Admin.UpdateUser).
		DELETE("/:id", h.Admin.DeleteUser).
		PUT("/:id/goals", h.Admin.SetUserGoal)
	g.GET("/stats/system", h.Admin.SystemStats).
		GET("/analytics/users", h.Admin.UserAnalytics).
		GET("/analytics/nutrition", h.Admin.NutritionAnalytics).
		GET("/analytics/foods", h.Admin.FoodAnalytics).
		GET("/export/users", h.Admin.ExportUsers)
	return g
}

func realtimeRoutes(h Handlers, member []gin.HandlerFunc) *DomainGroup {
	return NewDomainGroup("realtime", "").Use(member...).
		GET(wsPath, h.WebSocket.Connect)
}
