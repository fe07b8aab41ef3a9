package integration

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	activityapp "github.com/nutritrack/backend/internal/application/activity"
	adminapp "github.com/nutritrack/backend/internal/application/admin"
	catalogapp "github.com/nutritrack/backend/internal/application/catalog"
	identityapp "github.com/nutritrack/backend/internal/application/identity"
	nutritionapp "github.com/nutritrack/backend/internal/application/nutrition"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/nutritrack/backend/internal/infrastructure/auth"
	"github.com/nutritrack/backend/internal/infrastructure/cache"
	"github.com/nutritrack/backend/internal/infrastructure/config"
	"github.com/nutritrack/backend/internal/infrastructure/event"
	"github.com/nutritrack/backend/internal/infrastructure/persistence"
	"github.com/nutritrack/backend/internal/infrastructure/realtime"
	"github.com/nutritrack/backend/internal/interfaces/http/handler"
	"github.com/nutritrack/backend/internal/interfaces/http/middleware"
	"github.com/nutritrack/backend/internal/interfaces/http/router"
	"github.com/nutritrack/backend/tests/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

// testServer is the full API over a real database
type testServer struct {
	DB        *TestDB
	Client    *testutil.APIClient
	Events    *testutil.RecordingHandler
	Hub       *realtime.Hub
	Summaries *persistence.GormSummaryRepository
	Engine    *nutritionapp.RollupEngine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	tdb := NewTestDB(t)
	log := zap.NewNop()

	userRepo := persistence.NewGormUserRepository(tdb.DB)
	foodRepo := persistence.NewGormFoodRepository(tdb.DB)
	entryRepo := persistence.NewGormEntryRepository(tdb.DB)
	goalRepo := persistence.NewGormGoalRepository(tdb.DB)
	summaryRepo := persistence.NewGormSummaryRepository(tdb.DB)
	activityRepo := persistence.NewGormActivityRepository(tdb.DB)
	analyticsRepo := persistence.NewGormAnalyticsRepository(tdb.DB)

	blacklist := auth.NewInMemoryTokenBlacklist()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "integration-access-secret-0123456789abcdef",
		RefreshSecret:          "integration-refresh-secret-0123456789abcdef",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "nutritrack-test",
	})

	store := cache.NewInMemoryIdempotencyStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	bus := event.NewInMemoryEventBus(log)
	hub := realtime.NewHub(config.RealtimeConfig{PingInterval: time.Minute, WriteTimeout: time.Second}, log)
	t.Cleanup(hub.Close)

	recorder := activityapp.NewRecorder(activityRepo, log)
	bus.Subscribe(event.NewIdempotentHandler(recorder, store, shared.IdempotencyConfig{Enabled: true, TTL: time.Hour}, log), recorder.EventTypes()...)
	bus.Subscribe(nutritionapp.NewSummaryNotifier(hub, time.UTC))
	events := testutil.NewRecordingHandler(
		nutrition.EventTypeEntryAdded,
		nutrition.EventTypeEntryUpdated,
		nutrition.EventTypeEntryDeleted,
		nutrition.EventTypeSummaryRecomputed,
	)
	bus.Subscribe(events)

	engine := nutritionapp.NewRollupEngine(entryRepo, goalRepo, summaryRepo, log,
		nutritionapp.WithPublisher(bus),
		nutritionapp.WithLocation(time.UTC),
	)
	goalService := nutritionapp.NewGoalService(goalRepo, bus, log)

	api, err := router.New(router.Handlers{
		Auth:       handler.NewAuthHandler(identityapp.NewAuthService(userRepo, jwtService, blacklist, bus, log)),
		Nutrition:  handler.NewNutritionHandler(nutritionapp.NewEntryService(entryRepo, engine, foodRepo, bus, nil, log)),
		Reports:    handler.NewReportHandler(nutritionapp.NewReportService(entryRepo, summaryRepo, engine, nil)),
		Goals:      handler.NewGoalHandler(goalService),
		Foods:      handler.NewFoodHandler(catalogapp.NewFoodService(foodRepo, bus, log)),
		Activities: handler.NewActivityHandler(activityapp.NewService(activityRepo)),
		Admin: handler.NewAdminHandler(
			identityapp.NewUserService(userRepo, blacklist, bus, log, time.Hour),
			goalService,
			adminapp.NewAnalyticsService(userRepo, foodRepo, activityRepo, analyticsRepo, log),
		),
		WebSocket: handler.NewWebSocketHandler(hub),
		Health:    handler.NewHealthHandler(&persistence.Database{DB: tdb.DB}, nil, "test"),
	}, router.Options{
		Logger:    log,
		Tokens:    jwtService,
		Blacklist: blacklist,
		Security:  middleware.DefaultSecurityConfig(),
	})
	require.NoError(t, err)

	return &testServer{
		DB:        tdb,
		Client:    testutil.NewAPIClient(t, api),
		Events:    events,
		Hub:       hub,
		Summaries: summaryRepo,
		Engine:    engine,
	}
}

type session struct {
	UserID string
	Token  string
	Client *testutil.APIClient
}

// register signs up a fresh account and returns an authenticated client
func (s *testServer) register(t *testing.T, username string) session {
	t.Helper()
	env := s.Client.JSON(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "correct-horse-battery",
	}, http.StatusCreated)
	resp := testutil.DecodeData[identityapp.AuthResponse](t, env)
	return session{
		UserID: resp.User.ID.String(),
		Token:  resp.Tokens.AccessToken,
		Client: s.Client.WithToken(resp.Tokens.AccessToken),
	}
}

// login signs in again, picking up role changes made behind the API
func (s *testServer) login(t *testing.T, username string) session {
	t.Helper()
	env := s.Client.JSON(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    username + "@example.com",
		"password": "correct-horse-battery",
	}, http.StatusOK)
	resp := testutil.DecodeData[identityapp.AuthResponse](t, env)
	return session{
		UserID: resp.User.ID.String(),
		Token:  resp.Tokens.AccessToken,
		Client: s.Client.WithToken(resp.Tokens.AccessToken),
	}
}
