package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fitforge/webfront/internal/accounts"
	"github.com/fitforge/webfront/internal/auth"
	"github.com/fitforge/webfront/internal/config"
	"github.com/fitforge/webfront/internal/fitapi"
	"github.com/fitforge/webfront/internal/generator"
	"github.com/fitforge/webfront/internal/history"
	"github.com/fitforge/webfront/internal/middleware"
	"github.com/fitforge/webfront/internal/misc"
	"github.com/fitforge/webfront/internal/muscles"
	"github.com/fitforge/webfront/internal/programs"
	"github.com/fitforge/webfront/internal/telemetry/metrics"
	"github.com/fitforge/webfront/internal/telemetry/tracing"
	"github.com/fitforge/webfront/internal/wizard"

	"github.com/coocood/freecache"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const catalogCacheSizeBytes = 10 * 1024 * 1024

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	admin  *auth.Admin

	fitapiClient *fitapi.Client
	catalogCache *freecache.Cache

	// per-session wizard and workout state
	selectionStore *muscles.SelectionStore
	configStore    *wizard.ConfigStore
	workoutStore   *generator.SessionStore

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitforge", "webfront", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitforge-webfront", rdb)
	if err != nil {
		return nil, err
	}

	fitapiClient := fitapi.NewClient(
		params.Config.CoreAPIBaseURL,
		time.Duration(params.Config.CoreAPITimeoutSeconds)*time.Second,
		authService,
		metricsManager,
	)

	wizardTTL := time.Duration(params.Config.WizardStateTTLMinutes) * time.Minute
	selectionStore := muscles.NewSelectionStore(wizardTTL)
	configStore := wizard.NewConfigStore(wizardTTL)
	workoutStore := generator.NewSessionStore(wizardTTL)
	go func() {
		for range time.Tick(time.Minute * 10) {
			selectionStore.ScanAndClean()
			configStore.ScanAndClean()
			workoutStore.ScanAndClean()
		}
	}()

	return &Server{
		config: params.Config,
		admin: &auth.Admin{
			Username:     params.AdminUsername,
			PasswordHash: params.AdminPasswordHash,
		},
		versionInfo: params.VersionInfo,

		fitapiClient: fitapiClient,
		catalogCache: freecache.NewCache(catalogCacheSizeBytes),

		selectionStore: selectionStore,
		configStore:    configStore,
		workoutStore:   workoutStore,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("webfront-router"))

	catalogCacheTTL := time.Duration(s.config.CatalogCacheTTLMinutes) * time.Minute
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	miscHandler := misc.NewHandler(s.versionInfo, s.catalogCache, s.admin)
	miscHandler.SetupRoutes(r)

	accountsHandler := accounts.NewHandler(s.fitapiClient, s.authService)
	accountsHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	musclesHandler := muscles.NewHandler(s.selectionStore, s.fitapiClient, s.catalogCache, catalogCacheTTL)
	r.HandleFunc("/wizard/muscles/toggle", musclesHandler.HandleToggle).Methods("POST", "OPTIONS").Name("muscles-toggle")
	r.HandleFunc("/wizard/muscles/clear", musclesHandler.HandleClear).Methods("POST", "OPTIONS").Name("muscles-clear")
	r.HandleFunc("/wizard/view", musclesHandler.HandleSetView).Methods("POST", "OPTIONS").Name("muscles-view")
	r.HandleFunc("/wizard/presets", musclesHandler.HandlePresets).Methods("GET", "OPTIONS").Name("muscles-presets")
	r.HandleFunc("/wizard/preset/{id}", musclesHandler.HandleApplyPreset).Methods("POST", "OPTIONS").Name("muscles-apply-preset")

	wizardHandler := wizard.NewHandler(s.configStore, s.selectionStore)
	r.HandleFunc("/wizard/state", wizardHandler.HandleState).Methods("GET", "OPTIONS").Name("wizard-state")
	r.HandleFunc("/wizard/intensity", wizardHandler.HandleSetIntensity).Methods("POST", "OPTIONS").Name("wizard-intensity")
	r.HandleFunc("/wizard/goal", wizardHandler.HandleSetGoal).Methods("POST", "OPTIONS").Name("wizard-goal")
	r.HandleFunc("/wizard/duration", wizardHandler.HandleSetDuration).Methods("POST", "OPTIONS").Name("wizard-duration")
	r.HandleFunc("/wizard/setting", wizardHandler.HandleSetSetting).Methods("POST", "OPTIONS").Name("wizard-setting")
	r.HandleFunc("/wizard/reset", wizardHandler.HandleReset).Methods("POST", "OPTIONS").Name("wizard-reset")

	generatorHandler := generator.NewHandler(s.workoutStore, s.selectionStore, s.configStore, s.fitapiClient, s.metricsManager)
	r.HandleFunc("/workout/generate", generatorHandler.HandleGenerate).Methods("POST", "OPTIONS").Name("workout-generate")
	r.HandleFunc("/workout/current", generatorHandler.HandleCurrent).Methods("GET", "OPTIONS").Name("workout-current")
	r.HandleFunc("/workout/save", generatorHandler.HandleSave).Methods("POST", "OPTIONS").Name("workout-save")
	r.HandleFunc("/workout/from-day", generatorHandler.HandleFromDay).Methods("POST", "OPTIONS").Name("workout-from-day")

	historyHandler := history.NewHandler(s.fitapiClient)
	r.HandleFunc("/history", historyHandler.HandleList).Methods("GET", "OPTIONS").Name("history-list")
	r.HandleFunc("/history/{id}", historyHandler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("history-update")

	programsHandler := programs.NewHandler(s.fitapiClient, s.catalogCache, catalogCacheTTL, s.metricsManager)
	r.HandleFunc("/programs", programsHandler.HandleList).Methods("GET", "OPTIONS").Name("programs-list")
	r.HandleFunc("/programs/featured", programsHandler.HandleFeatured).Methods("GET", "OPTIONS").Name("programs-featured")
	r.HandleFunc("/programs/{id}", programsHandler.HandleDetail).Methods("GET", "OPTIONS").Name("programs-detail")
	r.HandleFunc("/programs/{id}/enroll", programsHandler.HandleEnroll).Methods("POST", "OPTIONS").Name("programs-enroll")
	r.HandleFunc("/enrollments", programsHandler.HandleEnrollments).Methods("GET", "OPTIONS").Name("enrollments-list")
	r.HandleFunc("/enrollments/active", programsHandler.HandleActive).Methods("GET", "OPTIONS").Name("enrollments-active")
	r.HandleFunc("/enrollments/{id}/pause", programsHandler.HandlePause).Methods("POST", "OPTIONS").Name("enrollment-pause")
	r.HandleFunc("/enrollments/{id}/resume", programsHandler.HandleResume).Methods("POST", "OPTIONS").Name("enrollment-resume")
	r.HandleFunc("/enrollments/{id}/abandon", programsHandler.HandleAbandon).Methods("POST", "OPTIONS").Name("enrollment-abandon")
	r.HandleFunc("/enrollments/{id}/complete-day", programsHandler.HandleCompleteDay).Methods("POST", "OPTIONS").Name("enrollment-complete-day")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("webfront service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
