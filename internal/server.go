package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/befit/internal/command"
	"github.com/2beens/befit/internal/config"
	"github.com/2beens/befit/internal/dashboard"
	"github.com/2beens/befit/internal/db"
	"github.com/2beens/befit/internal/diet"
	"github.com/2beens/befit/internal/landing"
	"github.com/2beens/befit/internal/middleware"
	"github.com/2beens/befit/internal/profile"
	"github.com/2beens/befit/internal/realtime"
	"github.com/2beens/befit/internal/sample"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/social"
	"github.com/2beens/befit/internal/telemetry/metrics"
	"github.com/2beens/befit/internal/telemetry/tracing"
	"github.com/2beens/befit/internal/theme"
	"github.com/2beens/befit/internal/weight"
	"github.com/2beens/befit/internal/workouts"
	"github.com/2beens/befit/pkg"
)

type foodRepo interface {
	Add(ctx context.Context, entry *diet.FoodEntry) (*diet.FoodEntry, error)
	List(ctx context.Context, from, to time.Time) ([]diet.FoodEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type weightRepo interface {
	Add(ctx context.Context, sample *weight.Sample) (*weight.Sample, error)
	List(ctx context.Context, from, to time.Time) ([]weight.Sample, error)
	Latest(ctx context.Context) (*weight.Sample, error)
}

type modeStore interface {
	Mode(ctx context.Context) (screen.Mode, error)
	SetMode(ctx context.Context, mode screen.Mode) error
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	sqliteDB    *sql.DB
	redisClient *redis.Client
	hub         *realtime.Hub
	now         func() time.Time

	foodRepo   foodRepo
	weightRepo weightRepo

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
	OtelServiceName         string
	// Now is used by every time dependent component, defaults to time.Now.
	Now func() time.Time
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		now:         params.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	var extraCollectors []prometheus.Collector
	switch cfg.Storage {
	case config.StoragePostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		if err := db.EnsurePostgresSchema(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, err
		}
		s.dbPool = dbPool
		s.foodRepo = diet.NewPsqlRepo(dbPool)
		s.weightRepo = weight.NewPsqlRepo(dbPool)
		extraCollectors = append(extraCollectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	case config.StorageSqlite:
		sqliteDB, err := db.OpenSqlite(cfg.SqlitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		s.sqliteDB = sqliteDB
		s.foodRepo = diet.NewSqliteRepo(sqliteDB)
		s.weightRepo = weight.NewSqliteRepo(sqliteDB)
	default:
		s.foodRepo = diet.NewMemoryRepo()
		s.weightRepo = weight.NewMemoryRepo()
	}
	log.Infof("using [%s] storage", cfg.Storage)

	s.promRegistry = metrics.SetupPrometheus(extraCollectors...)
	s.metricsManager = metrics.NewManager("befit", "backend", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)

	if cfg.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if params.HoneycombTracingEnabled {
			rdb.AddHook(redisotel.NewTracingHook())
		}
		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
		s.redisClient = rdb
	}

	serviceName := params.OtelServiceName
	if serviceName == "" {
		serviceName = "befit-backend"
	}
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName)
	if err != nil {
		return nil, multierr.Append(err, s.closeStores())
	}
	s.otelShutdown = otelShutdown

	if cfg.SeedSampleData {
		seeded, err := sample.SeedIfEmpty(ctx, s.foodRepo, s.weightRepo, s.now())
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("seed sample data: %w", err), s.closeStores())
		}
		log.Debugf("sample data seeded: %t", seeded)
	}

	s.hub = realtime.NewHub(s.metricsManager)

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("befit-router"))

	cfg := s.config
	assets := screen.Assets{}

	var themeStore modeStore = theme.NewMemoryStore(screen.DefaultMode)
	if s.redisClient != nil {
		themeStore = theme.NewRedisStore(s.redisClient)
	}
	themeService := theme.NewService(themeStore, s.hub, s.metricsManager)
	framer := theme.NewFramer(themeService, cfg.User.FirstName(), s.now)

	dietService := diet.NewService(diet.ServiceParams{
		Repo: s.foodRepo,
		Goals: diet.Goals{
			Calories: cfg.DietGoals.Calories,
			CarbsG:   cfg.DietGoals.CarbsG,
			ProteinG: cfg.DietGoals.ProteinG,
			FatG:     cfg.DietGoals.FatG,
		},
		Publisher:      s.hub,
		MetricsManager: s.metricsManager,
		Location:       cfg.Location(),
		Now:            s.now,
	})
	weightService := weight.NewService(weight.ServiceParams{
		Repo:           s.weightRepo,
		TrendDays:      cfg.WeightTrendDays,
		Publisher:      s.hub,
		MetricsManager: s.metricsManager,
		Location:       cfg.Location(),
		Now:            s.now,
	})
	workoutsService := workouts.NewService(
		workouts.NewDefaultCatalog(),
		workouts.NewSessionStore(s.metricsManager),
		s.hub,
		s.metricsManager,
		s.now,
	)
	profileService := profile.NewService(
		profile.Identity{Name: cfg.User.Name, Email: cfg.User.Email},
		themeService,
		s.hub,
	)

	var feed *social.Catalog
	if cfg.SeedSampleData {
		feed = social.NewCatalog(sample.SocialPosts(s.now()), assets)
	} else {
		feed = social.NewCatalog(nil, assets)
	}

	dashboardCache := dashboard.NewCache(cfg.DashboardCacheTTL(), s.metricsManager)
	if dashboardCache.Enabled() {
		s.hub.Subscribe(dashboardCache.OnEvent)
	}

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")

	landingHandler := landing.NewHandler(framer, assets)
	r.HandleFunc("/screens/landing", landingHandler.HandleScreen).Methods("GET", "OPTIONS").Name("screen-landing")

	dashboardHandler := dashboard.NewHandler(
		dashboard.NewService(weightService, dietService, workoutsService, feed, s.now),
		framer,
		dashboardCache,
	)
	r.HandleFunc("/screens/dashboard", dashboardHandler.HandleScreen).Methods("GET", "OPTIONS").Name("screen-dashboard")

	dietHandler := diet.NewHandler(dietService, framer)
	r.HandleFunc("/screens/diet", dietHandler.HandleScreen).Methods("GET", "OPTIONS").Name("screen-diet")
	r.HandleFunc("/diet/entries", dietHandler.HandleList).Methods("GET", "OPTIONS").Name("list-food-entries")
	r.HandleFunc("/diet/entries", dietHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-food-entry")
	r.HandleFunc("/diet/entries/{id}", dietHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-food-entry")

	weightHandler := weight.NewHandler(weightService, framer)
	r.HandleFunc("/screens/weight", weightHandler.HandleScreen).Methods("GET", "OPTIONS").Name("screen-weight")
	r.HandleFunc("/weight/entries", weightHandler.HandleList).Methods("GET", "OPTIONS").Name("list-weight-samples")
	r.HandleFunc("/weight/entries", weightHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-weight-sample")

	workoutsHandler := workouts.NewHandler(workoutsService, framer)
	r.HandleFunc("/screens/workouts", workoutsHandler.HandleOverview).Methods("GET", "OPTIONS").Name("screen-workouts")
	r.HandleFunc("/screens/workouts/{id}", workoutsHandler.HandleWorkout).Methods("GET", "OPTIONS").Name("screen-workout")
	r.HandleFunc("/workouts/{id}/sessions", workoutsHandler.HandleStartSession).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/workouts/sessions/{sid}", workoutsHandler.HandleSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/workouts/sessions/{sid}", workoutsHandler.HandleDismiss).Methods("DELETE", "OPTIONS").Name("dismiss-session")
	r.HandleFunc("/workouts/sessions/{sid}/exercises/{exid}/toggle", workoutsHandler.HandleToggle).Methods("POST", "OPTIONS").Name("toggle-exercise")
	r.HandleFunc("/workouts/sessions/{sid}/finish", workoutsHandler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-session")

	profileHandler := profile.NewHandler(profileService, framer)
	r.HandleFunc("/screens/profile", profileHandler.HandleScreen).Methods("GET", "OPTIONS").Name("screen-profile")
	r.HandleFunc("/profile/settings", profileHandler.HandleUpdateSettings).Methods("PUT", "OPTIONS").Name("update-settings")

	themeHandler := theme.NewHandler(themeService)
	r.HandleFunc("/theme", themeHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-theme")
	r.HandleFunc("/theme", themeHandler.HandleSet).Methods("PUT", "OPTIONS").Name("set-theme")
	r.HandleFunc("/theme/toggle", themeHandler.HandleToggle).Methods("POST", "OPTIONS").Name("toggle-theme")

	commandHandler := command.NewHandler(command.NewDispatcher(
		dietService,
		weightService,
		workoutsService,
		themeService,
		s.metricsManager,
	))
	commandsRouter := r.PathPrefix("/commands").Subrouter()
	commandsRouter.HandleFunc("", commandHandler.HandleList).Methods("GET", "OPTIONS").Name("list-commands")
	commandsRouter.HandleFunc("/{name}", commandHandler.HandleDispatch).Methods("POST", "OPTIONS").Name("dispatch-command")
	if s.redisClient != nil {
		commandsRouter.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"commands",
			cfg.CommandRateLimitPerMin,
			s.metricsManager,
		))
	}

	realtimeHandler := realtime.NewHandler(s.hub, cfg.AllowedOrigins)
	r.HandleFunc("/ws", realtimeHandler.HandleWS).Methods("GET").Name("realtime")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(cfg.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, fmt.Sprintf("BeFit backend %s", s.versionInfo))
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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
			log.Fatalf("main service, listen and serve: %s", err)
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop accepting requests first, stores are closed afterwards
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.hub.Close()
	log.Trace("realtime hub closed ...")

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if err := s.closeStores(); err != nil {
		log.Errorf("close stores: %s", err)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) closeStores() error {
	var err error
	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}
	if s.sqliteDB != nil {
		err = multierr.Append(err, s.sqliteDB.Close())
	}
	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
	return err
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	}
}
