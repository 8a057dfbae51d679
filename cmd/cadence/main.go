package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Decentr-net/logrus/sentry"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cadencehq/cadence/internal/health"
	"github.com/cadencehq/cadence/internal/insights"
	"github.com/cadencehq/cadence/internal/insights/gemini"
	"github.com/cadencehq/cadence/internal/insights/redis"
	mm "github.com/cadencehq/cadence/internal/middleware"
	"github.com/cadencehq/cadence/internal/publisher"
	"github.com/cadencehq/cadence/internal/publisher/scheduler"
	"github.com/cadencehq/cadence/internal/publisher/simulated"
	"github.com/cadencehq/cadence/internal/server"
	"github.com/cadencehq/cadence/internal/service/impl"
	"github.com/cadencehq/cadence/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"5000" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"60s" description:"request processing timeout"`
	MaxBodySize    int64         `long:"http.max-body-size" env:"HTTP_MAX_BODY_SIZE" default:"10485760" description:"max request body size"`
	AllowedOrigins []string      `long:"http.allowed-origin" env:"HTTP_ALLOWED_ORIGINS" env-delim:"," default:"http://localhost:5173" description:"CORS allowed origins"`

	APIRateLimit  int           `long:"ratelimit.api" env:"RATE_LIMIT_API" default:"100" description:"requests per window per IP to /api, 0 disables"`
	APIRateWindow time.Duration `long:"ratelimit.api-window" env:"RATE_LIMIT_API_WINDOW" default:"15m" description:"api rate limit window"`
	AIRateLimit   int           `long:"ratelimit.ai" env:"RATE_LIMIT_AI" default:"10" description:"requests per window per IP to /api/ai, 0 disables"`
	AIRateWindow  time.Duration `long:"ratelimit.ai-window" env:"RATE_LIMIT_AI_WINDOW" default:"1m" description:"ai rate limit window"`

	AnalyticsCacheTTL time.Duration `long:"analytics.cache-ttl" env:"ANALYTICS_CACHE_TTL" default:"0s" description:"analytics responses cache ttl, 0 disables, posts writes purge it"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root dbname=cadence sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	Redis string `long:"redis" env:"REDIS_URL" default:"redis://localhost:6379/0" description:"redis url of ai responses cache"`

	GeminiAPIKey string `long:"gemini.api-key" env:"GEMINI_API_KEY" description:"gemini api key, ai endpoints are disabled when empty"`
	GeminiModel  string `long:"gemini.model" env:"GEMINI_MODEL" default:"gemini-2.0-flash" description:"gemini model"`

	PublishSchedule    string        `long:"publisher.schedule" env:"PUBLISHER_SCHEDULE" default:"* * * * *" description:"cron schedule of due content publishing"`
	PublishDelay       time.Duration `long:"publisher.delay" env:"PUBLISHER_DELAY" default:"500ms" description:"simulated platform api latency"`
	PublishSuccessRate float64       `long:"publisher.success-rate" env:"PUBLISHER_SUCCESS_RATE" default:"0.95" description:"simulated platform api success rate"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

// nolint: gocyclo
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("failed to load .env")
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Cadence"
	parser.LongDescription = "Cadence content scheduling and engagement analytics service"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "cadence",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	db := mustGetDB()
	st := postgres.New(db)

	p := publisher.WithMetrics(simulated.New(opts.PublishDelay, opts.PublishSuccessRate), reg)
	s := impl.New(st, p)

	sch, err := scheduler.New(opts.PublishSchedule, s)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create scheduler")
	}

	pingers := []health.Pinger{
		health.SubjectPinger("postgres", st.Ping),
		sch,
	}

	var a insights.Assistant
	if opts.GeminiAPIKey != "" {
		cache := mustGetCache(ctx)
		pingers = append(pingers, health.SubjectPinger("redis", cache.Ping))

		g, err := gemini.New(ctx, opts.GeminiAPIKey, opts.GeminiModel)
		if err != nil {
			logrus.WithError(err).Fatal("failed to create gemini client")
		}

		a = insights.New(g, cache, st, insights.DefaultTTLs)
	} else {
		logrus.Warn("empty gemini api key, ai endpoints are disabled")
	}

	r := chi.NewMux()
	r.Use(mm.Metrics(reg))

	server.SetupRouter(s, a, r, server.Options{
		Timeout:           opts.RequestTimeout,
		MaxBodySize:       opts.MaxBodySize,
		AllowedOrigins:    opts.AllowedOrigins,
		AnalyticsCacheTTL: opts.AnalyticsCacheTTL,
		APIRateLimit:      opts.APIRateLimit,
		APIRateWindow:     opts.APIRateWindow,
		AIRateLimit:       opts.AIRateLimit,
		AIRateWindow:      opts.AIRateWindow,
	})
	r.Get("/health", health.Handler(5*time.Second, pingers...))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := http.Server{
		Addr:              fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	gr, gctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return sch.Run(gctx)
	})
	gr.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-gctx.Done():
		}

		sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer scancel()

		if err := srv.Shutdown(sctx); err != nil {
			logrus.WithError(err).Error("failed to shutdown http server")
		}

		cancel()

		return errTerminated
	})

	logrus.Infof("listening on %s", srv.Addr)

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

func mustGetCache(ctx context.Context) *redis.Cache {
	c, err := redis.Connect(ctx, opts.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to redis")
	}

	return redis.New(c)
}
