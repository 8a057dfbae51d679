package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/publisher/simulated"
	"github.com/cadencehq/cadence/internal/service"
	"github.com/cadencehq/cadence/internal/service/impl"
	"github.com/cadencehq/cadence/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Samples string `long:"samples" env:"SEED_SAMPLES" description:"path to json array of posts, synthetic posts are generated when empty"`
	Count   int    `long:"count" env:"SEED_COUNT" default:"150" description:"number of synthetic posts"`
	Days    int    `long:"days" env:"SEED_DAYS" default:"90" description:"synthetic posts are published within this number of days"`
	Seed    int64  `long:"seed" env:"SEED_RANDOM" default:"0" description:"random seed, 0 means current time"`
	Keep    bool   `long:"keep" description:"do not delete existing posts"`

	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root dbname=cadence sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
}{}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("failed to load .env")
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "seed"
	parser.LongDescription = "Sample posts importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("seed started")

	var posts []*entities.Post
	if opts.Samples != "" {
		if posts, err = readSamples(opts.Samples); err != nil {
			logrus.WithError(err).Fatal("failed to read samples")
		}
	} else {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logrus.Infof("generating %d posts with seed %d", opts.Count, seed)
		posts = generate(rand.New(rand.NewSource(seed)), opts.Count, opts.Days, time.Now().UTC())
	}

	ctx := context.Background()
	s := impl.New(postgres.New(mustGetDB()), simulated.New(0, 1))

	if !opts.Keep {
		n, err := s.DeleteAllPosts(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("failed to clear posts")
		}
		logrus.Infof("%d existing posts deleted", n)
	}

	n, err := s.ImportPosts(ctx, posts)
	if err != nil {
		logrus.WithError(err).Fatal("failed to import posts")
	}
	logrus.Infof("%d posts imported", n)

	o, err := s.GetOverview(ctx, service.Filter{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to get overview")
	}

	platforms, err := s.GetPlatformBreakdown(ctx, service.Filter{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to get platform breakdown")
	}

	logrus.WithFields(logrus.Fields{
		"total_posts":     o.TotalPosts,
		"avg_engagement":  fmt.Sprintf("%.2f", o.AvgEngagement),
		"engagement_rate": o.EngagementRate,
		"platforms":       len(platforms),
	}).Info("done")
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

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
