package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"shiplyne/internal/config"
	"shiplyne/internal/controller"
	"shiplyne/internal/events"
	"shiplyne/internal/fixtures"
	"shiplyne/internal/repo"
	"shiplyne/internal/service"
	"shiplyne/internal/state"
	"shiplyne/pkg/http_server"
	"shiplyne/pkg/logger"
	"shiplyne/pkg/postgres"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func migrateTables(pg *postgres.Postgres, sourceUrl string, databaseName string, log *slog.Logger) error {
	driver, err := pgmigrate.WithInstance(pg.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, databaseName, driver)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	if err := migrations.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no change made by migration scripts")
			return nil
		}
		return err
	}

	return nil
}

// newRepositories reads reference data from postgres when a connection is configured, otherwise from fixtures.
func newRepositories(cfg *config.Config, seed fixtures.Data, log *slog.Logger) (*repo.Repositories, func(), error) {
	if cfg.PostgresConn == "" {
		log.Info("no POSTGRES_CONN set, serving reference data from fixtures")
		return repo.NewFixtureRepositories(seed), func() {}, nil
	}

	log.Info("connecting database")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		return nil, nil, err
	}
	if err := postgresDB.Database.Ping(); err != nil {
		_ = postgresDB.Close()
		return nil, nil, fmt.Errorf("database unreachable: %w", err)
	}

	log.Info("running migrations", slog.String("source", cfg.MigrationsPath))
	if err := migrateTables(postgresDB, cfg.MigrationsPath, cfg.PostgresDatabase, log); err != nil {
		_ = postgresDB.Close()
		return nil, nil, err
	}

	closeDB := func() {
		if err := postgresDB.Close(); err != nil {
			log.Warn("database close failed", slog.String("error", err.Error()))
		}
	}

	return repo.NewRepositories(postgresDB), closeDB, nil
}

func newPublisher(cfg *config.Config, log *slog.Logger) events.Publisher {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		log.Info("no KAFKA_BROKERS set, domain events are dropped")
		return events.NopPublisher{}
	}

	log.Info("publishing domain events", slog.String("topic", cfg.KafkaTopic), slog.Any("brokers", brokers))
	return events.NewKafkaPublisher(brokers, cfg.KafkaTopic, log)
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}

func Run() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("config error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		slog.Error("logger error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seed := fixtures.Seed(time.Now())
	repositories, closeDB, err := newRepositories(cfg, seed, log)
	if err != nil {
		fatal(log, "error occurred while preparing repositories", err)
	}
	defer closeDB()

	store := state.New(state.Snapshot{Routes: seed.Routes, Bids: seed.Bids, Shipments: seed.Shipments})
	unsubscribe := store.Subscribe(func(c state.Change) {
		log.Debug("store changed",
			slog.String("kind", string(c.Kind)),
			slog.Int("routes", len(c.Snapshot.Routes)),
			slog.Int("bids", len(c.Snapshot.Bids)),
			slog.Int("shipments", len(c.Snapshot.Shipments)))
	})
	defer unsubscribe()

	publisher := newPublisher(cfg, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn("publisher close failed", slog.String("error", err.Error()))
		}
	}()

	services := service.NewServices(service.Dependencies{
		Repos:     repositories,
		Store:     store,
		Publisher: publisher,
		Logger:    log,
		Tracking: service.TrackingOptions{
			Mode:            cfg.TrackingMode,
			Interval:        cfg.TrackingInterval,
			ViewIdleTimeout: cfg.ViewIdleTimeout,
		},
	})
	defer services.Shipment.Close()

	handler := echo.New()
	handler.HideBanner = true

	log.Info("setup routes")
	controller.SetupRoutesHandlers(handler, services, log)

	httpServer := http_server.New(handler, cfg.ServerAddress)
	log.Info("ready to process requests",
		slog.String("address", httpServer.Addr()),
		slog.String("tracking_mode", cfg.TrackingMode))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("got signal", slog.String("signal", s.String()))
	case err = <-httpServer.Notify():
		log.Error("server stopped", slog.String("error", err.Error()))
	}

	log.Info("shutting down")
	if err := httpServer.Shutdown(); err != nil {
		log.Error("shutdown error", slog.String("error", err.Error()))
		return
	}
	log.Info("successful shutdown")
}
