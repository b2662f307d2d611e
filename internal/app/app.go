package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/mobac1989/buildots-seating/internal/catalog"
	"github.com/mobac1989/buildots-seating/internal/config"
	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/handler"
	"github.com/mobac1989/buildots-seating/internal/metrics"
	"github.com/mobac1989/buildots-seating/internal/middleware"
	"github.com/mobac1989/buildots-seating/internal/notification"
	"github.com/mobac1989/buildots-seating/internal/router"
	"github.com/mobac1989/buildots-seating/internal/scheduler"
	"github.com/mobac1989/buildots-seating/internal/service"
	"github.com/mobac1989/buildots-seating/internal/service/ports"
	"github.com/mobac1989/buildots-seating/internal/snapshot"
	"github.com/mobac1989/buildots-seating/internal/store"
	"github.com/mobac1989/buildots-seating/internal/week"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	rdb        *redis.Client
	records    ports.RecordStore
	hub        *snapshot.Hub
	metrics    *metrics.Metrics
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"seating",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStore() error {
	switch a.cfg.Store.Backend {
	case "redis":
		return a.initRedis()
	default:
		return a.initPostgres()
	}
}

func (a *App) initPostgres() error {
	if err := a.runMigrations(); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.records = store.NewPostgresStore(db, a.cfg.Postgres.DSN(), a.log)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "postgres store connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.rdb = client
	a.records = store.NewRedisStore(client, a.log)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis store connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load seat catalog: %w", err)
	}

	loc, err := time.LoadLocation(a.cfg.Policy.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}
	policy := week.New(
		time.Weekday(a.cfg.Policy.LockWeekday),
		a.cfg.Policy.LockHour,
		a.cfg.Policy.ActiveStartHour,
		loc,
	)

	a.metrics = metrics.New(prometheus.DefaultRegisterer)
	a.hub = snapshot.NewHub()

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	resolver := service.NewResolver(cat)
	booking := service.NewBookingEngine(a.records, cat, resolver, n, a.metrics, a.log)
	relocation := service.NewRelocationWorkflow(a.records, resolver, n, a.metrics, a.log)

	a.scheduler = scheduler.New(
		booking,
		policy,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(cat, a.hub, resolver, booking, relocation, policy, nil)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		a.cfg.Admin.Passphrase,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	updates, err := a.records.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch store: %w", err)
	}

	go a.hub.Run(ctx, a.countPushes(ctx, updates))
	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

// countPushes forwards store snapshots to the hub while counting them.
func (a *App) countPushes(ctx context.Context, in <-chan domain.Snapshot) <-chan domain.Snapshot {
	out := make(chan domain.Snapshot)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-in:
				if !ok {
					return
				}
				a.metrics.SnapshotPush()
				select {
				case <-ctx.Done():
					return
				case out <- snap:
				}
			}
		}
	}()
	return out
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "store connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
