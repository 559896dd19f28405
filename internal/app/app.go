package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "padcalc/internal/api/http"
	"padcalc/internal/api/http/controllers/keypad"
	"padcalc/internal/api/http/controllers/system"
	"padcalc/internal/infrastructure/click"
	"padcalc/internal/infrastructure/kafka"
	"padcalc/internal/infrastructure/mongo"
	"padcalc/internal/infrastructure/pg"
	"padcalc/internal/infrastructure/redis"
	"padcalc/internal/pkg/logger"
	"padcalc/internal/ports"
	sessionUsecase "padcalc/internal/usecase/session"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилище, Redis, Kafka и ClickHouse, инициализирует
// зависимости, запускает консьюмера и HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := a.repository(ctx, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()
	analytics := click.NewCalculationWriter(ch)
	if err := analytics.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	cache := redis.NewCache(rdb, log)
	uc := sessionUsecase.New(repo, cache, producer, analytics, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, log),
		keypad.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "storage", a.cfg.Storage)

	return srv.Start(ctx)
}

// repository выбирает реализацию хранилища истории по конфигу
// (PADCALC_STORAGE: postgres или mongo).
func (a *App) repository(ctx context.Context, log *slog.Logger) (ports.ISessionRepository, func(), error) {
	switch a.cfg.Storage {
	case StorageMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		closeFn := func() { _ = cli.Disconnect(context.Background()) }
		return mongo.NewSessionRepo(cli, log), closeFn, nil
	case StoragePostgres:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewSessionRepo(db, log), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", a.cfg.Storage)
	}
}
