package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MouhibAssas/HotelRoomsManagement/config"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/postgres"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/remote"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/roomstore"
	serverhttp "github.com/MouhibAssas/HotelRoomsManagement/internal/server/http"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/service"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/storage"
	httpx "github.com/MouhibAssas/HotelRoomsManagement/internal/transport/http"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/transport/ws"
	"github.com/MouhibAssas/HotelRoomsManagement/pkg/logger"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("logging.level: %v", err)
	}
	backend, err := logger.ParseBackend(cfg.Logging.Backend)
	if err != nil {
		log.Fatalf("logging.backend: %v", err)
	}
	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   backend,
		Level:     level,
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting hotel-rooms",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version, "storage", cfg.Storage.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- tracing (только id для логов, без экспорта) ---
	if cfg.Logging.TraceIDs {
		tp := sdktrace.NewTracerProvider()
		otel.SetTracerProvider(tp)
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	// --- storage ---
	kv, closeKV, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer closeKV()

	// --- store & services ---
	opts := []roomstore.Option{roomstore.WithKey(cfg.Storage.Key)}
	if cfg.Remote.URL != "" {
		opts = append(opts, roomstore.WithFetcher(remote.New(remote.Options{
			BaseURL:    cfg.Remote.URL,
			Timeout:    cfg.Remote.TimeoutOr(),
			RetryCount: cfg.Remote.Retries,
		})))
	}
	store := roomstore.New(kv, opts...)

	roomSvc := service.NewRoomService(store)
	rooms := roomSvc.Initialize(ctx)
	slog.Info("rooms ready", "count", len(rooms), "key", store.Key())

	// --- WS Hub & Server ---
	hub := ws.NewHub()
	roomSvc.SetNotifier(hub)
	wsServer := ws.NewServer(hub, roomSvc)

	// --- HTTP ---
	handler := httpx.NewHandler(roomSvc)
	router := httpx.NewRouter(httpx.RouterConfig{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeoutOr(),
	}, handler, wsServer)

	srv := serverhttp.New(serverhttp.Config{
		Addr:            cfg.HTTP.Addr,
		ReadTimeout:     cfg.HTTP.ReadTimeoutOr(),
		WriteTimeout:    cfg.HTTP.WriteTimeoutOr(),
		IdleTimeout:     cfg.HTTP.IdleTimeoutOr(),
		ShutdownTimeout: cfg.HTTP.ShutdownTimeoutOr(),
	}, router)

	if err := srv.Run(ctx); err != nil {
		slog.Error("server error", "err", err)
		closeKV()
		os.Exit(1)
	}
	slog.Info("stopped")
}

// openStorage выбирает бекенд слота по конфигу. close освобождает соединения.
func openStorage(ctx context.Context, cfg config.Storage) (storage.KV, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.BackendMemory:
		return storage.NewMemoryKV(), noop, nil

	case config.BackendFile:
		kv, err := storage.NewFileKV(cfg.File.Dir)
		if err != nil {
			return nil, noop, err
		}
		return kv, noop, nil

	case config.BackendRedis:
		client := storage.NewRedisClient(storage.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv := storage.NewRedisKV(client)
		if err := kv.Ping(ctx); err != nil {
			// хранилище может подняться позже, чтение уйдёт в fallback
			slog.Warn("redis unavailable at start", "addr", cfg.Redis.Addr, "err", err)
		}
		return kv, func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		db, err := postgres.New(ctx, postgres.Config{
			DSN:               cfg.Postgres.DSN,
			MaxConns:          cfg.Postgres.MaxConns,
			MinConns:          cfg.Postgres.MinConns,
			MaxConnLifetime:   cfg.Postgres.MaxConnLifetimeOr(),
			MaxConnIdleTime:   cfg.Postgres.MaxConnIdleTimeOr(),
			HealthCheckPeriod: cfg.Postgres.HealthCheckOr(),
			ApplicationName:   cfg.Postgres.ApplicationName,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: %w", err)
		}
		repo := postgres.NewSlotRepository(db.Pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("postgres schema: %w", err)
		}
		return repo, db.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
