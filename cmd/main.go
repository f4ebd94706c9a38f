package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/grpc/health"

	grpcrouter "github.com/dtroode/medsetu-storefront/internal/api/grpc/router"
	grpcserver "github.com/dtroode/medsetu-storefront/internal/api/grpc/server"
	httpctx "github.com/dtroode/medsetu-storefront/internal/api/http/context"
	"github.com/dtroode/medsetu-storefront/internal/api/http/middleware"
	httprouter "github.com/dtroode/medsetu-storefront/internal/api/http/router"
	httpserver "github.com/dtroode/medsetu-storefront/internal/api/http/server"
	"github.com/dtroode/medsetu-storefront/internal/backend"
	"github.com/dtroode/medsetu-storefront/internal/config"
	healthmon "github.com/dtroode/medsetu-storefront/internal/health"
	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/server"
	"github.com/dtroode/medsetu-storefront/internal/storage/memory"
	storage "github.com/dtroode/medsetu-storefront/internal/storage/minio"
	"github.com/dtroode/medsetu-storefront/internal/storage/postgres"
	"github.com/dtroode/medsetu-storefront/internal/storage/redis"
	"github.com/dtroode/medsetu-storefront/internal/workspace"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	durablePrefix = "storefront:durable:"
	scopedPrefix  = "storefront:session:"
	kvObjectDir   = "kv/"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	minioClient, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	objects, err := storage.NewClient(ctx, minioClient, cfg.Minio.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize object storage", "error", err)
	}

	var wg sync.WaitGroup
	var closers []io.Closer

	var redisClient *goredis.Client
	if cfg.Storage.Durable == config.BackendRedis || cfg.Storage.Scoped == config.BackendRedis {
		redisClient, err = redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("failed to connect to redis", "error", err)
		}
		closers = append(closers, redisClient)
	}

	var durable model.KV
	switch cfg.Storage.Durable {
	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to initialize storage", "error", err)
		}
		closers = append(closers, db)

		repo := postgres.NewKVRepository(db)
		durable = repo

		janitor := postgres.NewJanitor(repo, cfg.Database.CleanupInterval, cfg.Database.Retention, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			janitor.Run(ctx)
		}()
	case config.BackendRedis:
		durable = redis.NewKV(redisClient, durablePrefix, 0)
	case config.BackendMinio:
		durable = storage.NewKV(objects, kvObjectDir)
	default:
		durable = memory.New()
	}

	var scoped model.KV
	switch cfg.Storage.Scoped {
	case config.BackendRedis:
		scoped = redis.NewKV(redisClient, scopedPrefix, cfg.Session.TTL)
	default:
		scoped = memory.New()
	}

	logger.Info("storage configured",
		"durable", cfg.Storage.Durable,
		"scoped", cfg.Storage.Scoped)

	transport := backend.NewTransport(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	registry := workspace.NewRegistry(workspace.Deps{
		Durable:   durable,
		Scoped:    scoped,
		Objects:   objects,
		Transport: transport,
		Logger:    logger,
	}, cfg.Session.RegistrySize, cfg.Session.RegistryTTL)

	healthServer := health.NewServer()
	monitor := healthmon.NewMonitor(backend.New(transport, nil, logger), healthServer, cfg.Backend.HealthInterval, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		monitor.Run(ctx)
	}()

	httpRouter := httprouter.New(registry, httpctx.NewManager(), middleware.CookieOptions{
		Name:        cfg.Session.CookieName,
		SessionName: cfg.Session.ScopeCookieName,
		Secure:      cfg.Session.CookieSecure,
		MaxAge:      cfg.Session.CookieMaxAge,
	}, monitor, logger).WithCORS(cfg.HTTP.AllowedOrigins)
	httpSrv := httpserver.NewHTTPServer(httpRouter.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	grpcRouter := grpcrouter.New(healthServer, logger)
	grpcSrv := grpcserver.NewGRPCServer(grpcRouter.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	var security model.SecurityLayer = server.NewPlainListener()
	if cfg.TLS.Enabled {
		security = server.NewSecurityLayer(cfg.TLS.CertFileName, cfg.TLS.PrivateKeyFileName)
	}

	servers := []model.Server{httpSrv, grpcSrv}
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(security); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	registry.Close()

	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
