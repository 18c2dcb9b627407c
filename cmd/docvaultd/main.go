package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"docvault/gen/ent"
	docspb "docvault/gen/proto/docs/v1"
	"docvault/internal/async"
	"docvault/internal/common"
	"docvault/internal/export"
	"docvault/internal/ingest"
	"docvault/internal/process"
	"docvault/internal/repository"
	"docvault/internal/server"
	"docvault/internal/staging"
	"docvault/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database: postgres in production, a sqlite file for local work.
	entc, pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)
	if pool != nil {
		if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
		logger.Info("database health OK")
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("opening permanent storage", "error", err)
		os.Exit(1)
	}

	docsRepo := repository.NewDocumentRepository(entc, logger)
	job := process.NewJob(docsRepo, store, logger)
	queue := async.NewWorkerQueue(job, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
		async.WithRetryDelays(cfg.Queue.RetryDelays),
	)
	writer := staging.NewWriter(cfg.Staging.Dir, logger)
	handler := ingest.NewHandler(writer, docsRepo, queue, logger)
	exporter := export.NewService(docsRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewDocumentsService(handler, docsRepo, exporter, logger)
	docspb.RegisterDocumentsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()

		drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		queue.Shutdown(drainCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}

func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if repository.IsPostgresDSN(cfg.Database.DSN) {
		return repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	}

	entc, err := repository.OpenSQLite(cfg.Database.DSN, logger)
	if err != nil {
		return nil, nil, err
	}
	// sqlite is a local-development convenience; create the schema in
	// place instead of requiring external migrations.
	if err := entc.Schema.Create(ctx); err != nil {
		_ = entc.Close()
		return nil, nil, err
	}
	return entc, nil, nil
}

func openStore(ctx context.Context, cfg *common.Config, logger *slog.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "gcs":
		return storage.NewGCSStore(ctx, cfg.Storage.GCSBucket, logger)
	default:
		return storage.NewLocalStore(cfg.Storage.LocalRoot, logger)
	}
}
