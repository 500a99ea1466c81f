package main

import (
	"context"
	"flight-parser/auth"
	"flight-parser/contract"
	"flight-parser/decoder"
	"flight-parser/infrastructure/http/server"
	"flight-parser/internal"
	"flight-parser/observability"
	"flight-parser/repositories"
	"flight-parser/services"
	"flight-parser/workers"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until SIGINT/SIGTERM or a server failure.
// Deferred cleanup (badger, log file) runs before main exits.
func run() error {
	// 1. Configuration & Logger
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf(".env loading failed: %w", err)
	}
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log, logCloser := internal.NewLogger(config.LogLevel, config.LogFile)
	defer func() { _ = logCloser.Close() }()

	if !strings.EqualFold(config.LogLevel, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	// 3. Keychain cache
	store, closeStore, err := openKeychainStore(config, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// 4. Services
	dec := newDecoder(config, log)
	resolver := services.NewKeychainResolver(log, services.NewFingerprinter(config.ChunkSizeKb), store, dec, metrics)
	downloader := services.NewHTTPDownloader(log, config.DownloadTimeout, config.TmpDir, config.MaxFileSizeMb, metrics)
	parser := services.NewFlightService(log, downloader, resolver, dec, config.DJIAppKey, config.PreviewRows)
	if dec.RequiresKeychains() && config.DJIAppKey == "" {
		log.Warn("DJI_APP_KEY is not set, /parse will fail until it is configured")
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Background workers
	supervisor := workers.NewSupervisor(log).
		Add(workers.NewTmpJanitor(log, config.TmpDir, config.TmpSweepInterval, config.TmpMaxAge))
	workersDone := make(chan struct{})
	go func() {
		supervisor.Run(ctx)
		close(workersDone)
	}()

	// 7. HTTP Server
	tokens := auth.NewTokenIssuer(config.AuthSecret, config.AuthTokenDuration)
	srv := server.NewServer(log, config.Address(), parser, tokens, metrics, registry)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	<-workersDone
	log.Info("Program stopped cleanly")
	return nil
}

func newDecoder(config internal.Config, log *slog.Logger) contract.Decoder {
	if config.Decoder == internal.DecoderExec {
		log.Info("Using external decoder", "bin", config.DecoderBinPath)
		return decoder.NewExecDecoder(log, config.DecoderBinPath, config.DecoderTimeout)
	}
	return decoder.NewTextDecoder(log)
}

func openKeychainStore(config internal.Config, log *slog.Logger) (contract.KeychainStore, func(), error) {
	if config.KeychainCacheBackend != internal.BackendBadger {
		log.Info("Keychain cache", "backend", internal.BackendJSON, "path", config.KeychainCachePath)
		return repositories.NewKeychainFileCache(config.KeychainCachePath, log), func() {}, nil
	}

	db, err := badger.Open(badger.DefaultOptions(config.KeychainCachePath).
		WithLogger(nil))
	if err != nil {
		return nil, nil, fmt.Errorf("database opening failed: %w", err)
	}
	log.Info("Keychain cache", "backend", internal.BackendBadger, "path", config.KeychainCachePath)
	return repositories.NewKeychainBadgerCache(db, log), func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}, nil
}
