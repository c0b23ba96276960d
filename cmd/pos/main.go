package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spicybites/pos/internal/common/config"
	"github.com/spicybites/pos/internal/common/repositories/postgres"
	"github.com/spicybites/pos/internal/notify"
	"github.com/spicybites/pos/internal/payment"
	"github.com/spicybites/pos/internal/server"
	"github.com/spicybites/pos/pkg/goosemigrate"
	"github.com/spicybites/pos/pkg/log"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "prod.yaml", "pos config path")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())

	cfg := config.GetConfig(configPath)

	log.Info("pos starting...")

	log.Info("init postgres...")
	pool, err := pgxpool.New(ctx, cfg.GetPostgresURL())
	if err != nil {
		log.Fatal("postgres init failed", zap.Error(err))
	}

	if err := goosemigrate.NewMigrator(cfg.GetPostgresURL(), "migrations", cfg.Postgres.Schema).Up(); err != nil {
		log.Fatal("migrations up failed", zap.Error(err))
	}

	customersRepository := postgres.NewCustomersRepository(pool)
	promocodesRepository := postgres.NewPromocodesRepository(pool)
	salesRepository := postgres.NewSalesRepository(pool)

	var notifier payment.Notifier
	if cfg.Telegram.APIKey != "" {
		log.Info("init telegram notifier...")
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.APIKey, cfg.Telegram.ChatID)
		if err != nil {
			log.Fatal("telegram notifier init failed", zap.Error(err))
		}
		notifier = tg
	}

	processor := payment.NewProcessor(
		customersRepository,
		promocodesRepository,
		salesRepository,
		notifier,
	)

	srv := server.New(&cfg.Server,
		processor,
		customersRepository,
		promocodesRepository,
		salesRepository,
	)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("server starting failed", zap.Error(err))
		}
	}()

	log.Info("pos starting complete", zap.String("addr", cfg.GetServerAddr()))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-done
	log.Info("pos shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}

	pool.Close()

	if err := log.Sync(); err != nil {
		log.Error("log sync failed", zap.Error(err))
	}

	cancel()

	log.Info("pos shut down complete")
}
