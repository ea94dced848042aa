package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bistro/internal/config"
	"bistro/internal/database"
	"bistro/internal/logger"
	"bistro/internal/server"
	"bistro/internal/services"
	"bistro/pkg/payments"
	"bistro/pkg/rabbitmq"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Store ---
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	prepareStore(ctx, db)

	// --- Message broker (optional) ---
	var (
		publisher services.EventPublisher
		mqClient  *rabbitmq.Client
	)
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.WithError(err).Fatal("failed to initialize RabbitMQ client")
		}
		publisher = mqClient
	} else {
		log.Warn("RABBITMQ_URL is not set, payment events and cart cleanup retries are disabled")
	}

	// --- Services & HTTP ---
	provider := payments.NewStripeProvider(cfg.StripeSecretKey, nil)
	svc := server.NewServices(db, cfg.AccessToken, provider, publisher)
	app := server.New(svc, func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("addr", cfg.ListenAddr()).Info("bistro boss server is listening")
		return app.Listen(cfg.ListenAddr())
	})

	if mqClient != nil {
		g.Go(func() error {
			// a broken consumer must not take the HTTP listener down with it
			if err := mqClient.ConsumeCartCleanup(svc.Payments.HandleCartCleanup); err != nil {
				log.WithError(err).Error("cart cleanup consumer stopped")
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var errs []error
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		if mqClient != nil {
			if err := mqClient.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		if err := database.Close(db); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("server stopped with error")
		os.Exit(1)
	}
	log.Info("server gracefully stopped")
}

// prepareStore pings and migrates the store. Failures are logged only:
// the listener still starts so the process stays observable through /health.
func prepareStore(ctx context.Context, db *gorm.DB) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := database.Ping(pingCtx, db); err != nil {
		log.WithError(err).Error("database ping failed")
		return
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Error("database migration failed")
		return
	}
	log.Info("pinged your deployment, database connected")
}
