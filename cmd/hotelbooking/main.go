package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelbooking/internal/app/commands"
	"hotelbooking/internal/app/dto"
	reservationapp "hotelbooking/internal/app/handlers/reservations"
	"hotelbooking/internal/app/middleware"
	"hotelbooking/internal/app/queries"
	reservationsvc "hotelbooking/internal/app/services/reservation"
	domainavailability "hotelbooking/internal/domain/availability"
	domainnotification "hotelbooking/internal/domain/notification"
	"hotelbooking/internal/infra/broker/kafka"
	"hotelbooking/internal/infra/config"
	"hotelbooking/internal/infra/db/mongo"
	ginserver "hotelbooking/internal/infra/http/gin"
	"hotelbooking/internal/infra/notify"
	"hotelbooking/internal/infra/obs"
	"hotelbooking/internal/infra/storage/memory"
	"hotelbooking/internal/infra/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	logger := obs.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		cfg = config.Default()
		logger = obs.NewLogger(cfg.Env, cfg.LogLevel)
		logger.Warn("using fallback configuration", "error", err)
	}

	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("application wiring failed", "error", err)
		os.Exit(1)
	}
	defer app.close(logger)

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: app.ready}, app.handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "inventory", app.ledger.Snapshot(), "notification_channels", app.channels)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	ledger   *domainavailability.Ledger
	channels []string
	mongo    *mongo.Client
	producer *kafka.Producer
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (*application, error) {
	app := &application{}

	ledger, err := domainavailability.NewLedger(cfg.RoomInventory)
	if err != nil {
		return nil, fmt.Errorf("room inventory: %w", err)
	}
	app.ledger = ledger
	hub := domainnotification.NewHub()

	channels := []notify.Channel{{Name: "log", Notifier: notify.LogNotifier{Logger: logger}}}
	var idStore middleware.IdempotencyStore = memory.NewIdempotencyStore(cfg.IdempotencyTTL)

	if cfg.MongoURI != "" {
		client, err := mongo.New(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		app.mongo = client
		store, err := mongo.NewIdempotencyStore(ctx, client.DB, cfg.IdempotencyTTL)
		if err != nil {
			app.close(logger)
			return nil, fmt.Errorf("mongo idempotency store: %w", err)
		}
		idStore = store
		journal, err := mongo.NewNotificationJournal(ctx, client.DB)
		if err != nil {
			app.close(logger)
			return nil, fmt.Errorf("mongo notification journal: %w", err)
		}
		channels = append(channels, notify.Channel{Name: "mongo", Notifier: journal})
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			app.close(logger)
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		app.producer = producer
		channels = append(channels, notify.Channel{
			Name:     "kafka",
			Notifier: kafka.NewNotifier(producer, cfg.KafkaTopicPrefix, cfg.NotificationTopic),
		})
	}

	fanout := notify.NewFanout(channels...)
	app.channels = fanout.Channels()

	svc := &reservationsvc.Service{Ledger: ledger, Hub: hub, Logger: logger}

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler[reservationapp.CreateReservationCommand, *dto.ReservationConfirmation](commandBus, &reservationapp.CreateReservationHandler{
		Service:  svc,
		Hub:      hub,
		Notifier: fanout,
	})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler[reservationapp.CheckAvailabilityQuery, dto.Availability](queryBus, &reservationapp.CheckAvailabilityHandler{Service: svc})
	queries.RegisterHandler[reservationapp.ListInventoryQuery, dto.Inventory](queryBus, &reservationapp.ListInventoryHandler{Ledger: ledger})

	validator := validation.New()
	commandBusWithMiddleware := middleware.ChainCommands(
		commandBus,
		middleware.Logging(logger),
		middleware.Validation(validator),
		middleware.Idempotency(idStore, nil),
	)
	queryBusWithMiddleware := middleware.ChainQueries(queryBus, middleware.QueryValidation(validator))

	app.handlers = ginserver.Handlers{
		Reservation:  ginserver.ReservationHandler{Commands: commandBusWithMiddleware},
		Availability: ginserver.AvailabilityHandler{Queries: queryBusWithMiddleware},
	}
	return app, nil
}

func (a *application) ready(ctx context.Context) error {
	if a.mongo == nil {
		return nil
	}
	return a.mongo.Ping(ctx)
}

func (a *application) close(logger *slog.Logger) {
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			logger.Error("kafka producer close failed", "error", err)
		}
	}
	if a.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.mongo.Close(ctx); err != nil {
			logger.Error("mongo disconnect failed", "error", err)
		}
	}
}
