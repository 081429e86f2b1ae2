package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"estateportal/src/adapters/kafka/consumers"
	"estateportal/src/helper/env"
	"estateportal/src/infra/kafka"
)

func main() {
	log.SetOutput(os.Stdout)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	log.Println("Starting Lead Notifier with Uber Fx...")

	app := fx.New(
		// Providers
		fx.Provide(
			newLogger,
			newKafkaClient,
			newNotifier,
			newMessageNotificationConsumer,
		),

		// Invocations
		fx.Invoke(startConsumer),
	)

	// Start the application
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start consumer application: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Shutting down lead notifier...")

	// Stop the application
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := app.Stop(stopCtx); err != nil {
		log.Printf("Failed to stop application gracefully: %v", err)
	}

	log.Println("Lead notifier shutdown complete")
}

func newLogger() *slog.Logger {
	logLevel := env.GetString("LOG_LEVEL", "info")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func newKafkaClient() (*kafka.KafkaClient, error) {
	brokers := env.MustGetString("KAFKA_BROKERS")
	groupID := env.GetString("KAFKA_LEAD_NOTIFIER_GROUP_ID", "estateportal-lead-notifier")
	batchSize := env.GetInt("KAFKA_BATCH_SIZE", 50)

	return kafka.NewKafkaClient(brokers, groupID, batchSize)
}

func newNotifier(logger *slog.Logger) consumers.Notifier {
	return consumers.NewLogNotifier(logger)
}

func newMessageNotificationConsumer(
	logger *slog.Logger,
	notifier consumers.Notifier,
) *consumers.MessageNotificationConsumer {
	return consumers.NewMessageNotificationConsumer(logger, notifier)
}

func startConsumer(
	lc fx.Lifecycle,
	logger *slog.Logger,
	kafkaClient *kafka.KafkaClient,
	consumer *consumers.MessageNotificationConsumer,
) {
	// O ctx do OnStart morre quando o start termina; o consumer precisa de um próprio.
	consumeCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			topic := env.GetString("KAFKA_EVENTS_TOPIC", "estateportal.events")

			// Start consumer in background
			go func() {
				if err := consumer.Start(consumeCtx, kafkaClient, topic); err != nil {
					logger.Error("Consumer failed", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			logger.Info("Shutting down Kafka client...")
			if err := kafkaClient.Close(); err != nil {
				logger.Error("Failed to close Kafka client", "error", err)
				return err
			}
			logger.Info("Kafka client shut down gracefully")
			return nil
		},
	})
}
