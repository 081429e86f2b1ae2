package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	httpadapter "estateportal/src/adapters/http"
	"estateportal/src/helper/env"
	"estateportal/src/helper/latency"
	"estateportal/src/infra/kafka"
	"estateportal/src/infra/kvstore"
	"estateportal/src/infra/metrics"
	"estateportal/src/infra/postgres"
	"estateportal/src/infra/redis"
	"estateportal/src/repositories"
	"estateportal/src/services/clients"
	"estateportal/src/services/dashboard"
	"estateportal/src/services/events"
	"estateportal/src/services/leads"
	"estateportal/src/services/messages"
	"estateportal/src/services/properties"
	"estateportal/src/services/users"
)

func main() {
	// Configurar logger
	log.SetOutput(os.Stdout)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	log.Println("Starting API server with Uber Fx...")

	app := fx.New(
		// Providers
		fx.Provide(
			newLogger,
			newLatencySimulator,
			newMetricsManager,
			newRedisClient,
			newRepositories,
			newPublisher,
			newClientStore,
			newPropertyService,
			newUserService,
			newMessageService,
			newClientRegistry,
			newDashboardService,
			newLeadService,
			newServer,
		),

		// Invocations
		fx.Invoke(registerClientEvictionHooks, registerServerHooks),
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Wait for app to exit gracefully
	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Printf("Failed to stop application gracefully: %v", err)
	}
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

func newLatencySimulator() *latency.Simulator {
	if !env.GetBool("LATENCY_ENABLED", true) {
		return latency.None()
	}
	return latency.NewScaledSimulator(env.GetFloat("LATENCY_SCALE", 1))
}

func newMetricsManager() *metrics.MetricsManager {
	return metrics.NewMetricsManager("estateportal")
}

// newRedisClient devolve nil quando REDIS_ADDRS não está definido; cache e store em redis ficam desligados.
func newRedisClient(lc fx.Lifecycle) *redis.RedisClient {
	addrs := env.GetString("REDIS_ADDRS")
	if addrs == "" {
		return nil
	}

	redisPoolSize := env.GetInt("REDIS_POOL_SIZE", 50)
	redisDefaultTTLSeconds := env.GetInt("REDIS_DEFAULT_TTL_SECONDS", 120)
	client := redis.NewRedisClient(addrs, redisPoolSize, time.Duration(redisDefaultTTLSeconds)*time.Second)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client
}

// newRepositories escolhe o storage pelo STORAGE_DRIVER: memory (dados de exemplo) ou postgres.
func newRepositories(
	lc fx.Lifecycle,
	logger *slog.Logger,
	redisClient *redis.RedisClient,
) (repositories.PropertyRepository, repositories.UserRepository, repositories.MessageRepository, error) {
	driver := env.GetString("STORAGE_DRIVER", "memory")

	switch driver {
	case "memory":
		logger.Info("Using in-memory repositories with seed data")
		return repositories.NewMemoryPropertyRepository(repositories.SeedProperties()...),
			repositories.NewMemoryUserRepository(repositories.SeedUsers()...),
			repositories.NewMemoryMessageRepository(repositories.SeedMessages()...),
			nil

	case "postgres":
		client, err := newReadWriteClient()
		if err != nil {
			return nil, nil, nil, err
		}

		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.Migrate(migrateCtx, client.GetWritePool()); err != nil {
			client.Close()
			return nil, nil, nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				client.Close()
				return nil
			},
		})

		propertyRepository := repositories.NewCachedPropertyRepository(
			logger,
			repositories.NewPostgresPropertyRepository(client.GetReadPool(), client.GetWritePool()),
			redisClient,
		)
		return propertyRepository,
			repositories.NewPostgresUserRepository(client.GetReadPool(), client.GetWritePool()),
			repositories.NewPostgresMessageRepository(client.GetReadPool(), client.GetWritePool()),
			nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

func newReadWriteClient() (*postgres.ReadWriteClient, error) {
	dbWriteHost := env.MustGetString("DB_WRITE_HOST")
	dbReadHost := env.GetString("DB_READ_HOST", dbWriteHost)
	dbWritePort := env.GetString("DB_WRITE_PORT", "5432")
	dbReadPort := env.GetString("DB_READ_PORT", dbWritePort)
	dbname := env.MustGetString("DB_NAME")
	dbUser := env.MustGetString("DB_USER")
	dbPassword := env.MustGetString("DB_PASSWORD")
	maxConnections := env.GetInt("DB_MAX_POOL_CONNECTIONS", 25)

	return postgres.NewReadWriteClient(dbReadHost, dbWriteHost, dbReadPort, dbWritePort, dbname, dbUser, dbPassword, maxConnections)
}

// newPublisher usa o Kafka quando KAFKA_BROKERS está definido; sem ele os eventos são descartados.
func newPublisher(lc fx.Lifecycle, logger *slog.Logger) (events.Publisher, error) {
	brokers := env.GetString("KAFKA_BROKERS")
	if brokers == "" {
		logger.Info("KAFKA_BROKERS not set, domain events disabled")
		return events.NopPublisher{}, nil
	}

	kafkaClient, err := kafka.NewKafkaProducer(brokers)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return kafkaClient.Close()
		},
	})

	topic := env.GetString("KAFKA_EVENTS_TOPIC", "estateportal.events")
	return events.NewDomainEventPublisher(logger, kafkaClient, topic), nil
}

func newClientStore(lc fx.Lifecycle, logger *slog.Logger, redisClient *redis.RedisClient) (kvstore.Store, error) {
	driver := env.GetString("CLIENT_STATE_DRIVER", "memory")

	switch driver {
	case "memory":
		return kvstore.NewMemoryStore(), nil

	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("CLIENT_STATE_DRIVER=redis requires REDIS_ADDRS")
		}
		return kvstore.NewRedisStore(redisClient, "estateportal:"), nil

	case "sqlite":
		store, err := kvstore.NewSQLiteStore(env.GetString("SQLITE_PATH", "estateportal.db"))
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return store.Close()
			},
		})
		return store, nil

	default:
		logger.Error("Unknown client state driver", "driver", driver)
		return nil, fmt.Errorf("unknown CLIENT_STATE_DRIVER %q", driver)
	}
}

func newPropertyService(
	logger *slog.Logger,
	repository repositories.PropertyRepository,
	simulator *latency.Simulator,
	publisher events.Publisher,
) *properties.PropertyService {
	return properties.NewPropertyService(logger, repository, simulator, publisher)
}

func newUserService(
	logger *slog.Logger,
	repository repositories.UserRepository,
	simulator *latency.Simulator,
	publisher events.Publisher,
) *users.UserService {
	return users.NewUserService(logger, repository, simulator, publisher)
}

func newMessageService(
	logger *slog.Logger,
	repository repositories.MessageRepository,
	simulator *latency.Simulator,
	publisher events.Publisher,
) *messages.MessageService {
	return messages.NewMessageService(logger, repository, simulator, publisher)
}

func newClientRegistry(
	logger *slog.Logger,
	userService *users.UserService,
	store kvstore.Store,
	simulator *latency.Simulator,
) *clients.ClientRegistry {
	return clients.NewClientRegistry(logger, userService, store, simulator)
}

func newDashboardService(
	logger *slog.Logger,
	propertyService *properties.PropertyService,
	userService *users.UserService,
	messageService *messages.MessageService,
) *dashboard.DashboardService {
	return dashboard.NewDashboardService(logger, propertyService, userService, messageService)
}

func newLeadService(logger *slog.Logger, messageService *messages.MessageService) *leads.LeadService {
	return leads.NewLeadService(logger, messageService)
}

func newServer(
	logger *slog.Logger,
	metricsManager *metrics.MetricsManager,
	propertyService *properties.PropertyService,
	userService *users.UserService,
	messageService *messages.MessageService,
	clientRegistry *clients.ClientRegistry,
	dashboardService *dashboard.DashboardService,
	leadService *leads.LeadService,
) *httpadapter.Server {
	addr := env.GetString("SERVER_ADDR", ":8888")

	return httpadapter.NewServer(logger, addr, httpadapter.Services{
		Properties: propertyService,
		Users:      userService,
		Messages:   messageService,
		Clients:    clientRegistry,
		Dashboard:  dashboardService,
		Leads:      leadService,
	}, metricsManager).
		WithTimeouts(
			env.GetDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			env.GetDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			env.GetDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		).
		WithSecureCookies(env.GetBool("CLIENT_COOKIE_SECURE", false))
}

// registerClientEvictionHooks tira da memória os clientes parados; o estado deles continua no store.
func registerClientEvictionHooks(lc fx.Lifecycle, logger *slog.Logger, clientRegistry *clients.ClientRegistry) {
	idleFor := env.GetDuration("CLIENT_IDLE_TIMEOUT", 30*time.Minute)
	if idleFor < time.Second {
		logger.Warn("CLIENT_IDLE_TIMEOUT below one second, client eviction disabled")
		return
	}
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(idleFor / 2)
				defer ticker.Stop()

				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						clientRegistry.Evict(idleFor)
					}
				}
			}()
			logger.Info("Client eviction started", "idle_timeout", idleFor.String())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}

// registerServerHooks registers lifecycle hooks for the HTTP server
func registerServerHooks(lc fx.Lifecycle, srv *httpadapter.Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Start server in a separate goroutine
			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Create timeout context for graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server forced to shutdown: %v", err)
				return err
			}
			log.Println("Server exited gracefully")
			return nil
		},
	})
}
