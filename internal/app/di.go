// Package app provides the dependency injection container that assembles the
// application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"

	authService "github.com/foodshare/server/internal/auth/service"
	authUseCase "github.com/foodshare/server/internal/auth/usecase"
	"github.com/foodshare/server/internal/config"
	"github.com/foodshare/server/internal/database"
	foodHTTP "github.com/foodshare/server/internal/food/http"
	foodRepository "github.com/foodshare/server/internal/food/repository"
	foodUseCase "github.com/foodshare/server/internal/food/usecase"
	requestHTTP "github.com/foodshare/server/internal/foodrequest/http"
	requestRepository "github.com/foodshare/server/internal/foodrequest/repository"
	requestUseCase "github.com/foodshare/server/internal/foodrequest/usecase"
	"github.com/foodshare/server/internal/http"
	"github.com/foodshare/server/internal/metrics"
)

// Container holds all application dependencies. Components are created on first
// access and cached.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	mongoClient     *mongo.Client
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Identity
	identityVerifier authService.IdentityVerifier
	gateUseCase      authUseCase.GateUseCase

	// Foods
	foodRepository foodUseCase.FoodRepository
	foodUseCase    foodUseCase.FoodUseCase
	foodHandler    *foodHTTP.FoodHandler

	// Requests
	requestRepository requestUseCase.FoodRequestRepository
	requestUseCase    requestUseCase.FoodRequestUseCase
	requestHandler    *requestHTTP.FoodRequestHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                    sync.Mutex
	loggerInit            sync.Once
	mongoClientInit       sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	identityVerifierInit  sync.Once
	gateUseCaseInit       sync.Once
	foodRepositoryInit    sync.Once
	foodUseCaseInit       sync.Once
	foodHandlerInit       sync.Once
	requestRepositoryInit sync.Once
	requestUseCaseInit    sync.Once
	requestHandlerInit    sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger configured from LogLevel.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// once runs init a single time under key and replays its error on later calls.
func (c *Container) once(o *sync.Once, key string, init func() error) error {
	o.Do(func() {
		if err := init(); err != nil {
			c.mu.Lock()
			c.initErrors[key] = err
			c.mu.Unlock()
		}
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[key]
}

// MongoClient returns the shared MongoDB client, connecting on first access.
func (c *Container) MongoClient() (*mongo.Client, error) {
	err := c.once(&c.mongoClientInit, "mongoClient", func() error {
		client, err := c.initMongoClient()
		c.mongoClient = client
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.mongoClient, nil
}

// MongoDatabase returns the application database handle.
func (c *Container) MongoDatabase() (*mongo.Database, error) {
	client, err := c.MongoClient()
	if err != nil {
		return nil, err
	}
	return client.Database(c.config.MongoDatabase), nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.once(&c.metricsProviderInit, "metricsProvider", func() error {
		if !c.config.MetricsEnabled {
			return nil
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create metrics provider: %w", err)
		}
		c.metricsProvider = provider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the use case metrics recorder. It is a no-op when metrics
// are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.once(&c.businessMetricsInit, "businessMetrics", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return err
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return nil
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create business metrics: %w", err)
		}
		c.businessMetrics = bm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// IdentityVerifier returns the Firebase ID token verifier.
func (c *Container) IdentityVerifier() (authService.IdentityVerifier, error) {
	err := c.once(&c.identityVerifierInit, "identityVerifier", func() error {
		verifier, err := c.initIdentityVerifier()
		c.identityVerifier = verifier
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.identityVerifier, nil
}

// GateUseCase returns the identity gate used by owner routes.
func (c *Container) GateUseCase() (authUseCase.GateUseCase, error) {
	err := c.once(&c.gateUseCaseInit, "gateUseCase", func() error {
		verifier, err := c.IdentityVerifier()
		if err != nil {
			return fmt.Errorf("failed to get identity verifier for gate use case: %w", err)
		}
		bm, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for gate use case: %w", err)
		}
		gate := authUseCase.NewGateUseCase(verifier, c.config.AuthVerifyTimeout, c.Logger())
		c.gateUseCase = authUseCase.NewGateUseCaseWithMetrics(gate, bm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.gateUseCase, nil
}

// FoodRepository returns the MongoDB food repository.
func (c *Container) FoodRepository() (foodUseCase.FoodRepository, error) {
	err := c.once(&c.foodRepositoryInit, "foodRepository", func() error {
		db, err := c.MongoDatabase()
		if err != nil {
			return fmt.Errorf("failed to get database for food repository: %w", err)
		}
		c.foodRepository = foodRepository.NewMongoFoodRepository(db)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.foodRepository, nil
}

// FoodUseCase returns the food use case wrapped with metrics.
func (c *Container) FoodUseCase() (foodUseCase.FoodUseCase, error) {
	err := c.once(&c.foodUseCaseInit, "foodUseCase", func() error {
		repo, err := c.FoodRepository()
		if err != nil {
			return fmt.Errorf("failed to get food repository for food use case: %w", err)
		}
		bm, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for food use case: %w", err)
		}
		c.foodUseCase = foodUseCase.NewFoodUseCaseWithMetrics(foodUseCase.NewFoodUseCase(repo), bm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.foodUseCase, nil
}

// FoodHandler returns the food HTTP handler.
func (c *Container) FoodHandler() (*foodHTTP.FoodHandler, error) {
	err := c.once(&c.foodHandlerInit, "foodHandler", func() error {
		useCase, err := c.FoodUseCase()
		if err != nil {
			return fmt.Errorf("failed to get food use case for food handler: %w", err)
		}
		c.foodHandler = foodHTTP.NewFoodHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.foodHandler, nil
}

// FoodRequestRepository returns the MongoDB request repository.
func (c *Container) FoodRequestRepository() (requestUseCase.FoodRequestRepository, error) {
	err := c.once(&c.requestRepositoryInit, "requestRepository", func() error {
		db, err := c.MongoDatabase()
		if err != nil {
			return fmt.Errorf("failed to get database for request repository: %w", err)
		}
		c.requestRepository = requestRepository.NewMongoFoodRequestRepository(db)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.requestRepository, nil
}

// FoodRequestUseCase returns the request use case wrapped with metrics.
func (c *Container) FoodRequestUseCase() (requestUseCase.FoodRequestUseCase, error) {
	err := c.once(&c.requestUseCaseInit, "requestUseCase", func() error {
		repo, err := c.FoodRequestRepository()
		if err != nil {
			return fmt.Errorf("failed to get request repository for request use case: %w", err)
		}
		bm, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for request use case: %w", err)
		}
		c.requestUseCase = requestUseCase.NewFoodRequestUseCaseWithMetrics(
			requestUseCase.NewFoodRequestUseCase(repo),
			bm,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.requestUseCase, nil
}

// FoodRequestHandler returns the request HTTP handler.
func (c *Container) FoodRequestHandler() (*requestHTTP.FoodRequestHandler, error) {
	err := c.once(&c.requestHandlerInit, "requestHandler", func() error {
		useCase, err := c.FoodRequestUseCase()
		if err != nil {
			return fmt.Errorf("failed to get request use case for request handler: %w", err)
		}
		c.requestHandler = requestHTTP.NewFoodRequestHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.requestHandler, nil
}

// HTTPServer returns the API server with every route registered.
func (c *Container) HTTPServer() (*http.Server, error) {
	err := c.once(&c.httpServerInit, "httpServer", func() error {
		server, err := c.initHTTPServer()
		c.httpServer = server
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.once(&c.metricsServerInit, "metricsServer", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
		}
		if provider == nil {
			return nil
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown releases the metrics provider and the MongoDB client. Servers are shut down
// by their caller.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.mongoClient != nil {
		if err := c.mongoClient.Disconnect(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("mongo disconnect: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func (c *Container) initMongoClient() (*mongo.Client, error) {
	ctx := context.Background()
	if c.config.MongoConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.MongoConnectTimeout)
		defer cancel()
	}

	client, err := database.Connect(ctx, database.Config{
		URI:            c.config.MongoURI,
		Database:       c.config.MongoDatabase,
		ConnectTimeout: c.config.MongoConnectTimeout,
		MaxPoolSize:    c.config.MongoMaxPoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.Logger().Info("connected to mongodb", slog.String("database", c.config.MongoDatabase))
	return client, nil
}

// initIdentityVerifier verifies against Google's published certificates, or accepts
// unsigned tokens when the Auth emulator is configured.
func (c *Container) initIdentityVerifier() (authService.IdentityVerifier, error) {
	projectID, err := c.config.ResolveFirebaseProjectID()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve firebase project id: %w", err)
	}

	emulator := c.config.FirebaseAuthEmulatorHost != ""
	var keys authService.KeySource
	if emulator {
		c.Logger().Warn("firebase auth emulator enabled, id token signatures are not checked",
			slog.String("emulator_host", c.config.FirebaseAuthEmulatorHost))
	} else {
		keys = authService.NewHTTPKeySource(authService.GoogleSecureTokenCertsURL, nil)
	}

	verifier, err := authService.NewFirebaseVerifier(authService.FirebaseVerifierConfig{
		ProjectID: projectID,
		Emulator:  emulator,
	}, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase verifier: %w", err)
	}
	return verifier, nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	client, err := c.MongoClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get mongo client for http server: %w", err)
	}
	foodHandler, err := c.FoodHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get food handler for http server: %w", err)
	}
	requestHandler, err := c.FoodRequestHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get request handler for http server: %w", err)
	}
	gate, err := c.GateUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get gate use case for http server: %w", err)
	}
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(
		func(ctx context.Context) error { return database.Ping(ctx, client, 0) },
		c.config.ServerHost,
		c.config.ServerPort,
		c.Logger(),
	)
	server.SetupRouter(c.config, foodHandler, requestHandler, gate, provider)

	return server, nil
}
