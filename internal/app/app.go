package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/alimikegami/point-of-sales/gaming-store-service/config"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/controller"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/handler"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/infrastructure/search/elasticsearch"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/infrastructure/tracing"
	appmiddleware "github.com/alimikegami/point-of-sales/gaming-store-service/internal/middleware"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/repository"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/service"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
)

var ErrNotReady = errors.New("catalog not seeded yet")

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo

	metrics        *echo.Echo
	grpcServer     *grpc.Server
	grpcHandler    *handler.GrpcHandler
	scheduler      gocron.Scheduler
	publisher      *kafka.EventPublisher
	tracerProvider *sdktrace.TracerProvider
	productRepo    repository.ProductRepository
	ready          atomic.Bool
}

// Start wires the service, seeds the catalog and starts the HTTP, metrics and
// gRPC listeners in the background.
func (app *App) Start() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", handler.ServiceName).Logger()
	level, err := zerolog.ParseLevel(app.Config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger

	ctx := logger.WithContext(context.Background())

	app.tracerProvider, err = tracing.InitTracing(app.Config.TracingConfig.CollectorHost, handler.ServiceName)
	if err != nil {
		return err
	}

	productRepo, cartRepo, err := app.openStore(ctx)
	if err != nil {
		return err
	}
	app.productRepo = productRepo

	var searchRepo repository.ProductSearchRepository
	if app.Config.ElasticsearchConfig.DBHost != "" {
		client, err := elasticsearch.CreateElasticsearchClient(app.Config)
		if err != nil {
			logger.Warn().Err(err).Msg("Search index unavailable, product search uses the store")
		} else {
			searchRepo = repository.CreateNewElasticSearchRepository(client, app.Config.ElasticsearchConfig.Index)
		}
	}

	var publisher service.EventPublisher
	if writer := kafka.CreateKafkaWriter(app.Config); writer != nil {
		app.publisher = kafka.CreateEventPublisher(writer)
		publisher = app.publisher
	}

	catalogService := service.CreateCatalogService(productRepo, searchRepo)
	cartService := service.CreateCartService(productRepo, cartRepo, publisher)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	e.Use(appmiddleware.Tracing(app.tracerProvider.Tracer(handler.ServiceName)))

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(appmiddleware.Logger)

	controller.CreateHealthController(e, app.Ready)

	g := e.Group("/api")
	controller.CreateCatalogController(g, catalogService)
	controller.CreateCartController(g, cartService)

	app.Server = e

	app.metrics = echo.New()
	app.metrics.HideBanner = true
	app.metrics.HidePort = true
	app.metrics.GET("/metrics", echoprometheus.NewHandler())

	go func() {
		if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	app.grpcHandler = handler.CreateGRPCHandler()
	app.grpcServer = handler.CreateGRPCServer(app.grpcHandler)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", app.Config.GRPCPort))
	if err != nil {
		return fmt.Errorf("listening for grpc: %w", err)
	}

	go func() {
		if err := app.grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error().Err(err).Msg("Failed to start grpc server")
		}
	}()

	seeded, err := catalogService.SeedCatalog(ctx)
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	if !seeded {
		logger.Info().Msg("Products already present, seeding skipped")
	}

	if searchRepo != nil {
		if err := catalogService.SyncSearchIndex(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to sync search index")
		}

		app.scheduler, err = app.scheduleSearchSync(ctx, catalogService)
		if err != nil {
			return err
		}
	}

	app.ready.Store(true)
	app.grpcHandler.SetServing(true)

	go func() {
		logger.Info().Str("port", app.Config.ServicePort).Msg("Starting HTTP server")
		if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	return nil
}

// Ready reports whether seeding finished and the store still answers.
func (app *App) Ready(ctx context.Context) error {
	if !app.ready.Load() {
		return ErrNotReady
	}

	return app.productRepo.Ping(ctx)
}

func (app *App) openStore(ctx context.Context) (repository.ProductRepository, repository.CartRepository, error) {
	if app.Config.StoreDriver == config.StoreDriverMemory {
		store := repository.CreateNewMemoryStore()
		return store, store, nil
	}

	if app.DB == nil {
		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		db, err := mongodb.ConnectToMongoDB(connectCtx, app.Config.MongoDBConfig.URL, app.Config.MongoDBConfig.DBName)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
		}
		app.DB = db
	}

	if err := mongodb.EnsureIndexes(ctx, app.DB); err != nil {
		return nil, nil, fmt.Errorf("creating indexes: %w", err)
	}

	return repository.CreateNewMongoDBProductRepository(app.DB), repository.CreateNewMongoDBCartRepository(app.DB), nil
}

func (app *App) scheduleSearchSync(ctx context.Context, catalogService service.CatalogService) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(app.Config.ElasticsearchConfig.SyncInterval),
		gocron.NewTask(func() {
			if err := catalogService.SyncSearchIndex(ctx); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("component", "SyncSearchIndex").Msg("")
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("scheduling search sync: %w", err)
	}

	scheduler.Start()

	return scheduler, nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app.ready.Store(false)

	var errs []error
	if app.Server != nil {
		errs = append(errs, app.Server.Shutdown(ctx))
	}
	if app.grpcHandler != nil {
		app.grpcHandler.Shutdown()
	}
	if app.grpcServer != nil {
		app.grpcServer.GracefulStop()
	}
	if app.metrics != nil {
		errs = append(errs, app.metrics.Shutdown(ctx))
	}
	if app.scheduler != nil {
		errs = append(errs, app.scheduler.Shutdown())
	}
	errs = append(errs, app.publisher.Close())
	if app.tracerProvider != nil {
		errs = append(errs, app.tracerProvider.Shutdown(ctx))
	}
	if app.DB != nil {
		errs = append(errs, app.DB.Client().Disconnect(ctx))
	}

	return errors.Join(errs...)
}
