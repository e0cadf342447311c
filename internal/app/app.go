package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Ihsas01/SR-SHOPPING/config"
	"github.com/Ihsas01/SR-SHOPPING/internal/controller"
	circuitbreaker "github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/circuit-breaker"
	boltdb "github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/database/bolt"
	"github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/database/mongodb"
	"github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/mail"
	"github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/message-queue/kafka"
	"github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/metrics"
	"github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/tracing"
	localmiddleware "github.com/Ihsas01/SR-SHOPPING/internal/middleware"
	"github.com/Ihsas01/SR-SHOPPING/internal/repository"
	"github.com/Ihsas01/SR-SHOPPING/internal/service"
	"github.com/Ihsas01/SR-SHOPPING/internal/state"
	"github.com/Ihsas01/SR-SHOPPING/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config   *config.Config
	Store    *state.Store
	Server   *echo.Echo
	Registry *prometheus.Registry

	kv            repository.KeyValueStore
	publisher     kafka.Publisher
	metrics       *metrics.CatalogMetrics
	traceProvider *trace.TracerProvider
	scheduler     gocron.Scheduler
	metricsServer *echo.Echo
}

// openKeyValueStore picks the backing store named by STORE_BACKEND.
func openKeyValueStore(conf *config.Config) (repository.KeyValueStore, error) {
	switch conf.StoreConfig.Backend {
	case config.StoreBackendMemory:
		return repository.CreateNewMemoryStore(), nil
	case config.StoreBackendMongoDB:
		db, err := mongodb.ConnectToMongoDB(conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort, conf.MongoDBConfig.DBName)
		if err != nil {
			return nil, fmt.Errorf("connecting to mongodb: %w", err)
		}
		cb := circuitbreaker.CreateCircuitBreaker("sr-shopping-kv")
		return repository.CreateNewBreakerStore(repository.CreateNewMongoDBStore(db), cb), nil
	case config.StoreBackendBolt:
		db, err := boltdb.OpenBoltDB(conf.StoreConfig.Path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", conf.StoreConfig.Path, err)
		}
		return repository.CreateNewBoltStore(db)
	}

	return nil, fmt.Errorf("unknown store backend %q", conf.StoreConfig.Backend)
}

// Init opens the store, restores state and builds the HTTP server. It does
// not listen; Start does.
func (app *App) Init(ctx context.Context) error {
	kv, err := openKeyValueStore(app.Config)
	if err != nil {
		return err
	}
	app.kv = kv

	app.Registry = prometheus.NewRegistry()
	app.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app.metrics = metrics.CreateCatalogMetrics(app.Registry)
	app.publisher = kafka.CreateKafkaPublisher(app.Config)

	repo := repository.CreateNewStateRepository(kv)
	app.Store = state.NewStore(repo.LoadState(ctx))

	// persistence first, then events, then metrics
	app.Store.Subscribe(repo.Persist)
	app.Store.Subscribe(func(ctx context.Context, _ state.State, change state.Change) {
		app.publisher.Publish(ctx, change.Event, change.Subject)
	})
	app.Store.Subscribe(func(_ context.Context, snapshot state.State, change state.Change) {
		app.metrics.CountEvent(change.Event)
		app.metrics.Refresh(snapshot)
	})
	app.metrics.Refresh(app.Store.Snapshot())

	app.traceProvider, err = tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
		app.traceProvider = trace.NewTracerProvider()
	}

	app.Server = app.newServer()

	return nil
}

func (app *App) newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	tracer := app.traceProvider.Tracer(tracing.ServiceName)
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	})

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "sr_shopping",
		Registerer: app.Registry,
	}))
	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	adminSvc := service.CreateNewAdminService(app.Store, *app.Config)
	catalogSvc := service.CreateNewCatalogService(app.Store)
	checkoutSvc := service.CreateNewCheckoutService(app.Store, *app.Config, app.publisher, mail.CreateNotifier(app.Config), app.metrics)

	isAdmin := []echo.MiddlewareFunc{
		localmiddleware.IsLoggedIn(app.Config.JWTSecret),
		localmiddleware.RequireSession(adminSvc),
	}

	controller.CreateAdminController(g, adminSvc, isAdmin...)
	controller.CreateCatalogController(g, catalogSvc, isAdmin...)
	controller.CreateCheckoutController(g, checkoutSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	return e
}

// Start runs the scheduler, the metrics listener and the API server. It
// blocks until the server stops.
func (app *App) Start() error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			time.Duration(app.Config.StatsIntervalSeconds)*time.Second,
		),
		gocron.NewTask(func() {
			app.metrics.Refresh(app.Store.Snapshot())
		}),
	)
	if err != nil {
		return err
	}

	s.Start()
	app.scheduler = s

	app.metricsServer = echo.New()
	app.metricsServer.HideBanner = true
	app.metricsServer.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: app.Registry}))
	go func() {
		if err := app.metricsServer.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	log.Info().Str("port", app.Config.ServicePort).Str("store", app.Config.StoreConfig.Backend).Msg("Starting server")
	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if app.Server != nil {
		errs = append(errs, app.Server.Shutdown(ctx))
	}
	if app.metricsServer != nil {
		errs = append(errs, app.metricsServer.Shutdown(ctx))
	}
	if app.scheduler != nil {
		errs = append(errs, app.scheduler.Shutdown())
	}
	if app.publisher != nil {
		errs = append(errs, app.publisher.Close())
	}
	if app.kv != nil {
		errs = append(errs, app.kv.Close(ctx))
	}
	if app.traceProvider != nil {
		errs = append(errs, app.traceProvider.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
