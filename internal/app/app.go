package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/koffe-supply/koffe-be/config"
	"github.com/koffe-supply/koffe-be/internal/controller"
	"github.com/koffe-supply/koffe-be/internal/infrastructure/message-queue/kafka"
	"github.com/koffe-supply/koffe-be/internal/infrastructure/tracing"
	appmiddleware "github.com/koffe-supply/koffe-be/internal/middleware"
	"github.com/koffe-supply/koffe-be/internal/repository"
	"github.com/koffe-supply/koffe-be/internal/service"
	"github.com/koffe-supply/koffe-be/pkg/response"
	"github.com/koffe-supply/koffe-be/pkg/utils"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/time/rate"
)

type App struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Config *config.Config
	Server *echo.Echo

	metrics       *echo.Echo
	publisher     eventPublisher
	traceProvider *sdktrace.TracerProvider
}

type eventPublisher interface {
	service.EventPublisher
	io.Closer
}

// Repositories is the storage the HTTP layer is wired against.
type Repositories struct {
	Transactor repository.Transactor
	Users      repository.UserRepository
	Tags       repository.TagRepository
	Types      repository.TypeRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
}

func MongoRepositories(db *mongo.Database, rdb *redis.Client, conf *config.Config) Repositories {
	products := repository.CreateProductRepository(db)
	if rdb != nil {
		products = repository.CreateCachedProductRepository(products, rdb, conf.RedisConfig.TTL)
	}

	return Repositories{
		Transactor: repository.CreateMongoTransactor(db, conf.MongoDBConfig.UseTransactions),
		Users:      repository.CreateUserRepository(db),
		Tags:       repository.CreateTagRepository(db),
		Types:      repository.CreateTypeRepository(db),
		Products:   products,
		Orders:     repository.CreateOrderRepository(db),
	}
}

func SetupLogger(level string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger

	return logger
}

// Initialize builds the API and metrics servers. It must run before Start.
func (app *App) Initialize() {
	SetupLogger(app.Config.LogLevel)

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	}
	app.traceProvider = traceProvider

	if app.Config.KafkaConfig.BrokerAddress != "" {
		app.publisher = kafka.CreatePublisher(kafka.CreateKafkaWriter(app.Config.KafkaConfig))
	} else {
		log.Warn().Msg("BROKER_ADDRESS is empty, domain events are not published")
		app.publisher = kafka.NoopPublisher{}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	repos := MongoRepositories(app.DB, app.Redis, app.Config)
	app.Server = NewServer(app.Config, repos, app.publisher, registry)

	app.metrics = echo.New()
	app.metrics.HideBanner = true
	app.metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: registry}))
}

// Start serves until StopServer is called.
func (app *App) Start() error {
	go func() {
		if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	log.Info().Str("port", app.Config.ServicePort).Msg("Starting server")
	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// NewServer assembles the middleware chain and mounts every controller under /api.
func NewServer(conf *config.Config, repos Repositories, publisher service.EventPublisher, registerer prometheus.Registerer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 30 * time.Second

	e.Use(middleware.Recover())
	e.Use(appmiddleware.Logger)

	tracer := otel.Tracer(tracing.ServiceName)
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// one span per request, named after the route
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			span.SetAttributes(attribute.Int("http.status_code", c.Response().Status))

			return err
		}
	})

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{Registerer: registerer}))
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("2M"))

	if conf.RateLimit.RequestsPerSecond > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(conf.RateLimit.RequestsPerSecond),
			Burst:     conf.RateLimit.Burst,
			ExpiresIn: 3 * time.Minute,
		})))
	}

	tokens := utils.NewTokenIssuer(conf.JWTConfig.JWTSecret, conf.JWTConfig.TokenTTL)
	isLoggedIn := appmiddleware.JWTAuth(tokens, conf.AuthConfig.Enforce)

	g := e.Group("/api")

	controller.CreateUserController(g, service.CreateUserService(repos.Users, tokens, publisher, conf.AuthConfig.BcryptCost), isLoggedIn)
	controller.CreateTagController(g, service.CreateTagService(repos.Tags, publisher), isLoggedIn)
	controller.CreateTypeController(g, service.CreateTypeService(repos.Types, publisher), isLoggedIn)
	controller.CreateProductController(g, service.CreateProductService(repos.Transactor, repos.Products, repos.Tags, repos.Types, publisher), isLoggedIn)
	controller.CreateOrderController(g, service.CreateOrderService(repos.Orders, repos.Products, publisher), isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	return e
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if app.Server != nil {
		errs = append(errs, app.Server.Shutdown(ctx))
	}
	if app.metrics != nil {
		errs = append(errs, app.metrics.Shutdown(ctx))
	}
	if app.publisher != nil {
		errs = append(errs, app.publisher.Close())
	}
	if app.traceProvider != nil {
		errs = append(errs, app.traceProvider.Shutdown(ctx))
	}
	if app.Redis != nil {
		errs = append(errs, app.Redis.Close())
	}
	if app.DB != nil {
		errs = append(errs, app.DB.Client().Disconnect(ctx))
	}

	return errors.Join(errs...)
}
