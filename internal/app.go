package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/wojg58/Thursday/internal/adapters/cache"
	logger_adapter "github.com/wojg58/Thursday/internal/adapters/logger"
	"github.com/wojg58/Thursday/internal/adapters/memory"
	postgres_adapter "github.com/wojg58/Thursday/internal/adapters/postgres"
	rabbitmq_adapter "github.com/wojg58/Thursday/internal/adapters/rabbitmq"
	"github.com/wojg58/Thursday/internal/adapters/rest"
	"github.com/wojg58/Thursday/internal/adapters/tourapi"
	"github.com/wojg58/Thursday/internal/configs"
	"github.com/wojg58/Thursday/internal/constants"
	"github.com/wojg58/Thursday/internal/contracts"
	"github.com/wojg58/Thursday/internal/core/port"
	"github.com/wojg58/Thursday/internal/core/usecase"
	fluentlogger "github.com/wojg58/Thursday/pkg/fluent_logger"
	"github.com/wojg58/Thursday/pkg/postgres"
	"github.com/wojg58/Thursday/pkg/rabbitmq/rabbitmq_common"
	"github.com/wojg58/Thursday/pkg/rabbitmq/rabbitmq_producer"
	redisclient "github.com/wojg58/Thursday/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	redis     *goredis.Client
	rabbit    *rabbitmq_common.ConnectionManager
	publisher *rabbitmq_producer.Publisher
	feeds     *memory.FeedRegistry
	apiServer *rest.Server

	fluent *logger_adapter.FluentLoggerAdapter
	logger port.LoggerPort
	base   port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{config: appConfig}

	// --- 1. ЛОГГЕРЫ ---
	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    logger_adapter.ParseLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers := []port.LoggerPort{stdoutLogger}

	if appConfig.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:  appConfig.FluentBit.Host,
			Port:  appConfig.FluentBit.Port,
			Async: true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}
		app.fluent, err = logger_adapter.NewFluentLoggerAdapter(fluentClient, appConfig.AppName, logger_adapter.ParseLevel(appConfig.FluentBit.Level))
		if err != nil {
			_ = fluentClient.Close()
			return nil, fmt.Errorf("failed to create fluentbit adapter: %w", err)
		}
		activeLoggers = append(activeLoggers, app.fluent)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}
	app.base = multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	app.logger = app.base.WithFields(port.Fields{"component": "app"})
	app.logger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	if err := app.initAdapters(); err != nil {
		app.close()
		return nil, err
	}
	return app, nil
}

// initAdapters поднимает внешние зависимости и собирает use cases. При ошибке
// уже открытое закрывает вызывающий через close.
func (a *App) initAdapters() error {
	cfg := a.config
	ctx := context.Background()

	// --- 2. POSTGRES ---
	dbPool, err := postgres.NewClient(ctx, postgres.Config{
		DatabaseURL:    cfg.Database.URL,
		MaxConns:       cfg.Database.MaxConns,
		ConnectTimeout: 10 * time.Second,
	})
	if err != nil {
		a.logger.Error("Failed to connect to PostgreSQL", err, nil)
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	a.dbPool = dbPool
	a.logger.Info("Successfully connected to PostgreSQL pool!", nil)

	bookmarkRepo, err := postgres_adapter.NewPostgresBookmarkRepository(dbPool)
	if err != nil {
		return fmt.Errorf("failed to create bookmark repository: %w", err)
	}
	if err := bookmarkRepo.EnsureSchema(ctx); err != nil {
		a.logger.Error("Failed to ensure bookmarks schema", err, nil)
		return fmt.Errorf("failed to ensure bookmarks schema: %w", err)
	}

	// --- 3. TOURAPI (+ кэш) ---
	tourAdapter, err := tourapi.NewTourAPIAdapter(tourapi.Config{
		BaseURL:        cfg.TourAPI.BaseURL,
		ServiceKey:     cfg.TourAPI.ServiceKey,
		MobileApp:      cfg.TourAPI.MobileApp,
		Parallelism:    cfg.TourAPI.Parallelism,
		RandomDelay:    cfg.TourAPI.RandomDelay,
		RequestTimeout: cfg.TourAPI.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create tourapi adapter: %w", err)
	}
	var tourAPI port.TourAPIPort = tourAdapter

	if cfg.Redis.Enabled {
		a.redis, err = redisclient.NewClient(redisclient.Config{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			// без кэша сервис работает, только медленнее
			a.logger.Warn("Redis unavailable, TourAPI cache disabled", port.Fields{"error": err.Error()})
		} else {
			tourAPI = cache.NewCachedTourAPI(tourAPI, a.redis, cache.TTLConfig{
				Detail: cfg.Redis.DetailTTL,
				List:   cfg.Redis.ListTTL,
			})
			a.logger.Info("TourAPI cache enabled", port.Fields{"address": cfg.Redis.Address})
		}
	}

	// --- 4. RABBITMQ ---
	var events port.BookmarkEventsPort = rabbitmq_adapter.NoopBookmarkEvents{}
	if cfg.RabbitMQ.Enabled {
		registry, err := contracts.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load event contracts: %w", err)
		}
		rmqLogger := logger_adapter.NewRabbitMQLogger(a.base.WithFields(port.Fields{"component": "rabbitmq"}))
		a.rabbit, err = rabbitmq_common.NewConnectionManager(cfg.RabbitMQ.URL, rmqLogger)
		if err != nil {
			a.logger.Error("Failed to connect to RabbitMQ", err, nil)
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		a.publisher, err = rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			ExchangeName:    cfg.RabbitMQ.BookmarkExchange,
			ExchangeType:    constants.BookmarkExchangeType,
			Durable:         true,
			DeclareExchange: true,
			Logger:          rmqLogger,
		}, a.rabbit)
		if err != nil {
			return fmt.Errorf("failed to create bookmark publisher: %w", err)
		}
		events = rabbitmq_adapter.NewBookmarkEventsAdapter(a.publisher, registry)
		a.logger.Info("Bookmark events publisher initialized", port.Fields{"exchange": cfg.RabbitMQ.BookmarkExchange})
	}

	a.feeds = memory.NewFeedRegistry()
	a.logger.Info("All persistence and service adapters initialized.", nil)

	// --- 5. USE CASES И REST ---
	tours := rest.NewTourHandler(
		usecase.NewListToursUseCase(tourAPI),
		usecase.NewGetTourDetailUseCase(tourAPI),
		usecase.NewGetMapMarkersUseCase(tourAPI),
		usecase.NewListAreaCodesUseCase(tourAPI),
	)
	feeds := rest.NewFeedHandler(
		usecase.NewOpenFeedUseCase(tourAPI, a.feeds),
		usecase.NewGetFeedUseCase(a.feeds),
		usecase.NewLoadMoreFeedUseCase(a.feeds),
		usecase.NewRefreshFeedUseCase(tourAPI, a.feeds),
	)
	bookmarks := rest.NewBookmarkHandler(
		usecase.NewAddBookmarkUseCase(bookmarkRepo, events),
		usecase.NewRemoveBookmarkUseCase(bookmarkRepo, events),
		usecase.NewRemoveBookmarksUseCase(bookmarkRepo, events),
		usecase.NewCheckBookmarkUseCase(bookmarkRepo),
		usecase.NewListBookmarksUseCase(bookmarkRepo),
	)
	a.apiServer = rest.NewServer(rest.ServerConfig{
		Port:           cfg.Rest.PORT,
		AllowedOrigins: cfg.Rest.AllowedOrigins,
		RequestTimeout: cfg.Rest.RequestTimeout,
	}, tours, feeds, bookmarks, a.base)
	a.logger.Info("REST API server configured.", nil)

	return nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())
	var background sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)
		cancelApp()

		if a.apiServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			if err := a.apiServer.Stop(ctx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
			cancel()
		}
		background.Wait()
		a.close()
	}()

	a.logger.Info("Application is starting...", nil)

	background.Add(1)
	go func() {
		defer background.Done()
		memory.RunJanitor(appCtx, a.feeds, a.config.Feeds.JanitorEvery, a.config.Feeds.IdleTTL,
			a.base.WithFields(port.Fields{"component": "feed_janitor"}))
	}()

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
		return err
	}
}

// close освобождает ресурсы в порядке, обратном созданию.
func (a *App) close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("Error closing bookmark publisher", err, nil)
		}
	}
	if a.rabbit != nil {
		if err := a.rabbit.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("Error closing Redis client", err, nil)
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluent != nil {
		if err := a.fluent.Close(); err != nil {
			// fluent к этому моменту может быть недоступен, пишем напрямую в stdout
			slog.Error("Error closing fluent client", "error", err)
		}
	}
}
