package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/wojg58/Thursday/internal/constants"
	"github.com/wojg58/Thursday/internal/core/port"
)

// ServerConfig - параметры HTTP-сервера.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Server - REST API сервиса.
type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewRouter собирает маршруты. Отдельно от NewServer, чтобы тесты могли
// гонять роутер через httptest.
func NewRouter(cfg ServerConfig, tours *TourHandler, feeds *FeedHandler, bookmarks *BookmarkHandler, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constants.HeaderUserID, constants.HeaderTraceID},
		ExposedHeaders:   []string{constants.HeaderTraceID},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/areas", tours.ListAreaCodes)

		r.Route("/tours", func(r chi.Router) {
			r.Get("/", tours.ListTours)
			r.Get("/map", tours.GetMapMarkers)
			r.Get("/{contentID}", tours.GetTourDetail)
		})

		r.Route("/feeds", func(r chi.Router) {
			r.Post("/", feeds.OpenFeed)
			r.Get("/{feedID}", feeds.GetFeed)
			r.Post("/{feedID}/more", feeds.LoadMore)
			r.Put("/{feedID}", feeds.RefreshFeed)
		})

		// Закладки приватные, пользователя подставляет шлюз
		r.Route("/bookmarks", func(r chi.Router) {
			r.Use(AuthMiddleware)

			r.Get("/", bookmarks.ListBookmarks)
			r.Post("/", bookmarks.AddBookmark)
			r.Delete("/", bookmarks.RemoveBookmarks)
			r.Get("/{contentID}", bookmarks.CheckBookmark)
			r.Delete("/{contentID}", bookmarks.RemoveBookmark)
		})
	})

	return r
}

// NewServer создает новый экземпляр сервера.
func NewServer(cfg ServerConfig, tours *TourHandler, feeds *FeedHandler, bookmarks *BookmarkHandler, baseLogger port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, tours, feeds, bookmarks, baseLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger.WithFields(port.Fields{"component": "rest_server"}),
	}
}

// Start блокируется до остановки сервера.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
