package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpapi "notes-api/internal/api/http"
	"notes-api/internal/config"
	"notes-api/internal/logger"
	"notes-api/internal/metrics"
	"notes-api/internal/repository"
	"notes-api/internal/repository/memory"
	"notes-api/internal/repository/mysql"
	notesService "notes-api/internal/service/notes"
)

const (
	dbConnectTimeout = time.Minute
	dbStatsInterval  = 15 * time.Second
)

// Server представляет сервер приложения: хранилище, HTTP API и метрики
type Server struct {
	HTTPServer *http.Server
	Config     *config.Config

	// Контекст фоновых задач (сбор статистики пула БД), отменяется при shutdown
	Ctx    context.Context
	Cancel context.CancelFunc

	log      *logger.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	closers  []func() error
}

// NewServer создает сервер. Компоненты создаются в Initialize
func NewServer(cfg *config.Config, log *logger.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		Config: cfg,
		Ctx:    ctx,
		Cancel: cancel,
		log:    log,
	}
}

// Initialize инициализирует компоненты сервера (Repository → Service → Handler → Router)
func (s *Server) Initialize(ctx context.Context) error {
	var routerOpts []httpapi.RouterOption

	if s.Config.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.metrics = metrics.New(s.registry)
		routerOpts = append(routerOpts, httpapi.WithMetrics(s.metrics, s.registry, s.Config.Metrics.Path))
	}

	noteRepo, opts, err := s.initRepository(ctx)
	if err != nil {
		return err
	}
	routerOpts = append(routerOpts, opts...)

	noteSvc := notesService.NewNoteService(noteRepo)
	s.log.Info("Initialized note service")

	noteHandler := httpapi.NewHandler(noteSvc, s.log)

	if s.Config.Swagger.Enabled {
		routerOpts = append(routerOpts, httpapi.WithSwagger())
		s.log.Info("Swagger document available at /swagger.json")
	}

	router := httpapi.NewRouter(noteHandler, routerOpts...)
	s.HTTPServer = httpapi.NewServer(s.Config, router, s.log)

	return nil
}

func (s *Server) initRepository(ctx context.Context) (repository.NoteRepository, []httpapi.RouterOption, error) {
	switch s.Config.Storage.Driver {
	case config.StorageMySQL:
		repo, err := s.openMySQL(ctx)
		if err != nil {
			return nil, nil, err
		}

		if s.metrics != nil {
			go s.reportDBStats(repo)
		}

		s.log.Info("Initialized MySQL repository")
		return repo, []httpapi.RouterOption{httpapi.WithHealthCheck(repo)}, nil
	default:
		s.log.Info("Initialized in-memory repository (map-based)")
		return memory.NewRepository(), nil, nil
	}
}

func (s *Server) openMySQL(ctx context.Context) (*mysql.Repository, error) {
	cfg := s.Config.Storage.MySQL

	connectCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
	defer cancel()

	db, err := mysql.Open(connectCtx, mysql.Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		User:            cfg.User,
		Password:        cfg.Password,
		Database:        cfg.Database,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := mysql.NewRepository(db)
	if err := repo.EnsureSchema(connectCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}

	s.closers = append(s.closers, db.Close)
	return repo, nil
}

// reportDBStats периодически обновляет метрики пула соединений
func (s *Server) reportDBStats(repo *mysql.Repository) {
	ticker := time.NewTicker(dbStatsInterval)
	defer ticker.Stop()

	for {
		s.metrics.ObserveDBStats(repo.Stats())

		select {
		case <-s.Ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Start запускает HTTP сервер в горутине.
// Возвращает канал ошибок для отслеживания ошибок сервера
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.log.WithField("addr", s.HTTPServer.Addr).Info("HTTP server listening")
		if err := s.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	return errChan
}

// Shutdown выполняет graceful shutdown сервера и закрывает хранилище
func (s *Server) Shutdown() error {
	s.log.Info("Starting graceful shutdown...")
	s.Cancel()

	// Даем серверу время на завершение активных запросов из конфига
	shutdownTimeout := time.Duration(s.Config.Server.GracefulShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var shutdownErr error
	if s.HTTPServer != nil {
		if err := s.HTTPServer.Shutdown(ctx); err != nil {
			s.log.WithError(err).Warn("Graceful shutdown timeout, forcing stop...")
			s.HTTPServer.Close()
			shutdownErr = err
		}
	}

	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			s.log.WithError(err).Warn("Failed to close storage")
		}
	}

	return shutdownErr
}
