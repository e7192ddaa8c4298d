package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notes-api/internal/api/http/middleware"
	"notes-api/internal/api/swagger"
	"notes-api/internal/metrics"
)

// HealthChecker хранилище, доступность которого можно проверить
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type routerOptions struct {
	metrics     *metrics.Metrics
	gatherer    prometheus.Gatherer
	metricsPath string
	health      HealthChecker
	swagger     bool
}

// RouterOption настраивает дополнительные маршруты
type RouterOption func(*routerOptions)

// WithMetrics включает сбор метрик по маршрутам и их отдачу по path
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer, path string) RouterOption {
	return func(o *routerOptions) {
		o.metrics = m
		o.gatherer = gatherer
		o.metricsPath = path
	}
}

// WithHealthCheck включает проверку хранилища в /healthz
func WithHealthCheck(hc HealthChecker) RouterOption {
	return func(o *routerOptions) {
		o.health = hc
	}
}

// WithSwagger включает отдачу OpenAPI документа
func WithSwagger() RouterOption {
	return func(o *routerOptions) {
		o.swagger = true
	}
}

// NewRouter регистрирует маршруты API заметок
func NewRouter(h *Handler, opts ...RouterOption) *mux.Router {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api := r.PathPrefix("/api/v1/notes").Subrouter()
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	if o.metrics != nil {
		api.Use(middleware.Metrics(o.metrics))
	}

	api.HandleFunc("", h.ListNotes).Methods(http.MethodGet)
	// /add регистрируется раньше /{id}, иначе "add" разбирался бы как ID
	api.HandleFunc("/add", h.CreateNote).Methods(http.MethodPost)
	api.HandleFunc("", h.CreateNoteDeprecated).Methods(http.MethodPost)
	api.HandleFunc("/{id}", h.GetNote).Methods(http.MethodGet)
	api.HandleFunc("/{id}", h.UpdateNote).Methods(http.MethodPut)
	api.HandleFunc("/{id}", h.DeleteNote).Methods(http.MethodDelete)

	r.HandleFunc("/healthz", healthHandler(o.health)).Methods(http.MethodGet)

	if o.gatherer != nil {
		r.Handle(o.metricsPath, promhttp.HandlerFor(o.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	if o.swagger {
		swagger.Register(r)
	}

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "Not Found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func healthHandler(hc HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hc != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := hc.Ping(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
