package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/cors"

	"notes-api/internal/api/http/middleware"
	"notes-api/internal/config"
	"notes-api/internal/logger"
)

// NewServer оборачивает router в middleware и настраивает http.Server по конфигурации
func NewServer(cfg *config.Config, router http.Handler, log *logger.Logger) *http.Server {
	// Порядок middleware (снаружи внутрь): CORS → Logging → Rate Limiting → router
	var handler http.Handler = router
	handler = middleware.RateLimit(log, cfg.Gateway.RateLimitRPS, cfg.Gateway.RateLimitBurst)(handler)
	handler = middleware.Logging(log)(handler)
	handler = setupCORS(cfg.Gateway).Handler(handler)

	return &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.PortHTTP),
		Handler:           handler,
		ReadTimeout:       seconds(cfg.Server.HTTPReadTimeout),
		WriteTimeout:      seconds(cfg.Server.HTTPWriteTimeout),
		IdleTimeout:       seconds(cfg.Server.HTTPIdleTimeout),
		ReadHeaderTimeout: seconds(cfg.Server.HTTPReadHeaderTimeout),
	}
}

// setupCORS настраивает CORS middleware используя конфигурацию
func setupCORS(cfg *config.ConfigGateway) *cors.Cors {
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = 86400 // 24 часа по умолчанию
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Content-Type",
			"X-Requested-With",
			middleware.RequestIDHeader,
		},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         maxAge,
	})
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
