package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/windrow/farmstead/internal/eventlog"
	"github.com/windrow/farmstead/internal/game"
	"github.com/windrow/farmstead/internal/handler"
	"github.com/windrow/farmstead/internal/logger"
	"github.com/windrow/farmstead/internal/metrics"
)

type Server struct {
	httpServer *http.Server
	gameSvc    game.Service
	logSvc     eventlog.Service
}

// NewServer creates a new Server instance with all routes wired
func NewServer(port int, apiKey string, trustedProxies []string, gameSvc game.Service, logSvc eventlog.Service, healthCheckers ...handler.HealthChecker) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(healthCheckers...))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/player", func(r chi.Router) {
			r.Post("/register", handler.HandleCreatePlayer(gameSvc))
			r.Get("/inventory", handler.HandleGetInventory(gameSvc))
			r.Post("/explore", handler.HandleExplore(gameSvc))
		})

		r.Route("/farm", func(r chi.Router) {
			r.Post("/cultivate", handler.HandleCultivate(gameSvc))
			r.Post("/plant", handler.HandlePlant(gameSvc))
			r.Post("/water", handler.HandleWater(gameSvc))
			r.Post("/fertilize", handler.HandleFertilize(gameSvc))
			r.Get("/growth", handler.HandleCheckGrowth(gameSvc))
			r.Post("/harvest", handler.HandleHarvest(gameSvc))
		})

		r.Route("/world", func(r chi.Router) {
			r.Get("/map", handler.HandleGetMap(gameSvc))
			r.Get("/land", handler.HandleGetLand(gameSvc))
		})

		r.Route("/merchant", func(r chi.Router) {
			r.Post("/refresh", handler.HandleRefreshMerchant(gameSvc))
			r.Get("/list", handler.HandleGetMerchants(gameSvc))
			r.Get("/offers", handler.HandleGetOffers(gameSvc))
			r.Post("/trade", handler.HandleTrade(gameSvc))
		})

		r.Get("/events", handler.HandleGetEvents(logSvc))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		gameSvc: gameSvc,
		logSvc:  logSvc,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
