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

	"github.com/osse101/CaseForge_Go/internal/handler"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/metrics"
)

// Options configures the HTTP server.
type Options struct {
	Port           int
	AdminAPIKey    string
	TrustedProxies []string
	MaxBodyBytes   int64
	Engine         handler.Engine
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wraps it in an http.Server.
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter mounts every route. Admin routes exist only when an API key is set.
func NewRouter(opts Options) http.Handler {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	detector := NewSuspiciousActivityDetector(RateLimitPerWindow, RateWindow)
	engine := opts.Engine

	r := chi.NewRouter()
	// outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBody))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", handler.HandleGetCatalog(engine))
		r.Get("/price-multiplier", handler.HandlePriceMultiplier(engine))
		r.Get("/shop", handler.HandleListShop(engine))

		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/", handler.HandleGetHoldings(engine))
			r.Post("/cases/{caseID}/open", handler.HandleOpenCase(engine))
			r.Post("/drop/resolve", handler.HandleResolveDrop(engine))
			r.Post("/craft", handler.HandleCraft(engine))
			r.Post("/shop/buy", handler.HandleBuy(engine))
			r.Post("/deposit", handler.HandleDeposit(engine))
			r.Post("/items/{instanceID}/sell", handler.HandleSellItem(engine))
		})

		if opts.AdminAPIKey == "" {
			slog.Warn(LogMsgAdminDisabled)
			return
		}
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.AdminAPIKey, opts.TrustedProxies, detector))
			r.Get("/rarity", handler.HandleGetRarity(engine))
			r.Put("/rarity", handler.HandleSetRarity(engine))
		})
	})

	return r
}

// responseWriter captures the status code for request logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.written {
		return
	}
	rw.statusCode = statusCode
	rw.written = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware tags the request context with a request id, echoes it in
// X-Request-ID and logs start and completion. Secrets in headers are redacted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start serves until Stop is called.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
