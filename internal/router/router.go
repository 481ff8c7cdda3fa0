package router

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/content-catalog/internal/handler"
	"github.com/actuallystonmai/content-catalog/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

const defaultTimeout = 30 * time.Second

// Options tune the middleware stack. Nil Logger or Metrics disables that layer.
type Options struct {
	Logger         *httplog.Logger
	Metrics        *metrics.Metrics
	Timeout        time.Duration
	AllowedOrigins []string
}

func Setup(h *handler.Handler, opts Options) http.Handler {
	r := chi.NewRouter()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger))
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	// Routes
	r.Route("/contents", func(r chi.Router) {
		r.Post("/", h.CreateContent)
		r.Get("/{contentID}", h.GetContent)
		r.Put("/{contentID}", h.UpdateContent)
		r.Delete("/{contentID}", h.DeleteContent)
	})
	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
