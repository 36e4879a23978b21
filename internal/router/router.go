package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/threadfeed/internal/config"
	"github.com/itchan-dev/threadfeed/internal/handler"
	mw "github.com/itchan-dev/threadfeed/internal/middleware"
	"github.com/itchan-dev/threadfeed/internal/middleware/metrics"
)

// Pages run small inline scripts and may embed remote images from posts.
const csp = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src * data:; frame-ancestors 'none'"

// New creates and configures a chi router with all the routes.
func New(h *handler.Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(mw.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chimw.Compress(5))

	if len(cfg.Public.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Public.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", mw.RequestIdHeader},
			ExposedHeaders: []string{mw.RequestIdHeader},
			MaxAge:         300,
		}))
	}

	r.Use(mw.SecurityHeaders(cfg.Public.SecureCookies, csp))

	// operational
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// json api
	r.Get("/threads.json", h.GetThreads)
	r.Get("/threads/{thread}/feed.json", h.GetFeed)
	r.Get("/posts.json", h.GetPosts)
	r.Get("/posts/{post}.json", h.GetPost)

	// writes, guarded by the write password inside the handlers
	r.Post("/thread/form_handler", h.CreateThread)
	r.Post("/post/form_handler", h.CreatePost)

	// pages
	r.Get("/", h.Index)
	r.Get("/threads", h.ThreadsPage)
	r.Get("/threads/{thread}", h.ThreadPage)

	return r
}
