// Package server Cadence
//
// The Cadence is a content scheduling service which analyses engagement of published posts,
// schedules new content and assists with AI generated headlines and insights.
//
//     Schemes: https
//     BasePath: /api
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/cadencehq/cadence/internal/insights"
	mm "github.com/cadencehq/cadence/internal/middleware"
	"github.com/cadencehq/cadence/internal/service"
)

var log = logrus.WithFields(logrus.Fields{
	"layer":   "server",
	"package": "server",
})

// Options ...
type Options struct {
	Timeout        time.Duration
	MaxBodySize    int64
	AllowedOrigins []string

	AnalyticsCacheTTL time.Duration

	APIRateLimit  int
	APIRateWindow time.Duration
	AIRateLimit   int
	AIRateWindow  time.Duration
}

type server struct {
	s   service.Service
	a   insights.Assistant
	now func() time.Time
}

// SetupRouter setups handlers to chi router. AI routes are not mounted when a is nil.
func SetupRouter(s service.Service, a insights.Assistant, r chi.Router, opts Options) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Content-Disposition", "RateLimit-Limit", "RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middleware.Recoverer,
	)
	if opts.Timeout > 0 {
		r.Use(middleware.Timeout(opts.Timeout))
	}
	if opts.MaxBodySize > 0 {
		r.Use(mm.BodyLimiter(opts.MaxBodySize))
	}

	cache := mm.NewCache(opts.AnalyticsCacheTTL)

	srv := server{
		s:   s,
		a:   a,
		now: time.Now,
	}

	r.Route("/api", func(r chi.Router) {
		if opts.APIRateLimit > 0 {
			r.Use(mm.RateLimit(opts.APIRateLimit, opts.APIRateWindow,
				"Too many requests from this IP, please try again later."))
		}

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/overview", cache.Cached(srv.getOverview))
			r.Get("/heatmap", cache.Cached(srv.getHeatmap))
			r.Get("/timeseries", cache.Cached(srv.getTimeSeries))
			r.Get("/top-posts", cache.Cached(srv.getTopPosts))
			r.Get("/best-slots", cache.Cached(srv.getBestSlots))
			r.Get("/platforms", cache.Cached(srv.getPlatformBreakdown))
		})

		r.Route("/posts", func(r chi.Router) {
			r.Use(cache.Invalidate)

			r.Post("/import", srv.importPosts)
			r.Get("/", srv.listPosts)
			r.Delete("/", srv.deleteAllPosts)
			r.Get("/{id}", srv.getPost)
			r.Put("/{id}", srv.updatePost)
			r.Delete("/{id}", srv.deletePost)
		})

		r.Route("/scheduled", func(r chi.Router) {
			r.Get("/", srv.listScheduled)
			r.Post("/", srv.createScheduled)
			r.Get("/calendar", srv.getCalendar)
			r.Get("/{id}", srv.getScheduled)
			r.Put("/{id}", srv.updateScheduled)
			r.Delete("/{id}", srv.deleteScheduled)
			r.Post("/{id}/undo-reschedule", srv.undoReschedule)
			r.Post("/{id}/apply-suggestion", srv.applySuggestion)
		})

		r.Route("/publish", func(r chi.Router) {
			r.Post("/bulk", srv.bulkPublish)
			r.Post("/{id}", srv.publish)
		})

		r.Route("/export", func(r chi.Router) {
			r.Get("/csv", srv.exportCSV)
			r.Get("/json", srv.exportJSON)
		})

		r.Post("/webhook/simulate", srv.simulateWebhook)

		if a == nil {
			return
		}

		r.Route("/ai", func(r chi.Router) {
			if opts.AIRateLimit > 0 {
				r.Use(mm.RateLimit(opts.AIRateLimit, opts.AIRateWindow,
					"Too many AI requests. Please wait a moment before trying again."))
			}

			r.Post("/headlines", srv.generateHeadlines)
			r.Post("/rewrite", srv.rewrite)
			r.Post("/explain-timing", srv.explainTiming)
			r.Post("/classify-tone", srv.classifyTone)
			r.Get("/usage", srv.getUsage)
		})
	})
}
