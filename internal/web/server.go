// Package web is the local JSON gateway the UI talks to. It fronts the
// remote backend with a typed client, re-sorts and filters fetched
// lists in memory, caches them per query, and renders exports.
package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SharmiliRS/money-manager-frontend/internal/api"
	"github.com/SharmiliRS/money-manager-frontend/internal/cache"
	"github.com/SharmiliRS/money-manager-frontend/internal/config"
	"github.com/SharmiliRS/money-manager-frontend/internal/core"
	"github.com/SharmiliRS/money-manager-frontend/internal/log"
	"github.com/SharmiliRS/money-manager-frontend/internal/session"
)

// DefaultPageSize is the number of transactions per list page.
const DefaultPageSize = 10

// Server is the gateway HTTP server.
type Server struct {
	http.Server

	cfg      *config.Config
	client   *api.Client
	sessions *session.Store
	logger   *log.Logger

	listCache *cache.LRU[[]core.Transaction]
	seq       *cache.Sequencer
	limiter   *rateLimiter
	metrics   *metrics

	stopCleanup  chan struct{}
	cleanupDone  chan struct{}
	shutdownOnce sync.Once

	now func() time.Time
}

// NewServer wires routes, middleware and caches.
func NewServer(cfg *config.Config, client *api.Client, sessions *session.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}

	s := &Server{
		cfg:         cfg,
		client:      client,
		sessions:    sessions,
		logger:      logger.WithComponent(log.ComponentGateway),
		listCache:   cache.NewLRU[[]core.Transaction](cfg.CacheSize, cfg.CacheTTL),
		seq:         cache.NewSequencer(),
		limiter:     newRateLimiter(),
		metrics:     newMetrics(),
		stopCleanup: make(chan struct{}),
		cleanupDone: make(chan struct{}),
		now:         time.Now,
	}
	s.metrics.observeCache(s.listCache)

	r := chi.NewRouter()
	r.Use(s.withRequestID)
	r.Use(s.withLogging)
	r.Use(s.withSecurityHeaders)

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/session", s.handleWhoAmI)
		r.Post("/session", s.handleLogin)
		r.Delete("/session", s.handleLogout)

		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/forgot-password", s.handleForgotPassword)
		r.Post("/auth/verify-reset-code", s.handleVerifyResetCode)
		r.Post("/auth/reset-password", s.handleResetPassword)

		r.Get("/transactions", s.handleListTransactions)
		r.Get("/transactions/export", s.handleExportTransactions)

		r.Group(func(r chi.Router) {
			r.Use(s.withRateLimit)
			r.Post("/income", s.handleCreate(core.Income))
			r.Put("/income/{id}", s.handleUpdate(core.Income))
			r.Delete("/income/{id}", s.handleDelete(core.Income))
			r.Post("/expense", s.handleCreate(core.Expense))
			r.Put("/expense/{id}", s.handleUpdate(core.Expense))
			r.Delete("/expense/{id}", s.handleDelete(core.Expense))
		})

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/categories", s.handleCategories)
		r.Get("/accounts", s.handleAccounts)
	})

	s.Server = http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.startCacheCleanup()
	return s
}

func (s *Server) startCacheCleanup() {
	defer close(s.cleanupDone)

	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := s.listCache.CleanExpired(); cleaned > 0 {
				s.logger.Debug("cache cleanup completed", log.FieldCount, cleaned)
			}
		case <-s.stopCleanup:
			return
		}
	}
}

// Shutdown stops the HTTP server and the background cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		close(s.stopCleanup)
		<-s.cleanupDone
		s.limiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// authedClient resolves the saved session into an authenticated client.
func (s *Server) authedClient() (*api.Client, session.Session, error) {
	sess, err := s.sessions.Load()
	if err != nil {
		return nil, session.Session{}, err
	}
	return s.client.WithToken(sess.Token), sess, nil
}
