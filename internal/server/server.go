// Package server wires the HTTP surface: page rendering, auth endpoints,
// and the background news refresher.
package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/yashdubey2004/AI-law/config"
	"github.com/yashdubey2004/AI-law/internal/appctx"
	"github.com/yashdubey2004/AI-law/internal/catalog"
	"github.com/yashdubey2004/AI-law/internal/identity"
	"github.com/yashdubey2004/AI-law/internal/layout"
	"github.com/yashdubey2004/AI-law/internal/news"
	"github.com/yashdubey2004/AI-law/internal/search"
	"github.com/yashdubey2004/AI-law/internal/session"
	"github.com/yashdubey2004/AI-law/internal/viewmodel"
)

// Run builds the full application from cfg and serves it until the process
// exits. It blocks on the echo listener.
func Run(cfg *config.Config) error {
	logger := log.New(os.Stdout, "[HTTP] ", log.LstdFlags)

	e, err := Build(context.Background(), cfg, logger)
	if err != nil {
		return err
	}

	logger.Printf("listening on %s", cfg.Server.Address)
	return e.Start(cfg.Server.Address)
}

// Build assembles the echo instance without starting it. Split out from Run
// so tests can drive the full router with httptest.
func Build(ctx context.Context, cfg *config.Config, logger *log.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = errorHandler(logger)

	app := appctx.New()

	provider := buildProvider(cfg, logger)
	gateway := identity.NewGateway(provider)

	searcher, err := buildSearcher(cfg.Search)
	if err != nil {
		return nil, err
	}

	feed := news.NewFeed()
	if len(cfg.News.SourceURLs) > 0 {
		var rdb *redis.Client
		if cfg.Redis.Addr != "" {
			rdb = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
		}
		fetcher := news.NewFetcher(cfg.News.FetchTimeout, rdb, cfg.News.CacheTTL)
		news.NewRefresher(feed, fetcher, cfg.News.SourceURLs, cfg.News.RefreshCron).Start(ctx)
	}

	composer := layout.NewComposer(app)
	pages := NewPages(
		app,
		composer,
		feed,
		viewmodel.NewDashboardViewModel(app),
		viewmodel.NewSeededChatViewModel(time.Now),
		viewmodel.NewSearchViewModel(searcher, ""),
		viewmodel.NewProfileViewModel(app),
	)

	secret := []byte(cfg.Server.JWTSecret)
	auth := &AuthHandler{
		Gateway: gateway,
		App:     app,
		Secret:  secret,
		TTL:     cfg.Server.SessionTTL,
		Secure:  !cfg.General.Debug,
	}
	auth.Register(e.Group("/auth"))

	authed := e.Group("", session.PageMiddleware(secret, "/login"))
	pages.Register(e, authed)
	e.GET("/api/me", me, session.Middleware(secret))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Unknown paths still get the authenticated chrome with a not-found
	// slot, so the shell never disappears mid-session.
	e.RouteNotFound("/*", pages.NotFound)

	return e, nil
}

func buildProvider(cfg *config.Config, logger *log.Logger) identity.Provider {
	if cfg.Identity.BaseURL != "" {
		return identity.NewRemoteProvider(cfg.Identity.BaseURL, cfg.Identity.AnonKey, cfg.Identity.Timeout)
	}
	logger.Printf("no identity base_url configured, using in-memory provider")
	return identity.NewLocalProvider()
}

func buildSearcher(cfg config.SearchConfig) (search.Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Engine == "bleve" {
		return search.NewBleveSearcher(catalog.SeedCases(), cfg.MaxResults)
	}
	return search.NewMockSearcher(cfg.SimulatedLatency), nil
}

func me(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	return c.JSON(http.StatusOK, map[string]string{"user_id": userID})
}

// errorHandler keeps API error bodies uniform JSON.
func errorHandler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		if code >= http.StatusInternalServerError {
			logger.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}
		if err := c.JSON(code, HTTPError{Error: msg}); err != nil {
			logger.Printf("error response failed: %v", err)
		}
	}
}
