// Package folio serves a single-page personal portfolio built with Go, Echo,
// and templ. The page is rendered from a read-only content tree with
// server-side tag filtering and a light/dark theme toggle, and the same page
// can be exported as static files.
//
// The page components live in the views package and are plugged in through
// ViewFuncs, so a site can replace any of them while folio keeps the handler
// logic, middleware, and content loading.
package folio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hsayar/folio/content"
	"github.com/hsayar/folio/i18n"
	"github.com/hsayar/folio/views"
)

// ViewFuncs holds the components the handlers render. This is the
// inversion-of-control point that lets a site own its templates.
type ViewFuncs struct {
	Page            func(d views.PageData) templ.Component
	ProjectsPartial func(d views.PageData) templ.Component
	NotFound        func(c i18n.Copy, theme views.Theme, routes views.Routes) templ.Component
	ServerError     func(c i18n.Copy, theme views.Theme, routes views.Routes) templ.Component
}

func (v *ViewFuncs) setDefaults() {
	if v.Page == nil {
		v.Page = views.Page
	}
	if v.ProjectsPartial == nil {
		v.ProjectsPartial = views.ProjectsBody
	}
	if v.NotFound == nil {
		v.NotFound = views.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = views.ServerError
	}
}

// App is the central folio application. It wires together the catalog,
// handlers, middleware, and page components.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Catalog *Catalog
	Views   ViewFuncs
	Logger  *slog.Logger

	portfolio     *content.Portfolio
	toggleLimiter *RateLimiter
	registry      *prometheus.Registry
	toggles       *prometheus.CounterVec
	customRoutes  []func(*App)
	now           func() time.Time

	ogOnce sync.Once
	ogPNG  []byte
	ogErr  error
}

// New creates an App, loads its content, and registers middleware and
// routes. The server is not started.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		now:    time.Now,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	a.Views.setDefaults()

	if a.Logger == nil {
		a.Logger = slog.Default()
	}
	if err := a.Config.Validate(); err != nil {
		return nil, fmt.Errorf("folio: %w", err)
	}
	if a.Config.SessionSecret == "" {
		a.Logger.Warn("no session secret configured, theme preferences reset on restart")
		a.Config.SessionSecret = randomSecret()
	}

	if a.portfolio == nil {
		p, err := content.Load(a.Config.ContentPath)
		if err != nil {
			return nil, fmt.Errorf("folio: load content: %w", err)
		}
		a.portfolio = p
	}
	a.Catalog = NewCatalog(a.portfolio)

	a.toggleLimiter = NewRateLimiter(a.Config.ToggleLimit, a.Config.ToggleWindow)
	a.registry = prometheus.NewRegistry()
	a.toggles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "folio",
		Name:      "theme_toggles_total",
		Help:      "Theme toggles by resulting theme.",
	}, []string{"theme"})
	a.registry.MustRegister(a.toggles)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	return a, nil
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully
// within ShutdownTimeout.
func (a *App) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("listening", slog.String("addr", a.Config.Addr), slog.String("url", a.Config.URL))
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("folio: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/*", a.handleAsset)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/og.png", a.handleOGImage)
	e.GET("/healthz", handleHealth)

	e.GET("/", a.handleHome)
	e.GET("/tag/:slug/", a.handleTag)
	e.POST("/theme/", a.handleTheme)

	api := e.Group("/api")
	api.GET("/profile", a.handleAPIProfile)
	api.GET("/projects", a.handleAPIProjects)
	api.GET("/tags", a.handleAPITags)

	if a.Config.MetricsEnabled {
		e.GET("/metrics", a.metricsHandler())
	}
}

// Close releases background resources. Call it when the app shuts down.
func (a *App) Close() error {
	if a.toggleLimiter != nil {
		a.toggleLimiter.Stop()
	}
	return nil
}
