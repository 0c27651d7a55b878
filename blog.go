package blog

import (
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/aryansrao/aryansrao-blogs/analytics"
)

// App wires together the content store, the rendering pipeline, the GitHub
// importer and the Echo server.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *ContentStore
	GitHub *GitHubClient

	lockout      *LockoutLimiter
	links        *LinkStore
	analytics    *analytics.Store
	customRoutes []func(*App)
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, limiter, GitHub client and analytics, then
// starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("blog: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("blog: SessionSecret is required")
	}

	store, err := NewContentStore(a.Config.ContentDir)
	if err != nil {
		return fmt.Errorf("blog: init content store: %w", err)
	}
	a.Store = store

	a.lockout = NewLockoutLimiter(maxLoginAttempts, lockoutDuration)

	a.links = NewLinkStore(filepath.Join(a.Config.ContentDir, ".github_links.json"))
	if err := a.links.Load(); err != nil {
		return fmt.Errorf("blog: load github links: %w", err)
	}

	a.GitHub = NewGitHubClient(a.Config.GitHubUsername, a.Config.GitHubToken)

	analyticsStore, err := analytics.NewStore(a.Config.AnalyticsPath)
	if err != nil {
		return fmt.Errorf("blog: init analytics: %w", err)
	}
	a.analytics = analyticsStore
	if err := analytics.InitSalt(analyticsStore); err != nil {
		return fmt.Errorf("blog: init analytics salt: %w", err)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded engine assets, falling through to the site's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/static/copy-code.js", echo.WrapHandler(http.StripPrefix("/static/", embeddedHandler)))
	e.Static("/static", a.Config.StaticDir)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/tags/:tag", a.handleTag)
	e.GET("/blog/:slug", a.handlePost)

	// Machine endpoints
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/rss.xml", a.handleFeed)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/api/search", a.handleSearch)

	// GitHub import surface
	e.GET("/api/github/repos", a.handleGitHubRepos)
	e.GET("/api/github/sync", a.handleGitHubSyncAll)
	e.POST("/api/webhook/github", a.handleGitHubWebhook)

	// Admin
	e.GET("/admin", a.handleAdmin)
	e.POST("/admin/login", a.handleAdminLogin)
	e.GET("/admin/logout", handleAdminLogout)
	e.GET("/admin/dashboard", a.handleAdminDashboard)
	e.GET("/admin/new", a.handleAdminNew)
	e.GET("/admin/edit/:slug", a.handleAdminEdit)
	e.POST("/admin/save", a.handleAdminSave)
	e.DELETE("/admin/delete/:slug", a.handleAdminDelete)
	e.GET("/admin/github", a.handleAdminGitHub)
	e.GET("/admin/api/repos", a.handleAdminRepos)
	e.POST("/admin/github/import", a.handleAdminImport)
	e.POST("/admin/sync/:slug", a.handleAdminSync)
	e.GET("/admin/api/stats", a.handleAdminStats)
	e.GET("/admin/images", a.handleImageList)
	e.POST("/admin/images/upload", a.handleImageUpload)
	e.DELETE("/admin/images/:filename", a.handleImageDelete)
}

// loadPosts rebuilds the full collection from the content directory. There
// is no cache: every call re-reads, re-parses and re-renders.
func (a *App) loadPosts() ([]Post, error) {
	return BuildPosts(a.Store, a.Config)
}

// Close releases held resources. Call when the app is shutting down.
func (a *App) Close() error {
	if a.analytics != nil {
		return a.analytics.Close()
	}
	return nil
}
