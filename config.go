package blog

import (
	"log"
	"os"
)

// SiteConfig holds all configuration for the blog.
type SiteConfig struct {
	Title         string // Site title (default "Aryan S Rao")
	Description   string // Site description for RSS and meta tags
	URL           string // Canonical URL (default "http://localhost:8080")
	Author        string // Author name, also the per-post default
	Language      string // Content language code (default "en")
	TwitterHandle string // Twitter handle for meta tags
	Logo          string // Logo path (default "/logo.png")

	Addr       string // Listen address (default ":8080")
	ContentDir string // Markdown document directory (default "content")
	StaticDir  string // Static asset directory (default "static")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	GitHubUsername string // GitHub user whose repos can be imported
	GitHubToken    string // Optional token for higher API rate limits

	AnalyticsPath string // SQLite path for page-view counts (default "data/analytics.db")
}

func (c *SiteConfig) setDefaults() {
	if c.Title == "" {
		c.Title = "Aryan S Rao"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8080"
	}
	if c.Author == "" {
		c.Author = "aryansrao"
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.Logo == "" {
		c.Logo = "/logo.png"
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.GitHubUsername == "" {
		c.GitHubUsername = "aryansrao"
	}
	if c.AnalyticsPath == "" {
		c.AnalyticsPath = "data/analytics.db"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("blog: required environment variable %s is not set", key)
	}
	return v
}
