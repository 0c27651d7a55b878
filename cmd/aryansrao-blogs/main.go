package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	blog "github.com/aryansrao/aryansrao-blogs"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfg := blog.SiteConfig{
		Title:          blog.EnvOr("SITE_TITLE", "Aryan S Rao"),
		Description:    os.Getenv("SITE_DESCRIPTION"),
		URL:            blog.EnvOr("SITE_URL", "http://localhost:8080"),
		Author:         blog.EnvOr("SITE_AUTHOR", "aryansrao"),
		Language:       os.Getenv("SITE_LANGUAGE"),
		TwitterHandle:  os.Getenv("SITE_TWITTER"),
		Logo:           os.Getenv("SITE_LOGO"),
		Addr:           blog.EnvOr("LISTEN_ADDR", ":8080"),
		ContentDir:     blog.EnvOr("CONTENT_DIR", "content"),
		StaticDir:      blog.EnvOr("STATIC_DIR", "static"),
		AdminPassword:  blog.MustEnv("ADMIN_PASSWORD"),
		SessionSecret:  blog.MustEnv("SESSION_SECRET"),
		CookieSecure:   os.Getenv("COOKIE_SECURE") == "true",
		GitHubUsername: blog.EnvOr("GITHUB_USERNAME", "aryansrao"),
		GitHubToken:    os.Getenv("GITHUB_TOKEN"),
		AnalyticsPath:  blog.EnvOr("ANALYTICS_DB", "data/analytics.db"),
	}

	app := blog.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
