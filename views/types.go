// Package views renders every page of the blog as hand-written templ
// components. Handlers convert engine types into the view models here so
// templates never reach back into the engine.
package views

import "time"

// SiteConfig carries the site-wide values templates interpolate.
type SiteConfig struct {
	Title         string
	Description   string
	URL           string
	Author        string
	TwitterHandle string
	Logo          string
}

// BlogPost is the view model for one rendered blog post.
type BlogPost struct {
	Title       string
	Slug        string
	Content     string // rendered HTML
	Summary     string
	Date        string // display form
	DateISO     string
	Tags        []string
	Author      string
	Image       string
	ImageAlt    string
	Keywords    string
	Canonical   string
	ReadingTime int
	WordCount   int
	GitHubRepo  string
	Website     string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string
	OGType      string // "website" or "article"
}

// EditorData is everything the admin editor form needs to render.
type EditorData struct {
	Editing   bool
	Filename  string
	Title     string
	Date      string
	Tags      string // comma-separated form value
	Summary   string
	Body      string
	CsrfToken string
}

// AdminImage is one row of the admin image manager.
type AdminImage struct {
	Filename string
	URL      string
	Size     int64
	Uploaded time.Time
}
