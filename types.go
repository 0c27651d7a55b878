// Package blog is the engine behind aryansrao's blog: a directory of
// Markdown documents rendered through an extended Markdown pipeline and
// served with Echo, with an admin panel and GitHub README imports.
package blog

import "time"

// Metadata is the decoded front-matter block of one document. Absent keys
// keep their zero value; a document with no front matter at all is skipped
// by the collection builder, never rejected with an error.
type Metadata struct {
	Title      string
	Date       string // author-supplied, YYYY-MM-DD
	Tags       []string
	Summary    string
	Author     string
	Image      string
	ImageAlt   string
	Keywords   string
	Canonical  string
	GitHubRepo string
	Website    string
}

// Post is the fully resolved, render-ready representation of one document.
// It is self-contained: once built it carries no reference to its source
// file and lives only for the duration of one collection build.
type Post struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"` // rendered HTML body
	Summary     string   `json:"summary"`
	Date        string   `json:"date"`     // human-readable display date
	DateISO     string   `json:"date_iso"` // ISO 8601, sortable as a string
	Tags        []string `json:"tags"`
	Filename    string   `json:"filename"`
	Slug        string   `json:"slug"` // derived from title, not filename
	Author      string   `json:"author"`
	Image       string   `json:"image"`
	ImageAlt    string   `json:"image_alt"`
	Keywords    string   `json:"keywords"`
	Canonical   string   `json:"canonical"`
	ReadingTime int      `json:"reading_time"` // minutes, always >= 1
	WordCount   int      `json:"word_count"`
	GitHubRepo  string   `json:"github_repo,omitempty"`
	Website     string   `json:"website,omitempty"`
}

// SearchResult is the projection of Post returned by the search API; it
// omits the rendered HTML content.
type SearchResult struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	Date        string   `json:"date"`
	DateISO     string   `json:"date_iso"`
	Tags        []string `json:"tags"`
	ReadingTime int      `json:"reading_time"`
}

// Document is one raw entry from the content store, read in full before the
// pipeline runs so the pipeline itself never touches the filesystem.
type Document struct {
	Filename string
	Raw      []byte
	ModTime  time.Time
}

// Image describes an uploaded image in the static uploads directory.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int64
	Uploaded     time.Time
}
