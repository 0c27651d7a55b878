package blog

import (
	"sort"
	"strings"
	"time"

	"github.com/aryansrao/aryansrao-blogs/markdown"
)

// wordsPerMinute is the assumed reading speed for the reading-time estimate.
const wordsPerMinute = 200

// summaryLength is how many characters of the raw body back-fill a missing
// summary. The cut is by rune count, not word boundary.
const summaryLength = 160

// CountWords counts whitespace-delimited tokens in a raw Markdown body.
func CountWords(body string) int {
	return len(strings.Fields(body))
}

// ReadingTime estimates reading time in whole minutes, never less than 1.
func ReadingTime(body string) int {
	minutes := CountWords(body) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// BuildPost assembles a render-ready Post from parsed metadata, the rendered
// HTML body, and the document's raw body and file identity.
//
// Every missing value degrades silently: an unparseable author date falls
// back to the file's modification time (or the current time), a missing
// summary is cut from the body, keywords come from tags, and the canonical
// URL and social image fall back to site-level defaults.
func BuildPost(meta Metadata, htmlBody, rawBody, filename string, mtime time.Time, cfg SiteConfig) Post {
	date, err := time.ParseInLocation("2006-01-02", meta.Date, time.UTC)
	if err != nil {
		date = mtime
		if date.IsZero() {
			date = time.Now()
		}
	}
	date = date.Local()

	slug := markdown.Slugify(meta.Title)

	summary := meta.Summary
	if summary == "" {
		runes := []rune(rawBody)
		if len(runes) > summaryLength {
			runes = runes[:summaryLength]
		}
		summary = string(runes) + "..."
	}

	keywords := meta.Keywords
	if keywords == "" {
		top := meta.Tags
		if len(top) > 5 {
			top = top[:5]
		}
		keywords = strings.Join(top, ", ")
	}

	canonical := meta.Canonical
	if canonical == "" {
		canonical = cfg.URL + "/blog/" + slug
	}

	image := meta.Image
	if image == "" {
		image = cfg.URL + "/og-default.png"
	}

	imageAlt := meta.ImageAlt
	if imageAlt == "" {
		imageAlt = meta.Title
	}

	author := meta.Author
	if author == "" {
		author = cfg.Author
	}

	return Post{
		Title:       meta.Title,
		Content:     htmlBody,
		Summary:     summary,
		Date:        date.Format("January 02, 2006"),
		DateISO:     date.Format("2006-01-02T15:04:05-0700"),
		Tags:        meta.Tags,
		Filename:    filename,
		Slug:        slug,
		Author:      author,
		Image:       image,
		ImageAlt:    imageAlt,
		Keywords:    keywords,
		Canonical:   canonical,
		ReadingTime: ReadingTime(rawBody),
		WordCount:   CountWords(rawBody),
		GitHubRepo:  meta.GitHubRepo,
		Website:     meta.Website,
	}
}

// BuildPosts runs the whole pipeline over every document in the store:
// front-matter parse, Markdown transduction, post assembly. Documents
// without a parseable front-matter block are dropped without a trace.
// The result is sorted by DateISO descending; the zero-padded ISO format
// makes the string comparison a date comparison.
func BuildPosts(store *ContentStore, cfg SiteConfig) ([]Post, error) {
	docs, err := store.List()
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(docs))
	for _, doc := range docs {
		meta, body, ok := ParseFrontMatter(string(doc.Raw))
		if !ok {
			continue
		}
		htmlBody := markdown.ToHTML(body)
		posts = append(posts, BuildPost(meta, htmlBody, body, doc.Filename, doc.ModTime, cfg))
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].DateISO > posts[j].DateISO
	})
	return posts, nil
}

// FilterByTag returns the posts carrying the given tag, compared
// case-insensitively.
func FilterByTag(posts []Post, tag string) []Post {
	normalized := strings.ToLower(tag)
	var filtered []Post
	for _, p := range posts {
		for _, t := range p.Tags {
			if strings.ToLower(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// SearchPosts matches the query case-insensitively against each post's
// title, summary, tags and tag-stripped content, returning the projection
// used by the search API. An empty query matches nothing.
func SearchPosts(posts []Post, query string) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	results := []SearchResult{}
	if query == "" {
		return results
	}
	for _, p := range posts {
		haystack := strings.ToLower(p.Title + " " + p.Summary + " " +
			strings.Join(p.Tags, " ") + " " + StripHTMLTags(p.Content))
		if strings.Contains(haystack, query) {
			results = append(results, SearchResult{
				Title:       p.Title,
				Slug:        p.Slug,
				Summary:     p.Summary,
				Date:        p.Date,
				DateISO:     p.DateISO,
				Tags:        p.Tags,
				ReadingTime: p.ReadingTime,
			})
		}
	}
	return results
}

// StripHTMLTags removes everything between < and > so rendered content can
// be searched as plain text.
func StripHTMLTags(input string) string {
	var out strings.Builder
	out.Grow(len(input))
	inTag := false
	for _, c := range input {
		switch {
		case c == '<':
			inTag = true
		case c == '>':
			inTag = false
		case !inTag:
			out.WriteRune(c)
		}
	}
	return out.String()
}
