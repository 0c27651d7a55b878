package blog

import (
	"strings"
	"testing"
	"time"
)

func testConfig() SiteConfig {
	cfg := SiteConfig{
		Title:  "Test Blog",
		URL:    "https://example.com",
		Author: "tester",
	}
	cfg.setDefaults()
	return cfg
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"one two\tthree\nfour", 4},
		{"  leading and trailing  ", 3},
	}
	for _, tt := range tests {
		if got := CountWords(tt.body); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.body, got, tt.want)
		}
	}
}

func TestCountWordsTrailingWhitespace(t *testing.T) {
	body := "some words in a body"
	if CountWords(body) != CountWords(body+" ") {
		t.Error("trailing whitespace changed the word count")
	}
}

func TestReadingTimeMinimumOne(t *testing.T) {
	if got := ReadingTime(""); got != 1 {
		t.Errorf("ReadingTime(empty) = %d, want 1", got)
	}
	long := strings.Repeat("word ", 450)
	if got := ReadingTime(long); got != 2 {
		t.Errorf("ReadingTime(450 words) = %d, want 2", got)
	}
}

func TestBuildPostDefaults(t *testing.T) {
	cfg := testConfig()
	meta := Metadata{
		Title: "Hello, World!",
		Date:  "2024-01-15",
		Tags:  []string{"a", "b", "c", "d", "e", "f"},
	}
	body := strings.Repeat("x", 200)
	post := BuildPost(meta, "<p>html</p>", body, "hello.md", time.Time{}, cfg)

	if post.Slug != "hello-world" {
		t.Errorf("Slug = %q", post.Slug)
	}
	if post.Summary != strings.Repeat("x", 160)+"..." {
		t.Errorf("Summary = %q (len %d)", post.Summary, len(post.Summary))
	}
	if post.Keywords != "a, b, c, d, e" {
		t.Errorf("Keywords = %q", post.Keywords)
	}
	if post.Canonical != "https://example.com/blog/hello-world" {
		t.Errorf("Canonical = %q", post.Canonical)
	}
	if post.Image != "https://example.com/og-default.png" {
		t.Errorf("Image = %q", post.Image)
	}
	if post.ImageAlt != "Hello, World!" {
		t.Errorf("ImageAlt = %q", post.ImageAlt)
	}
	if post.Author != "tester" {
		t.Errorf("Author = %q", post.Author)
	}
	wantDay := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Local().Format("2006-01-02")
	if !strings.HasPrefix(post.DateISO, wantDay) {
		t.Errorf("DateISO = %q, want %s prefix", post.DateISO, wantDay)
	}
}

func TestBuildPostInvalidDateFallsBackToModTime(t *testing.T) {
	cfg := testConfig()
	mtime := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	meta := Metadata{Title: "T", Date: "2024-13-40"}
	post := BuildPost(meta, "", "body", "t.md", mtime, cfg)

	if !strings.HasPrefix(post.DateISO, mtime.Local().Format("2006-01-02")) {
		t.Errorf("DateISO = %q, want modtime date", post.DateISO)
	}
}

func TestBuildPostSummaryShortBody(t *testing.T) {
	cfg := testConfig()
	post := BuildPost(Metadata{Title: "T"}, "", "short body", "t.md", time.Now(), cfg)
	if post.Summary != "short body..." {
		t.Errorf("Summary = %q", post.Summary)
	}
}

func TestBuildPostsSortsByDateDescending(t *testing.T) {
	dir := t.TempDir()
	store, err := NewContentStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	write := func(name, title, date string) {
		doc := "---\ntitle: \"" + title + "\"\ndate: \"" + date + "\"\n---\n\nbody\n"
		if err := store.Write(name, []byte(doc)); err != nil {
			t.Fatal(err)
		}
	}
	write("older.md", "Older", "2024-01-01")
	write("newer.md", "Newer", "2024-01-02")
	// No front matter: silently dropped.
	if err := store.Write("broken.md", []byte("just some markdown")); err != nil {
		t.Fatal(err)
	}

	posts, err := BuildPosts(store, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].Title != "Newer" || posts[1].Title != "Older" {
		t.Errorf("order = %q, %q", posts[0].Title, posts[1].Title)
	}
}

func TestFilterByTag(t *testing.T) {
	posts := []Post{
		{Slug: "a", Tags: []string{"Go", "web"}},
		{Slug: "b", Tags: []string{"rust"}},
	}
	got := FilterByTag(posts, "go")
	if len(got) != 1 || got[0].Slug != "a" {
		t.Errorf("FilterByTag = %+v", got)
	}
}

func TestSearchPosts(t *testing.T) {
	posts := []Post{
		{Title: "Go Concurrency", Slug: "go-concurrency", Content: "<p>channels and goroutines</p>"},
		{Title: "Rust Ownership", Slug: "rust-ownership", Content: "<p>borrow checker</p>"},
	}
	got := SearchPosts(posts, "goroutines")
	if len(got) != 1 || got[0].Slug != "go-concurrency" {
		t.Errorf("SearchPosts(goroutines) = %+v", got)
	}
	if len(SearchPosts(posts, "")) != 0 {
		t.Error("empty query should match nothing")
	}
	// Tag markup must not be searchable.
	if len(SearchPosts(posts, "<p>")) != 0 {
		t.Error("HTML tags should be stripped from the haystack")
	}
}

func TestStripHTMLTags(t *testing.T) {
	got := StripHTMLTags(`<p>hello <a href="x">world</a></p>`)
	if got != "hello world" {
		t.Errorf("StripHTMLTags = %q", got)
	}
}
