package blog

import (
	"strings"
	"testing"
)

func TestPostDocumentRoundTrips(t *testing.T) {
	repo := GitHubRepo{
		Name:        "cool-tool",
		FullName:    "aryansrao/cool-tool",
		Description: `A "cool" tool`,
		PushedAt:    "2024-05-10T08:30:00Z",
		Language:    "Rust",
		Topics:      []string{"cli", "tooling", "parser", "extra-topic"},
		Homepage:    "https://cool.example.com",
	}
	doc := postDocument(repo, "# Cool Tool\n\nDoes things.", "aryansrao")

	meta, body, ok := ParseFrontMatter(doc)
	if !ok {
		t.Fatal("generated document did not parse")
	}
	if meta.Title != "cool-tool" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Date != "2024-05-10" {
		t.Errorf("Date = %q", meta.Date)
	}
	if meta.Summary != "A 'cool' tool" {
		t.Errorf("Summary = %q (double quotes must be replaced)", meta.Summary)
	}
	if meta.GitHubRepo != "aryansrao/cool-tool" {
		t.Errorf("GitHubRepo = %q", meta.GitHubRepo)
	}
	if meta.Website != "https://cool.example.com" {
		t.Errorf("Website = %q", meta.Website)
	}
	// github, project, language, first three topics only.
	want := []string{"github", "project", "rust", "cli", "tooling", "parser"}
	if len(meta.Tags) != len(want) {
		t.Fatalf("Tags = %v", meta.Tags)
	}
	for i, tag := range want {
		if meta.Tags[i] != tag {
			t.Errorf("Tags[%d] = %q, want %q", i, meta.Tags[i], tag)
		}
	}
	if !strings.Contains(body, "# Cool Tool") {
		t.Errorf("body missing README content: %q", body)
	}
}

func TestPostDocumentEmptyDescription(t *testing.T) {
	doc := postDocument(GitHubRepo{Name: "x", FullName: "u/x"}, "readme", "u")
	meta, _, ok := ParseFrontMatter(doc)
	if !ok {
		t.Fatal("did not parse")
	}
	if meta.Summary != "A GitHub project" {
		t.Errorf("Summary = %q", meta.Summary)
	}
	if meta.Date == "" {
		t.Error("Date empty, want today's date fallback")
	}
}

func TestGitHubSlug(t *testing.T) {
	tests := []struct{ in, want string }{
		{"My Repo", "github-my-repo"},
		{"tool", "github-tool"},
		{"CamelCase", "github-camelcase"},
	}
	for _, tt := range tests {
		if got := githubSlug(tt.in); got != tt.want {
			t.Errorf("githubSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLinkStoreRoundTrip(t *testing.T) {
	path := t.TempDir() + "/.github_links.json"
	s := NewLinkStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	link := GitHubLink{RepoName: "x", RepoFullName: "u/x", LastSynced: "2024-01-01 00:00:00", AutoSync: true}
	if err := s.Set("github-x", link); err != nil {
		t.Fatal(err)
	}

	reloaded := NewLinkStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	got, ok := reloaded.Get("github-x")
	if !ok || got != link {
		t.Errorf("reloaded link = %+v, ok=%v", got, ok)
	}

	slug, ok := reloaded.slugByRepo("x", true)
	if !ok || slug != "github-x" {
		t.Errorf("slugByRepo = %q, %v", slug, ok)
	}
	if _, ok := reloaded.slugByRepo("y", false); ok {
		t.Error("found link for unknown repo")
	}

	if err := reloaded.Remove("github-x"); err != nil {
		t.Fatal(err)
	}
	if _, ok := reloaded.Get("github-x"); ok {
		t.Error("link still present after Remove")
	}
}
