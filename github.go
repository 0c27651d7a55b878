package blog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aryansrao/aryansrao-blogs/views"
)

const githubAPIBase = "https://api.github.com"

// GitHubRepo is the subset of the GitHub repository object the importer uses.
type GitHubRepo struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	HTMLURL     string   `json:"html_url"`
	PushedAt    string   `json:"pushed_at"`
	UpdatedAt   string   `json:"updated_at"`
	Language    string   `json:"language"`
	Stars       int      `json:"stargazers_count"`
	Fork        bool     `json:"fork"`
	Archived    bool     `json:"archived"`
	Topics      []string `json:"topics"`
	Homepage    string   `json:"homepage"`
}

// GitHubClient talks to the GitHub REST API for one user's public repos.
type GitHubClient struct {
	username string
	token    string
	baseURL  string
	client   *http.Client
}

// NewGitHubClient creates a client for the given user. The token is optional
// and only raises the API rate limit.
func NewGitHubClient(username, token string) *GitHubClient {
	return &GitHubClient{
		username: username,
		token:    token,
		baseURL:  githubAPIBase,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *GitHubClient) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "aryansrao-blogs")
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api error: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Repos lists the user's public repositories, newest activity first.
// Forks and archived repositories are filtered out.
func (g *GitHubClient) Repos(ctx context.Context) ([]GitHubRepo, error) {
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100", g.baseURL, g.username)
	var repos []GitHubRepo
	if err := g.get(ctx, url, &repos); err != nil {
		return nil, err
	}
	kept := repos[:0]
	for _, r := range repos {
		if r.Fork || r.Archived {
			continue
		}
		kept = append(kept, r)
	}
	return kept, nil
}

// Readme fetches and decodes the README of one repository. GitHub delivers
// the content base64-encoded with embedded newlines.
func (g *GitHubClient) Readme(ctx context.Context, repo string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/readme", g.baseURL, g.username, repo)
	var payload struct {
		Content string `json:"content"`
	}
	if err := g.get(ctx, url, &payload); err != nil {
		return "", fmt.Errorf("no README found for %s: %w", repo, err)
	}
	if payload.Content == "" {
		return "", fmt.Errorf("README content is empty for %s", repo)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(payload.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode README for %s: %w", repo, err)
	}
	return string(decoded), nil
}

// postDocument renders a repo README as a blog document. The date comes from
// the last push so synced posts surface near their latest activity.
func postDocument(repo GitHubRepo, readme, author string) string {
	date := repo.PushedAt
	if date == "" {
		date = repo.UpdatedAt
	}
	if i := strings.Index(date, "T"); i > 0 {
		date = date[:i]
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	description := repo.Description
	if description == "" {
		description = "A GitHub project"
	}

	tags := []string{"github", "project"}
	if repo.Language != "" {
		tags = append(tags, strings.ToLower(repo.Language))
	}
	for i, topic := range repo.Topics {
		if i >= 3 {
			break
		}
		tags = append(tags, topic)
	}

	meta := Metadata{
		Title:      repo.Name,
		Date:       date,
		Tags:       tags,
		Summary:    strings.ReplaceAll(description, `"`, "'"),
		Author:     author,
		Keywords:   repo.Name + ", github, open source",
		GitHubRepo: repo.FullName,
		Website:    strings.TrimSpace(repo.Homepage),
	}
	return EncodeDocument(meta, readme)
}

// githubSlug is the post slug and file stem for an imported repository.
func githubSlug(repoName string) string {
	return "github-" + strings.ReplaceAll(strings.ToLower(repoName), " ", "-")
}

// GitHubLink records which stored document tracks which repository.
type GitHubLink struct {
	RepoName     string `json:"repo_name"`
	RepoFullName string `json:"repo_full_name"`
	LastSynced   string `json:"last_synced"`
	AutoSync     bool   `json:"auto_sync"`
}

// LinkStore persists the slug-to-repository registry as a JSON file next to
// the content it describes.
type LinkStore struct {
	mu    sync.RWMutex
	path  string
	links map[string]GitHubLink
}

func NewLinkStore(path string) *LinkStore {
	return &LinkStore{path: path, links: make(map[string]GitHubLink)}
}

// Load reads the registry from disk. A missing file is an empty registry.
func (s *LinkStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(raw, &s.links)
}

func (s *LinkStore) save() error {
	raw, err := json.MarshalIndent(s.links, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Get returns the link for a slug.
func (s *LinkStore) Get(slug string) (GitHubLink, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.links[slug]
	return l, ok
}

// Set stores a link and persists the registry.
func (s *LinkStore) Set(slug string, link GitHubLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[slug] = link
	return s.save()
}

// Remove drops a link and persists the registry. Removing an unknown slug
// is a no-op.
func (s *LinkStore) Remove(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[slug]; !ok {
		return nil
	}
	delete(s.links, slug)
	return s.save()
}

// All returns a snapshot of every link keyed by slug, flattened for ranging.
func (s *LinkStore) All() []struct {
	Slug string
	GitHubLink
} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]struct {
		Slug string
		GitHubLink
	}, 0, len(s.links))
	for slug, l := range s.links {
		out = append(out, struct {
			Slug string
			GitHubLink
		}{slug, l})
	}
	return out
}

// slugByRepo finds the linked slug for a repository name, optionally
// restricted to auto-sync links.
func (s *LinkStore) slugByRepo(repoName string, autoSyncOnly bool) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for slug, l := range s.links {
		if l.RepoName != repoName {
			continue
		}
		if autoSyncOnly && !l.AutoSync {
			continue
		}
		return slug, true
	}
	return "", false
}

func (s *LinkStore) touch(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.links[slug]
	if !ok {
		return nil
	}
	l.LastSynced = time.Now().Format("2006-01-02 15:04:05")
	s.links[slug] = l
	return s.save()
}

// --- handlers ---

type syncResult struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	ReposSynced []string `json:"repos_synced"`
	Errors      []string `json:"errors"`
}

func (a *App) handleGitHubRepos(c echo.Context) error {
	repos, err := a.GitHub.Repos(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": err.Error()})
	}
	list := make([]map[string]interface{}, 0, len(repos))
	for _, r := range repos {
		list = append(list, map[string]interface{}{
			"name":        r.Name,
			"description": r.Description,
			"url":         r.HTMLURL,
			"language":    r.Language,
			"stars":       r.Stars,
			"updated":     r.PushedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"username": a.Config.GitHubUsername,
		"count":    len(list),
		"repos":    list,
	})
}

func (a *App) handleGitHubSyncAll(c echo.Context) error {
	ctx := c.Request().Context()
	result := syncResult{Success: true, ReposSynced: []string{}, Errors: []string{}}

	repos, err := a.GitHub.Repos(ctx)
	if err != nil {
		result.Success = false
		result.Message = err.Error()
		return c.JSON(http.StatusOK, result)
	}

	for _, repo := range repos {
		readme, err := a.GitHub.Readme(ctx, repo.Name)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		doc := postDocument(repo, readme, a.Config.GitHubUsername)
		filename := githubSlug(repo.Name) + ".md"
		if err := a.Store.Write(filename, []byte(doc)); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("write %s: %v", filename, err))
			continue
		}
		result.ReposSynced = append(result.ReposSynced, repo.Name)
	}

	result.Message = fmt.Sprintf("Synced %d repos, %d errors", len(result.ReposSynced), len(result.Errors))
	c.Logger().Infof("github sync complete: %s", result.Message)
	return c.JSON(http.StatusOK, result)
}

func (a *App) handleAdminRepos(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "Not authenticated"})
	}
	repos, err := a.GitHub.Repos(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": err.Error()})
	}
	list := make([]map[string]interface{}, 0, len(repos))
	for _, r := range repos {
		_, linked := a.links.slugByRepo(r.Name, false)
		list = append(list, map[string]interface{}{
			"name":        r.Name,
			"full_name":   r.FullName,
			"description": r.Description,
			"url":         r.HTMLURL,
			"language":    r.Language,
			"stars":       r.Stars,
			"updated":     r.PushedAt,
			"is_linked":   linked,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "repos": list})
}

func (a *App) handleAdminImport(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "Not authenticated"})
	}
	ctx := c.Request().Context()
	repoName := c.FormValue("repo_name")
	autoSync := c.FormValue("auto_sync") == "on"

	repo, err := a.repoByName(ctx, repoName)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": err.Error()})
	}
	readme, err := a.GitHub.Readme(ctx, repoName)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": err.Error()})
	}

	slug := githubSlug(repoName)
	doc := postDocument(repo, readme, a.Config.GitHubUsername)
	if err := a.Store.Write(slug+".md", []byte(doc)); err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": err.Error()})
	}
	if err := a.links.Set(slug, GitHubLink{
		RepoName:     repoName,
		RepoFullName: repo.FullName,
		LastSynced:   time.Now().Format("2006-01-02 15:04:05"),
		AutoSync:     autoSync,
	}); err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"slug":    slug,
		"message": fmt.Sprintf("Imported %s successfully", repoName),
	})
}

func (a *App) handleAdminSync(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "Not authenticated"})
	}
	slug := c.Param("slug")
	link, ok := a.links.Get(slug)
	if !ok {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": "Not a GitHub linked post"})
	}
	if err := a.syncLinkedRepo(c.Request().Context(), slug, link.RepoName); err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "Synced successfully"})
}

func (a *App) handleGitHubWebhook(c echo.Context) error {
	var payload struct {
		Ref        string `json:"ref"`
		Repository *struct {
			Name string `json:"name"`
		} `json:"repository"`
	}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": "Invalid payload"})
	}
	if payload.Ref != "refs/heads/main" && payload.Ref != "refs/heads/master" {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "Ignoring non-main branch push"})
	}
	if payload.Repository == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": "No repository in payload"})
	}

	slug, ok := a.links.slugByRepo(payload.Repository.Name, true)
	if !ok {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "No auto-sync configured for this repo"})
	}
	if err := a.syncLinkedRepo(c.Request().Context(), slug, payload.Repository.Name); err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "error": err.Error()})
	}
	c.Logger().Infof("webhook: auto-synced %s from github", slug)
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "message": "Auto-synced " + slug})
}

// syncLinkedRepo refreshes one imported document from its repository README.
func (a *App) syncLinkedRepo(ctx context.Context, slug, repoName string) error {
	repo, err := a.repoByName(ctx, repoName)
	if err != nil {
		return err
	}
	readme, err := a.GitHub.Readme(ctx, repoName)
	if err != nil {
		return err
	}
	doc := postDocument(repo, readme, a.Config.GitHubUsername)
	if err := a.Store.Write(slug+".md", []byte(doc)); err != nil {
		return err
	}
	return a.links.touch(slug)
}

func (a *App) repoByName(ctx context.Context, name string) (GitHubRepo, error) {
	repos, err := a.GitHub.Repos(ctx)
	if err != nil {
		return GitHubRepo{}, err
	}
	for _, r := range repos {
		if r.Name == name {
			return r, nil
		}
	}
	return GitHubRepo{}, fmt.Errorf("repo %s not found", name)
}

func (a *App) handleAdminGitHub(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return Render(c, views.AdminGitHub(a.viewConfig(), CsrfToken(c)))
}
