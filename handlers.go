package blog

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aryansrao/aryansrao-blogs/analytics"
	"github.com/aryansrao/aryansrao-blogs/views"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}
	a.recordVisit(c)
	return Render(c, views.Home(a.viewConfig(), viewPosts(posts), "", collectTags(posts)))
}

func (a *App) handleTag(c echo.Context) error {
	tag := c.Param("tag")
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}
	filtered := FilterByTag(posts, tag)
	a.recordVisit(c)
	return Render(c, views.Home(a.viewConfig(), viewPosts(filtered), tag, collectTags(posts)))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p.Slug == slug {
			a.recordVisit(c)
			return Render(c, views.Post(a.viewConfig(), viewPost(p), viewPosts(posts)))
		}
	}
	return RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig()))
}

func (a *App) handleSearch(c echo.Context) error {
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SearchPosts(posts, c.QueryParam("q")))
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n\nCrawl-delay: 1\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

// recordVisit logs a page view. Failures never surface to the request.
func (a *App) recordVisit(c echo.Context) {
	if a.analytics == nil {
		return
	}
	ua := c.Request().UserAgent()
	if analytics.IsBot(ua) {
		return
	}
	visitor := analytics.VisitorID(c.RealIP(), ua)
	if err := a.analytics.RecordVisit(c.Request().URL.Path, visitor); err != nil {
		c.Logger().Warnf("record visit: %v", err)
	}
}

// collectTags returns the distinct tags across all posts, sorted.
func collectTags(posts []Post) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			key := strings.ToLower(t)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

func viewPost(p Post) views.BlogPost {
	return views.BlogPost{
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Summary:     p.Summary,
		Date:        p.Date,
		DateISO:     p.DateISO,
		Tags:        p.Tags,
		Author:      p.Author,
		Image:       p.Image,
		ImageAlt:    p.ImageAlt,
		Keywords:    p.Keywords,
		Canonical:   p.Canonical,
		ReadingTime: p.ReadingTime,
		WordCount:   p.WordCount,
		GitHubRepo:  p.GitHubRepo,
		Website:     p.Website,
	}
}

func viewPosts(posts []Post) []views.BlogPost {
	out := make([]views.BlogPost, len(posts))
	for i, p := range posts {
		out[i] = viewPost(p)
	}
	return out
}

func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Title:         a.Config.Title,
		Description:   a.Config.Description,
		URL:           a.Config.URL,
		Author:        a.Config.Author,
		TwitterHandle: a.Config.TwitterHandle,
		Logo:          a.Config.Logo,
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.viewConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
