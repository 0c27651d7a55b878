package blog

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aryansrao/aryansrao-blogs/markdown"
	"github.com/aryansrao/aryansrao-blogs/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}
	return Render(c, views.AdminLogin(a.viewConfig(), "", CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if a.lockout.Locked(ip) {
		return RenderStatus(c, http.StatusTooManyRequests,
			views.AdminLogin(a.viewConfig(), "Too many failed attempts. Try again in a few minutes.", CsrfToken(c)))
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		a.lockout.Reset(ip)
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}
	a.lockout.Record(ip)
	return RenderStatus(c, http.StatusUnauthorized,
		views.AdminLogin(a.viewConfig(), "Incorrect password.", CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (a *App) handleAdminDashboard(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return a.renderDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminNew(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return Render(c, views.AdminEditor(a.viewConfig(), views.EditorData{
		Date:      time.Now().Format("2006-01-02"),
		CsrfToken: CsrfToken(c),
	}))
}

func (a *App) handleAdminEdit(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	slug := c.Param("slug")
	meta, body, filename, err := a.documentBySlug(slug)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard?msg=Post+not+found")
	}
	return Render(c, views.AdminEditor(a.viewConfig(), views.EditorData{
		Editing:   true,
		Filename:  filename,
		Title:     meta.Title,
		Date:      meta.Date,
		Tags:      strings.Join(meta.Tags, ", "),
		Summary:   meta.Summary,
		Body:      strings.TrimLeft(body, "\n"),
		CsrfToken: CsrfToken(c),
	}))
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard?msg=Title+is+required")
	}
	slug := markdown.Slugify(title)
	if slug == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard?msg=Title+must+contain+letters+or+digits")
	}

	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard?msg=Invalid+date.+Use+YYYY-MM-DD")
	}

	meta := Metadata{
		Title:   title,
		Date:    date,
		Tags:    parseTagList(c.FormValue("tags")),
		Summary: strings.TrimSpace(c.FormValue("summary")),
	}

	// Editing an existing document keeps its filename and import linkage.
	filename := slug + ".md"
	if prev, _, prevName, err := a.documentBySlug(slug); err == nil {
		filename = prevName
		meta.GitHubRepo = prev.GitHubRepo
		meta.Website = prev.Website
	}

	doc := EncodeDocument(meta, c.FormValue("content"))
	if err := a.Store.Write(filename, []byte(doc)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/dashboard?msg=Saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	slug := c.Param("slug")
	_, _, filename, err := a.documentBySlug(slug)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}
	if err := a.Store.Delete(filename); err != nil {
		return err
	}
	if err := a.links.Remove(slug); err != nil {
		c.Logger().Warnf("remove github link for %s: %v", slug, err)
	}
	return c.NoContent(http.StatusOK)
}

func (a *App) handleAdminStats(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	totals, err := a.analytics.Totals()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totals)
}

func (a *App) renderDashboard(c echo.Context, msg string) error {
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}
	linked := make(map[string]bool)
	for _, l := range a.links.All() {
		linked[l.Slug] = true
	}
	return Render(c, views.AdminDashboard(a.viewConfig(), viewPosts(posts), linked, msg, CsrfToken(c)))
}

// documentBySlug locates the stored document whose title slugifies to slug.
func (a *App) documentBySlug(slug string) (Metadata, string, string, error) {
	docs, err := a.Store.List()
	if err != nil {
		return Metadata{}, "", "", err
	}
	for _, d := range docs {
		meta, body, ok := ParseFrontMatter(string(d.Raw))
		if !ok {
			continue
		}
		if markdown.Slugify(meta.Title) == slug {
			return meta, body, d.Filename, nil
		}
	}
	return Metadata{}, "", "", ErrNotFound
}
