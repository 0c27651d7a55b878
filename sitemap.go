package blog

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	ImageNS string       `xml:"xmlns:image,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	ChangeFreq string        `xml:"changefreq,omitempty"`
	Priority   string        `xml:"priority,omitempty"`
	Image      *sitemapImage `xml:"image:image,omitempty"`
}

type sitemapImage struct {
	Loc   string `xml:"image:loc"`
	Title string `xml:"image:title"`
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}

	base := a.Config.URL
	urls := []sitemapURL{{
		Loc:        base,
		LastMod:    time.Now().Format("2006-01-02"),
		ChangeFreq: "daily",
		Priority:   "1.0",
	}}
	for _, p := range posts {
		lastMod := p.DateISO
		if i := strings.Index(lastMod, "T"); i > 0 {
			lastMod = lastMod[:i]
		}
		urls = append(urls, sitemapURL{
			Loc:        base + "/blog/" + p.Slug,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
			Image: &sitemapImage{
				Loc:   p.Image,
				Title: p.Title,
			},
		})
	}

	sitemap := sitemapURLSet{
		XMLNS:   "http://www.sitemaps.org/schemas/sitemap/0.9",
		ImageNS: "http://www.google.com/schemas/sitemap-image/1.1",
		URLs:    urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
