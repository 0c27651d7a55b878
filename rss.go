package blog

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const feedItemLimit = 20

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string      `xml:"title"`
	Link          string      `xml:"link"`
	Description   string      `xml:"description"`
	Language      string      `xml:"language"`
	LastBuildDate string      `xml:"lastBuildDate"`
	AtomLink      rssAtomLink `xml:"atom:link"`
	Generator     string      `xml:"generator"`
	Items         []rssItem   `xml:"item"`
}

type rssAtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string         `xml:"title"`
	Link        string         `xml:"link"`
	GUID        rssGUID        `xml:"guid"`
	PubDate     string         `xml:"pubDate"`
	Description rssDescription `xml:"description"`
	Author      string         `xml:"author"`
	Categories  []string       `xml:"category"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssDescription struct {
	Text string `xml:",cdata"`
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}
	if len(posts) > feedItemLimit {
		posts = posts[:feedItemLimit]
	}

	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := p.DateISO
		if t, err := time.Parse("2006-01-02T15:04:05-0700", p.DateISO); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := base + "/blog/" + p.Slug
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			GUID:        rssGUID{IsPermaLink: "true", Value: postURL},
			PubDate:     pubDate,
			Description: rssDescription{Text: p.Summary},
			Author:      p.Author,
			Categories:  p.Tags,
		})
	}

	feed := rssXML{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: rssChannel{
			Title:         a.Config.Title,
			Link:          base,
			Description:   a.Config.Description,
			Language:      a.Config.Language,
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			AtomLink: rssAtomLink{
				Href: base + "/rss.xml",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Generator: "aryansrao-blogs",
			Items:     items,
		},
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
