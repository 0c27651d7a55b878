package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Home renders the post index, optionally filtered to one tag.
func Home(cfg SiteConfig, posts []BlogPost, activeTag string, tags []string) templ.Component {
	meta := PageMeta{OGType: "website"}
	if activeTag != "" {
		meta.Title = fmt.Sprintf("Posts tagged %s - %s", activeTag, cfg.Title)
		meta.URL = cfg.URL + "/tags/" + PathEscape(activeTag)
	}
	return page(cfg, meta, WebsiteJsonLD(cfg), func(w io.Writer) error {
		if err := writeTagNav(w, tags, activeTag); err != nil {
			return err
		}
		if len(posts) == 0 {
			_, err := fmt.Fprint(w, `<p class="empty">No posts yet.</p>`+"\n")
			return err
		}
		if _, err := fmt.Fprint(w, `<section class="post-list">`+"\n"); err != nil {
			return err
		}
		for _, p := range posts {
			if err := writePostCard(w, p); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, `</section>`+"\n")
		return err
	})
}

func writeTagNav(w io.Writer, tags []string, active string) error {
	if len(tags) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, `<nav class="tag-nav">`+"\n"); err != nil {
		return err
	}
	cls := "tag-pill"
	if active == "" {
		cls = "tag-pill active"
	}
	if _, err := fmt.Fprintf(w, `<a class="%s" href="/">All</a>`+"\n", cls); err != nil {
		return err
	}
	for _, t := range tags {
		cls := "tag-pill"
		if t == active {
			cls = "tag-pill active"
		}
		if _, err := fmt.Fprintf(w, `<a class="%s" href="/tags/%s">%s</a>`+"\n", cls, PathEscape(t), esc(t)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, `</nav>`+"\n")
	return err
}

func writePostCard(w io.Writer, p BlogPost) error {
	if _, err := fmt.Fprintf(w, `<article class="post-card">
<h2><a href="/blog/%s">%s</a></h2>
<p class="post-meta"><time datetime="%s">%s</time> &middot; %d min read</p>
<p class="post-summary">%s</p>
`, esc(p.Slug), esc(p.Title), esc(p.DateISO), esc(p.Date), p.ReadingTime, esc(p.Summary)); err != nil {
		return err
	}
	for _, t := range p.Tags {
		if _, err := fmt.Fprintf(w, `<a class="tag-pill" href="/tags/%s">%s</a>`+"\n", PathEscape(t), esc(t)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, `</article>`+"\n")
	return err
}
