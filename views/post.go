package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Post renders one article page. The post's Content field is the HTML
// produced by the Markdown pipeline and is written through unescaped.
func Post(cfg SiteConfig, post BlogPost, all []BlogPost) templ.Component {
	meta := PageMeta{
		Title:       post.Title + " - " + cfg.Title,
		Description: post.Summary,
		URL:         post.Canonical,
		Image:       post.Image,
		OGType:      "article",
	}
	related := FilterRelatedPosts(post, all)
	if len(related) > 3 {
		related = related[:3]
	}
	return page(cfg, meta, BlogPostingJsonLD(cfg, post), func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article class="post">
<header>
<h1>%s</h1>
<p class="post-meta">By %s &middot; <time datetime="%s">%s</time> &middot; %d min read</p>
`, esc(post.Title), esc(post.Author), esc(post.DateISO), esc(post.Date), post.ReadingTime); err != nil {
			return err
		}
		if post.GitHubRepo != "" {
			if _, err := fmt.Fprintf(w, `<p class="repo-link"><a href="https://github.com/%s" rel="noopener">View on GitHub</a></p>`+"\n", esc(post.GitHubRepo)); err != nil {
				return err
			}
		}
		if post.Website != "" {
			if _, err := fmt.Fprintf(w, `<p class="repo-link"><a href="%s" rel="noopener">Project website</a></p>`+"\n", esc(post.Website)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</header>
<div class="post-body">%s</div>
<footer class="post-tags">
`, post.Content); err != nil {
			return err
		}
		for _, t := range post.Tags {
			if _, err := fmt.Fprintf(w, `<a class="tag-pill" href="/tags/%s">%s</a>`+"\n", PathEscape(t), esc(t)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, `</footer>`+"\n</article>\n"); err != nil {
			return err
		}
		return writeRelated(w, related)
	})
}

func writeRelated(w io.Writer, related []BlogPost) error {
	if len(related) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, `<aside class="related">`+"\n<h2>Related posts</h2>\n<ul>\n"); err != nil {
		return err
	}
	for _, p := range related {
		if _, err := fmt.Fprintf(w, `<li><a href="/blog/%s">%s</a></li>`+"\n", esc(p.Slug), esc(p.Title)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "</ul>\n</aside>\n")
	return err
}
