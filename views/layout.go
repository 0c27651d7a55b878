package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// page wraps a body renderer in the shared document shell.
func page(cfg SiteConfig, meta PageMeta, jsonLD string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeHead(w, cfg, meta, jsonLD); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		return writeFoot(w, cfg)
	})
}

func writeHead(w io.Writer, cfg SiteConfig, meta PageMeta, jsonLD string) error {
	title := meta.Title
	if title == "" {
		title = cfg.Title
	}
	description := meta.Description
	if description == "" {
		description = cfg.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	pageURL := meta.URL
	if pageURL == "" {
		pageURL = cfg.URL
	}
	image := meta.Image
	if image == "" {
		image = cfg.URL + "/og-default.png"
	}

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<meta name="description" content="%s">
<meta name="author" content="%s">
<link rel="canonical" href="%s">
<meta property="og:type" content="%s">
<meta property="og:title" content="%s">
<meta property="og:description" content="%s">
<meta property="og:url" content="%s">
<meta property="og:image" content="%s">
<meta property="og:site_name" content="%s">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="%s">
<meta name="twitter:description" content="%s">
<meta name="twitter:image" content="%s">
`,
		esc(title), esc(description), esc(cfg.Author), esc(pageURL), esc(ogType),
		esc(title), esc(description), esc(pageURL), esc(image), esc(cfg.Title),
		esc(title), esc(description), esc(image))
	if err != nil {
		return err
	}
	if cfg.TwitterHandle != "" {
		if _, err := fmt.Fprintf(w, `<meta name="twitter:site" content="%s">`+"\n", esc(cfg.TwitterHandle)); err != nil {
			return err
		}
	}
	if cfg.Logo != "" {
		if _, err := fmt.Fprintf(w, `<link rel="icon" href="%s">`+"\n", esc(cfg.Logo)); err != nil {
			return err
		}
	}
	if jsonLD != "" {
		if _, err := fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`+"\n", jsonLD); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, `<link rel="alternate" type="application/rss+xml" title="%s" href="%s/rss.xml">
<link rel="stylesheet" href="/static/style.css">
<script src="/static/copy-code.js" defer></script>
</head>
<body>
<header class="site-header">
<a class="site-title" href="/">%s</a>
<nav>
<a href="/">Posts</a>
<a href="%s/rss.xml">RSS</a>
</nav>
</header>
<main>
`, esc(cfg.Title), esc(cfg.URL), esc(cfg.Title), esc(cfg.URL))
	return err
}

func writeFoot(w io.Writer, cfg SiteConfig) error {
	_, err := fmt.Fprintf(w, `</main>
<footer class="site-footer">
<p>&copy; %s</p>
</footer>
</body>
</html>
`, esc(cfg.Author))
	return err
}
