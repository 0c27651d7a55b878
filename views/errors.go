package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return page(cfg, PageMeta{Title: "Not found - " + cfg.Title}, "", func(w io.Writer) error {
		_, err := fmt.Fprint(w, `<section class="error-page">
<h1>404</h1>
<p>That page does not exist.</p>
<p><a href="/">Back to posts</a></p>
</section>
`)
		return err
	})
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return page(cfg, PageMeta{Title: "Error - " + cfg.Title}, "", func(w io.Writer) error {
		_, err := fmt.Fprint(w, `<section class="error-page">
<h1>500</h1>
<p>Something went wrong. Try again in a moment.</p>
</section>
`)
		return err
	})
}
