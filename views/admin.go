package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// AdminLogin renders the password form, with an optional error banner.
func AdminLogin(cfg SiteConfig, errMsg, csrfToken string) templ.Component {
	return page(cfg, PageMeta{Title: "Admin - " + cfg.Title}, "", func(w io.Writer) error {
		if errMsg != "" {
			if _, err := fmt.Fprintf(w, `<p class="error-banner">%s</p>`+"\n", esc(errMsg)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<form class="admin-login" method="POST" action="/admin/login">
<input type="hidden" name="_csrf" value="%s">
<label for="password">Password</label>
<input type="password" id="password" name="password" autofocus required>
<button type="submit">Log in</button>
</form>
`, esc(csrfToken))
		return err
	})
}

// AdminDashboard lists every post with edit, delete and sync actions.
// linked marks slugs that track a GitHub repository.
func AdminDashboard(cfg SiteConfig, posts []BlogPost, linked map[string]bool, msg, csrfToken string) templ.Component {
	return page(cfg, PageMeta{Title: "Dashboard - " + cfg.Title}, "", func(w io.Writer) error {
		if _, err := fmt.Fprint(w, `<nav class="admin-nav">
<a href="/admin/new">New post</a>
<a href="/admin/github">GitHub</a>
<a href="/admin/images">Images</a>
<a href="/admin/logout">Log out</a>
</nav>
`); err != nil {
			return err
		}
		if msg != "" {
			if _, err := fmt.Fprintf(w, `<p class="notice">%s</p>`+"\n", esc(msg)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, `<table class="admin-posts">
<thead><tr><th>Title</th><th>Date</th><th>Tags</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, p := range posts {
			badge := ""
			if linked[p.Slug] {
				badge = ` <span class="badge">GitHub</span>`
			}
			if _, err := fmt.Fprintf(w, `<tr>
<td><a href="/blog/%s">%s</a>%s</td>
<td>%s</td>
<td>%s</td>
<td>
<a href="/admin/edit/%s">Edit</a>
<button data-action="delete" data-slug="%s" data-csrf="%s">Delete</button>
</td>
</tr>
`, esc(p.Slug), esc(p.Title), badge, esc(p.Date), esc(JoinTags(p.Tags)), esc(p.Slug), esc(p.Slug), esc(csrfToken)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, "</tbody>\n</table>\n"+adminDashboardScript)
		return err
	})
}

const adminDashboardScript = `<script>
document.querySelectorAll('[data-action="delete"]').forEach(function (btn) {
  btn.addEventListener('click', function () {
    if (!confirm('Delete "' + btn.dataset.slug + '"?')) return;
    fetch('/admin/delete/' + btn.dataset.slug, {
      method: 'DELETE',
      headers: { 'X-CSRF-Token': btn.dataset.csrf }
    }).then(function () { location.reload(); });
  });
});
</script>
`

// AdminEditor renders the post editor, blank for new posts.
func AdminEditor(cfg SiteConfig, data EditorData) templ.Component {
	heading := "New post"
	if data.Editing {
		heading = "Edit post"
	}
	return page(cfg, PageMeta{Title: heading + " - " + cfg.Title}, "", func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1>
<form class="admin-editor" method="POST" action="/admin/save">
<input type="hidden" name="_csrf" value="%s">
<label for="title">Title</label>
<input type="text" id="title" name="title" value="%s" required>
<label for="date">Date</label>
<input type="text" id="date" name="date" value="%s" placeholder="YYYY-MM-DD">
<label for="tags">Tags</label>
<input type="text" id="tags" name="tags" value="%s" placeholder="comma, separated">
<label for="summary">Summary</label>
<input type="text" id="summary" name="summary" value="%s">
<label for="content">Markdown</label>
<textarea id="content" name="content" rows="24">%s</textarea>
<button type="submit">Save</button>
</form>
`, esc(heading), esc(data.CsrfToken), esc(data.Title), esc(data.Date),
			esc(data.Tags), esc(data.Summary), esc(data.Body))
		return err
	})
}

// AdminGitHub renders the repo import page. The table is populated by
// fetching /admin/api/repos client-side.
func AdminGitHub(cfg SiteConfig, csrfToken string) templ.Component {
	return page(cfg, PageMeta{Title: "GitHub - " + cfg.Title}, "", func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>GitHub repositories</h1>
<p>Import a repository README as a post. Point a repo webhook at <code>/api/webhook/github</code> to re-sync on push.</p>
<div id="repo-list" data-csrf="%s">Loading&hellip;</div>
%s`, esc(csrfToken), adminGitHubScript)
		return err
	})
}

const adminGitHubScript = `<script>
(function () {
  var list = document.getElementById('repo-list');
  var csrf = list.dataset.csrf;
  fetch('/admin/api/repos').then(function (r) { return r.json(); }).then(function (data) {
    if (!data.success) { list.textContent = data.error || 'Failed to load repos'; return; }
    list.innerHTML = '';
    data.repos.forEach(function (repo) {
      var row = document.createElement('div');
      row.className = 'repo-row';
      var label = repo.name + (repo.language ? ' (' + repo.language + ')' : '');
      if (repo.is_linked) {
        row.textContent = label + ' - linked';
      } else {
        var btn = document.createElement('button');
        btn.textContent = 'Import';
        btn.addEventListener('click', function () {
          var body = new URLSearchParams({ repo_name: repo.name, auto_sync: 'on', _csrf: csrf });
          fetch('/admin/github/import', { method: 'POST', body: body })
            .then(function (r) { return r.json(); })
            .then(function (res) { row.textContent = label + (res.success ? ' - imported' : ' - ' + res.error); });
        });
        row.textContent = label + ' ';
        row.appendChild(btn);
      }
      list.appendChild(row);
    });
  });
})();
</script>
`

// AdminImages renders the uploaded image manager.
func AdminImages(cfg SiteConfig, images []AdminImage, csrfToken string) templ.Component {
	return page(cfg, PageMeta{Title: "Images - " + cfg.Title}, "", func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Images</h1>
<form class="admin-upload" method="POST" action="/admin/images/upload" enctype="multipart/form-data">
<input type="hidden" name="_csrf" value="%s">
<input type="file" name="image" accept="image/*" required>
<button type="submit">Upload</button>
</form>
<ul class="image-list">
`, esc(csrfToken)); err != nil {
			return err
		}
		for _, img := range images {
			if _, err := fmt.Fprintf(w, `<li><a href="%s">%s</a> <span>%s</span></li>`+"\n",
				esc(img.URL), esc(img.Filename), esc(FormatSize(img.Size))); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, "</ul>\n")
		return err
	})
}
