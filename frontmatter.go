package blog

import "strings"

// ParseFrontMatter splits a raw document into its front-matter metadata and
// Markdown body. The metadata block is everything between the first two
// `---` delimiters; if the document does not contain both, ok is false and
// the caller is expected to skip the document.
//
// The block is decoded line by line as `key: value` pairs. The first colon
// separates key from value; surrounding double quotes on the value are
// stripped. Unknown keys are ignored so documents written for newer versions
// of the blog still parse.
func ParseFrontMatter(raw string) (meta Metadata, body string, ok bool) {
	parts := strings.SplitN(raw, "---", 3)
	if len(parts) < 3 {
		return Metadata{}, "", false
	}

	for _, line := range strings.Split(parts[1], "\n") {
		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.Trim(strings.TrimSpace(kv[1]), `"`)
		switch key {
		case "title":
			meta.Title = value
		case "date":
			meta.Date = value
		case "tags":
			meta.Tags = parseTagList(value)
		case "summary":
			meta.Summary = value
		case "author":
			meta.Author = value
		case "image":
			meta.Image = value
		case "image_alt":
			meta.ImageAlt = value
		case "keywords":
			meta.Keywords = value
		case "canonical":
			meta.Canonical = value
		case "github_repo":
			meta.GitHubRepo = value
		case "website", "homepage":
			meta.Website = value
		}
	}

	return meta, parts[2], true
}

// EncodeDocument renders metadata and a Markdown body back into a document
// that ParseFrontMatter round-trips. Zero-value fields are omitted.
func EncodeDocument(meta Metadata, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	writeField := func(key, value string) {
		if value != "" {
			b.WriteString(key + ": \"" + value + "\"\n")
		}
	}
	writeField("title", meta.Title)
	writeField("date", meta.Date)
	if len(meta.Tags) > 0 {
		quoted := make([]string, len(meta.Tags))
		for i, t := range meta.Tags {
			quoted[i] = `"` + t + `"`
		}
		b.WriteString("tags: [" + strings.Join(quoted, ", ") + "]\n")
	}
	writeField("summary", meta.Summary)
	writeField("author", meta.Author)
	writeField("image", meta.Image)
	writeField("image_alt", meta.ImageAlt)
	writeField("keywords", meta.Keywords)
	writeField("canonical", meta.Canonical)
	writeField("github_repo", meta.GitHubRepo)
	writeField("website", meta.Website)
	b.WriteString("---\n\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// parseTagList accepts both the bracketed form `[a, b, "c d"]` and a bare
// comma-separated string. Elements are trimmed of whitespace and single or
// double quotes; empty elements are dropped and order is preserved.
func parseTagList(value string) []string {
	cleaned := strings.Trim(value, "[]")
	var tags []string
	for _, t := range strings.Split(cleaned, ",") {
		t = strings.TrimSpace(t)
		t = strings.Trim(t, `"`)
		t = strings.Trim(t, `'`)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
