package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLHeadingAnchor(t *testing.T) {
	got := ToHTML("## Hello, World!")
	want := `<h2 id="hello-world">Hello, World!</h2>`
	if got != want {
		t.Errorf("ToHTML heading = %q, want %q", got, want)
	}
}

func TestToHTMLHeadingKeepsInlineFormatting(t *testing.T) {
	got := ToHTML("# A *big* `day`")
	if !strings.Contains(got, "<em>big</em>") {
		t.Errorf("emphasis lost inside heading: %q", got)
	}
	if !strings.Contains(got, "<code>day</code>") {
		t.Errorf("inline code lost inside heading: %q", got)
	}
	// Inline code contributes to the anchor text; emphasis markers do not
	// add characters beyond their plain text.
	if !strings.Contains(got, `id="a-big-day"`) {
		t.Errorf("anchor id wrong: %q", got)
	}
}

func TestToHTMLCodeBlockHighlighted(t *testing.T) {
	got := ToHTML("```python\nprint(1)\n```")
	if !strings.Contains(got, `<span class="code-lang font-mono">python</span>`) {
		t.Errorf("language label missing: %q", got)
	}
	if !strings.Contains(got, "print") {
		t.Errorf("code content missing: %q", got)
	}
}

func TestToHTMLCodeBlockMultilineContent(t *testing.T) {
	got := ToHTML("```go\nfunc main() {\n\tprintln(1)\n}\n```")
	for _, want := range []string{"func", "main", "println"} {
		if !strings.Contains(got, want) {
			t.Errorf("code line %q lost: %q", want, got)
		}
	}
}

func TestToHTMLCodeFenceFullInfoString(t *testing.T) {
	got := ToHTML("```rust,ignore\nfn main() {}\n```")
	if !strings.Contains(got, `<span class="code-lang font-mono">rust,ignore</span>`) {
		t.Errorf("fence info string truncated in label: %q", got)
	}
	if !strings.Contains(got, "fn") {
		t.Errorf("code content missing: %q", got)
	}
}

func TestToHTMLUnfencedCodeBlock(t *testing.T) {
	got := ToHTML("    indented code\n")
	if !strings.Contains(got, "indented code") {
		t.Errorf("indented block lost: %q", got)
	}
	// No language hint: label falls back to "text".
	if !strings.Contains(got, `<span class="code-lang font-mono">text</span>`) {
		t.Errorf("plain label missing: %q", got)
	}
}

func TestToHTMLTable(t *testing.T) {
	got := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |\n")
	for _, want := range []string{
		`<div class="table-container"><table>`,
		"<thead><tr><th>a</th><th>b</th></tr></thead><tbody>",
		"<tr><td>1</td><td>2</td></tr>",
		"</table></div>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q in %q", want, got)
		}
	}
}

func TestToHTMLTaskList(t *testing.T) {
	got := ToHTML("- [x] done\n- [ ] todo\n")
	if !strings.Contains(got, `<input type="checkbox" checked disabled`) {
		t.Errorf("checked marker missing: %q", got)
	}
	if !strings.Contains(got, `<input type="checkbox" disabled`) {
		t.Errorf("unchecked marker missing: %q", got)
	}
}

func TestToHTMLFootnotes(t *testing.T) {
	got := ToHTML("text[^1]\n\n[^1]: the note\n")
	if !strings.Contains(got, `<sup><a href="#fn-1" class="footnote-ref">[1]</a></sup>`) {
		t.Errorf("footnote reference missing: %q", got)
	}
	if !strings.Contains(got, `<div class="footnote" id="fn-1"><sup>1</sup>`) {
		t.Errorf("footnote definition missing: %q", got)
	}
}

func TestToHTMLStrikethroughAndQuote(t *testing.T) {
	got := ToHTML("~~gone~~\n\n> wise words\n")
	if !strings.Contains(got, `<del class="line-through text-gray-500">gone</del>`) {
		t.Errorf("strikethrough missing: %q", got)
	}
	if !strings.Contains(got, "<blockquote") || !strings.Contains(got, "wise words") {
		t.Errorf("blockquote missing: %q", got)
	}
}

func TestToHTMLEscapesText(t *testing.T) {
	got := ToHTML("AT&T says 1 < 2")
	if !strings.Contains(got, "AT&amp;T") {
		t.Errorf("ampersand not escaped: %q", got)
	}
	if !strings.Contains(got, "1 &lt; 2") {
		t.Errorf("angle bracket not escaped: %q", got)
	}
}

func TestToHTMLRawInlineHTMLPassesThrough(t *testing.T) {
	got := ToHTML(`before <span class="note">mid</span> after`)
	if !strings.Contains(got, `<span class="note">`) {
		t.Errorf("inline HTML should pass through untouched: %q", got)
	}
}

func TestToHTMLHTMLBlockPassesThrough(t *testing.T) {
	got := ToHTML("<div class=\"callout\">\nkeep this line\n</div>\n")
	if !strings.Contains(got, `<div class="callout">`) {
		t.Errorf("HTML block opening lost: %q", got)
	}
	if !strings.Contains(got, "keep this line") {
		t.Errorf("HTML block content lost: %q", got)
	}
}

func TestToHTMLLinksAndImages(t *testing.T) {
	got := ToHTML(`[site](https://example.com) and ![alt text](/img.png)`)
	if !strings.Contains(got, `<a href="https://example.com">site</a>`) {
		t.Errorf("link missing: %q", got)
	}
	if !strings.Contains(got, `<img src="/img.png" alt="alt text" />`) {
		t.Errorf("image missing: %q", got)
	}
}

func TestHighlightFallbackEscapes(t *testing.T) {
	got := fallbackBlock("print(1 < 2)", "python")
	want := `<pre><code class="language-python">print(1 &lt; 2)</code></pre>`
	if got != want {
		t.Errorf("fallbackBlock = %q, want %q", got, want)
	}
}

func TestHighlightNeverEmpty(t *testing.T) {
	tests := []struct{ code, lang string }{
		{"print(1)", "python"},
		{"SELECT 1;", "sql"},
		{"whatever", "no-such-language"},
		{"", ""},
		{"<div>&</div>", "html"},
	}
	for _, tt := range tests {
		got := Highlight(tt.code, tt.lang)
		if got == "" {
			t.Errorf("Highlight(%q, %q) returned empty output", tt.code, tt.lang)
		}
	}
}

func TestHighlightUnknownLanguageLabel(t *testing.T) {
	got := Highlight("plain words", "")
	if !strings.Contains(got, `<span class="code-lang font-mono">text</span>`) {
		t.Errorf("expected plain-text label, got %q", got)
	}
}
