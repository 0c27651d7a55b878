// Package markdown converts blog post bodies to publish-ready HTML.
//
// Parsing is delegated to goldmark; rendering is not. The parsed document is
// flattened into an event sequence and replayed through a small state
// machine, because two constructs need the whole construct before the first
// byte of output: a heading's anchor id precedes its inner HTML, and a code
// block must be complete before the highlighter can tokenize it.
package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var parser = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
		extension.Footnote,
	),
)

// ToHTML renders a Markdown document body to HTML with heading anchors,
// highlighted code blocks, tables, footnotes, task lists, strikethrough and
// styled blockquotes. It never fails: malformed input degrades to whatever
// the parser makes of it.
func ToHTML(source string) string {
	src := []byte(source)
	root := parser.Parser().Parse(text.NewReader(src))
	return render(Events(root, src))
}

// render replays the event sequence, buffering headings and code blocks and
// emitting everything else as it arrives.
func render(events []Event) string {
	var out strings.Builder

	inHeading := false
	headingLevel := 0
	var headingText strings.Builder  // plain text, feeds the anchor slug
	var headingInner strings.Builder // default-rendered inner HTML

	inCode := false
	codeLang := ""
	var code strings.Builder

	inTableHead := false

	for i := 0; i < len(events); i++ {
		ev := events[i]

		if inHeading {
			switch ev.Kind {
			case EventHeadingEnd:
				fmt.Fprintf(&out, "<h%d id=%q>%s</h%d>", headingLevel, Slugify(headingText.String()), headingInner.String(), headingLevel)
				headingText.Reset()
				headingInner.Reset()
				inHeading = false
			case EventText, EventCode:
				headingText.WriteString(ev.Text)
				headingInner.WriteString(defaultHTML(ev))
			case EventSoftBreak, EventHardBreak:
				headingText.WriteByte(' ')
				headingInner.WriteString(defaultHTML(ev))
			default:
				// Formatting inside headings is preserved in the inner
				// HTML even though it adds nothing to the slug text.
				headingInner.WriteString(defaultHTML(ev))
			}
			continue
		}

		if inCode {
			switch ev.Kind {
			case EventCodeBlockEnd:
				out.WriteString(Highlight(code.String(), codeLang))
				code.Reset()
				inCode = false
			case EventText:
				// Raw accumulation; escaping happens inside the highlighter.
				code.WriteString(ev.Text)
			}
			continue
		}

		switch ev.Kind {
		case EventHeadingStart:
			inHeading = true
			headingLevel = ev.Level
		case EventCodeBlockStart:
			inCode = true
			codeLang = ev.Lang
		case EventTableStart:
			out.WriteString(`<div class="table-container"><table>`)
		case EventTableEnd:
			out.WriteString("</table></div>")
		case EventTableHeadStart:
			inTableHead = true
			out.WriteString("<thead><tr>")
		case EventTableHeadEnd:
			inTableHead = false
			out.WriteString("</tr></thead><tbody>")
		case EventTableRowStart:
			out.WriteString("<tr>")
		case EventTableRowEnd:
			out.WriteString("</tr>")
		case EventTableCellStart:
			if inTableHead {
				out.WriteString("<th>")
			} else {
				out.WriteString("<td>")
			}
		case EventTableCellEnd:
			if inTableHead {
				out.WriteString("</th>")
			} else {
				out.WriteString("</td>")
			}
		case EventTaskMarker:
			if ev.Checked {
				out.WriteString(`<input type="checkbox" checked disabled class="mr-2 h-4 w-4 rounded border-gray-300 text-indigo-600 bg-indigo-600 accent-indigo-600"> `)
			} else {
				out.WriteString(`<input type="checkbox" disabled class="mr-2 h-4 w-4 rounded border-gray-300 bg-gray-100 dark:bg-gray-700"> `)
			}
		case EventFootnoteDefStart:
			fmt.Fprintf(&out, `<div class="footnote" id="fn-%s"><sup>%s</sup> `, ev.Name, ev.Name)
		case EventFootnoteDefEnd:
			out.WriteString("</div>")
		case EventFootnoteRef:
			fmt.Fprintf(&out, `<sup><a href="#fn-%s" class="footnote-ref">[%s]</a></sup>`, ev.Name, ev.Name)
		case EventStrikeStart:
			out.WriteString(`<del class="line-through text-gray-500">`)
		case EventStrikeEnd:
			out.WriteString("</del>")
		case EventQuoteStart:
			out.WriteString(`<blockquote class="border-l-4 border-primary-500 pl-4 my-4 italic text-gray-600 dark:text-gray-400">`)
		case EventQuoteEnd:
			out.WriteString("</blockquote>")
		default:
			out.WriteString(defaultHTML(ev))
		}
	}

	return out.String()
}

// defaultHTML renders one event the way a plain Markdown renderer would.
// Structural events already handled by the state machine return nothing.
func defaultHTML(ev Event) string {
	switch ev.Kind {
	case EventText:
		return html.EscapeString(ev.Text)
	case EventCode:
		return "<code>" + html.EscapeString(ev.Text) + "</code>"
	case EventSoftBreak:
		return "\n"
	case EventHardBreak:
		return "<br />\n"
	case EventParagraphStart:
		return "<p>"
	case EventParagraphEnd:
		return "</p>\n"
	case EventListStart:
		if !ev.Ordered {
			return "<ul>\n"
		}
		if ev.Start != 1 {
			return fmt.Sprintf(`<ol start="%d">`+"\n", ev.Start)
		}
		return "<ol>\n"
	case EventListEnd:
		if ev.Ordered {
			return "</ol>\n"
		}
		return "</ul>\n"
	case EventItemStart:
		return "<li>"
	case EventItemEnd:
		return "</li>\n"
	case EventEmphasisStart:
		if ev.Level >= 2 {
			return "<strong>"
		}
		return "<em>"
	case EventEmphasisEnd:
		if ev.Level >= 2 {
			return "</strong>"
		}
		return "</em>"
	case EventLinkStart:
		if ev.Title != "" {
			return fmt.Sprintf(`<a href="%s" title="%s">`, html.EscapeString(ev.Dest), html.EscapeString(ev.Title))
		}
		return fmt.Sprintf(`<a href="%s">`, html.EscapeString(ev.Dest))
	case EventLinkEnd:
		return "</a>"
	case EventImage:
		if ev.Title != "" {
			return fmt.Sprintf(`<img src="%s" alt="%s" title="%s" />`, html.EscapeString(ev.Dest), html.EscapeString(ev.Text), html.EscapeString(ev.Title))
		}
		return fmt.Sprintf(`<img src="%s" alt="%s" />`, html.EscapeString(ev.Dest), html.EscapeString(ev.Text))
	case EventRule:
		return "<hr />\n"
	case EventHTML:
		return ev.Text
	}
	return ""
}
