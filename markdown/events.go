package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// EventKind enumerates every event the transducer understands. The set is
// closed: flattenNode maps each goldmark node onto exactly one of these.
type EventKind int

const (
	EventText EventKind = iota
	EventCode           // inline code span
	EventSoftBreak
	EventHardBreak
	EventHeadingStart
	EventHeadingEnd
	EventCodeBlockStart
	EventCodeBlockEnd
	EventTableStart
	EventTableEnd
	EventTableHeadStart
	EventTableHeadEnd
	EventTableRowStart
	EventTableRowEnd
	EventTableCellStart
	EventTableCellEnd
	EventTaskMarker
	EventFootnoteDefStart
	EventFootnoteDefEnd
	EventFootnoteRef
	EventStrikeStart
	EventStrikeEnd
	EventQuoteStart
	EventQuoteEnd
	EventParagraphStart
	EventParagraphEnd
	EventListStart
	EventListEnd
	EventItemStart
	EventItemEnd
	EventEmphasisStart
	EventEmphasisEnd
	EventLinkStart
	EventLinkEnd
	EventImage
	EventRule
	EventHTML // raw HTML passed through untouched
)

// Event is one element of the flattened document stream. Only the fields
// relevant to the Kind are populated.
type Event struct {
	Kind    EventKind
	Level   int    // heading level, or emphasis level (1 = em, 2 = strong)
	Text    string // text content, raw HTML, or image alt text
	Name    string // footnote label
	Dest    string // link or image destination
	Title   string // link or image title
	Lang    string // code block language hint ("" for indented blocks)
	Checked bool   // task list marker state
	Ordered bool   // list order
	Start   int    // ordered list start number
}

// Events flattens a parsed document into an index-addressable sequence.
// The transducer needs random access rather than a forward-only iterator:
// a heading's anchor id and a code block's highlighted form both require
// the construct's complete content before any output can be emitted.
func Events(root ast.Node, source []byte) []Event {
	var evs []Event
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		flattenNode(c, source, &evs)
	}
	return evs
}

func flattenNode(n ast.Node, src []byte, evs *[]Event) {
	children := func() {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			flattenNode(c, src, evs)
		}
	}

	switch node := n.(type) {
	case *ast.Heading:
		*evs = append(*evs, Event{Kind: EventHeadingStart, Level: node.Level})
		children()
		*evs = append(*evs, Event{Kind: EventHeadingEnd, Level: node.Level})

	case *ast.Paragraph:
		*evs = append(*evs, Event{Kind: EventParagraphStart})
		children()
		*evs = append(*evs, Event{Kind: EventParagraphEnd})

	case *ast.TextBlock:
		// Tight list item content: transparent, no paragraph tags.
		children()

	case *ast.Blockquote:
		*evs = append(*evs, Event{Kind: EventQuoteStart})
		children()
		*evs = append(*evs, Event{Kind: EventQuoteEnd})

	case *ast.List:
		start := node.Start
		if start == 0 {
			start = 1
		}
		*evs = append(*evs, Event{Kind: EventListStart, Ordered: node.IsOrdered(), Start: start})
		children()
		*evs = append(*evs, Event{Kind: EventListEnd, Ordered: node.IsOrdered()})

	case *ast.ListItem:
		*evs = append(*evs, Event{Kind: EventItemStart})
		children()
		*evs = append(*evs, Event{Kind: EventItemEnd})

	case *ast.ThematicBreak:
		*evs = append(*evs, Event{Kind: EventRule})

	case *ast.FencedCodeBlock:
		// The whole fence info string, not just its first word, so hints
		// like "rust,ignore" reach the highlighter intact.
		lang := ""
		if node.Info != nil {
			lang = strings.TrimSpace(string(node.Info.Segment.Value(src)))
		}
		*evs = append(*evs, Event{Kind: EventCodeBlockStart, Lang: lang})
		*evs = append(*evs, Event{Kind: EventText, Text: linesText(n, src)})
		*evs = append(*evs, Event{Kind: EventCodeBlockEnd})

	case *ast.CodeBlock:
		*evs = append(*evs, Event{Kind: EventCodeBlockStart})
		*evs = append(*evs, Event{Kind: EventText, Text: linesText(n, src)})
		*evs = append(*evs, Event{Kind: EventCodeBlockEnd})

	case *ast.HTMLBlock:
		raw := linesText(n, src)
		if node.HasClosure() {
			raw += string(node.ClosureLine.Value(src))
		}
		*evs = append(*evs, Event{Kind: EventHTML, Text: raw})

	case *ast.Text:
		*evs = append(*evs, Event{Kind: EventText, Text: string(node.Segment.Value(src))})
		if node.HardLineBreak() {
			*evs = append(*evs, Event{Kind: EventHardBreak})
		} else if node.SoftLineBreak() {
			*evs = append(*evs, Event{Kind: EventSoftBreak})
		}

	case *ast.String:
		if node.IsRaw() {
			*evs = append(*evs, Event{Kind: EventHTML, Text: string(node.Value)})
		} else {
			*evs = append(*evs, Event{Kind: EventText, Text: string(node.Value)})
		}

	case *ast.CodeSpan:
		*evs = append(*evs, Event{Kind: EventCode, Text: nodeText(n, src)})

	case *ast.Emphasis:
		*evs = append(*evs, Event{Kind: EventEmphasisStart, Level: node.Level})
		children()
		*evs = append(*evs, Event{Kind: EventEmphasisEnd, Level: node.Level})

	case *ast.Link:
		*evs = append(*evs, Event{Kind: EventLinkStart, Dest: string(node.Destination), Title: string(node.Title)})
		children()
		*evs = append(*evs, Event{Kind: EventLinkEnd})

	case *ast.AutoLink:
		url := string(node.URL(src))
		dest := url
		if node.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(dest, "mailto:") {
			dest = "mailto:" + dest
		}
		*evs = append(*evs, Event{Kind: EventLinkStart, Dest: dest})
		*evs = append(*evs, Event{Kind: EventText, Text: string(node.Label(src))})
		*evs = append(*evs, Event{Kind: EventLinkEnd})

	case *ast.Image:
		*evs = append(*evs, Event{
			Kind:  EventImage,
			Dest:  string(node.Destination),
			Title: string(node.Title),
			Text:  nodeText(n, src),
		})

	case *ast.RawHTML:
		var raw strings.Builder
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			raw.Write(seg.Value(src))
		}
		*evs = append(*evs, Event{Kind: EventHTML, Text: raw.String()})

	case *east.Table:
		*evs = append(*evs, Event{Kind: EventTableStart})
		children()
		*evs = append(*evs, Event{Kind: EventTableEnd})

	case *east.TableHeader:
		*evs = append(*evs, Event{Kind: EventTableHeadStart})
		children()
		*evs = append(*evs, Event{Kind: EventTableHeadEnd})

	case *east.TableRow:
		*evs = append(*evs, Event{Kind: EventTableRowStart})
		children()
		*evs = append(*evs, Event{Kind: EventTableRowEnd})

	case *east.TableCell:
		*evs = append(*evs, Event{Kind: EventTableCellStart})
		children()
		*evs = append(*evs, Event{Kind: EventTableCellEnd})

	case *east.Strikethrough:
		*evs = append(*evs, Event{Kind: EventStrikeStart})
		children()
		*evs = append(*evs, Event{Kind: EventStrikeEnd})

	case *east.TaskCheckBox:
		*evs = append(*evs, Event{Kind: EventTaskMarker, Checked: node.IsChecked})

	case *east.FootnoteList:
		children()

	case *east.Footnote:
		// goldmark tracks footnotes by index; the index doubles as the
		// label so definition ids and reference anchors always pair up.
		name := strconv.Itoa(node.Index)
		*evs = append(*evs, Event{Kind: EventFootnoteDefStart, Name: name})
		children()
		*evs = append(*evs, Event{Kind: EventFootnoteDefEnd, Name: name})

	case *east.FootnoteLink:
		*evs = append(*evs, Event{Kind: EventFootnoteRef, Name: strconv.Itoa(node.Index)})

	case *east.FootnoteBacklink:
		// The definition container already links back visually; skip.

	default:
		children()
	}
}

// linesText concatenates a block node's line segments.
func linesText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

// nodeText collects the plain text of a node's descendants.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		default:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}
