package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle is the chroma theme applied to every code block. The style
// and lexer registries are read-only after package init, so concurrent
// renders need no locking.
const highlightStyle = "monokai"

// codeBlockShell wraps highlighted markup with a header exposing the
// language label and a copy button hooked up by the embedded copy-code.js.
const codeBlockShell = `<div class="code-block relative my-4 rounded-lg overflow-hidden">
<div class="code-header flex items-center justify-between px-4 py-2 bg-gray-800 text-gray-400 text-xs">
<span class="code-lang font-mono">%s</span>
<button class="copy-btn hover:text-white transition-colors" onclick="copyCode(this)">Copy</button>
</div>
<div class="code-content overflow-x-auto">%s</div>
</div>`

// Highlight renders code as themed HTML. The language hint is resolved
// against chroma's registry by name first and file extension second, with
// the plain-text lexer as the final fallback. If tokenising or formatting
// fails for any reason the escaped fallback block is returned instead;
// Highlight itself never fails.
func Highlight(code, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil && lang != "" {
		lexer = lexers.Match("source." + lang)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return fallbackBlock(code, lang)
	}

	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.Standalone(false))
	if err := formatter.Format(&buf, styles.Get(highlightStyle), iterator); err != nil {
		return fallbackBlock(code, lang)
	}

	label := lang
	if label == "" {
		label = "text"
	}
	return fmt.Sprintf(codeBlockShell, html.EscapeString(label), buf.String())
}

// fallbackBlock is the path of last resort: a plain escaped <pre><code>
// block carrying the raw language hint as a CSS class. It must not fail or
// panic for any input, including unbalanced markup characters.
func fallbackBlock(code, lang string) string {
	return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
		html.EscapeString(lang), html.EscapeString(code))
}
