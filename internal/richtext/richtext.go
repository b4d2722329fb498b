// Package richtext renders section body Markdown to HTML fragments.
//
// Raw HTML in the source is never passed through and dangerous link
// schemes are dropped, so bodies from the editor cannot inject markup.
package richtext

import (
	"bytes"
	"html"
	"strings"
	"unicode/utf8"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	xhtml "golang.org/x/net/html"
)

// HighlightStyle is the chroma style used for fenced code blocks.
const HighlightStyle = "github"

// codeMarker appears on every highlighted block.
const codeMarker = `class="chroma"`

// Renderer converts Markdown to HTML with GFM extensions and syntax highlighting.
// It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle(HighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // classes keep markup small; CSS is emitted once per page
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			// WithUnsafe is not used: raw HTML is omitted.
		),
	)
	return &Renderer{md: md}
}

// Render returns the HTML for src and whether it contains highlighted code.
// Conversion errors degrade to an escaped paragraph.
func (r *Renderer) Render(src string) (string, bool) {
	if strings.TrimSpace(src) == "" {
		return "", false
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>", false
	}
	out := buf.String()
	return out, HasCode(out)
}

// HasCode reports whether rendered HTML contains a highlighted code block.
func HasCode(rendered string) bool {
	return strings.Contains(rendered, codeMarker)
}

// HighlightCSS returns the stylesheet for highlighted code blocks.
func HighlightCSS() string {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(HighlightStyle)); err != nil {
		return ""
	}
	return buf.String()
}

// PlainText renders src and returns its visible text with whitespace
// collapsed, truncated to maxRunes (0 means no limit). Truncated text ends
// with an ellipsis.
func (r *Renderer) PlainText(src string, maxRunes int) string {
	rendered, _ := r.Render(src)
	if rendered == "" {
		return ""
	}

	var sb strings.Builder
	z := xhtml.NewTokenizer(strings.NewReader(rendered))
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			break
		}
		switch tt {
		case xhtml.TextToken:
			sb.Write(z.Text())
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			sb.WriteByte(' ')
		}
	}

	text := strings.Join(strings.Fields(sb.String()), " ")
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	cut := strings.TrimRight(string(runes[:maxRunes-1]), " ")
	return cut + "…"
}
