package layout

import (
	"html"
	"strings"

	"github.com/alnah/go-pageexport/internal/model"
)

// quoteMarks maps a quote style to its opening and closing marks.
var quoteMarks = map[string][2]string{
	model.QuoteDouble: {"“", "”"},
	model.QuoteSingle: {"‘", "’"},
	model.QuoteNone:   {"", ""},
}

// quote renders large quoted text with an optional author line. The quoted
// text is the body; a section with only a title quotes the title.
type quote struct {
	kit
}

func (r quote) Render(in Input) string {
	s := in.Section
	marks, ok := quoteMarks[s.QuoteStyle]
	if !ok {
		marks = quoteMarks[model.QuoteDouble]
	}

	text := r.rt.PlainText(s.Body, 0)
	title := s.Title
	if text == "" {
		text, title = s.Title, ""
	}

	var sb strings.Builder
	r.begin(&sb, in, "")
	sb.WriteString(`<div class="pe-content items-center justify-center text-center">` + "\n")
	r.heading(&sb, title, false)
	sb.WriteString(`<blockquote class="pe-quote"`)
	if in.Styles.TextShadow != "" {
		attr(&sb, "style", in.Styles.TextShadow)
	}
	sb.WriteString(">")
	if text != "" {
		sb.WriteString(`<p class="pe-quote-text">` + marks[0] + html.EscapeString(text) + marks[1] + `</p>`)
	}
	if author := strings.TrimSpace(s.Author); author != "" {
		sb.WriteString(`<cite class="pe-quote-author">` + html.EscapeString(author) + `</cite>`)
	}
	sb.WriteString("</blockquote>\n")
	sb.WriteString(buttonHTML(s.Button))
	sb.WriteString("</div>\n")
	r.end(&sb)
	return sb.String()
}
