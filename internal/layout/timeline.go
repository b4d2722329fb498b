package layout

import (
	"html"
	"strings"

	"github.com/alnah/go-pageexport/internal/model"
)

// timeline renders entries along a vertical axis in collection order,
// alternating sides unless a fixed side is configured.
type timeline struct {
	kit
}

func (r timeline) Render(in Input) string {
	side := model.SideAlternate
	if t := in.Section.Timeline; t != nil && (t.Side == model.SideLeft || t.Side == model.SideRight) {
		side = t.Side
	}

	var sb strings.Builder
	r.begin(&sb, in, "")
	r.header(&sb, in)
	sb.WriteString(`<ol`)
	attr(&sb, "class", "pe-timeline pe-timeline-"+side)
	sb.WriteString(">\n")
	for i, entry := range in.Section.Entries {
		entrySide := side
		if side == model.SideAlternate {
			entrySide = model.SideLeft
			if i%2 == 1 {
				entrySide = model.SideRight
			}
		}

		sb.WriteString(`<li`)
		attr(&sb, "class", "pe-timeline-entry pe-side-"+entrySide)
		itemID(&sb, entry.ID)
		sb.WriteString(">")
		if entry.Date != "" {
			sb.WriteString(`<time class="pe-timeline-date">` + html.EscapeString(entry.Date) + `</time>`)
		}
		if entry.Title != "" {
			sb.WriteString("<h3>" + html.EscapeString(entry.Title) + "</h3>")
		}
		if body, _ := r.rt.Render(entry.Body); body != "" {
			sb.WriteString(`<div class="pe-body">` + body + `</div>`)
		}
		sb.WriteString(mediaHTML(entry.Media, in.Styles.Filter, nil))
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</ol>\n")
	r.end(&sb)
	return sb.String()
}
