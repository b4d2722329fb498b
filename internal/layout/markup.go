package layout

import (
	"html"
	"strconv"
	"strings"

	"github.com/alnah/go-pageexport/internal/model"
	"github.com/alnah/go-pageexport/internal/richtext"
	"github.com/alnah/go-pageexport/internal/style"
)

// Layout defaults.
const (
	DefaultPadding    = 24
	DefaultSplitRatio = 50
	MinSplitRatio     = 20
	MaxSplitRatio     = 80
	DefaultGap        = 16
	DefaultButtonText = "Learn more"
)

// kit carries helpers shared by every renderer.
type kit struct {
	rt *richtext.Renderer
}

// begin writes the section wrapper start tag.
func (k kit) begin(sb *strings.Builder, in Input, extraStyle string) {
	s := in.Section

	classes := "pe-section pe-" + string(s.Layout)
	if in.Styles.Animation != "" {
		classes += " pe-animate"
	}

	padding := s.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}
	decls := []string{"padding: " + strconv.Itoa(padding) + "px;"}
	if h := style.HeightValue(s.Height); h != "" {
		decls = append(decls, "min-height: "+h+";")
	}
	if c := style.EscapeValue(strings.TrimSpace(s.BackgroundColor)); c != "" {
		decls = append(decls, "background-color: "+c+";")
	}
	if c := style.EscapeValue(strings.TrimSpace(s.TextColor)); c != "" {
		decls = append(decls, "color: "+c+";")
	}
	decls = append(decls, "font-family: "+style.FontStack(s.FontFamily)+";")
	if in.Styles.Animation != "" {
		decls = append(decls, in.Styles.Animation)
	}
	if extraStyle != "" {
		decls = append(decls, extraStyle)
	}

	sb.WriteString(`<section`)
	if s.ID != "" {
		attr(sb, "id", "section-"+s.ID)
	}
	attr(sb, "class", classes)
	attr(sb, "data-layout", string(s.Layout))
	attr(sb, "style", strings.Join(decls, " "))
	sb.WriteString(">\n")
}

func (k kit) end(sb *strings.Builder) {
	sb.WriteString("</section>\n")
}

// text writes the title, body, and call-to-action block. Hero layouts use
// h1 for the title, everything else h2.
func (k kit) text(sb *strings.Builder, in Input, hero bool) {
	s := in.Section
	body, _ := k.rt.Render(s.Body)
	button := buttonHTML(s.Button)
	if s.Title == "" && body == "" && button == "" {
		return
	}

	sb.WriteString(`<div class="pe-text"`)
	if in.Styles.TextShadow != "" {
		attr(sb, "style", in.Styles.TextShadow)
	}
	sb.WriteString(">")
	k.heading(sb, s.Title, hero)
	if body != "" {
		sb.WriteString(`<div class="pe-body">` + body + `</div>`)
	}
	sb.WriteString(button)
	sb.WriteString("</div>\n")
}

func (k kit) heading(sb *strings.Builder, title string, hero bool) {
	if title == "" {
		return
	}
	if hero {
		sb.WriteString(`<h1 class="pe-title">` + html.EscapeString(title) + `</h1>`)
		return
	}
	sb.WriteString(`<h2 class="pe-heading">` + html.EscapeString(title) + `</h2>`)
}

// header writes the optional title and body above a collection.
func (k kit) header(sb *strings.Builder, in Input) {
	s := in.Section
	body, _ := k.rt.Render(s.Body)
	if s.Title == "" && body == "" {
		return
	}
	sb.WriteString(`<header class="pe-text pe-collection-header"`)
	if in.Styles.TextShadow != "" {
		attr(sb, "style", in.Styles.TextShadow)
	}
	sb.WriteString(">")
	k.heading(sb, s.Title, false)
	if body != "" {
		sb.WriteString(`<div class="pe-body">` + body + `</div>`)
	}
	sb.WriteString("</header>\n")
}

// videoFlags configures a video element. A nil pointer means the default.
type videoFlags struct {
	autoplay, muted, loop bool
	poster                string
}

// mediaHTML renders one media reference. A nil ref renders nothing; a ref
// whose source resolved to "" renders a placeholder that is neither an img
// nor a video. The filter declaration applies to the media element only.
func mediaHTML(ref *model.MediaRef, filter string, video *videoFlags) string {
	if ref == nil {
		return ""
	}

	alt := strings.TrimSpace(ref.Alt)
	if ref.Src == "" {
		var sb strings.Builder
		sb.WriteString(`<div class="pe-media pe-media-missing" role="img"`)
		if alt != "" {
			attr(&sb, "aria-label", alt)
		}
		sb.WriteString("></div>")
		return sb.String()
	}

	var sb strings.Builder
	if ref.IsVideo() {
		sb.WriteString(`<video class="pe-media"`)
		attr(&sb, "src", ref.Src)
		if video == nil {
			video = &videoFlags{muted: true, loop: true}
		}
		if video.autoplay {
			sb.WriteString(" autoplay")
		}
		if video.muted {
			sb.WriteString(" muted")
		}
		if video.loop {
			sb.WriteString(" loop")
		}
		sb.WriteString(" playsinline")
		if video.poster != "" {
			attr(&sb, "poster", video.poster)
		}
		if filter != "" {
			attr(&sb, "style", filter)
		}
		sb.WriteString("></video>")
		return sb.String()
	}

	sb.WriteString(`<img class="pe-media"`)
	attr(&sb, "src", ref.Src)
	attr(&sb, "alt", alt)
	sb.WriteString(` loading="lazy"`)
	if filter != "" {
		attr(&sb, "style", filter)
	}
	sb.WriteString(">")
	return sb.String()
}

func buttonHTML(b *model.Button) string {
	if !b.Active() {
		return ""
	}

	label := strings.TrimSpace(b.Label)
	if label == "" {
		label = DefaultButtonText
	}
	variant := model.ButtonPrimary
	if b.Style == model.ButtonOutline {
		variant = model.ButtonOutline
	}

	var sb strings.Builder
	sb.WriteString("<a")
	attr(&sb, "class", "pe-button pe-button-"+variant)
	attr(&sb, "href", safeURL(b.URL))
	if c := style.EscapeValue(strings.TrimSpace(b.Color)); c != "" {
		attr(&sb, "style", "--pe-button: "+c+";")
	}
	sb.WriteString(">" + html.EscapeString(label) + "</a>")
	return sb.String()
}

// safeURL returns u if it uses a scheme a static page may link to, "#"
// otherwise.
func safeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return "#"
	}
	lower := strings.ToLower(u)
	colon := strings.IndexByte(lower, ':')
	if colon < 0 || strings.ContainsAny(lower[:colon], "/?#") {
		return u // relative
	}
	switch lower[:colon] {
	case "http", "https", "mailto", "tel":
		return u
	}
	return "#"
}

// attr writes ` name="value"` with value escaped.
func attr(sb *strings.Builder, name, value string) {
	sb.WriteString(" " + name + `="` + html.EscapeString(value) + `"`)
}

// columns clamps n into [lo, hi], with 0 meaning def.
func columns(n, lo, hi, def int) int {
	if n <= 0 {
		return def
	}
	return min(max(n, lo), hi)
}

// gridSettings returns the column count, gap, and caption toggle for a grid
// layout.
func gridSettings(g *model.GridSettings, lo, hi, def int) (cols, gap int, captions bool) {
	cols, gap, captions = def, DefaultGap, true
	if g == nil {
		return cols, gap, captions
	}
	cols = columns(g.Columns, lo, hi, def)
	if g.Gap > 0 {
		gap = g.Gap
	}
	if g.ShowCaptions != nil {
		captions = *g.ShowCaptions
	}
	return cols, gap, captions
}

func gridStyle(cols, gap int) string {
	return "grid-template-columns: repeat(" + strconv.Itoa(cols) + ", minmax(0, 1fr)); gap: " + strconv.Itoa(gap) + "px;"
}

// itemID writes the data-item-id attribute when id is set.
func itemID(sb *strings.Builder, id string) {
	if id != "" {
		attr(sb, "data-item-id", id)
	}
}
