package layout

import (
	"strconv"
	"strings"
)

// split renders media and text side by side. The ratio is the media share.
type split struct {
	kit
	mediaFirst bool
}

func (r split) Render(in Input) string {
	ratio := in.Section.SplitRatio
	if ratio == 0 {
		ratio = DefaultSplitRatio
	}
	ratio = min(max(ratio, MinSplitRatio), MaxSplitRatio)

	mediaCol := strconv.Itoa(ratio) + "%"
	textCol := strconv.Itoa(100-ratio) + "%"
	cols := mediaCol + " " + textCol
	if !r.mediaFirst {
		cols = textCol + " " + mediaCol
	}

	var sb strings.Builder
	r.begin(&sb, in, "")
	sb.WriteString(`<div class="pe-split"`)
	attr(&sb, "style", "grid-template-columns: "+cols+";")
	sb.WriteString(">\n")
	if r.mediaFirst {
		r.mediaPane(&sb, in)
		r.textPane(&sb, in)
	} else {
		r.textPane(&sb, in)
		r.mediaPane(&sb, in)
	}
	sb.WriteString("</div>\n")
	r.end(&sb)
	return sb.String()
}

func (r split) mediaPane(sb *strings.Builder, in Input) {
	sb.WriteString(`<div class="pe-split-media">`)
	sb.WriteString(mediaHTML(in.Media, in.Styles.Filter, nil))
	if in.Styles.Gradient != "" {
		sb.WriteString(`<div class="pe-gradient"`)
		attr(sb, "style", in.Styles.Gradient)
		sb.WriteString("></div>")
	}
	sb.WriteString("</div>\n")
}

func (r split) textPane(sb *strings.Builder, in Input) {
	sb.WriteString(`<div`)
	attr(sb, "class", "pe-split-text "+in.Styles.Position)
	sb.WriteString(">\n")
	r.text(sb, in, true)
	sb.WriteString("</div>\n")
}

// centered renders text only, centered in a minimum-height region. Media is
// never read.
type centered struct {
	kit
}

func (r centered) Render(in Input) string {
	var sb strings.Builder
	r.begin(&sb, in, "")
	sb.WriteString(`<div class="pe-content items-center justify-center text-center">` + "\n")
	r.text(&sb, in, true)
	sb.WriteString("</div>\n")
	r.end(&sb)
	return sb.String()
}
